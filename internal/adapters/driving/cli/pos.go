package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

var posJSON bool

var posCmd = &cobra.Command{
	Use:   "pos [tag]",
	Short: "Show the part-of-speech catalog",
	Long: `Shows the closed Penn Treebank part-of-speech catalog.

Without arguments, lists all tags with their stable ids and
descriptions. With a tag code, describes that tag.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPOS,
}

func init() {
	posCmd.Flags().BoolVar(&posJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(posCmd)
}

// posEntry is the JSON shape of one catalog row.
type posEntry struct {
	Code        string `json:"code"`
	ID          int    `json:"id"`
	Description string `json:"description"`
}

func runPOS(cmd *cobra.Command, args []string) error {
	var entries []posEntry
	if len(args) == 1 {
		tag, err := domain.POSTagFromCode(args[0])
		if err != nil {
			return err
		}
		entries = []posEntry{{Code: tag.String(), ID: tag.ID(), Description: tag.Description()}}
	} else {
		for _, tag := range domain.AllPOSTags() {
			entries = append(entries, posEntry{Code: tag.String(), ID: tag.ID(), Description: tag.Description()})
		}
	}

	if posJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling catalog: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for _, e := range entries {
		cmd.Printf("%-4s %2d  %s\n", e.Code, e.ID, e.Description)
	}
	return nil
}
