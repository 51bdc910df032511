package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexibase/cefrlex-cli/internal/adapters/driven/storage/sqlite"
)

var importCmd = &cobra.Command{
	Use:   "import [tsv-file]",
	Short: "Build the level table from a TSV dataset",
	Long: `Builds the level reference table from a TSV dataset, one fact
per line:

    word<TAB>pos<TAB>level

where pos is a Penn Treebank tag code and level is an ordinal (1-6) or
a band label (A1-C2). Words are case-folded; on duplicate (word, pos)
rows the first one wins. Reads standard input when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	var input io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening dataset: %w", err)
		}
		defer f.Close()
		input = f
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening level store: %w", err)
	}
	defer store.Close()

	result, err := store.Import(context.Background(), input)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d entries into %s", result.Inserted, store.Path())
	if result.Duplicates > 0 {
		cmd.Printf(" (%d duplicates ignored)", result.Duplicates)
	}
	cmd.Println()
	return nil
}
