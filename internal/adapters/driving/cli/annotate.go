package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

var annotateJSON bool

var annotateCmd = &cobra.Command{
	Use:   "annotate [file]",
	Short: "Annotate a tokenized document with CEFR levels",
	Long: `Annotates an externally tokenized document with per-token CEFR levels.

The input is a TSV token stream, one token per line:

    surface<TAB>tag[<TAB>entity[<TAB>start<TAB>end]]

with "-" for no entity. Reads standard input when no file is given.
Tokens matching the annotation profile's skip rules (entity types,
punctuation, unknown tags) are marked skipped instead of resolved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().BoolVar(&annotateJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(annotateCmd)
}

// annotationRun is the JSON shape of one annotate invocation.
type annotationRun struct {
	ID          string              `json:"id"`
	Annotations []domain.Annotation `json:"annotations"`
	Tokens      int                 `json:"tokens"`
	Skipped     int                 `json:"skipped"`
	Unresolved  int                 `json:"unresolved"`
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	var input io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening token file: %w", err)
		}
		defer f.Close()
		input = f
	}

	tokens, err := readTokens(input)
	if err != nil {
		return err
	}

	annotations, err := annotatorService.Annotate(context.Background(), tokens)
	if err != nil {
		return fmt.Errorf("annotation failed: %w", err)
	}

	if annotateJSON {
		return outputAnnotationsJSON(cmd, annotations)
	}
	return outputAnnotationsTable(cmd, annotations)
}

func outputAnnotationsJSON(cmd *cobra.Command, annotations []domain.Annotation) error {
	run := annotationRun{
		ID:          uuid.NewString(),
		Annotations: annotations,
		Tokens:      len(annotations),
	}
	for _, a := range annotations {
		if a.Skipped {
			run.Skipped++
		} else if a.Level == nil {
			run.Unresolved++
		}
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling annotations: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnnotationsTable(cmd *cobra.Command, annotations []domain.Annotation) error {
	for _, a := range annotations {
		switch {
		case a.Skipped:
			cmd.Printf("%-20s %-4s -\n", a.Surface, a.Tag)
		case a.Level == nil:
			cmd.Printf("%-20s %-4s ?\n", a.Surface, a.Tag)
		default:
			band, err := domain.LevelFromFloat(*a.Level)
			if err != nil {
				return err
			}
			cmd.Printf("%-20s %-4s %.2f (%s)\n", a.Surface, a.Tag, *a.Level, band)
		}
	}
	return nil
}
