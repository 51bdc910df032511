package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

var (
	lookupPOS  string
	lookupJSON bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [word]",
	Short: "Resolve the CEFR level of a word",
	Long: `Resolves the CEFR level of an English word.

With --pos, the word is resolved under that Penn Treebank tag, falling
back to its lemma when the inflected form has no entry. Without --pos,
the average level across the word's recorded parts of speech is shown
together with the per-POS breakdown.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupPOS, "pos", "p", "", "Penn Treebank POS tag (e.g. NN, VB)")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(lookupCmd)
}

// lookupResult is the JSON shape of a lookup.
type lookupResult struct {
	Word    string             `json:"word"`
	POS     string             `json:"pos,omitempty"`
	Level   *float64           `json:"level"`
	CEFR    string             `json:"cefr,omitempty"`
	ByPOS   map[string]float64 `json:"by_pos,omitempty"`
	Average bool               `json:"average"`
}

func runLookup(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	word := args[0]
	ctx := context.Background()

	result, err := resolveLookup(ctx, word)
	if err != nil {
		return err
	}

	if lookupJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputLookupText(cmd, result)
}

func resolveLookup(ctx context.Context, word string) (lookupResult, error) {
	if lookupPOS != "" {
		result := lookupResult{Word: word, POS: lookupPOS}
		level, ok, err := levelService.LevelFor(ctx, word, lookupPOS)
		if err != nil {
			return lookupResult{}, err
		}
		if ok {
			result.Level = &level
			band, _, err := levelService.CEFRFor(ctx, word, lookupPOS)
			if err != nil {
				return lookupResult{}, err
			}
			result.CEFR = band.String()
		}
		return result, nil
	}

	result := lookupResult{Word: word, Average: true}
	level, ok, err := levelService.AverageLevelFor(ctx, word)
	if err != nil {
		return lookupResult{}, err
	}
	if ok {
		result.Level = &level
		band, _, err := levelService.AverageCEFRFor(ctx, word)
		if err != nil {
			return lookupResult{}, err
		}
		result.CEFR = band.String()
	}

	byPOS, err := levelService.POSLevelMapFor(ctx, word)
	if err != nil {
		return lookupResult{}, err
	}
	if len(byPOS) > 0 {
		result.ByPOS = make(map[string]float64, len(byPOS))
		for pos, l := range byPOS {
			result.ByPOS[pos.String()] = l
		}
	}
	return result, nil
}

func outputLookupText(cmd *cobra.Command, result lookupResult) error {
	if result.Level == nil {
		if result.POS != "" {
			cmd.Printf("No level found for %q as %s.\n", result.Word, result.POS)
		} else {
			cmd.Printf("No level found for %q.\n", result.Word)
		}
		return nil
	}

	if result.POS != "" {
		cmd.Printf("%s (%s): %.2f (%s)\n", result.Word, result.POS, *result.Level, result.CEFR)
		return nil
	}

	cmd.Printf("%s: %.2f (%s) across %d part(s) of speech\n",
		result.Word, *result.Level, result.CEFR, len(result.ByPOS))

	// Stable order for the breakdown.
	codes := make([]string, 0, len(result.ByPOS))
	for code := range result.ByPOS {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		ti, _ := domain.POSTagFromCode(codes[i])
		tj, _ := domain.POSTagFromCode(codes[j])
		return ti < tj
	})
	for _, code := range codes {
		pos, _ := domain.POSTagFromCode(code)
		level := result.ByPOS[code]
		band, err := domain.LevelFromFloat(level)
		if err != nil {
			return err
		}
		cmd.Printf("  %-4s %.0f (%s)  %s\n", code, level, band, pos.Description())
	}
	return nil
}
