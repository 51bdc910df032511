package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

var (
	wordsLength     int
	wordsDescending bool
	wordsPairs      bool
	wordsLevels     bool
	wordsLengthSort string
	wordsLimit      int
	wordsStats      bool
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List words from the level table",
	Long: `Lists distinct words from the level table in lexicographic order.

--length filters to words of an exact character length. --pairs lists
(word, POS) pairs instead; --levels adds the stored level per pair.
--length-sort makes word length the primary sort key (asc or desc),
keeping alphabetical order within each length. --stats prints dataset
statistics instead of listing; combined with --length it reports word
and entry counts for that length only.`,
	Args: cobra.NoArgs,
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().IntVarP(&wordsLength, "length", "l", 0, "only words of exactly this length")
	wordsCmd.Flags().BoolVar(&wordsDescending, "desc", false, "reverse lexicographic order")
	wordsCmd.Flags().BoolVar(&wordsPairs, "pairs", false, "list (word, POS) pairs")
	wordsCmd.Flags().BoolVar(&wordsLevels, "levels", false, "list (word, POS, level) rows")
	wordsCmd.Flags().StringVar(&wordsLengthSort, "length-sort", "", "primary sort by word length: asc or desc")
	wordsCmd.Flags().IntVarP(&wordsLimit, "limit", "n", 0, "stop after this many results (0 = all)")
	wordsCmd.Flags().BoolVar(&wordsStats, "stats", false, "print dataset statistics")
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}

	ctx := context.Background()

	if wordsStats {
		return outputStats(cmd, ctx)
	}

	order := domain.OrderAscending
	if wordsDescending {
		order = domain.OrderDescending
	}

	lengthPriority, err := parseLengthSort(wordsLengthSort)
	if err != nil {
		return err
	}

	switch {
	case wordsLevels:
		return listWordPOSLevels(cmd, ctx, order, lengthPriority)
	case wordsPairs:
		return listWordPOS(cmd, ctx, order, lengthPriority)
	default:
		if lengthPriority != domain.LengthPriorityNone {
			return fmt.Errorf("%w: --length-sort requires --pairs or --levels", domain.ErrInvalidInput)
		}
		return listWords(cmd, ctx, order)
	}
}

func parseLengthSort(value string) (domain.LengthPriority, error) {
	switch value {
	case "":
		return domain.LengthPriorityNone, nil
	case "asc":
		return domain.LengthPriorityAscending, nil
	case "desc":
		return domain.LengthPriorityDescending, nil
	default:
		return "", fmt.Errorf("%w: --length-sort must be asc or desc", domain.ErrInvalidInput)
	}
}

// lengthStats is the JSON shape of --stats narrowed to one word length.
type lengthStats struct {
	Length  int `json:"length"`
	Words   int `json:"words"`
	Entries int `json:"entries"`
}

func outputStats(cmd *cobra.Command, ctx context.Context) error {
	var report any
	if wordsLength > 0 {
		words, err := levelStore.WordCountForLength(ctx, wordsLength)
		if err != nil {
			return fmt.Errorf("counting words: %w", err)
		}
		entries, err := levelStore.EntryCountForLength(ctx, wordsLength)
		if err != nil {
			return fmt.Errorf("counting entries: %w", err)
		}
		report = lengthStats{Length: wordsLength, Words: words, Entries: entries}
	} else {
		stats, err := levelStore.Stats(ctx)
		if err != nil {
			return fmt.Errorf("reading stats: %w", err)
		}
		report = stats
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling stats: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func listWords(cmd *cobra.Command, ctx context.Context, order domain.SortOrder) error {
	count := 0
	for word, err := range levelStore.Words(ctx, wordsLength, order) {
		if err != nil {
			return err
		}
		cmd.Println(word)
		count++
		if wordsLimit > 0 && count >= wordsLimit {
			break
		}
	}
	return nil
}

func listWordPOS(cmd *cobra.Command, ctx context.Context, order domain.SortOrder, lengthPriority domain.LengthPriority) error {
	count := 0
	for pair, err := range levelStore.WordPOS(ctx, order, lengthPriority) {
		if err != nil {
			return err
		}
		if wordsLength > 0 && len(pair.Word) != wordsLength {
			continue
		}
		cmd.Printf("%s\t%s\n", pair.Word, pair.POS)
		count++
		if wordsLimit > 0 && count >= wordsLimit {
			break
		}
	}
	return nil
}

func listWordPOSLevels(cmd *cobra.Command, ctx context.Context, order domain.SortOrder, lengthPriority domain.LengthPriority) error {
	count := 0
	for row, err := range levelStore.WordPOSLevel(ctx, order, lengthPriority) {
		if err != nil {
			return err
		}
		if wordsLength > 0 && len(row.Word) != wordsLength {
			continue
		}
		band, err := domain.LevelFromInt(row.Level)
		if err != nil {
			return err
		}
		cmd.Printf("%s\t%s\t%d\t%s\n", row.Word, row.POS, row.Level, band)
		count++
		if wordsLimit > 0 && count >= wordsLimit {
			break
		}
	}
	return nil
}
