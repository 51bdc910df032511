package driven

import (
	"context"
	"iter"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

// LevelStore provides read access to the (word, POS, level) reference
// table. The store is loaded once and immutable afterwards: no mutation
// operation is part of the port, so a shared instance is safe for
// concurrent readers without locking.
//
// Absence is never an error: point lookups report it through ok-style
// returns and set queries through empty results.
type LevelStore interface {
	// Exists reports whether at least one entry has this word, any POS.
	Exists(ctx context.Context, word string) (bool, error)

	// ExistsPOS reports whether an exact (word, pos) entry exists.
	ExistsPOS(ctx context.Context, word string, pos domain.POSTag) (bool, error)

	// Get returns the level of the exact (word, pos) entry.
	// ok is false when the entry is absent.
	Get(ctx context.Context, word string, pos domain.POSTag) (level int, ok bool, err error)

	// AllPOS returns every POS for which an exact entry exists for the
	// word, in id order. Empty when the word is absent.
	AllPOS(ctx context.Context, word string) ([]domain.POSTag, error)

	// POSLevels returns the word's exact entries as a POS -> level map.
	// Empty when the word is absent.
	POSLevels(ctx context.Context, word string) (map[domain.POSTag]int, error)

	// Words iterates distinct words in lexicographic order. A length of
	// zero disables length filtering; a positive length yields only words
	// of exactly that many characters. Each call returns a fresh,
	// independent sequence.
	Words(ctx context.Context, length int, order domain.SortOrder) iter.Seq2[string, error]

	// WordPOS iterates (word, POS) pairs. Without a length priority the
	// key is word order then POS id; with one, word length is the primary
	// key and word order then POS id break ties within each length.
	WordPOS(ctx context.Context, order domain.SortOrder, lengthPriority domain.LengthPriority) iter.Seq2[domain.WordPOS, error]

	// WordPOSLevel iterates like WordPOS, additionally yielding the level
	// of each pair.
	WordPOSLevel(ctx context.Context, order domain.SortOrder, lengthPriority domain.LengthPriority) iter.Seq2[domain.WordPOSLevel, error]

	// WordCountForLength counts distinct words of the given length.
	WordCountForLength(ctx context.Context, length int) (int, error)

	// EntryCountForLength counts (word, POS) entries whose word has the
	// given length.
	EntryCountForLength(ctx context.Context, length int) (int, error)

	// Stats summarises the dataset.
	Stats(ctx context.Context) (domain.StoreStats, error)
}
