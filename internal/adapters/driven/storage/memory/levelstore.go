// Package memory provides an in-memory implementation of the LevelStore
// port, used by tests and by callers embedding a small custom table.
package memory

import (
	"context"
	"iter"
	"sort"
	"strings"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
	"github.com/lexibase/cefrlex-cli/internal/core/ports/driven"
)

// Ensure LevelStore implements the interface.
var _ driven.LevelStore = (*LevelStore)(nil)

// LevelStore is a map-backed level store. It is populated at
// construction and immutable afterwards, so concurrent readers need no
// locking.
type LevelStore struct {
	entries map[string]map[domain.POSTag]int
	words   []string // sorted ascending
}

// NewLevelStore builds a store from the given entries. Words are
// case-folded; on duplicate (word, POS) pairs the first entry wins.
func NewLevelStore(entries []domain.LevelEntry) *LevelStore {
	s := &LevelStore{entries: make(map[string]map[domain.POSTag]int)}
	for _, e := range entries {
		word := normalize(e.Word)
		byPOS, ok := s.entries[word]
		if !ok {
			byPOS = make(map[domain.POSTag]int)
			s.entries[word] = byPOS
			s.words = append(s.words, word)
		}
		if _, exists := byPOS[e.POS]; !exists {
			byPOS[e.POS] = e.Level
		}
	}
	sort.Strings(s.words)
	return s
}

func normalize(word string) string {
	return strings.ToLower(word)
}

// Exists reports whether at least one entry has this word, any POS.
func (s *LevelStore) Exists(_ context.Context, word string) (bool, error) {
	_, ok := s.entries[word]
	return ok, nil
}

// ExistsPOS reports whether an exact (word, pos) entry exists.
func (s *LevelStore) ExistsPOS(_ context.Context, word string, pos domain.POSTag) (bool, error) {
	_, ok := s.entries[word][pos]
	return ok, nil
}

// Get returns the level of the exact (word, pos) entry.
func (s *LevelStore) Get(_ context.Context, word string, pos domain.POSTag) (int, bool, error) {
	level, ok := s.entries[word][pos]
	return level, ok, nil
}

// AllPOS returns every POS the word is recorded under, in id order.
func (s *LevelStore) AllPOS(_ context.Context, word string) ([]domain.POSTag, error) {
	byPOS := s.entries[word]
	tags := make([]domain.POSTag, 0, len(byPOS))
	for pos := range byPOS {
		tags = append(tags, pos)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags, nil
}

// POSLevels returns the word's exact entries as a POS -> level map.
func (s *LevelStore) POSLevels(_ context.Context, word string) (map[domain.POSTag]int, error) {
	byPOS := s.entries[word]
	result := make(map[domain.POSTag]int, len(byPOS))
	for pos, level := range byPOS {
		result[pos] = level
	}
	return result, nil
}

// orderedWords returns the stored words under the given ordering.
func (s *LevelStore) orderedWords(length int, order domain.SortOrder) []string {
	words := make([]string, 0, len(s.words))
	for _, w := range s.words {
		if length > 0 && len(w) != length {
			continue
		}
		words = append(words, w)
	}
	if order == domain.OrderDescending {
		for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
			words[i], words[j] = words[j], words[i]
		}
	}
	return words
}

// Words iterates distinct words lexicographically.
func (s *LevelStore) Words(_ context.Context, length int, order domain.SortOrder) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, w := range s.orderedWords(length, order) {
			if !yield(w, nil) {
				return
			}
		}
	}
}

// pairs returns all (word, POS, level) rows under the dual-key ordering
// contract.
func (s *LevelStore) pairs(order domain.SortOrder, lengthPriority domain.LengthPriority) []domain.WordPOSLevel {
	var rows []domain.WordPOSLevel
	for _, word := range s.orderedWords(0, order) {
		byPOS := s.entries[word]
		tags := make([]domain.POSTag, 0, len(byPOS))
		for pos := range byPOS {
			tags = append(tags, pos)
		}
		sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
		for _, pos := range tags {
			rows = append(rows, domain.WordPOSLevel{Word: word, POS: pos, Level: byPOS[pos]})
		}
	}

	switch lengthPriority {
	case domain.LengthPriorityAscending:
		sort.SliceStable(rows, func(i, j int) bool { return len(rows[i].Word) < len(rows[j].Word) })
	case domain.LengthPriorityDescending:
		sort.SliceStable(rows, func(i, j int) bool { return len(rows[i].Word) > len(rows[j].Word) })
	}
	return rows
}

// WordPOS iterates (word, POS) pairs.
func (s *LevelStore) WordPOS(_ context.Context, order domain.SortOrder, lengthPriority domain.LengthPriority) iter.Seq2[domain.WordPOS, error] {
	return func(yield func(domain.WordPOS, error) bool) {
		for _, row := range s.pairs(order, lengthPriority) {
			if !yield(domain.WordPOS{Word: row.Word, POS: row.POS}, nil) {
				return
			}
		}
	}
}

// WordPOSLevel iterates (word, POS, level) rows.
func (s *LevelStore) WordPOSLevel(_ context.Context, order domain.SortOrder, lengthPriority domain.LengthPriority) iter.Seq2[domain.WordPOSLevel, error] {
	return func(yield func(domain.WordPOSLevel, error) bool) {
		for _, row := range s.pairs(order, lengthPriority) {
			if !yield(row, nil) {
				return
			}
		}
	}
}

// WordCountForLength counts distinct words of the given length.
func (s *LevelStore) WordCountForLength(_ context.Context, length int) (int, error) {
	count := 0
	for _, w := range s.words {
		if len(w) == length {
			count++
		}
	}
	return count, nil
}

// EntryCountForLength counts (word, POS) entries whose word has the
// given length.
func (s *LevelStore) EntryCountForLength(_ context.Context, length int) (int, error) {
	count := 0
	for _, w := range s.words {
		if len(w) == length {
			count += len(s.entries[w])
		}
	}
	return count, nil
}

// Stats summarises the dataset.
func (s *LevelStore) Stats(_ context.Context) (domain.StoreStats, error) {
	stats := domain.StoreStats{TotalWords: len(s.words)}
	for _, w := range s.words {
		stats.TotalEntries += len(s.entries[w])
		if len(w) > stats.MaxWordLength {
			stats.MaxWordLength = len(w)
		}
	}
	return stats, nil
}
