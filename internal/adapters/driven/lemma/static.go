package lemma

import (
	"strings"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
	"github.com/lexibase/cefrlex-cli/internal/core/ports/driven"
)

// Ensure StaticLemmatizer implements the interface.
var _ driven.Lemmatizer = (*StaticLemmatizer)(nil)

// StaticLemmatizer serves lemma candidates from a fixed table keyed by
// (word, POS). Useful in tests and for callers with precomputed lemmas.
type StaticLemmatizer struct {
	table map[string][]string
}

// NewStaticLemmatizer creates a lemmatizer over the given table.
// Keys are built with Key.
func NewStaticLemmatizer(table map[string][]string) *StaticLemmatizer {
	return &StaticLemmatizer{table: table}
}

// Key builds the table key for (word, pos).
func Key(word string, pos domain.POSTag) string {
	return strings.ToLower(word) + "|" + pos.String()
}

// Lemmatize returns the candidates recorded for (word, pos), in table
// order.
func (l *StaticLemmatizer) Lemmatize(word string, pos domain.POSTag) []string {
	return l.table[Key(word, pos)]
}
