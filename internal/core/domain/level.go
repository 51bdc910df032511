package domain

import (
	"fmt"
	"math"
)

// CEFRLevel is one of the six CEFR proficiency bands, ordered A1 < A2 < B1
// < B2 < C1 < C2 by the underlying ordinal 1..6.
type CEFRLevel uint8

const (
	LevelA1 CEFRLevel = iota + 1
	LevelA2
	LevelB1
	LevelB2
	LevelC1
	LevelC2
)

var levelLabels = [...]string{"A1", "A2", "B1", "B2", "C1", "C2"}

// String returns the band label, e.g. "B2".
func (l CEFRLevel) String() string {
	if !l.Valid() {
		return fmt.Sprintf("CEFRLevel(%d)", uint8(l))
	}
	return levelLabels[l-1]
}

// Int returns the ordinal 1..6 of the level.
func (l CEFRLevel) Int() int {
	return int(l)
}

// Valid reports whether l is one of the six bands.
func (l CEFRLevel) Valid() bool {
	return l >= LevelA1 && l <= LevelC2
}

// LevelFromInt constructs a CEFRLevel from an ordinal.
// Returns ErrInvalidLevel outside 1..6.
func LevelFromInt(ordinal int) (CEFRLevel, error) {
	if ordinal < int(LevelA1) || ordinal > int(LevelC2) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, ordinal)
	}
	return CEFRLevel(ordinal), nil
}

// LevelFromString constructs a CEFRLevel from a band label.
// The match is case-sensitive; anything but the six labels fails with
// ErrInvalidLevel.
func LevelFromString(label string) (CEFRLevel, error) {
	for i, l := range levelLabels {
		if l == label {
			return CEFRLevel(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, label)
}

// LevelFromFloat rounds an averaged level to the nearest band.
// Ties round up to the harder band: 1.5 becomes A2, not A1.
func LevelFromFloat(level float64) (CEFRLevel, error) {
	return LevelFromInt(int(math.Floor(level + 0.5)))
}

// LevelEntry is a single fact from the reference dataset: a normalized
// lowercase word carries the given level when used as the given POS.
// (Word, POS) pairs are unique across the dataset.
type LevelEntry struct {
	Word  string
	POS   POSTag
	Level int
}
