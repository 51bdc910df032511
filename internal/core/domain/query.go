package domain

// SortOrder selects the lexicographic direction of a word iteration.
type SortOrder string

const (
	OrderAscending  SortOrder = "asc"
	OrderDescending SortOrder = "desc"
)

// LengthPriority promotes word length to the primary sort key of a
// word-POS iteration. When set, words are grouped by length first and
// ordered lexicographically within each length.
type LengthPriority string

const (
	LengthPriorityNone       LengthPriority = ""
	LengthPriorityAscending  LengthPriority = "asc"
	LengthPriorityDescending LengthPriority = "desc"
)

// WordPOS is a (word, POS) pair yielded by store iteration.
type WordPOS struct {
	Word string
	POS  POSTag
}

// WordPOSLevel is a (word, POS, level) row yielded by store iteration.
// Level is always present since rows are drawn from stored entries.
type WordPOSLevel struct {
	Word  string
	POS   POSTag
	Level int
}

// StoreStats summarises the reference dataset.
type StoreStats struct {
	// TotalWords is the count of distinct words.
	TotalWords int `json:"total_words"`

	// TotalEntries is the count of (word, POS) facts.
	TotalEntries int `json:"total_entries"`

	// MaxWordLength is the length of the longest stored word.
	MaxWordLength int `json:"max_word_length"`
}
