package domain

import "fmt"

// POSTag identifies a part-of-speech tag from the closed Penn Treebank
// catalog. The zero-based ids are stable dataset identifiers: they are the
// column values stored in the reference table and must never be reordered.
type POSTag uint8

const (
	POSTagCC   POSTag = iota // Coordinating conjunction
	POSTagCD                 // Cardinal number
	POSTagDT                 // Determiner
	POSTagIN                 // Preposition or subordinating conjunction
	POSTagJJ                 // Adjective
	POSTagJJR                // Adjective, comparative
	POSTagJJS                // Adjective, superlative
	POSTagMD                 // Modal
	POSTagNN                 // Noun, singular or mass
	POSTagNNS                // Noun, plural
	POSTagNNP                // Proper noun, singular
	POSTagNNPS               // Proper noun, plural
	POSTagPRP                // Personal/Posessive pronoun
	POSTagRB                 // Adverb
	POSTagRBR                // Adverb, comparative
	POSTagRBS                // Adverb, superlative
	POSTagRP                 // Particle
	POSTagTO                 // To
	POSTagUH                 // Interjection
	POSTagVB                 // Verb, base form
	POSTagVBD                // Verb, past tense
	POSTagVBG                // Verb, gerund or present participle
	POSTagVBN                // Verb, past participle
	POSTagVBP                // Verb, non-3rd person singular present
	POSTagVBZ                // Verb, 3rd person singular present
	POSTagWDT                // Wh-determiner
	POSTagWP                 // Wh-pronoun
	POSTagWRB                // Wh-adverb

	posTagCount
)

var posTagCodes = [posTagCount]string{
	"CC", "CD", "DT", "IN", "JJ", "JJR", "JJS", "MD", "NN", "NNS",
	"NNP", "NNPS", "PRP", "RB", "RBR", "RBS", "RP", "TO", "UH", "VB",
	"VBD", "VBG", "VBN", "VBP", "VBZ", "WDT", "WP", "WRB",
}

var posTagDescriptions = [posTagCount]string{
	"Coordinating conjunction",
	"Cardinal number",
	"Determiner",
	"Preposition or subordinating conjunction",
	"Adjective",
	"Adjective, comparative",
	"Adjective, superlative",
	"Modal",
	"Noun, singular or mass",
	"Noun, plural",
	"Proper noun, singular",
	"Proper noun, plural",
	"Personal/Posessive pronoun",
	"Adverb",
	"Adverb, comparative",
	"Adverb, superlative",
	"Particle",
	"To",
	"Interjection",
	"Verb, base form",
	"Verb, past tense",
	"Verb, gerund or present participle",
	"Verb, past participle",
	"Verb, non-3rd person singular present",
	"Verb, 3rd person singular present",
	"Wh-determiner",
	"Wh-pronoun",
	"Wh-adverb",
}

// posTagsByCode is the reverse lookup, built once at init.
var posTagsByCode = func() map[string]POSTag {
	m := make(map[string]POSTag, posTagCount)
	for t := POSTag(0); t < posTagCount; t++ {
		m[posTagCodes[t]] = t
	}
	return m
}()

// String returns the tag code, e.g. "NN".
func (t POSTag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("POSTag(%d)", uint8(t))
	}
	return posTagCodes[t]
}

// ID returns the stable integer id of the tag.
func (t POSTag) ID() int {
	return int(t)
}

// Description returns the human-readable description of the tag.
func (t POSTag) Description() string {
	if !t.Valid() {
		return ""
	}
	return posTagDescriptions[t]
}

// Valid reports whether t is one of the catalog's tags.
func (t POSTag) Valid() bool {
	return t < posTagCount
}

// POSTagFromCode resolves a tag code such as "NN" against the catalog.
// Returns ErrUnknownPOSTag for codes outside the closed set.
func POSTagFromCode(code string) (POSTag, error) {
	t, ok := posTagsByCode[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPOSTag, code)
	}
	return t, nil
}

// POSTagFromID resolves a stable tag id against the catalog.
// Returns ErrUnknownPOSTag for ids outside the closed set.
func POSTagFromID(id int) (POSTag, error) {
	if id < 0 || id >= int(posTagCount) {
		return 0, fmt.Errorf("%w: id %d", ErrUnknownPOSTag, id)
	}
	return POSTag(id), nil
}

// TotalPOSTags returns the size of the closed catalog.
func TotalPOSTags() int {
	return int(posTagCount)
}

// AllPOSTags returns every tag in the catalog in insertion (id) order.
func AllPOSTags() []POSTag {
	tags := make([]POSTag, posTagCount)
	for t := POSTag(0); t < posTagCount; t++ {
		tags[t] = t
	}
	return tags
}
