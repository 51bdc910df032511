package lemma

import (
	"strings"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
	"github.com/lexibase/cefrlex-cli/internal/core/ports/driven"
)

// Ensure RuleLemmatizer implements the interface.
var _ driven.Lemmatizer = (*RuleLemmatizer)(nil)

// RuleLemmatizer derives base-form candidates through English suffix
// rewrites keyed on the POS category. Candidates are ordered from most
// to least specific rewrite; the resolver takes the first one with a
// stored entry, so over-generation is harmless.
type RuleLemmatizer struct{}

// NewRuleLemmatizer creates the default suffix-rule lemmatizer.
func NewRuleLemmatizer() *RuleLemmatizer {
	return &RuleLemmatizer{}
}

// Lemmatize returns base-form candidates for (word, pos). Words that
// inflect only under certain categories yield nothing for the rest.
func (l *RuleLemmatizer) Lemmatize(word string, pos domain.POSTag) []string {
	word = strings.ToLower(word)

	switch pos {
	case domain.POSTagNNS, domain.POSTagNNPS, domain.POSTagVBZ:
		return pluralCandidates(word)
	case domain.POSTagVBD, domain.POSTagVBN:
		return pastCandidates(word)
	case domain.POSTagVBG:
		return gerundCandidates(word)
	case domain.POSTagJJR, domain.POSTagRBR:
		return comparativeCandidates(word)
	case domain.POSTagJJS, domain.POSTagRBS:
		return superlativeCandidates(word)
	default:
		return nil
	}
}

// pluralCandidates handles -s endings shared by plural nouns and
// 3rd-person singular verbs: cities -> city, boxes -> box(e), trees -> tree.
func pluralCandidates(word string) []string {
	var candidates []string
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 3:
		candidates = append(candidates, strings.TrimSuffix(word, "ies")+"y")
	case strings.HasSuffix(word, "ves") && len(word) > 3:
		stem := strings.TrimSuffix(word, "ves")
		candidates = append(candidates, stem+"f", stem+"fe")
	case strings.HasSuffix(word, "es") && len(word) > 2:
		candidates = append(candidates, strings.TrimSuffix(word, "es"), strings.TrimSuffix(word, "s"))
	case strings.HasSuffix(word, "s") && len(word) > 1:
		candidates = append(candidates, strings.TrimSuffix(word, "s"))
	}
	return candidates
}

// pastCandidates handles -ed endings: carried -> carry, moved -> move,
// stopped -> stop, walked -> walk.
func pastCandidates(word string) []string {
	if !strings.HasSuffix(word, "ed") || len(word) < 4 {
		return nil
	}
	stem := strings.TrimSuffix(word, "ed")

	var candidates []string
	if strings.HasSuffix(stem, "i") {
		candidates = append(candidates, strings.TrimSuffix(stem, "i")+"y")
	}
	candidates = append(candidates, stem, stem+"e")
	if doubled(stem) {
		candidates = append(candidates, stem[:len(stem)-1])
	}
	return candidates
}

// gerundCandidates handles -ing endings: running -> run, making -> make,
// walking -> walk, lying -> lie.
func gerundCandidates(word string) []string {
	if !strings.HasSuffix(word, "ing") || len(word) < 5 {
		return nil
	}
	stem := strings.TrimSuffix(word, "ing")

	var candidates []string
	if strings.HasSuffix(stem, "y") {
		candidates = append(candidates, strings.TrimSuffix(stem, "y")+"ie")
	}
	candidates = append(candidates, stem, stem+"e")
	if doubled(stem) {
		candidates = append(candidates, stem[:len(stem)-1])
	}
	return candidates
}

// comparativeCandidates handles -er endings: happier -> happy,
// larger -> large, bigger -> big, faster -> fast.
func comparativeCandidates(word string) []string {
	if !strings.HasSuffix(word, "er") || len(word) < 4 {
		return nil
	}
	stem := strings.TrimSuffix(word, "er")

	var candidates []string
	if strings.HasSuffix(stem, "i") {
		candidates = append(candidates, strings.TrimSuffix(stem, "i")+"y")
	}
	candidates = append(candidates, stem, stem+"e")
	if doubled(stem) {
		candidates = append(candidates, stem[:len(stem)-1])
	}
	return candidates
}

// superlativeCandidates handles -est endings: happiest -> happy,
// largest -> large, biggest -> big, fastest -> fast.
func superlativeCandidates(word string) []string {
	if !strings.HasSuffix(word, "est") || len(word) < 5 {
		return nil
	}
	stem := strings.TrimSuffix(word, "est")

	var candidates []string
	if strings.HasSuffix(stem, "i") {
		candidates = append(candidates, strings.TrimSuffix(stem, "i")+"y")
	}
	candidates = append(candidates, stem, stem+"e")
	if doubled(stem) {
		candidates = append(candidates, stem[:len(stem)-1])
	}
	return candidates
}

// doubled reports a doubled final consonant, as in "stopp" or "bigg".
func doubled(stem string) bool {
	if len(stem) < 2 {
		return false
	}
	last := stem[len(stem)-1]
	if stem[len(stem)-2] != last {
		return false
	}
	return !strings.ContainsRune("aeiou", rune(last))
}
