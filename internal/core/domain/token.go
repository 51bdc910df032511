package domain

// Token is a single unit of an externally tokenized document. Tokens are
// produced by an external NLP pipeline (tokenizer, POS tagger and entity
// recognizer); the annotator consumes them read-only.
type Token struct {
	// Surface is the token text exactly as it appears in the document.
	Surface string `json:"surface"`

	// Tag is the tagger-supplied POS code. It may fall outside the POS
	// catalog, in which case the token is skipped rather than rejected.
	Tag string `json:"tag"`

	// Entity is the named-entity label attached by the recognizer,
	// empty when the token is not part of an entity.
	Entity string `json:"entity,omitempty"`

	// Start and End delimit the token's character span in the document.
	Start int `json:"start"`
	End   int `json:"end"`
}

// Annotation is the per-token level judgement produced by the annotator.
// Annotations are emitted in token order, one per consumed token.
type Annotation struct {
	// Surface is the original token text, even when an abbreviation
	// expansion was used for the lookup.
	Surface string `json:"surface"`

	// Tag is the POS code as supplied by the tagger.
	Tag string `json:"tag"`

	// Skipped reports that the token was excluded from resolution
	// (entity skip, punctuation/whitespace, unknown tag).
	Skipped bool `json:"skipped"`

	// Level is the resolved level ordinal as a float, nil when the token
	// was skipped or no entry was found.
	Level *float64 `json:"level"`

	// Start and End carry over the token's character span.
	Start int `json:"start"`
	End   int `json:"end"`
}

// AnnotationProfile configures the document annotator.
type AnnotationProfile struct {
	// SkipEntityTypes lists entity labels whose tokens are never resolved,
	// e.g. GPE or PERSON.
	SkipEntityTypes []string `toml:"skip_entity_types"`

	// Abbreviations maps surface forms to the expansion used for lookup,
	// e.g. "n't" -> "not". Keys are matched against the lowercased surface.
	Abbreviations map[string]string `toml:"abbreviations"`
}

// SkipSet returns the skip entity labels as a set.
func (p AnnotationProfile) SkipSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.SkipEntityTypes))
	for _, t := range p.SkipEntityTypes {
		set[t] = struct{}{}
	}
	return set
}
