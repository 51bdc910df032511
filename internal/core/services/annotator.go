package services

import (
	"context"
	"strings"
	"unicode"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
	"github.com/lexibase/cefrlex-cli/internal/core/ports/driving"
	"github.com/lexibase/cefrlex-cli/internal/logger"
)

// Ensure DocumentAnnotator implements the interface.
var _ driving.AnnotatorService = (*DocumentAnnotator)(nil)

// DocumentAnnotator produces one level judgement per token of an
// externally tokenized document. It is a single forward pass: no
// buffering beyond the current token, emission order equals token order.
//
// A token degrades to skipped rather than failing the document when the
// tagger supplies a tag outside the catalog.
type DocumentAnnotator struct {
	resolver      driving.LevelService
	skipEntities  map[string]struct{}
	abbreviations map[string]string
}

// NewDocumentAnnotator creates an annotator with the given resolution
// service and profile.
func NewDocumentAnnotator(resolver driving.LevelService, profile domain.AnnotationProfile) *DocumentAnnotator {
	return &DocumentAnnotator{
		resolver:      resolver,
		skipEntities:  profile.SkipSet(),
		abbreviations: profile.Abbreviations,
	}
}

// Annotate scans the token stream and emits one annotation per token,
// in order. Only infrastructure failures surface as errors; per-token
// conditions (skip rules, missing entries) never abort the scan.
func (a *DocumentAnnotator) Annotate(ctx context.Context, tokens []domain.Token) ([]domain.Annotation, error) {
	annotations := make([]domain.Annotation, 0, len(tokens))

	for _, token := range tokens {
		annotation, err := a.annotateToken(ctx, token)
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, annotation)
	}

	logger.Debug("Annotated %d tokens", len(annotations))
	return annotations, nil
}

func (a *DocumentAnnotator) annotateToken(ctx context.Context, token domain.Token) (domain.Annotation, error) {
	annotation := domain.Annotation{
		Surface: token.Surface,
		Tag:     token.Tag,
		Start:   token.Start,
		End:     token.End,
	}

	if _, skip := a.skipEntities[token.Entity]; skip {
		annotation.Skipped = true
		return annotation, nil
	}

	word := strings.ToLower(strings.TrimSpace(token.Surface))

	// Possessive clitic carries no lexical difficulty of its own.
	if token.Tag == "POS" && word == "'s" {
		annotation.Skipped = true
		return annotation, nil
	}

	// The expansion replaces the lookup query only; the annotation keeps
	// the original surface form.
	if expansion, ok := a.abbreviations[word]; ok {
		word = strings.ToLower(expansion)
	}

	if !isLexical(word) {
		annotation.Skipped = true
		return annotation, nil
	}

	// An unknown tag can never have an entry; skipping keeps one tagger
	// idiosyncrasy from failing the whole document.
	if _, err := domain.POSTagFromCode(token.Tag); err != nil {
		annotation.Skipped = true
		return annotation, nil
	}

	level, ok, err := a.resolver.LevelFor(ctx, word, token.Tag)
	if err != nil {
		return domain.Annotation{}, err
	}
	if !ok {
		// The word may still be known under other POS categories.
		level, ok, err = a.resolver.AverageLevelFor(ctx, word)
		if err != nil {
			return domain.Annotation{}, err
		}
	}
	if ok {
		annotation.Level = &level
	}

	return annotation, nil
}

// isLexical reports whether the word contains only letters and digits
// and is non-empty. Punctuation and whitespace tokens are not lexical.
func isLexical(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
