package driving

import (
	"context"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

// LevelService resolves CEFR levels for single words.
//
// All operations signal absence with ok == false and reserve errors for
// caller input: an unrecognised tag code fails with ErrUnknownPOSTag.
type LevelService interface {
	// LevelFor resolves the level of (word, tag), falling back to lemma
	// candidates when the exact entry is absent.
	LevelFor(ctx context.Context, word, tag string) (level float64, ok bool, err error)

	// CEFRFor is LevelFor rounded half-up to a band.
	CEFRFor(ctx context.Context, word, tag string) (domain.CEFRLevel, bool, error)

	// AverageLevelFor averages the word's levels across its recorded POS
	// entries; when none exist, across POS categories reachable by lemma
	// fallback.
	AverageLevelFor(ctx context.Context, word string) (float64, bool, error)

	// AverageCEFRFor is AverageLevelFor rounded half-up to a band.
	AverageCEFRFor(ctx context.Context, word string) (domain.CEFRLevel, bool, error)

	// AllPOSFor lists the POS tags under which the word has exact
	// entries. Surface-form view: no lemma fallback.
	AllPOSFor(ctx context.Context, word string) ([]domain.POSTag, error)

	// POSLevelMapFor maps each recorded POS of the word to its level.
	// Surface-form view: no lemma fallback.
	POSLevelMapFor(ctx context.Context, word string) (map[domain.POSTag]float64, error)
}

// AnnotatorService turns an externally tokenized document into one
// annotation per token, preserving token order.
type AnnotatorService interface {
	Annotate(ctx context.Context, tokens []domain.Token) ([]domain.Annotation, error)
}
