package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
	"github.com/lexibase/cefrlex-cli/internal/core/ports/driven"
	"github.com/lexibase/cefrlex-cli/internal/core/ports/driving"
	"github.com/lexibase/cefrlex-cli/internal/logger"
)

// Ensure LevelResolver implements the interface.
var _ driving.LevelService = (*LevelResolver)(nil)

// LevelResolver resolves CEFR levels against the level store, recovering
// inflected forms through lemma fallback. Exact surface-form entries are
// curated ground truth; a lemma match trades inflection-specific nuance
// for coverage.
type LevelResolver struct {
	store      driven.LevelStore
	lemmatizer driven.Lemmatizer
}

// NewLevelResolver creates a resolver over the given store and lemmatizer.
func NewLevelResolver(store driven.LevelStore, lemmatizer driven.Lemmatizer) *LevelResolver {
	return &LevelResolver{
		store:      store,
		lemmatizer: lemmatizer,
	}
}

// normalizeWord case-folds and trims a query word. Words are stored
// lowercase, so queries must be folded the same way.
func normalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// LevelFor resolves the level of (word, tag). The exact entry wins; when
// absent, lemma candidates are tried in lemmatizer order and the first
// one with an entry decides. A tag outside the catalog fails with
// ErrUnknownPOSTag.
func (r *LevelResolver) LevelFor(ctx context.Context, word, tag string) (float64, bool, error) {
	pos, err := domain.POSTagFromCode(tag)
	if err != nil {
		return 0, false, err
	}
	return r.levelForPOS(ctx, normalizeWord(word), pos)
}

// levelForPOS resolves an already-normalized word against a catalog tag.
func (r *LevelResolver) levelForPOS(ctx context.Context, word string, pos domain.POSTag) (float64, bool, error) {
	level, ok, err := r.store.Get(ctx, word, pos)
	if err != nil {
		return 0, false, fmt.Errorf("level lookup %q/%s: %w", word, pos, err)
	}
	if ok {
		return float64(level), true, nil
	}

	for _, candidate := range r.lemmatizer.Lemmatize(word, pos) {
		candidate = normalizeWord(candidate)
		if candidate == "" || candidate == word {
			continue
		}
		level, ok, err = r.store.Get(ctx, candidate, pos)
		if err != nil {
			return 0, false, fmt.Errorf("lemma lookup %q/%s: %w", candidate, pos, err)
		}
		if ok {
			logger.Debug("Lemma fallback: %q/%s resolved via %q", word, pos, candidate)
			return float64(level), true, nil
		}
	}

	return 0, false, nil
}

// CEFRFor is LevelFor rounded half-up to a band.
func (r *LevelResolver) CEFRFor(ctx context.Context, word, tag string) (domain.CEFRLevel, bool, error) {
	level, ok, err := r.LevelFor(ctx, word, tag)
	if err != nil || !ok {
		return 0, false, err
	}
	band, err := domain.LevelFromFloat(level)
	if err != nil {
		return 0, false, err
	}
	return band, true, nil
}

// AverageLevelFor averages the word's levels across the POS set it is
// recorded under. A word with no exact entries falls back to lemma
// resolution per POS category, each category contributing at most once.
func (r *LevelResolver) AverageLevelFor(ctx context.Context, word string) (float64, bool, error) {
	word = normalizeWord(word)

	levels, err := r.store.POSLevels(ctx, word)
	if err != nil {
		return 0, false, fmt.Errorf("POS levels for %q: %w", word, err)
	}

	if len(levels) > 0 {
		sum := 0
		for _, level := range levels {
			sum += level
		}
		return float64(sum) / float64(len(levels)), true, nil
	}

	// No surface-form entries: collect one lemma match per POS category.
	sum, count := 0.0, 0
	for _, pos := range domain.AllPOSTags() {
		level, ok, err := r.levelForPOS(ctx, word, pos)
		if err != nil {
			return 0, false, err
		}
		if ok {
			sum += level
			count++
		}
	}
	if count == 0 {
		return 0, false, nil
	}
	logger.Debug("Average for %q from %d lemma-resolved POS categories", word, count)
	return sum / float64(count), true, nil
}

// AverageCEFRFor is AverageLevelFor rounded half-up to a band.
func (r *LevelResolver) AverageCEFRFor(ctx context.Context, word string) (domain.CEFRLevel, bool, error) {
	level, ok, err := r.AverageLevelFor(ctx, word)
	if err != nil || !ok {
		return 0, false, err
	}
	band, err := domain.LevelFromFloat(level)
	if err != nil {
		return 0, false, err
	}
	return band, true, nil
}

// AllPOSFor lists the POS tags the word is recorded under.
// Surface-form view: no lemma fallback.
func (r *LevelResolver) AllPOSFor(ctx context.Context, word string) ([]domain.POSTag, error) {
	return r.store.AllPOS(ctx, normalizeWord(word))
}

// POSLevelMapFor maps each recorded POS of the word to its level.
// Surface-form view: no lemma fallback.
func (r *LevelResolver) POSLevelMapFor(ctx context.Context, word string) (map[domain.POSTag]float64, error) {
	levels, err := r.store.POSLevels(ctx, normalizeWord(word))
	if err != nil {
		return nil, err
	}

	result := make(map[domain.POSTag]float64, len(levels))
	for pos, level := range levels {
		result[pos] = float64(level)
	}
	return result, nil
}
