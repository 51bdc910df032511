package driven

import "github.com/lexibase/cefrlex-cli/internal/core/domain"

// ProfileStore persists annotation profiles.
// Implementations handle storage (e.g., TOML files) and defaults.
type ProfileStore interface {
	// Load reads the annotation profile from storage. A missing file
	// yields the zero profile, not an error.
	Load() (domain.AnnotationProfile, error)

	// Save persists the annotation profile.
	Save(profile domain.AnnotationProfile) error

	// Path returns the profile file path.
	Path() string
}
