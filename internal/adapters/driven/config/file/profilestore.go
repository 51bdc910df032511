// Package file provides a TOML-backed implementation of the
// ProfileStore port. Annotation profiles live in a single TOML file
// under the cefrlex config directory.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
	"github.com/lexibase/cefrlex-cli/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// profileFile is the on-disk TOML layout.
type profileFile struct {
	Annotator domain.AnnotationProfile `toml:"annotator"`
}

// ProfileStore is a file-based implementation of driven.ProfileStore
// using TOML.
type ProfileStore struct {
	filePath string
}

// NewProfileStore creates a TOML-based profile store.
// If path is empty, defaults to ~/.cefrlex/annotator.toml.
func NewProfileStore(path string) (*ProfileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir := filepath.Join(home, ".cefrlex")
		if err := os.MkdirAll(configDir, 0700); err != nil {
			return nil, err
		}
		path = filepath.Join(configDir, "annotator.toml")
	}

	return &ProfileStore{filePath: path}, nil
}

// Load reads the annotation profile. A missing file yields the zero
// profile so annotation runs with no skip rules by default.
func (s *ProfileStore) Load() (domain.AnnotationProfile, error) {
	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		return domain.AnnotationProfile{}, nil
	}
	if err != nil {
		return domain.AnnotationProfile{}, fmt.Errorf("reading profile: %w", err)
	}

	var f profileFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return domain.AnnotationProfile{}, fmt.Errorf("parsing profile %s: %w", s.filePath, err)
	}
	return f.Annotator, nil
}

// Save persists the annotation profile.
func (s *ProfileStore) Save(profile domain.AnnotationProfile) error {
	data, err := toml.Marshal(profileFile{Annotator: profile})
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

// Path returns the profile file path.
func (s *ProfileStore) Path() string {
	return s.filePath
}
