// Package cli implements the cobra command tree for cefrlex.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lexibase/cefrlex-cli/internal/adapters/driven/config/file"
	"github.com/lexibase/cefrlex-cli/internal/adapters/driven/lemma"
	"github.com/lexibase/cefrlex-cli/internal/adapters/driven/storage/sqlite"
	"github.com/lexibase/cefrlex-cli/internal/core/ports/driven"
	"github.com/lexibase/cefrlex-cli/internal/core/ports/driving"
	"github.com/lexibase/cefrlex-cli/internal/core/services"
	"github.com/lexibase/cefrlex-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	dataDir     string
	profilePath string
)

// Services injected into commands. Set by initServices on first use, or
// by SetServices in tests.
var (
	levelService     driving.LevelService
	annotatorService driving.AnnotatorService
	levelStore       driven.LevelStore
	storeCloser      io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "cefrlex",
	Short: "CEFR difficulty levels for English words and documents",
	Long: `cefrlex resolves CEFR difficulty levels (A1-C2) for English words,
optionally qualified by a Penn Treebank part-of-speech tag, and
annotates whole tokenized documents with per-token level judgements.

The level table is static reference data built once with 'cefrlex import'
and stored as an embedded SQLite file.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default ~/.cefrlex/data)")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "annotation profile TOML (default ~/.cefrlex/annotator.toml)")
}

// Execute runs the root command.
func Execute() error {
	defer closeStore()
	return rootCmd.Execute()
}

// SetServices injects the services used by commands. Intended for tests
// and embedders; normal runs build them lazily from the data directory.
func SetServices(level driving.LevelService, annotator driving.AnnotatorService, store driven.LevelStore) {
	levelService = level
	annotatorService = annotator
	levelStore = store
}

// initServices opens the level store and wires the resolver and
// annotator. Idempotent: commands call it on demand.
func initServices() error {
	if levelService != nil && annotatorService != nil && levelStore != nil {
		return nil
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening level store: %w", err)
	}

	profiles, err := file.NewProfileStore(profilePath)
	if err != nil {
		store.Close()
		return fmt.Errorf("opening profile store: %w", err)
	}
	profile, err := profiles.Load()
	if err != nil {
		store.Close()
		return fmt.Errorf("loading annotation profile: %w", err)
	}

	resolver := services.NewLevelResolver(store, lemma.NewRuleLemmatizer())

	levelStore = store
	storeCloser = store
	levelService = resolver
	annotatorService = services.NewDocumentAnnotator(resolver, profile)

	logger.Debug("Level store: %s", store.Path())
	logger.Debug("Annotation profile: %s", profiles.Path())
	return nil
}

func closeStore() {
	if storeCloser != nil {
		storeCloser.Close() //nolint:errcheck
		storeCloser = nil
	}
}
