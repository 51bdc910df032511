package cli

import (
	"bytes"
	"testing"

	"github.com/lexibase/cefrlex-cli/internal/adapters/driven/lemma"
	"github.com/lexibase/cefrlex-cli/internal/adapters/driven/storage/memory"
	"github.com/lexibase/cefrlex-cli/internal/core/domain"
	"github.com/lexibase/cefrlex-cli/internal/core/services"
)

// setupTestServices wires the commands to an in-memory dataset and
// returns a cleanup restoring the lazy wiring.
func setupTestServices() func() {
	store := memory.NewLevelStore([]domain.LevelEntry{
		{Word: "tree", POS: domain.POSTagNN, Level: 1},
		{Word: "tree", POS: domain.POSTagNNS, Level: 1},
		{Word: "run", POS: domain.POSTagVB, Level: 2},
		{Word: "run", POS: domain.POSTagNN, Level: 1},
		{Word: "banana", POS: domain.POSTagNN, Level: 2},
	})

	resolver := services.NewLevelResolver(store, lemma.NewStaticLemmatizer(map[string][]string{
		lemma.Key("trees", domain.POSTagNNS): {"tree"},
	}))
	annotator := services.NewDocumentAnnotator(resolver, domain.AnnotationProfile{
		SkipEntityTypes: []string{"GPE"},
		Abbreviations:   map[string]string{"n't": "not"},
	})

	SetServices(resolver, annotator, store)

	return func() {
		SetServices(nil, nil, nil)
	}
}

// executeCommand runs the root command with the given args and returns
// the combined output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
