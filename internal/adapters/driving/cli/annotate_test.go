package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

const testTokenStream = "California\tNNP\tGPE\n" +
	"trees\tNNS\n" +
	",\t,\n" +
	"n't\tRB\n" +
	"zyzzyva\tNN\n"

// executeWithStdin runs the root command feeding input on stdin.
func executeWithStdin(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAnnotateCmd_Use(t *testing.T) {
	assert.Equal(t, "annotate [file]", annotateCmd.Use)
}

func TestAnnotateCmd_FromStdin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { annotateJSON = false }()

	out, err := executeWithStdin(t, testTokenStream, "annotate")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)

	// Entity skip, resolved, punctuation skip, abbreviation, unresolved.
	assert.Contains(t, lines[0], "California")
	assert.True(t, strings.HasSuffix(lines[0], "-"))
	assert.Contains(t, lines[1], "1.00 (A1)")
	assert.True(t, strings.HasSuffix(lines[2], "-"))
	assert.Contains(t, lines[3], "n't")
	assert.True(t, strings.HasSuffix(lines[4], "?"))
}

func TestAnnotateCmd_FromFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { annotateJSON = false }()

	path := filepath.Join(t.TempDir(), "tokens.tsv")
	require.NoError(t, os.WriteFile(path, []byte("trees\tNNS\n"), 0600))

	out, err := executeCommand(t, "annotate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "trees")
	assert.Contains(t, out, "1.00 (A1)")
}

func TestAnnotateCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { annotateJSON = false }()

	_, err := executeCommand(t, "annotate", filepath.Join(t.TempDir(), "absent.tsv"))
	assert.Error(t, err)
}

func TestAnnotateCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { annotateJSON = false }()

	out, err := executeWithStdin(t, testTokenStream, "annotate", "--json")
	require.NoError(t, err)

	var run struct {
		ID          string              `json:"id"`
		Annotations []domain.Annotation `json:"annotations"`
		Tokens      int                 `json:"tokens"`
		Skipped     int                 `json:"skipped"`
		Unresolved  int                 `json:"unresolved"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &run))

	_, err = uuid.Parse(run.ID)
	assert.NoError(t, err)

	assert.Equal(t, 5, run.Tokens)
	assert.Equal(t, 2, run.Skipped)
	assert.Equal(t, 1, run.Unresolved)
	require.Len(t, run.Annotations, 5)
	assert.Equal(t, "California", run.Annotations[0].Surface)
	assert.True(t, run.Annotations[0].Skipped)
	require.NotNil(t, run.Annotations[1].Level)
	assert.Equal(t, 1.0, *run.Annotations[1].Level)
}

func TestAnnotateCmd_MalformedInput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() { annotateJSON = false }()

	_, err := executeWithStdin(t, "lonelysurface\n", "annotate")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
