package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

func resetWordsFlags() {
	wordsLength = 0
	wordsDescending = false
	wordsPairs = false
	wordsLevels = false
	wordsLengthSort = ""
	wordsLimit = 0
	wordsStats = false
}

func TestWordsCmd_Use(t *testing.T) {
	assert.Equal(t, "words", wordsCmd.Use)
}

func TestWordsCmd_ListsWordsAscending(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetWordsFlags()

	out, err := executeCommand(t, "words")
	require.NoError(t, err)
	assert.Equal(t, []string{"banana", "run", "tree"}, strings.Fields(out))
}

func TestWordsCmd_Descending(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetWordsFlags()

	out, err := executeCommand(t, "words", "--desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"tree", "run", "banana"}, strings.Fields(out))
}

func TestWordsCmd_LengthFilter(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetWordsFlags()

	out, err := executeCommand(t, "words", "--length", "4")
	require.NoError(t, err)
	assert.Equal(t, []string{"tree"}, strings.Fields(out))
}

func TestWordsCmd_Limit(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetWordsFlags()

	out, err := executeCommand(t, "words", "--limit", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"banana", "run"}, strings.Fields(out))
}

func TestWordsCmd_Pairs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetWordsFlags()

	out, err := executeCommand(t, "words", "--pairs")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "banana\tNN", lines[0])
	assert.Equal(t, "run\tNN", lines[1])
	assert.Equal(t, "run\tVB", lines[2])
	assert.Equal(t, "tree\tNN", lines[3])
	assert.Equal(t, "tree\tNNS", lines[4])
}

func TestWordsCmd_Levels(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetWordsFlags()

	out, err := executeCommand(t, "words", "--levels")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "banana\tNN\t2\tA2", lines[0])
	assert.Equal(t, "run\tNN\t1\tA1", lines[1])
}

func TestWordsCmd_LevelsWithLengthSort(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetWordsFlags()

	out, err := executeCommand(t, "words", "--levels", "--length-sort", "asc")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "run\t"))
	assert.True(t, strings.HasPrefix(lines[2], "tree\t"))
	assert.True(t, strings.HasPrefix(lines[4], "banana\t"))
}

func TestWordsCmd_LengthSortRequiresPairs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetWordsFlags()

	_, err := executeCommand(t, "words", "--length-sort", "asc")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWordsCmd_LengthSortRejectsBadValue(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetWordsFlags()

	_, err := executeCommand(t, "words", "--pairs", "--length-sort", "sideways")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWordsCmd_Stats(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetWordsFlags()

	out, err := executeCommand(t, "words", "--stats")
	require.NoError(t, err)

	var stats domain.StoreStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 3, stats.TotalWords)
	assert.Equal(t, 5, stats.TotalEntries)
	assert.Equal(t, 6, stats.MaxWordLength)
}

func TestWordsCmd_StatsForLength(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetWordsFlags()

	out, err := executeCommand(t, "words", "--stats", "--length", "3")
	require.NoError(t, err)

	var stats struct {
		Length  int `json:"length"`
		Words   int `json:"words"`
		Entries int `json:"entries"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 3, stats.Length)
	assert.Equal(t, 1, stats.Words)
	assert.Equal(t, 2, stats.Entries)
}
