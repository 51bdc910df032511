package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

func testEntries() []domain.LevelEntry {
	return []domain.LevelEntry{
		{Word: "tree", POS: domain.POSTagNN, Level: 1},
		{Word: "run", POS: domain.POSTagVB, Level: 2},
		{Word: "run", POS: domain.POSTagNN, Level: 1},
		{Word: "banana", POS: domain.POSTagNN, Level: 2},
	}
}

func TestNewLevelStore_CaseFoldsWords(t *testing.T) {
	store := NewLevelStore([]domain.LevelEntry{
		{Word: "Tree", POS: domain.POSTagNN, Level: 1},
	})

	ok, err := store.Exists(context.Background(), "tree")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewLevelStore_FirstDuplicateWins(t *testing.T) {
	store := NewLevelStore([]domain.LevelEntry{
		{Word: "tree", POS: domain.POSTagNN, Level: 1},
		{Word: "tree", POS: domain.POSTagNN, Level: 5},
	})

	level, ok, err := store.Get(context.Background(), "tree", domain.POSTagNN)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, level)
}

func TestLevelStore_Exists(t *testing.T) {
	store := NewLevelStore(testEntries())

	ok, err := store.Exists(context.Background(), "run")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLevelStore_ExistsPOS(t *testing.T) {
	store := NewLevelStore(testEntries())

	ok, err := store.ExistsPOS(context.Background(), "run", domain.POSTagVB)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.ExistsPOS(context.Background(), "run", domain.POSTagJJ)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLevelStore_Get(t *testing.T) {
	store := NewLevelStore(testEntries())

	level, ok, err := store.Get(context.Background(), "run", domain.POSTagVB)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, level)

	_, ok, err = store.Get(context.Background(), "run", domain.POSTagJJ)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLevelStore_AllPOS_IDOrder(t *testing.T) {
	store := NewLevelStore(testEntries())

	tags, err := store.AllPOS(context.Background(), "run")
	require.NoError(t, err)
	assert.Equal(t, []domain.POSTag{domain.POSTagNN, domain.POSTagVB}, tags)
}

func TestLevelStore_POSLevels(t *testing.T) {
	store := NewLevelStore(testEntries())

	levels, err := store.POSLevels(context.Background(), "run")
	require.NoError(t, err)
	assert.Equal(t, map[domain.POSTag]int{
		domain.POSTagNN: 1,
		domain.POSTagVB: 2,
	}, levels)

	levels, err = store.POSLevels(context.Background(), "absent")
	require.NoError(t, err)
	assert.Empty(t, levels)
}

func collectWords(t *testing.T, store *LevelStore, length int, order domain.SortOrder) []string {
	t.Helper()
	var words []string
	for w, err := range store.Words(context.Background(), length, order) {
		require.NoError(t, err)
		words = append(words, w)
	}
	return words
}

func TestLevelStore_Words_Ascending(t *testing.T) {
	store := NewLevelStore(testEntries())

	words := collectWords(t, store, 0, domain.OrderAscending)
	assert.Equal(t, []string{"banana", "run", "tree"}, words)
}

func TestLevelStore_Words_Descending(t *testing.T) {
	store := NewLevelStore(testEntries())

	words := collectWords(t, store, 0, domain.OrderDescending)
	assert.Equal(t, []string{"tree", "run", "banana"}, words)
}

func TestLevelStore_Words_LengthFilter(t *testing.T) {
	store := NewLevelStore(testEntries())

	words := collectWords(t, store, 4, domain.OrderAscending)
	assert.Equal(t, []string{"tree"}, words)

	words = collectWords(t, store, 9, domain.OrderAscending)
	assert.Empty(t, words)
}

func TestLevelStore_Words_Restartable(t *testing.T) {
	store := NewLevelStore(testEntries())

	seq := store.Words(context.Background(), 0, domain.OrderAscending)

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	assert.Equal(t, first, second)
}

func TestLevelStore_WordPOS_Order(t *testing.T) {
	store := NewLevelStore(testEntries())

	var pairs []domain.WordPOS
	for p, err := range store.WordPOS(context.Background(), domain.OrderAscending, domain.LengthPriorityNone) {
		require.NoError(t, err)
		pairs = append(pairs, p)
	}

	assert.Equal(t, []domain.WordPOS{
		{Word: "banana", POS: domain.POSTagNN},
		{Word: "run", POS: domain.POSTagNN},
		{Word: "run", POS: domain.POSTagVB},
		{Word: "tree", POS: domain.POSTagNN},
	}, pairs)
}

func TestLevelStore_WordPOSLevel_LengthPriority(t *testing.T) {
	store := NewLevelStore(testEntries())

	var rows []domain.WordPOSLevel
	for r, err := range store.WordPOSLevel(context.Background(), domain.OrderAscending, domain.LengthPriorityAscending) {
		require.NoError(t, err)
		rows = append(rows, r)
	}

	require.Len(t, rows, 4)
	// Shortest words first; the alphabetical order breaks ties.
	assert.Equal(t, "run", rows[0].Word)
	assert.Equal(t, "run", rows[1].Word)
	assert.Equal(t, "tree", rows[2].Word)
	assert.Equal(t, "banana", rows[3].Word)
	assert.Equal(t, 1, rows[0].Level)
	assert.Equal(t, domain.POSTagNN, rows[0].POS)
}

func TestLevelStore_WordCountForLength(t *testing.T) {
	store := NewLevelStore(testEntries())

	count, err := store.WordCountForLength(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = store.WordCountForLength(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLevelStore_EntryCountForLength(t *testing.T) {
	store := NewLevelStore(testEntries())

	count, err := store.EntryCountForLength(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = store.EntryCountForLength(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestLevelStore_Stats(t *testing.T) {
	store := NewLevelStore(testEntries())

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalWords)
	assert.Equal(t, 4, stats.TotalEntries)
	assert.Equal(t, 6, stats.MaxWordLength)
}
