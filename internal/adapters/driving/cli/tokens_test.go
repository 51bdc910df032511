package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

func TestReadTokens_MinimalFields(t *testing.T) {
	tokens, err := readTokens(strings.NewReader("The\tDT\ntrees\tNNS\n"))
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, "The", tokens[0].Surface)
	assert.Equal(t, "DT", tokens[0].Tag)
	assert.Empty(t, tokens[0].Entity)

	// Derived spans assume single spaces between tokens.
	assert.Equal(t, 0, tokens[0].Start)
	assert.Equal(t, 3, tokens[0].End)
	assert.Equal(t, 4, tokens[1].Start)
	assert.Equal(t, 9, tokens[1].End)
}

func TestReadTokens_EntityField(t *testing.T) {
	tokens, err := readTokens(strings.NewReader("California\tNNP\tGPE\ntrees\tNNS\t-\n"))
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, "GPE", tokens[0].Entity)
	assert.Empty(t, tokens[1].Entity)
}

func TestReadTokens_ExplicitSpans(t *testing.T) {
	tokens, err := readTokens(strings.NewReader("trees\tNNS\t-\t10\t15\ngrow\tVBP\n"))
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, 10, tokens[0].Start)
	assert.Equal(t, 15, tokens[0].End)

	// The running offset continues after an explicit span.
	assert.Equal(t, 16, tokens[1].Start)
	assert.Equal(t, 20, tokens[1].End)
}

func TestReadTokens_SkipsCommentsAndBlankLines(t *testing.T) {
	tokens, err := readTokens(strings.NewReader("# doc 1\n\ntree\tNN\n"))
	require.NoError(t, err)
	assert.Len(t, tokens, 1)
}

func TestReadTokens_RejectsMissingTag(t *testing.T) {
	_, err := readTokens(strings.NewReader("tree\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReadTokens_RejectsBadOffsets(t *testing.T) {
	_, err := readTokens(strings.NewReader("tree\tNN\t-\tx\t4\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = readTokens(strings.NewReader("tree\tNN\t-\t0\ty\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReadTokens_Empty(t *testing.T) {
	tokens, err := readTokens(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, tokens)
}
