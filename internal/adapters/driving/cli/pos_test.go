package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

func TestPOSCmd_ListsFullCatalog(t *testing.T) {
	defer func() { posJSON = false }()

	out, err := executeCommand(t, "pos")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, domain.TotalPOSTags())
	assert.Contains(t, lines[0], "CC")
	assert.Contains(t, lines[0], "Coordinating conjunction")
}

func TestPOSCmd_DescribesSingleTag(t *testing.T) {
	defer func() { posJSON = false }()

	out, err := executeCommand(t, "pos", "NN")
	require.NoError(t, err)
	assert.Contains(t, out, "NN")
	assert.Contains(t, out, "Noun, singular or mass")
	assert.NotContains(t, out, "Determiner")
}

func TestPOSCmd_UnknownTag(t *testing.T) {
	defer func() { posJSON = false }()

	_, err := executeCommand(t, "pos", "XYZ")
	assert.ErrorIs(t, err, domain.ErrUnknownPOSTag)
}

func TestPOSCmd_JSON(t *testing.T) {
	defer func() { posJSON = false }()

	out, err := executeCommand(t, "pos", "--json")
	require.NoError(t, err)

	var entries []struct {
		Code        string `json:"code"`
		ID          int    `json:"id"`
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, domain.TotalPOSTags())
	assert.Equal(t, "CC", entries[0].Code)
	assert.Equal(t, 0, entries[0].ID)
	assert.Equal(t, "WRB", entries[len(entries)-1].Code)
	assert.Equal(t, 27, entries[len(entries)-1].ID)
}
