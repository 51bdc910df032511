package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexibase/cefrlex-cli/internal/core/domain"
)

func resetLookupFlags() {
	lookupPOS = ""
	lookupJSON = false
}

func TestLookupCmd_Use(t *testing.T) {
	assert.Equal(t, "lookup [word]", lookupCmd.Use)
}

func TestLookupCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := executeCommand(t, "lookup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestLookupCmd_HasPOSFlag(t *testing.T) {
	flag := lookupCmd.Flags().Lookup("pos")
	require.NotNil(t, flag)
	assert.Equal(t, "p", flag.Shorthand)
}

func TestLookupCmd_WithPOS(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetLookupFlags()

	out, err := executeCommand(t, "lookup", "run", "--pos", "VB")
	require.NoError(t, err)
	assert.Contains(t, out, "run (VB): 2.00 (A2)")
}

func TestLookupCmd_WithPOS_LemmaFallback(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetLookupFlags()

	out, err := executeCommand(t, "lookup", "trees", "--pos", "NNS")
	require.NoError(t, err)
	assert.Contains(t, out, "trees (NNS): 1.00 (A1)")
}

func TestLookupCmd_Average(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetLookupFlags()

	out, err := executeCommand(t, "lookup", "run")
	require.NoError(t, err)
	assert.Contains(t, out, "run: 1.50 (A2) across 2 part(s) of speech")
	assert.Contains(t, out, "NN")
	assert.Contains(t, out, "VB")
}

func TestLookupCmd_NotFound(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetLookupFlags()

	out, err := executeCommand(t, "lookup", "zyzzyva")
	require.NoError(t, err)
	assert.Contains(t, out, `No level found for "zyzzyva".`)
}

func TestLookupCmd_UnknownTagFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetLookupFlags()

	_, err := executeCommand(t, "lookup", "run", "--pos", "ZZZ")
	assert.ErrorIs(t, err, domain.ErrUnknownPOSTag)
}

func TestLookupCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetLookupFlags()

	out, err := executeCommand(t, "lookup", "run", "--json")
	require.NoError(t, err)

	var result struct {
		Word    string             `json:"word"`
		Level   *float64           `json:"level"`
		CEFR    string             `json:"cefr"`
		ByPOS   map[string]float64 `json:"by_pos"`
		Average bool               `json:"average"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "run", result.Word)
	assert.True(t, result.Average)
	require.NotNil(t, result.Level)
	assert.InDelta(t, 1.5, *result.Level, 1e-9)
	assert.Equal(t, "A2", result.CEFR)
	assert.Equal(t, map[string]float64{"NN": 1, "VB": 2}, result.ByPOS)
}
