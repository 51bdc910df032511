package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromInt_ValidRange(t *testing.T) {
	level, err := LevelFromInt(1)
	require.NoError(t, err)
	assert.Equal(t, LevelA1, level)

	level, err = LevelFromInt(6)
	require.NoError(t, err)
	assert.Equal(t, LevelC2, level)
}

func TestLevelFromInt_OutOfRange(t *testing.T) {
	_, err := LevelFromInt(0)
	assert.ErrorIs(t, err, ErrInvalidLevel)

	_, err = LevelFromInt(7)
	assert.ErrorIs(t, err, ErrInvalidLevel)

	_, err = LevelFromInt(-1)
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestLevelFromString_Labels(t *testing.T) {
	for i, label := range []string{"A1", "A2", "B1", "B2", "C1", "C2"} {
		level, err := LevelFromString(label)
		require.NoError(t, err)
		assert.Equal(t, i+1, level.Int())
		assert.Equal(t, label, level.String())
	}
}

func TestLevelFromString_Invalid(t *testing.T) {
	_, err := LevelFromString("Z9")
	assert.ErrorIs(t, err, ErrInvalidLevel)

	// Case-sensitive match.
	_, err = LevelFromString("b1")
	assert.ErrorIs(t, err, ErrInvalidLevel)

	_, err = LevelFromString("")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestLevelFromFloat_RoundsHalfUp(t *testing.T) {
	level, err := LevelFromFloat(1.5)
	require.NoError(t, err)
	assert.Equal(t, LevelA2, level)

	level, err = LevelFromFloat(2.49)
	require.NoError(t, err)
	assert.Equal(t, LevelA2, level)

	level, err = LevelFromFloat(5.5)
	require.NoError(t, err)
	assert.Equal(t, LevelC2, level)
}

func TestLevelFromFloat_OutOfRange(t *testing.T) {
	_, err := LevelFromFloat(0.4)
	assert.ErrorIs(t, err, ErrInvalidLevel)

	_, err = LevelFromFloat(6.5)
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestCEFRLevel_Ordering(t *testing.T) {
	assert.True(t, LevelA1 < LevelA2)
	assert.True(t, LevelB2 < LevelC1)
	assert.True(t, LevelC1 < LevelC2)
}

func TestCEFRLevel_String_Invalid(t *testing.T) {
	assert.Equal(t, "CEFRLevel(0)", CEFRLevel(0).String())
	assert.Equal(t, "CEFRLevel(7)", CEFRLevel(7).String())
}

func TestCEFRLevel_Valid(t *testing.T) {
	assert.False(t, CEFRLevel(0).Valid())
	assert.True(t, LevelA1.Valid())
	assert.True(t, LevelC2.Valid())
	assert.False(t, CEFRLevel(7).Valid())
}
