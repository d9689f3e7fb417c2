package crew

import (
	"testing"

	"pss-assistant/core/lookups"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelCosts(t *testing.T) {
	cost, err := LevelCosts(1, 3, false)
	require.NoError(t, err)
	assert.Equal(t, LevelCost{From: 1, To: 3, Gas: 17, XP: 360}, cost)
	assert.Equal(t, []string{
		"**Level costs** for a crew from lvl 1 to 3",
		"Gas = 17 :fuelpump:",
		"Experience = 360",
	}, cost.Lines())

	legendary, err := LevelCosts(1, 3, true)
	require.NoError(t, err)
	assert.Equal(t, 292500, legendary.Gas)
	assert.Equal(t, 810, legendary.XP)
	assert.Equal(t, "Gas = 292.5k :fuelpump:", legendary.Lines()[1])
}

func TestLevelCosts_Additive(t *testing.T) {
	whole, err := LevelCosts(1, lookups.MaxLevel, false)
	require.NoError(t, err)
	first, err := LevelCosts(1, 20, false)
	require.NoError(t, err)
	second, err := LevelCosts(20, lookups.MaxLevel, false)
	require.NoError(t, err)

	assert.Equal(t, whole.Gas, first.Gas+second.Gas)
	assert.Equal(t, whole.XP, first.XP+second.XP)
}

func TestLevelCosts_Invalid(t *testing.T) {
	for _, tt := range []struct{ from, to int }{{0, 5}, {5, 5}, {10, 2}, {1, lookups.MaxLevel + 1}} {
		_, err := LevelCosts(tt.from, tt.to, false)
		assert.ErrorIs(t, err, ErrInvalidLevel)
	}
}
