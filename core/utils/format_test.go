package utils_test

import (
	"testing"

	"pss-assistant/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestFormatUpToDecimals(t *testing.T) {
	tests := []struct {
		value float64
		max   int
		want  string
	}{
		{1.5, 2, "1.5"},
		{1.0, 3, "1"},
		{0.123456, 3, "0.123"},
		{2.999, 2, "3"},
		{-0.0001, 2, "0"},
		{12, 0, "12"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.FormatUpToDecimals(tt.value, tt.max), "%v/%d", tt.value, tt.max)
	}
}

func TestReducedNumberCompact(t *testing.T) {
	assert.Equal(t, "950", utils.ReducedNumberCompact(950, 1))
	assert.Equal(t, "1.5k", utils.ReducedNumberCompact(1500, 1))
	assert.Equal(t, "1.3M", utils.ReducedNumberCompact(1300000, 1))
	assert.Equal(t, "2B", utils.ReducedNumberCompact(2e9, 1))
	assert.Equal(t, "12.34k", utils.ReducedNumberCompact(12340, 2))
}

func TestTicksToSeconds(t *testing.T) {
	assert.Equal(t, 1.0, utils.TicksToSeconds(40))
	assert.Equal(t, 0.025, utils.TicksToSeconds(1))
}

func TestFormattedDuration(t *testing.T) {
	assert.Equal(t, "0s", utils.FormattedDuration(0))
	assert.Equal(t, "45s", utils.FormattedDuration(45))
	assert.Equal(t, "1h 1s", utils.FormattedDuration(3601))
	assert.Equal(t, "1d 2h 3m 4s", utils.FormattedDuration(93784))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "slot", utils.Plural(1, "slot", "slots"))
	assert.Equal(t, "slots", utils.Plural(2, "slot", "slots"))
}
