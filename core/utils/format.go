package utils

import (
	"math"
	"strconv"
	"strings"
)

const (
	// TicksPerSecond is the game simulation rate.
	TicksPerSecond = 40.0
	// DefaultFloatPrecision is the number of decimals shown when none is requested.
	DefaultFloatPrecision = 1
)

var compactSuffixes = []string{"", "k", "M", "B", "T"}

// TicksToSeconds converts game ticks to seconds.
func TicksToSeconds(ticks float64) float64 {
	return ticks / TicksPerSecond
}

// FormatUpToDecimals formats value with at most maxDecimals decimals,
// dropping trailing zeros.
func FormatUpToDecimals(value float64, maxDecimals int) string {
	if maxDecimals < 0 {
		maxDecimals = 0
	}
	s := strconv.FormatFloat(value, 'f', maxDecimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatFixed formats value with exactly decimals decimals.
func FormatFixed(value float64, decimals int) string {
	return strconv.FormatFloat(value, 'f', decimals, 64)
}

// ReducedNumberCompact shortens large numbers with a magnitude suffix
// (1500 -> 1.5k, 2300000 -> 2.3M).
func ReducedNumberCompact(value float64, maxDecimals int) string {
	i := 0
	for math.Abs(value) >= 1000 && i < len(compactSuffixes)-1 {
		value /= 1000
		i++
	}
	return FormatUpToDecimals(value, maxDecimals) + compactSuffixes[i]
}

// FormattedDuration renders a number of seconds as "1d 2h 3m 4s",
// leaving out zero components.
func FormattedDuration(totalSeconds int) string {
	if totalSeconds <= 0 {
		return "0s"
	}
	units := []struct {
		suffix  string
		seconds int
	}{
		{"d", 86400},
		{"h", 3600},
		{"m", 60},
		{"s", 1},
	}

	parts := make([]string, 0, len(units))
	for _, u := range units {
		if n := totalSeconds / u.seconds; n > 0 {
			parts = append(parts, strconv.Itoa(n)+u.suffix)
			totalSeconds -= n * u.seconds
		}
	}
	return strings.Join(parts, " ")
}

// Plural returns singular when count is 1 and plural otherwise.
func Plural(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
