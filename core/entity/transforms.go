package entity

import (
	"context"
	"strings"

	"pss-assistant/core/utils"
)

// ParseValue renders a raw value for display. Numbers are shortened with
// a magnitude suffix and zero is absent; other text passes through.
func ParseValue(value string, maxDecimals int) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "none") {
		return "", false
	}
	if f, ok := utils.ParseFloat(value); ok {
		if f == 0 {
			return "", false
		}
		return utils.ReducedNumberCompact(f, maxDecimals), true
	}
	return value, true
}

// CompactValue renders property through ParseValue.
func CompactValue(property string, maxDecimals int) TransformFunc {
	return func(_ context.Context, info DesignInfo, _ Related) (string, bool) {
		raw, ok := info.Lookup(property)
		if !ok {
			return "", false
		}
		return ParseValue(raw, maxDecimals)
	}
}

// SecondsValue renders a tick count as seconds ("1.25s").
func SecondsValue(property string) TransformFunc {
	return func(_ context.Context, info DesignInfo, _ Related) (string, bool) {
		ticks, ok := utils.ParseFloat(info.Get(property))
		if !ok || ticks == 0 {
			return "", false
		}
		return utils.FormatUpToDecimals(utils.TicksToSeconds(ticks), 3) + "s", true
	}
}

// DurationValue renders a number of seconds as "1d 2h 3m 4s".
func DurationValue(property string) TransformFunc {
	return func(_ context.Context, info DesignInfo, _ Related) (string, bool) {
		seconds, ok := utils.ParseInt(info.Get(property))
		if !ok || seconds == 0 {
			return "", false
		}
		return utils.FormattedDuration(seconds), true
	}
}
