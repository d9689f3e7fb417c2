package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ToString converts various types to string.
// Booleans follow the game API spelling (True/False), nil becomes empty.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		if v {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ParseInt parses a record value as an integer.
// Values like "12.0" are accepted; anything else reports ok=false.
func ParseInt(val string) (int, bool) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(val); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// ParseFloat parses a record value as a float.
func ParseFloat(val string) (float64, bool) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ZeroPad left-pads s with zeros to width characters.
func ZeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
