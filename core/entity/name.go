package entity

import (
	"fmt"
	"strings"
)

// MinNameLength is the shortest searchable entity name.
const MinNameLength = 2

// ValidateEntityName rejects empty names and names shorter than
// MinNameLength, unless they appear in allowed (case-insensitive).
func ValidateEntityName(name string, allowed []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: the name must not be empty", ErrInvalidName)
	}
	if len([]rune(name)) >= MinNameLength {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(a, name) {
			return nil
		}
	}
	return fmt.Errorf("%w: %q must be at least %d characters long", ErrInvalidName, name, MinNameLength)
}

// SearchValue returns the searchable part of a property value: the text
// before the first colon (RoomShortName "ION:Ion Cannon" -> "ION").
func SearchValue(value string) string {
	if i := strings.Index(value, ":"); i >= 0 {
		return value[:i]
	}
	return value
}
