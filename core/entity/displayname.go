package entity

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const defaultDisplayNameKey = "default"

// DisplayName is a label that may vary by entity subtype.
type DisplayName struct {
	Key     string
	Default string
	// Overrides maps a subtype to its label. A nil label suppresses the line.
	Overrides map[string]*string
}

// Resolve returns the label for subtype: the subtype override if one
// exists, else the default. ok is false when the line is suppressed.
func (d DisplayName) Resolve(subtype string) (string, bool) {
	if subtype != "" {
		if label, found := d.Overrides[subtype]; found {
			if label == nil || *label == "" {
				return "", false
			}
			return *label, true
		}
	}
	if d.Default == "" {
		return "", false
	}
	return d.Default, true
}

// DisplayNames is a table of display names keyed by property key.
type DisplayNames map[string]*DisplayName

// ParseDisplayNames decodes a YAML table of the form
//
//	max_storage:
//	  default: Max storage
//	  Shield: Shield points
//	  Radar: null
func ParseDisplayNames(data []byte) (DisplayNames, error) {
	var raw map[string]map[string]*string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse display names: %w", err)
	}

	names := make(DisplayNames, len(raw))
	for key, entries := range raw {
		dn := &DisplayName{Key: key, Overrides: make(map[string]*string)}
		for subtype, label := range entries {
			if subtype == defaultDisplayNameKey {
				if label != nil {
					dn.Default = *label
				}
				continue
			}
			dn.Overrides[subtype] = label
		}
		names[key] = dn
	}
	return names, nil
}

// Get returns the display name for key.
func (n DisplayNames) Get(key string) (*DisplayName, error) {
	dn, ok := n[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDisplayName, key)
	}
	return dn, nil
}
