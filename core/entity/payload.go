package entity

import (
	"bytes"
	"fmt"
	"sort"

	"pss-assistant/core/utils"

	"github.com/goccy/go-json"
)

// ParseDesigns decodes a design payload into records keyed by keyProperty.
// The payload is a JSON array of objects, or an object holding one such
// array. Records without a key are skipped.
func ParseDesigns(payload []byte, keyProperty string) (DesignsData, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	records, ok := findRecords(root)
	if !ok {
		return nil, fmt.Errorf("%w: no list of designs found", ErrMalformedPayload)
	}

	data := make(DesignsData, len(records))
	for _, rec := range records {
		obj, ok := rec.(map[string]any)
		if !ok {
			continue
		}
		info := make(DesignInfo, len(obj))
		flatten(info, "", obj)
		id, ok := info.Lookup(keyProperty)
		if !ok {
			continue
		}
		data[id] = info
	}
	return data, nil
}

func findRecords(root any) ([]any, bool) {
	switch v := root.(type) {
	case []any:
		return v, true
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if records, ok := findRecords(v[k]); ok {
				return records, true
			}
		}
	}
	return nil, false
}

func flatten(dst DesignInfo, prefix string, obj map[string]any) {
	for k, v := range obj {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(dst, key, val)
		case []any:
			// Lists are not part of the flat record model.
		default:
			dst[key] = utils.ToString(val)
		}
	}
}
