package entity_test

import (
	"testing"

	"pss-assistant/core/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const displayNamesYAML = `
max_storage:
  default: Max storage
  Shield: Shield points
  Wall: Armor value
  Radar: null
cap_per_tick:
  default: Cap per tick
  Lift: Speed
no_default:
  Shield: Only shields
`

func TestParseDisplayNames(t *testing.T) {
	names, err := entity.ParseDisplayNames([]byte(displayNamesYAML))
	require.NoError(t, err)
	require.Len(t, names, 3)

	ms, err := names.Get("max_storage")
	require.NoError(t, err)
	assert.Equal(t, "max_storage", ms.Key)
	assert.Equal(t, "Max storage", ms.Default)
	assert.Len(t, ms.Overrides, 3)
	assert.Nil(t, ms.Overrides["Radar"])
}

func TestParseDisplayNames_Invalid(t *testing.T) {
	_, err := entity.ParseDisplayNames([]byte("max_storage: [unclosed"))
	assert.Error(t, err)
}

func TestDisplayNames_GetUnknown(t *testing.T) {
	names, err := entity.ParseDisplayNames([]byte(displayNamesYAML))
	require.NoError(t, err)

	_, err = names.Get("does_not_exist")
	assert.ErrorIs(t, err, entity.ErrUnknownDisplayName)
}

func TestDisplayName_Resolve(t *testing.T) {
	names, err := entity.ParseDisplayNames([]byte(displayNamesYAML))
	require.NoError(t, err)

	tests := []struct {
		key     string
		subtype string
		want    string
		wantOK  bool
	}{
		{"max_storage", "Shield", "Shield points", true},
		{"max_storage", "Wall", "Armor value", true},
		{"max_storage", "Radar", "", false},
		{"max_storage", "Laser", "Max storage", true},
		{"max_storage", "", "Max storage", true},
		{"cap_per_tick", "Lift", "Speed", true},
		{"cap_per_tick", "Shield", "Cap per tick", true},
		{"no_default", "Shield", "Only shields", true},
		{"no_default", "Wall", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.subtype, func(t *testing.T) {
			dn, err := names.Get(tt.key)
			require.NoError(t, err)
			got, ok := dn.Resolve(tt.subtype)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every override of every entry resolves to itself (or suppression), and
// every other subtype falls back to the default.
func TestDisplayName_ResolveFallbackPerEntry(t *testing.T) {
	names, err := entity.ParseDisplayNames([]byte(displayNamesYAML))
	require.NoError(t, err)

	for key, dn := range names {
		for subtype, label := range dn.Overrides {
			got, ok := dn.Resolve(subtype)
			if label == nil {
				assert.False(t, ok, "%s/%s", key, subtype)
				continue
			}
			assert.True(t, ok, "%s/%s", key, subtype)
			assert.Equal(t, *label, got, "%s/%s", key, subtype)
		}

		got, ok := dn.Resolve("NotAnOverriddenType")
		assert.Equal(t, dn.Default != "", ok, key)
		assert.Equal(t, dn.Default, got, key)
	}
}
