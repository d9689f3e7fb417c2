package room

import (
	"testing"

	"pss-assistant/core/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayNames_Embedded(t *testing.T) {
	names, err := DisplayNames()
	require.NoError(t, err)

	tests := []struct {
		key     string
		subtype string
		want    string
		shown   bool
	}{
		{"max_storage", "Shield", "Shield points", true},
		{"max_storage", "Bedroom", "Crew slots", true},
		{"max_storage", "Lift", "", false},
		{"max_storage", "Cannon", "Max storage", true},
		{"max_storage", "", "Max storage", true},
		{"cap_per_tick", "Radar", "Cloak reduction", true},
		{"innate_armor", "Corridor", "", false},
		{"queue_limit", "Council", "Borrow limit", true},
		{"queue_limit", "Printer", "", false},
		{"manufacture_speed", "Recycling", "", false},
		{"construction_type", "Storage", "Storage type", true},
		{"size", "Shield", "Size (WxH)", true},
		{"min_hull_lvl", "Cannon", "Min ship lvl", true},
	}
	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.subtype, func(t *testing.T) {
			dn, err := names.Get(tt.key)
			require.NoError(t, err)
			got, shown := dn.Resolve(tt.subtype)
			assert.Equal(t, tt.shown, shown)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayNames_EveryEntryHasDefault(t *testing.T) {
	names, err := DisplayNames()
	require.NoError(t, err)

	for key, dn := range names {
		assert.NotEmpty(t, dn.Default, key)
		for subtype, label := range dn.Overrides {
			got, shown := dn.Resolve(subtype)
			if label == nil {
				assert.False(t, shown, "%s/%s", key, subtype)
				continue
			}
			assert.Equal(t, *label, got, "%s/%s", key, subtype)
		}
	}
}

func TestNewLayout(t *testing.T) {
	names, err := DisplayNames()
	require.NoError(t, err)

	layout, err := NewLayout(names, "https://wiki/", nil)
	require.NoError(t, err)
	assert.Len(t, layout.Long, 27)
	assert.Len(t, layout.Short, 2)

	delete(names, "wikia")
	_, err = NewLayout(names, "https://wiki/", nil)
	assert.ErrorIs(t, err, entity.ErrUnknownDisplayName)
}
