package entity_test

import (
	"context"
	"testing"

	"pss-assistant/core/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailProperty_Evaluate(t *testing.T) {
	ctx := context.Background()
	info := entity.DesignInfo{"RoomType": "Shield", "Capacity": "12"}

	t.Run("Present", func(t *testing.T) {
		p := entity.DetailProperty{Label: "Capacity", OmitIfNone: true, Transform: entity.Value("Capacity")}
		line, ok := p.Evaluate(ctx, info, nil, "Shield")
		require.True(t, ok)
		assert.Equal(t, entity.Line{Label: "Capacity", Value: "12"}, line)
	})

	t.Run("AbsentOmitted", func(t *testing.T) {
		p := entity.DetailProperty{Label: "Cooldown", OmitIfNone: true, Transform: entity.Value("Cooldown")}
		_, ok := p.Evaluate(ctx, info, nil, "Shield")
		assert.False(t, ok)
	})

	t.Run("AbsentKept", func(t *testing.T) {
		p := entity.DetailProperty{Label: "Description", Transform: entity.Value("RoomDescription")}
		line, ok := p.Evaluate(ctx, info, nil, "Shield")
		require.True(t, ok)
		assert.Equal(t, "", line.Value)
	})

	t.Run("SubtypeNotAllowed", func(t *testing.T) {
		p := entity.DetailProperty{Label: "Capacity", AllowedTypes: []string{"Lift"}, Transform: entity.Value("Capacity")}
		_, ok := p.Evaluate(ctx, info, nil, "Shield")
		assert.False(t, ok)

		_, ok = p.Evaluate(ctx, info, nil, "Lift")
		assert.True(t, ok)
	})

	t.Run("LabelSuppressed", func(t *testing.T) {
		empty := (*string)(nil)
		dn := &entity.DisplayName{Key: "max_storage", Default: "Max storage", Overrides: map[string]*string{"Shield": empty}}
		p := entity.DetailProperty{DisplayName: dn, Transform: entity.Value("Capacity")}
		_, ok := p.Evaluate(ctx, info, nil, "Shield")
		assert.False(t, ok)

		line, ok := p.Evaluate(ctx, info, nil, "Wall")
		require.True(t, ok)
		assert.Equal(t, "Max storage", line.Label)
	})
}

// A record missing the field behind an omit-if-none property never shows
// that property's line, whatever else it carries.
func TestLayout_MissingFieldsOmitLines(t *testing.T) {
	fields := []string{"Capacity", "Cooldown", "MinShipLevel", "EnhancementType"}
	layout := entity.Layout{KeyProperty: "Id"}
	for _, f := range fields {
		layout.Long = append(layout.Long, entity.DetailProperty{Label: f, OmitIfNone: true, Transform: entity.Value(f)})
	}

	full := entity.DesignInfo{"Id": "1"}
	for _, f := range fields {
		full[f] = "1"
	}

	for _, missing := range fields {
		info := entity.DesignInfo{}
		for k, v := range full {
			if k != missing {
				info[k] = v
			}
		}
		d := layout.Build(context.Background(), info, nil)
		assert.Len(t, d.Long, len(fields)-1, missing)
		for _, l := range d.Long {
			assert.NotEqual(t, missing, l.Label)
		}
	}
}
