package item

import (
	"context"
	"fmt"
	"strings"

	"pss-assistant/core/entity"
	"pss-assistant/core/lookups"
	"pss-assistant/core/utils"
)

const bigSetThreshold = 5

const equipmentSubTypePrefix = "Equipment"

// Layout returns the item details layout.
func Layout() *entity.Layout {
	return &entity.Layout{
		KeyProperty:     KeyProperty,
		SubtypeProperty: "ItemType",
		Title:           entity.DetailProperty{Label: "Item name", Transform: entity.Value(NameProperty)},
		Description:     entity.DetailProperty{Label: "Description", Transform: entity.Value(DescriptionProperty)},
		Long: []entity.DetailProperty{
			{Label: "Rarity", OmitIfNone: true, Transform: entity.Value("Rarity")},
			{Label: "Type", OmitIfNone: true, Transform: entity.Value("ItemType")},
			{Label: "Slot", OmitIfNone: true, AllowedTypes: []string{"Equipment"}, Transform: equipmentSlot},
			{Label: "Bonus", OmitIfNone: true, Transform: enhancement},
			{Label: "Market price", OmitIfNone: true, Transform: price("MarketPrice")},
			{Label: "Fair price", OmitIfNone: true, Transform: price("FairPrice")},
		},
		Short: []entity.DetailProperty{
			{Label: "Rarity", OmitIfNone: true, Transform: entity.Value("Rarity")},
			{Label: "Bonus", OmitIfNone: true, Transform: enhancement},
		},
	}
}

// equipmentSlot decodes the slot through the equipment mask. Items carry
// an EquipmentMask when the API sends one, otherwise the mask bit is taken
// from the "Equipment<Slot>" sub type.
func equipmentSlot(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	mask, _ := utils.ParseInt(info.Get("EquipmentMask"))
	if mask <= 0 {
		subType, ok := info.Lookup("ItemSubType")
		if !ok || !strings.HasPrefix(subType, equipmentSubTypePrefix) {
			return "", false
		}
		mask = lookups.EquipmentMask(strings.TrimPrefix(subType, equipmentSubTypePrefix))
	}
	slots := lookups.EquipmentSlotNames(mask)
	if len(slots) == 0 {
		return "", false
	}
	return strings.Join(slots, ", "), true
}

func enhancement(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	kind, ok := info.Lookup("EnhancementType")
	if !ok || strings.EqualFold(kind, "none") {
		return "", false
	}
	value, ok := utils.ParseFloat(info.Get("EnhancementValue"))
	if !ok || value == 0 {
		return kind, true
	}
	return fmt.Sprintf("%s +%s", kind, utils.FormatUpToDecimals(value, utils.DefaultFloatPrecision)), true
}

func price(property string) entity.TransformFunc {
	value := entity.CompactValue(property, utils.DefaultFloatPrecision)
	return func(ctx context.Context, info entity.DesignInfo, related entity.Related) (string, bool) {
		v, ok := value(ctx, info, related)
		if !ok {
			return "", false
		}
		return v + " " + lookups.Currency("starbux"), true
	}
}
