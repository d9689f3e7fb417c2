package crew

import (
	"context"
	"fmt"
	"strings"

	"pss-assistant/core/entity"
	"pss-assistant/core/lookups"
	"pss-assistant/core/utils"
)

const bigSetThreshold = 3

// Layout returns the character details layout.
func Layout() *entity.Layout {
	precision := utils.DefaultFloatPrecision
	return &entity.Layout{
		KeyProperty: KeyProperty,
		Title:       entity.DetailProperty{Label: "Crew name", Transform: entity.Value(NameProperty)},
		Description: entity.DetailProperty{Label: "Description", Transform: entity.Value("CharacterDesignDescription")},
		Long: []entity.DetailProperty{
			{Label: "Race", OmitIfNone: true, Transform: entity.Value("RaceType")},
			{Label: "Gender", OmitIfNone: true, Transform: entity.Value("GenderType")},
			{Label: "Rarity", OmitIfNone: true, Transform: entity.Value("Rarity")},
			{Label: "Ability", OmitIfNone: true, Transform: specialAbility},
			{Label: "HP", OmitIfNone: true, Transform: entity.CompactValue("FinalHp", precision)},
			{Label: "Attack", OmitIfNone: true, Transform: entity.CompactValue("FinalAttack", precision)},
			{Label: "Repair", OmitIfNone: true, Transform: entity.CompactValue("FinalRepair", precision)},
			{Label: "Pilot", OmitIfNone: true, Transform: entity.CompactValue("FinalPilot", precision)},
			{Label: "Science", OmitIfNone: true, Transform: entity.CompactValue("FinalScience", precision)},
			{Label: "Engine", OmitIfNone: true, Transform: entity.CompactValue("FinalEngine", precision)},
			{Label: "Weapon", OmitIfNone: true, Transform: entity.CompactValue("FinalWeapon", precision)},
			{Label: "Fire resistance", OmitIfNone: true, Transform: entity.CompactValue("FireResistance", precision)},
			{Label: "Walk/run speed", OmitIfNone: true, Transform: speed},
			{Label: "Training cap", OmitIfNone: true, Transform: entity.CompactValue("TrainingCapacity", precision)},
			{Label: "Slots", OmitIfNone: true, Transform: equipmentSlots},
			{Label: "Collection", OmitIfNone: true, Transform: collection},
		},
		Short: []entity.DetailProperty{
			{Label: "Rarity", OmitIfNone: true, Transform: entity.Value("Rarity")},
			{Label: "Ability", OmitIfNone: true, Transform: specialAbilityName},
			{Label: "Collection", OmitIfNone: true, Transform: collectionName},
		},
	}
}

func specialAbilityName(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	kind, ok := info.Lookup("SpecialAbilityType")
	if !ok || strings.EqualFold(kind, "none") {
		return "", false
	}
	if name, found := lookups.SpecialAbilities[kind]; found {
		return name, true
	}
	return kind, true
}

func specialAbility(ctx context.Context, info entity.DesignInfo, related entity.Related) (string, bool) {
	name, ok := specialAbilityName(ctx, info, related)
	if !ok {
		return "", false
	}
	if power, found := entity.ParseValue(info.Get("SpecialAbilityFinalArgument"), utils.DefaultFloatPrecision); found {
		return fmt.Sprintf("%s (%s)", name, power), true
	}
	return name, true
}

func speed(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	walk, okW := info.Lookup("WalkingSpeed")
	run, okR := info.Lookup("RunSpeed")
	if !okW || !okR {
		return "", false
	}
	return walk + "/" + run, true
}

func equipmentSlots(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	mask, ok := utils.ParseInt(info.Get("EquipmentMask"))
	if !ok {
		return "", false
	}
	slots := lookups.EquipmentSlotNames(mask)
	if len(slots) == 0 {
		return "", false
	}
	return strings.Join(slots, ", "), true
}

func collectionInfo(info entity.DesignInfo, related entity.Related) (entity.DesignInfo, bool) {
	id, ok := info.Lookup(CollectionKeyProperty)
	if !ok || id == "0" {
		return nil, false
	}
	return related.Info(RelatedCollections, id)
}

func collectionName(_ context.Context, info entity.DesignInfo, related entity.Related) (string, bool) {
	c, ok := collectionInfo(info, related)
	if !ok {
		return "", false
	}
	return c.Lookup(CollectionNameProperty)
}

// collection renders the character's collection with its perk.
func collection(ctx context.Context, info entity.DesignInfo, related entity.Related) (string, bool) {
	name, ok := collectionName(ctx, info, related)
	if !ok {
		return "", false
	}
	c, _ := collectionInfo(info, related)
	perk, ok := c.Lookup("EnhancementType")
	if !ok || strings.EqualFold(perk, "none") {
		return name, true
	}
	if perkName, found := lookups.CollectionPerks[perk]; found {
		perk = perkName
	}
	return fmt.Sprintf("%s (%s)", name, perk), true
}
