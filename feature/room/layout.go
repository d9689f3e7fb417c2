package room

import (
	"fmt"

	"pss-assistant/core/entity"
	"pss-assistant/core/gameapi"
	"pss-assistant/core/utils"
)

const bigSetThreshold = 3

// layoutBuilder collects the first unknown display name key while the
// layout is assembled.
type layoutBuilder struct {
	names entity.DisplayNames
	err   error
}

func (b *layoutBuilder) prop(key string, transform entity.TransformFunc, allowedTypes ...string) entity.DetailProperty {
	dn, err := b.names.Get(key)
	if err != nil && b.err == nil {
		b.err = err
	}
	return entity.DetailProperty{
		DisplayName:  dn,
		OmitIfNone:   true,
		AllowedTypes: allowedTypes,
		Transform:    transform,
	}
}

// NewLayout assembles the room details layout. It fails when a property
// references a key missing from names.
func NewLayout(names entity.DisplayNames, wikiBaseURL string, links gameapi.LinkChecker) (*entity.Layout, error) {
	if links == nil {
		links = gameapi.AlwaysValid
	}
	b := &layoutBuilder{names: names}
	precision := utils.DefaultFloatPrecision

	layout := &entity.Layout{
		KeyProperty:     KeyProperty,
		SubtypeProperty: TypeProperty,
		Title:           entity.DetailProperty{Label: "Room name", Transform: roomTitle},
		Description:     entity.DetailProperty{Label: "Description", Transform: entity.Value("RoomDescription")},
		Long: []entity.DetailProperty{
			b.prop("size", size),
			b.prop("max_power_used", entity.CompactValue("MaxSystemPower", precision)),
			b.prop("power_generated", entity.CompactValue("MaxPowerGenerated", precision)),
			b.prop("innate_armor", innateArmor),
			b.prop("enhanced_by", entity.CompactValue("EnhancementType", precision)),
			b.prop("min_hull_lvl", entity.CompactValue("MinShipLevel", precision)),
			b.prop("reload_speed", reloadTime),
			b.prop("shots_fired", shotsFired),
			b.prop("system_dmg", damage("MissileDesign.SystemDamage", false)),
			b.prop("shield_dmg", damage("MissileDesign.ShieldDamage", false)),
			b.prop("crew_dmg", damage("MissileDesign.CharacterDamage", false)),
			b.prop("hull_dmg", damage("MissileDesign.HullDamage", false)),
			b.prop("ap_dmg", damage("MissileDesign.DirectSystemDamage", false)),
			b.prop("emp_duration", entity.SecondsValue("MissileDesign.EMPLength")),
			b.prop("max_storage", maxStorage),
			b.prop("cap_per_tick", capacityPerTick, "Lift", "Radar", "Stealth"),
			b.prop("cooldown", entity.SecondsValue("Cooldown")),
			b.prop("queue_limit", queueLimit),
			b.prop("manufacture_speed", manufactureRate),
			b.prop("gas_per_crew", entity.CompactValue("ManufactureRate", precision), "Recycling"),
			b.prop("max_crew_blend", entity.CompactValue("ManufactureCapacity", precision), "Recycling"),
			b.prop("build_time", entity.DurationValue("ConstructionTime")),
			b.prop("build_cost", buildCost),
			b.prop("build_requirement", buildRequirement),
			b.prop("grid_types", extensionGrids),
			b.prop("more_info", moreInfo),
			b.prop("wikia", wikiaLink(wikiBaseURL, links)),
		},
		Short: []entity.DetailProperty{
			{Label: "Enhanced by", OmitIfNone: true, Transform: entity.CompactValue("EnhancementType", precision)},
			{Label: "Ship lvl", OmitIfNone: true, Transform: entity.CompactValue("MinShipLevel", precision)},
		},
	}
	if b.err != nil {
		return nil, fmt.Errorf("failed to build room layout: %w", b.err)
	}
	return layout, nil
}
