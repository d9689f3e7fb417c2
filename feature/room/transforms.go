package room

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"pss-assistant/core/entity"
	"pss-assistant/core/gameapi"
	"pss-assistant/core/lookups"
	"pss-assistant/core/utils"
	"pss-assistant/feature/item"
)

// roomFlags maps bits of the Flags field to descriptions. No flag is
// currently worth showing.
var roomFlags = map[int]string{}

func roomTitle(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	name := info.Get(NameProperty)
	if short := entity.SearchValue(info.Get(ShortNameProperty)); short != "" {
		return fmt.Sprintf("%s [%s]", name, short), true
	}
	return name, true
}

func size(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	columns, okC := info.Lookup("Columns")
	rows, okR := info.Lookup("Rows")
	if !okC || !okR {
		return "", false
	}
	return columns + "x" + rows, true
}

func innateArmor(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	raw := info.Get("DefaultDefenceBonus")
	bonus, ok := utils.ParseFloat(raw)
	if !ok || bonus == 0 {
		return "", false
	}
	reduction := (1.0 - 1.0/(1.0+bonus/100.0)) * 100
	return fmt.Sprintf("%s (%s%% dmg reduction)", raw, utils.FormatUpToDecimals(reduction, 2)), true
}

func reloadTime(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	ticks, ok := utils.ParseFloat(info.Get("ReloadTime"))
	if !ok || ticks <= 0 {
		return "", false
	}
	seconds := utils.TicksToSeconds(ticks)
	perMinute := 60.0 / seconds
	return fmt.Sprintf("%ss (~ %s/min)",
		utils.FormatFixed(seconds, utils.DefaultFloatPrecision),
		utils.FormatUpToDecimals(perMinute, utils.DefaultFloatPrecision)), true
}

func shotsFired(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	volley, ok := utils.ParseInt(info.Get("MissileDesign.Volley"))
	if !ok || volley <= 1 {
		return "", false
	}
	delay, _ := utils.ParseInt(info.Get("MissileDesign.VolleyDelay"))
	delaySeconds := utils.FormatUpToDecimals(utils.TicksToSeconds(float64(delay)), 3)
	return fmt.Sprintf("%d (Delay: %ss)", volley, delaySeconds), true
}

// damage renders one damage type as full volley damage, damage per shot,
// damage per second and damage per second per power bar. The volley
// duration adds to the reload time.
func damage(property string, percent bool) entity.TransformFunc {
	unit := ""
	if percent {
		unit = "%"
	}
	return func(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
		dmg, ok := utils.ParseFloat(info.Get(property))
		if !ok || dmg == 0 {
			return "", false
		}
		reloadTicks, ok := utils.ParseFloat(info.Get("ReloadTime"))
		if !ok || reloadTicks <= 0 {
			return "", false
		}
		maxPower, ok := utils.ParseFloat(info.Get("MaxSystemPower"))
		if !ok || maxPower <= 0 {
			return "", false
		}
		volley, ok := utils.ParseInt(info.Get("MissileDesign.Volley"))
		if !ok || volley < 1 {
			volley = 1
		}
		delay, _ := utils.ParseInt(info.Get("MissileDesign.VolleyDelay"))

		reloadSeconds := utils.TicksToSeconds(reloadTicks) + utils.TicksToSeconds(float64((volley-1)*delay))
		full := dmg * float64(volley)
		dps := full / reloadSeconds
		perPower := dps / maxPower

		perShot := ""
		if volley > 1 {
			perShot = fmt.Sprintf("per shot: %s, ", utils.FormatUpToDecimals(dmg, 2))
		}
		return fmt.Sprintf("%s%s (%sdps: %s%s, per power: %s%s)",
			utils.FormatUpToDecimals(full, 2), unit,
			perShot,
			utils.FormatUpToDecimals(dps, 3), unit,
			utils.FormatUpToDecimals(perPower, 3), unit), true
	}
}

// maxStorage renders a room's storage capacity and, for production rooms,
// the stored resource.
func maxStorage(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	capacity, hasCapacity := info.Lookup("Capacity")
	manufactureCapacity, hasManufactureCapacity := info.Lookup("ManufactureCapacity")
	_, hasManufactureRate := info.Lookup("ManufactureRate")
	manufactureType, hasManufactureType := info.Lookup("ManufactureType")
	isRecycling := info.Get(TypeProperty) == "Recycling"

	var value string
	var ok bool
	switch {
	case hasCapacity && (!hasManufactureCapacity || !hasManufactureRate || isRecycling):
		value, ok = entity.ParseValue(capacity, utils.DefaultFloatPrecision)
	case hasManufactureCapacity && hasManufactureRate:
		value, ok = entity.ParseValue(manufactureCapacity, utils.DefaultFloatPrecision)
	}
	if !ok {
		return "", false
	}

	printType := (hasCapacity && !hasManufactureRate) || (hasManufactureCapacity && hasManufactureRate)
	if !printType || !hasManufactureType {
		return value, true
	}
	return value + " " + lookups.Currency(manufactureType), true
}

func capacityPerTick(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	capacity, ok := utils.ParseFloat(info.Get("Capacity"))
	if !ok || capacity == 0 {
		return "", false
	}
	seconds := utils.FormatUpToDecimals(utils.TicksToSeconds(capacity), 3)
	return seconds + capacityPerTickUnits[info.Get(TypeProperty)], true
}

func queueLimit(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	capacity, ok := info.Lookup("ManufactureCapacity")
	if !ok {
		return "", false
	}
	if _, hasRate := info.Lookup("ManufactureRate"); hasRate {
		return "", false
	}
	return entity.ParseValue(capacity, utils.DefaultFloatPrecision)
}

func manufactureRate(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	rate, ok := utils.ParseFloat(info.Get("ManufactureRate"))
	if !ok || rate <= 0 {
		return "", false
	}
	return fmt.Sprintf("%ss (%s/hour)",
		utils.FormatUpToDecimals(1.0/rate, utils.DefaultFloatPrecision),
		utils.FormatUpToDecimals(rate*3600, utils.DefaultFloatPrecision)), true
}

// buildCost renders PriceString ("starbux:1500") as "1.5k :moneybag:".
func buildCost(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	resource, amount, found := strings.Cut(info.Get("PriceString"), ":")
	if !found {
		return "", false
	}
	value, ok := utils.ParseFloat(amount)
	if !ok {
		return "", false
	}
	return utils.ReducedNumberCompact(value, utils.DefaultFloatPrecision) + " " + lookups.Currency(resource), true
}

// buildRequirement renders RequirementString. Item requirements
// ("item:76x3") resolve to "3x Item name"; anything else is echoed
// lower-cased.
func buildRequirement(_ context.Context, info entity.DesignInfo, related entity.Related) (string, bool) {
	requirement, ok := info.Lookup("RequirementString")
	if !ok {
		return "", false
	}
	requirement = strings.ToLower(requirement)

	kind, target, found := strings.Cut(requirement, ":")
	if !found || kind != "item" {
		return requirement, true
	}
	id, amount, found := strings.Cut(target, "x")
	if !found {
		amount = "1"
	}
	itemInfo, found := related.Info(item.RelatedName, id)
	if !found {
		return requirement, true
	}
	return fmt.Sprintf("%sx %s", amount, itemInfo.Get(item.NameProperty)), true
}

func extensionGrids(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	gridTypes, _ := utils.ParseInt(info.Get("SupportedGridTypes"))
	if gridTypes&2 == 0 {
		return "", false
	}
	return "Allowed in extension grids", true
}

func moreInfo(_ context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
	flags, ok := utils.ParseInt(info.Get("Flags"))
	if !ok || flags == 0 {
		return "", false
	}
	bits := make([]int, 0, len(roomFlags))
	for bit := range roomFlags {
		bits = append(bits, bit)
	}
	sort.Ints(bits)

	var notes []string
	for _, bit := range bits {
		if flags&bit != 0 {
			notes = append(notes, roomFlags[bit])
		}
	}
	if len(notes) == 0 {
		return "", false
	}
	return strings.Join(notes, ", "), true
}

// wikiaLink links the room's wiki page when the checker confirms it exists.
func wikiaLink(baseURL string, checker gameapi.LinkChecker) entity.TransformFunc {
	return func(ctx context.Context, info entity.DesignInfo, _ entity.Related) (string, bool) {
		name, ok := info.Lookup(NameProperty)
		if !ok {
			return "", false
		}
		link := gameapi.WikiaLink(baseURL, name)
		if link == "" || !checker.Check(ctx, link) {
			return "", false
		}
		return "<" + link + ">", true
	}
}
