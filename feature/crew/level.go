package crew

import (
	"errors"
	"fmt"

	"pss-assistant/core/lookups"
	"pss-assistant/core/utils"
)

// ErrInvalidLevel is returned for level ranges outside the cost tables.
var ErrInvalidLevel = errors.New("invalid crew level")

// LevelCost is the gas and experience needed to train a crew between two
// levels.
type LevelCost struct {
	From      int  `json:"from"`
	To        int  `json:"to"`
	Legendary bool `json:"legendary"`
	Gas       int  `json:"gas"`
	XP        int  `json:"xp"`
}

// LevelCosts sums the per level costs of the steps from+1..to.
func LevelCosts(from, to int, legendary bool) (LevelCost, error) {
	if from < 1 || to > lookups.MaxLevel || from >= to {
		return LevelCost{}, fmt.Errorf("%w: levels must satisfy 1 <= from < to <= %d (got %d to %d)",
			ErrInvalidLevel, lookups.MaxLevel, from, to)
	}
	cost := LevelCost{From: from, To: to, Legendary: legendary}
	for level := from + 1; level <= to; level++ {
		cost.Gas += lookups.GasCost(level, legendary)
		cost.XP += lookups.XPCost(level, legendary)
	}
	return cost, nil
}

// Lines renders the cost as chat text.
func (c LevelCost) Lines() []string {
	kind := "crew"
	if c.Legendary {
		kind = "legendary crew"
	}
	return []string{
		fmt.Sprintf("**Level costs** for a %s from lvl %d to %d", kind, c.From, c.To),
		fmt.Sprintf("Gas = %s %s", utils.ReducedNumberCompact(float64(c.Gas), 2), lookups.Currency("gas")),
		fmt.Sprintf("Experience = %s", utils.ReducedNumberCompact(float64(c.XP), 2)),
	}
}
