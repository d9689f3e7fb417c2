// Package crew renders character designs and computes training costs.
//
// Characters reference their collection by id; each query fetches character
// and collection designs concurrently so the collection line can show the
// collection's name and perk. LevelCosts sums the per level gas and
// experience tables from core/lookups.
package crew
