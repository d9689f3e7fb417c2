package lookups_test

import (
	"testing"

	"pss-assistant/core/lookups"

	"github.com/stretchr/testify/assert"
)

func TestCosts(t *testing.T) {
	assert.Equal(t, 40, lookups.MaxLevel)

	assert.Equal(t, 0, lookups.GasCost(1, false))
	assert.Equal(t, 17, lookups.GasCost(3, false))
	assert.Equal(t, 715000, lookups.GasCost(40, false))
	assert.Equal(t, 1365000, lookups.GasCost(40, true))
	assert.Equal(t, 0, lookups.GasCost(41, false))

	assert.Equal(t, 90, lookups.XPCost(2, false))
	assert.Equal(t, 810, lookups.XPCost(3, true))
	assert.Equal(t, 0, lookups.XPCost(0, true))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, ":moneybag:", lookups.Currency("Starbux"))
	assert.Equal(t, ":fuelpump:", lookups.Currency("gas"))
	assert.Equal(t, "Unknown", lookups.Currency("Unknown"))
}

func TestEquipmentSlotNames(t *testing.T) {
	assert.Nil(t, lookups.EquipmentSlotNames(0))
	assert.Equal(t, []string{"head"}, lookups.EquipmentSlotNames(1))
	assert.Equal(t, []string{"head", "leg", "accessory"}, lookups.EquipmentSlotNames(1|4|16))
	assert.Len(t, lookups.EquipmentSlotNames(31), 5)
}

func TestEquipmentMask(t *testing.T) {
	assert.Equal(t, 1, lookups.EquipmentMask("Head"))
	assert.Equal(t, 16, lookups.EquipmentMask("accessory"))
	assert.Equal(t, 0, lookups.EquipmentMask("Pet"))
}
