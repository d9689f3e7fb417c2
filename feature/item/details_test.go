package item

import (
	"context"
	"testing"

	"pss-assistant/core/entity"

	"github.com/stretchr/testify/assert"
)

func TestEquipmentSlot(t *testing.T) {
	tests := []struct {
		name   string
		info   entity.DesignInfo
		want   string
		wantOK bool
	}{
		{"sub type", entity.DesignInfo{"ItemSubType": "EquipmentWeapon"}, "weapon", true},
		{"mask wins", entity.DesignInfo{"ItemSubType": "EquipmentHead", "EquipmentMask": "6"}, "body, leg", true},
		{"unknown slot", entity.DesignInfo{"ItemSubType": "EquipmentPet"}, "", false},
		{"not equipment", entity.DesignInfo{"ItemSubType": "None"}, "", false},
		{"missing", entity.DesignInfo{}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := equipmentSlot(context.Background(), tt.info, nil)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
