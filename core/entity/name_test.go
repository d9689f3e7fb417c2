package entity_test

import (
	"testing"

	"pss-assistant/core/entity"

	"github.com/stretchr/testify/assert"
)

func TestValidateEntityName(t *testing.T) {
	allowed := []string{"L", "AA"}

	assert.NoError(t, entity.ValidateEntityName("ion", nil))
	assert.NoError(t, entity.ValidateEntityName("l", allowed))
	assert.ErrorIs(t, entity.ValidateEntityName("x", allowed), entity.ErrInvalidName)
	assert.ErrorIs(t, entity.ValidateEntityName("   ", allowed), entity.ErrInvalidName)
}

func TestSearchValue(t *testing.T) {
	assert.Equal(t, "ION", entity.SearchValue("ION:Ion Cannon"))
	assert.Equal(t, "ION", entity.SearchValue("ION"))
	assert.Equal(t, "", entity.SearchValue(":x"))
}
