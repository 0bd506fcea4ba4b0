package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		discount float64
		want     float64
	}{
		{"no discount", 100, 0, 100},
		{"simple percentage", 200, 10, 180},
		{"rounds to cents", 99.99, 33, 66.99},
		{"full discount", 50, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ApplyDiscount(tt.price, tt.discount), 0.001)
		})
	}
}

func TestValidItemType(t *testing.T) {
	assert.True(t, ValidItemType(ItemTypeService))
	assert.True(t, ValidItemType(ItemTypeMenu))
	assert.False(t, ValidItemType("subscription"))
	assert.False(t, ValidItemType(""))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusActive))
	assert.True(t, ValidStatus(StatusInactive))
	assert.False(t, ValidStatus("archived"))
}
