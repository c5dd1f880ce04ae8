package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinDeterministic(t *testing.T) {
	svc := &RouletteService{pick: func(n int) int { return 0 }}

	got := svc.Spin("台北", "信義區")
	assert.Equal(t, "日式拉麵 🍜", got.Food)
	assert.True(t, strings.HasPrefix(got.MapsLink, "https://www.google.com/maps/search/"))
	assert.Contains(t, got.MapsLink, "+")
	assert.NotContains(t, got.MapsLink, "🍜", "the emoji stays out of the search keyword")
}

func TestSpinDefaultDistrict(t *testing.T) {
	svc := &RouletteService{pick: func(n int) int { return 1 }}

	got := svc.Spin("台北", "")
	assert.Equal(t, "火鍋 🍲", got.Food)
	assert.NotEmpty(t, got.MapsLink)
}

func TestSpinCoversWheel(t *testing.T) {
	for i := range foodTypes {
		i := i
		svc := &RouletteService{pick: func(n int) int { return i }}
		got := svc.Spin("台北", "信義區")
		assert.Equal(t, foodTypes[i], got.Food)
	}
}
