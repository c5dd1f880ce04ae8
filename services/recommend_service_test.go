package services

import (
	"testing"

	"github.com/Aaron629/today-go-where-bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickTodayReturnsFromFilteredSet(t *testing.T) {
	svc := NewRecommendService(testCatalog())

	picks := svc.PickToday("台北", "信義區", models.CategoryFoodMarket, 1)
	require.Len(t, picks, 1)
	assert.Equal(t, "夜市A", picks[0].Name)
}

func TestPickTodayEmptyCatalog(t *testing.T) {
	svc := NewRecommendService(NewPlaceServiceFromPlaces(nil))
	assert.Empty(t, svc.PickToday("", "", "", 1))
}

func TestPickTodayLimit(t *testing.T) {
	svc := NewRecommendService(testCatalog())

	picks := svc.PickToday("台北", "", "", 3)
	assert.Len(t, picks, 3)

	picks = svc.PickToday("台北", "", "", 0)
	assert.Len(t, picks, 1, "limit is clamped to at least 1")
}
