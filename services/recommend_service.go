package services

import (
	"math/rand"

	"github.com/Aaron629/today-go-where-bot/models"
)

// RecommendService picks today's random recommendation from the catalog.
type RecommendService struct {
	placeService *PlaceService
	shuffle      func(n int, swap func(i, j int))
}

func NewRecommendService(placeService *PlaceService) *RecommendService {
	return &RecommendService{placeService: placeService, shuffle: rand.Shuffle}
}

// PickToday returns up to limit random places matching the optional filters,
// or nothing when no place matches. limit is clamped to at least 1.
func (s *RecommendService) PickToday(city, district string, category models.Category, limit int) []models.Place {
	return s.placeService.RandomizedFilter(city, district, category, limit, s.shuffle)
}
