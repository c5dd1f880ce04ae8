package services

import (
	"math/rand"
	"net/url"
	"strings"
)

// foodTypes is the wheel. Could move to config later if the list ever needs
// per-deploy tuning.
var foodTypes = []string{
	"日式拉麵 🍜", "火鍋 🍲", "便當 🍱", "燒烤 🍖",
	"牛排 🥩", "壽司 🍣", "韓式料理 🍗", "炸雞 🍗",
	"滷肉飯 🍚", "漢堡 🍔", "咖哩 🍛", "沙拉 🥗",
}

// RouletteResult is one spin: the food label (with emoji) plus a maps search
// link for that food near the district.
type RouletteResult struct {
	Food     string `json:"food"`
	MapsLink string `json:"gmaps"`
}

type RouletteService struct {
	pick func(n int) int
}

func NewRouletteService() *RouletteService {
	return &RouletteService{pick: rand.Intn}
}

// Spin draws a random food type and builds the district-scoped search link.
// The emoji suffix is dropped from the search keyword.
func (s *RouletteService) Spin(city, district string) RouletteResult {
	if district == "" {
		district = "信義區"
	}
	choice := foodTypes[s.pick(len(foodTypes))]
	keyword := choice
	if i := strings.IndexByte(choice, ' '); i >= 0 {
		keyword = choice[:i]
	}
	return RouletteResult{
		Food:     choice,
		MapsLink: "https://www.google.com/maps/search/" + url.PathEscape(district) + "+" + url.PathEscape(keyword),
	}
}
