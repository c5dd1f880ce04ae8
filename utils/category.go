package utils

import (
	"strings"

	"github.com/Aaron629/today-go-where-bot/models"
)

// Tag sets for the classification cascade. Matching is case-insensitive on the
// type field; tags are compared as-is after lowercasing.
var (
	museumTags     = tagSet("博物館", "美術館", "展覽", "文化", "藝術")
	foodMarketTags = tagSet("夜市", "小吃", "美食", "商圈", "市場")
	familyFunTags  = tagSet("親子", "樂園", "動物")
	parkWalkTags   = tagSet("公園", "步道", "自然", "生態", "湖景")
	templeTags     = tagSet("寺廟", "古蹟", "宗教", "歷史")
	landmarkTags   = tagSet("地標", "拍照", "建築", "觀景", "夜景")
)

func tagSet(tags ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}

func intersects(tags map[string]struct{}, set map[string]struct{}) bool {
	for t := range tags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

// ToCategory derives the display category of a place from its type and tags.
// The rules form an ordered cascade and the first hit wins; anything that falls
// all the way through is a landmark on purpose, so every place lands somewhere.
func ToCategory(p models.Place) models.Category {
	t := strings.ToLower(p.Type)
	tags := make(map[string]struct{}, len(p.Tags))
	for _, tag := range p.Tags {
		tags[strings.ToLower(tag)] = struct{}{}
	}

	switch {
	case t == "museum" || intersects(tags, museumTags):
		return models.CategoryMuseum
	case t == "food" || t == "shop" || intersects(tags, foodMarketTags):
		return models.CategoryFoodMarket
	case intersects(tags, familyFunTags):
		return models.CategoryFamilyFun
	case t == "walk" || t == "nature" || t == "family" || intersects(tags, parkWalkTags):
		return models.CategoryParkWalk
	case intersects(tags, templeTags):
		return models.CategoryTempleHistory
	case t == "spot" || intersects(tags, landmarkTags):
		return models.CategoryLandmark
	default:
		return models.CategoryLandmark
	}
}
