package models

// Category is the derived classification tag of a Place. It is never stored,
// always recomputed from Type and Tags.
type Category string

const (
	CategoryLandmark      Category = "landmark"
	CategoryMuseum        Category = "museum"
	CategoryParkWalk      Category = "park_walk"
	CategoryFoodMarket    Category = "food_market"
	CategoryTempleHistory Category = "temple_history"
	CategoryFamilyFun     Category = "family_fun"
)

// CategoryLabels maps each category to its display name on cards and menus.
var CategoryLabels = map[Category]string{
	CategoryLandmark:      "地標/拍照",
	CategoryMuseum:        "博物館/美術館",
	CategoryParkWalk:      "公園/步道",
	CategoryFoodMarket:    "美食/夜市",
	CategoryTempleHistory: "寺廟/古蹟",
	CategoryFamilyFun:     "親子/農場/樂園",
}

// CategoryLabel falls back to the raw value for unknown categories so a bad
// token never renders an empty label.
func CategoryLabel(c Category) string {
	if label, ok := CategoryLabels[c]; ok {
		return label
	}
	return string(c)
}
