package models

// Place is one point-of-interest record loaded from the per-city JSON files.
// Records are immutable after load; MapsLink is rewritten once at load time so
// that every place carries an openable google.com/maps URL.
type Place struct {
	Name        string    `json:"name"`
	City        string    `json:"city"`
	District    string    `json:"district"`
	Type        string    `json:"type"`
	Tags        []string  `json:"tags"`
	Geo         *GeoPoint `json:"geo,omitempty"`
	MapsLink    string    `json:"gmaps"`
	PlaceID     string    `json:"place_id,omitempty"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
}

type GeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// PlacePage is the result of one paginated catalog query.
type PlacePage struct {
	Items   []Place `json:"items"`
	Total   int     `json:"total"`
	Page    int     `json:"page"`
	HasNext bool    `json:"has_next"`
}
