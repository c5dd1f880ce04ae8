package services

import (
	"encoding/json"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/Aaron629/today-go-where-bot/models"
	"github.com/Aaron629/today-go-where-bot/utils"
	"github.com/mmcloughlin/geohash"
)

// Per-city source files merged into one catalog. A file that is missing or
// unparsable is skipped, never fatal.
var placeFiles = []string{
	"taipei.json",
	"newtaipei.json",
	"taichung.json",
	"kaohsiung.json",
}

const earthRadiusKm = 6371.0 // Radius of Earth in km

// haversine formula to calculate distance between two lat/lng points
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1 = lat1 * (math.Pi / 180.0)
	lat2 = lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// PlaceService is the read-only place catalog. It is built once at startup and
// shared by reference; nothing mutates it afterwards, so concurrent readers
// need no locking.
type PlaceService struct {
	places []models.Place
}

// NewPlaceService loads and merges every per-city file under dir, normalizing
// each record's maps link on the way in. Records that resolve to the same key
// across files are collapsed, first occurrence wins.
func NewPlaceService(dir string) *PlaceService {
	var places []models.Place
	for _, name := range placeFiles {
		path := filepath.Join(dir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var chunk []models.Place
		if err := json.Unmarshal(raw, &chunk); err != nil {
			log.Printf("skip malformed place file %s: %v", path, err)
			continue
		}
		places = append(places, chunk...)
	}

	for i := range places {
		var lat, lng *float64
		if g := places[i].Geo; g != nil {
			lat, lng = &g.Latitude, &g.Longitude
		}
		places[i].MapsLink = utils.NormalizeMapLink(
			places[i].MapsLink, places[i].Name, lat, lng, places[i].PlaceID)
	}

	svc := &PlaceService{}
	seen := make(map[string]struct{}, len(places))
	for _, p := range places {
		key := svc.Key(p)
		if _, dup := seen[key]; dup {
			log.Printf("skip duplicate place %q (key %s)", p.Name, key)
			continue
		}
		seen[key] = struct{}{}
		svc.places = append(svc.places, p)
	}
	return svc
}

// NewPlaceServiceFromPlaces builds a catalog from in-memory records.
func NewPlaceServiceFromPlaces(places []models.Place) *PlaceService {
	return &PlaceService{places: places}
}

func (s *PlaceService) Places() []models.Place {
	return s.places
}

func (s *PlaceService) Size() int {
	return len(s.places)
}

// Key returns a stable identifier for a place: the external place id when the
// record has one, else a geohash of its coordinates, else the name.
func (s *PlaceService) Key(p models.Place) string {
	if p.PlaceID != "" {
		return p.PlaceID
	}
	if p.Geo != nil {
		return geohash.Encode(p.Geo.Latitude, p.Geo.Longitude)
	}
	return p.Name
}

// FilterPlaces narrows the catalog to one city and district, optionally to one
// derived category, and returns the requested page. pageSize is taken as
// given; no upper bound is enforced here.
func (s *PlaceService) FilterPlaces(city, district string, category models.Category, page, pageSize int) models.PlacePage {
	var filtered []models.Place
	for _, p := range s.places {
		if p.City != city || p.District != district {
			continue
		}
		if category != "" && utils.ToCategory(p) != category {
			continue
		}
		filtered = append(filtered, p)
	}

	total := len(filtered)
	start := (page - 1) * pageSize
	end := start + pageSize

	var items []models.Place
	if start < total {
		if end > total {
			items = filtered[start:total]
		} else {
			items = filtered[start:end]
		}
	}

	return models.PlacePage{
		Items:   items,
		Total:   total,
		Page:    page,
		HasNext: end < total,
	}
}

// CategoriesByDistrict lists the categories observed in one district, sorted.
func (s *PlaceService) CategoriesByDistrict(city, district string) []models.Category {
	seen := make(map[models.Category]struct{})
	for _, p := range s.places {
		if p.City == city && p.District == district {
			seen[utils.ToCategory(p)] = struct{}{}
		}
	}
	cats := make([]models.Category, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

// DistrictSet returns every district that appears in the catalog.
func (s *PlaceService) DistrictSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, p := range s.places {
		if p.District != "" {
			set[p.District] = struct{}{}
		}
	}
	return set
}

// CityOfDistrict resolves the owning city of a district from catalog data.
func (s *PlaceService) CityOfDistrict(district string) string {
	for _, p := range s.places {
		if p.District == district && p.City != "" {
			return p.City
		}
	}
	return ""
}

// NearestByType returns the place of the given type closest to (lat, lng).
// Places without coordinates never qualify; ties keep catalog order.
func (s *PlaceService) NearestByType(lat, lng float64, placeType string) *models.Place {
	var best *models.Place
	bestDist := math.MaxFloat64
	for i := range s.places {
		p := &s.places[i]
		if p.Type != placeType || p.Geo == nil {
			continue
		}
		d := haversine(lat, lng, p.Geo.Latitude, p.Geo.Longitude)
		if d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}

// FirstByTypeInDistrict returns the first catalog entry of the given type in
// the district, or nil.
func (s *PlaceService) FirstByTypeInDistrict(placeType, district string) *models.Place {
	for i := range s.places {
		p := &s.places[i]
		if p.Type == placeType && p.District == district {
			return p
		}
	}
	return nil
}

// FirstByTypeInCity returns the first catalog entry of the given type in the
// city, or nil.
func (s *PlaceService) FirstByTypeInCity(placeType, city string) *models.Place {
	for i := range s.places {
		p := &s.places[i]
		if p.Type == placeType && p.City == city {
			return p
		}
	}
	return nil
}

// RandomizedFilter shuffles the (city, district, category) filtered set and
// returns up to limit entries, at least one when anything matched. Empty
// filter fields match everything.
func (s *PlaceService) RandomizedFilter(city, district string, category models.Category, limit int, shuffle func(n int, swap func(i, j int))) []models.Place {
	var candidates []models.Place
	for _, p := range s.places {
		if city != "" && p.City != city {
			continue
		}
		if district != "" && p.District != district {
			continue
		}
		if category != "" && utils.ToCategory(p) != category {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return nil
	}
	if shuffle != nil {
		shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}
	if limit < 1 {
		limit = 1
	}
	if limit > len(candidates) {
		limit = len(candidates)
	}
	return candidates[:limit]
}
