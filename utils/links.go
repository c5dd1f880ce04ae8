package utils

import (
	"fmt"
	"net/url"
	"strings"
)

const mapsHome = "https://www.google.com/maps"
const mapsSearchBase = "https://www.google.com/maps/search/?api=1"

// Hosts that already serve canonical maps links.
var googleMapsHosts = map[string]struct{}{
	"www.google.com": {},
	"google.com":     {},
}

// Dynamic short links. Expanding them online gets blocked inside the LINE
// in-app browser, so the normalizer never follows them; it mines the q
// parameter or rebuilds from metadata instead.
var shortenerHosts = map[string]struct{}{
	"maps.app.goo.gl": {},
	"goo.gl":          {},
	"g.page":          {},
	"g.co":            {},
}

func buildMapsURLByPlaceID(name, placeID string) string {
	if name != "" {
		return mapsSearchBase + "&query=" + url.QueryEscape(name) + "&query_place_id=" + url.QueryEscape(placeID)
	}
	return mapsSearchBase + "&query_place_id=" + url.QueryEscape(placeID)
}

func buildMapsURLByLatLng(lat, lng float64) string {
	// Coordinate search is the most reliable form. 7 decimals is what the
	// provider expects.
	return mapsSearchBase + fmt.Sprintf("&query=%.7f%%2C%.7f", lat, lng)
}

func buildMapsURLByName(name string) string {
	return mapsSearchBase + "&query=" + url.QueryEscape(name)
}

// BuildMapsURL produces an openable Google Maps link from whatever metadata is
// available, in priority order place id > coordinates > name. With nothing at
// all it returns the Maps landing page, so callers always get a usable URL.
func BuildMapsURL(name string, lat, lng *float64, placeID string) string {
	if placeID != "" {
		return buildMapsURLByPlaceID(name, placeID)
	}
	if lat != nil && lng != nil {
		return buildMapsURLByLatLng(*lat, *lng)
	}
	if name != "" {
		return buildMapsURLByName(name)
	}
	return mapsHome
}

// NormalizeMapLink rewrites a raw place link (short link, blog redirect, or
// anything else) into a canonical google.com/maps link. Links that are already
// canonical pass through untouched, which makes the function idempotent.
func NormalizeMapLink(raw, name string, lat, lng *float64, placeID string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return BuildMapsURL(name, lat, lng, placeID)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return BuildMapsURL(name, lat, lng, placeID)
	}
	host := strings.ToLower(u.Host)
	query := u.Query()

	if _, ok := googleMapsHosts[host]; ok && strings.HasPrefix(u.Path, "/maps") {
		return raw
	}

	// Short link: common shape is maps.app.goo.gl/?q=<keyword>
	if _, ok := shortenerHosts[host]; ok {
		if q := strings.TrimSpace(query.Get("q")); q != "" {
			return buildMapsURLByName(q)
		}
		return BuildMapsURL(name, lat, lng, placeID)
	}

	// Unknown domain (FB shares, blog redirects). Try to mine a q parameter
	// before giving up on the link entirely.
	if q := strings.TrimSpace(query.Get("q")); q != "" {
		return buildMapsURLByName(q)
	}

	return BuildMapsURL(name, lat, lng, placeID)
}
