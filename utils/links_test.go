package utils

import (
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestNormalizeMapLinkCanonicalPassthrough(t *testing.T) {
	canonical := "https://www.google.com/maps/search/?api=1&query=%E8%B1%A1%E5%B1%B1"
	got := NormalizeMapLink(canonical, "別的名字", f64(25.0), f64(121.5), "some-id")
	assert.Equal(t, canonical, got, "already-canonical links must never be rewritten")

	bare := "https://google.com/maps/place/somewhere"
	assert.Equal(t, bare, NormalizeMapLink(bare, "", nil, nil, ""))
}

func TestNormalizeMapLinkShortener(t *testing.T) {
	got := NormalizeMapLink("https://maps.app.goo.gl/?q=饒河街夜市", "ignored", nil, nil, "")
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query="+url.QueryEscape("饒河街夜市"), got)

	// No q parameter: rebuild from metadata, place id first.
	got = NormalizeMapLink("https://goo.gl/abc", "店名", f64(25.0), f64(121.5), "pid-1")
	assert.Contains(t, got, "query_place_id=pid-1")
	assert.Contains(t, got, "query="+url.QueryEscape("店名"))
}

func TestNormalizeMapLinkForeignDomain(t *testing.T) {
	got := NormalizeMapLink("http://blog.example.com/share?q=艋舺龍山寺", "", nil, nil, "")
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query="+url.QueryEscape("艋舺龍山寺"), got)

	got = NormalizeMapLink("http://blog.example.com/post/123", "龍山寺", nil, nil, "")
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query="+url.QueryEscape("龍山寺"), got)
}

func TestNormalizeMapLinkMetadataPriority(t *testing.T) {
	// place id beats coordinates beats name
	got := NormalizeMapLink("", "店名", f64(25.0), f64(121.5), "pid-1")
	assert.Contains(t, got, "query_place_id=pid-1")

	got = NormalizeMapLink("", "店名", f64(25.0272), f64(121.5727), "")
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=25.0272000%2C121.5727000", got)

	got = NormalizeMapLink("", "象山步道", nil, nil, "")
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query="+url.QueryEscape("象山步道"), got)
}

func TestNormalizeMapLinkCoordinatePrecision(t *testing.T) {
	got := BuildMapsURL("", f64(25.12345678), f64(121.98765432), "")
	assert.Contains(t, got, "25.1234568%2C121.9876543", "coordinates are formatted to 7 decimals")
}

func TestNormalizeMapLinkTotality(t *testing.T) {
	inputs := []struct {
		raw, name, pid string
		lat, lng       *float64
	}{
		{},
		{raw: "::::not a url::::"},
		{raw: "https://maps.app.goo.gl/xyz"},
		{name: "x"},
		{lat: f64(1), lng: f64(2)},
		{pid: "p"},
	}
	for i, in := range inputs {
		got := NormalizeMapLink(in.raw, in.name, in.lat, in.lng, in.pid)
		require.NotEmpty(t, got, "case %d", i)
		u, err := url.Parse(got)
		require.NoError(t, err, "case %d", i)
		assert.Equal(t, "www.google.com", u.Host, "case %d", i)
		assert.True(t, strings.HasPrefix(u.Path, "/maps"), "case %d: %s", i, got)
	}
}

func TestNormalizeMapLinkIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"https://www.google.com/maps/search/?api=1&query=test",
		"https://maps.app.goo.gl/?q=somewhere",
		"http://example.com/?q=keyword",
		"http://example.com/nothing",
		"not a url at all",
	}
	for _, raw := range inputs {
		t.Run(fmt.Sprintf("raw=%q", raw), func(t *testing.T) {
			once := NormalizeMapLink(raw, "店名", f64(25.0), f64(121.5), "pid")
			twice := NormalizeMapLink(once, "店名", f64(25.0), f64(121.5), "pid")
			assert.Equal(t, once, twice)
		})
	}
}
