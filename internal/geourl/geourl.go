// Package geourl reads a coordinate pair out of operator input: a bare
// "lat,lng" pair or a map URL that carries one.
package geourl

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/susu3304/geoguess/internal/geoscore"
)

var (
	reAt   = regexp.MustCompile(`@(-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?)`)
	re3d4d = regexp.MustCompile(`!3d(-?\d+(?:\.\d+)?)!4d(-?\d+(?:\.\d+)?)`)
	reQ    = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*,\s*\+?(-?\d+(?:\.\d+)?)\s*$`)
	// /maps/search/lat,lng and /maps/place/lat,lng
	rePath = regexp.MustCompile(`/maps/(?:search|place)/(-?\d+(?:\.\d+)?),\s*\+?(-?\d+(?:\.\d+)?)`)
)

// ParsePoint extracts a point from s and checks it is in range.
func ParsePoint(s string) (geoscore.Point, error) {
	lat, lng, ok := extract(s)
	if !ok {
		return geoscore.Point{}, fmt.Errorf("coordinates not found in %q", s)
	}
	p := geoscore.Point{Lat: lat, Lng: lng}
	if err := p.Validate("lat", "lng"); err != nil {
		return geoscore.Point{}, err
	}
	return p, nil
}

func extract(s string) (lat, lng float64, ok bool) {
	// Pattern A: "lat,lng"
	if m := reQ.FindStringSubmatch(s); len(m) == 3 {
		return parse2(m[1], m[2])
	}
	// Pattern B: .../@lat,lng,zoom...
	if m := reAt.FindStringSubmatch(s); len(m) == 3 {
		return parse2(m[1], m[2])
	}
	// Pattern C: ...!3dlat!4dlng...
	if m := re3d4d.FindStringSubmatch(s); len(m) == 3 {
		return parse2(m[1], m[2])
	}
	// Pattern D: /maps/search/lat,lng
	if m := rePath.FindStringSubmatch(s); len(m) == 3 {
		return parse2(m[1], m[2])
	}

	// Pattern E: query params like ?q=lat,lng or ?query=lat,lng
	u, err := url.Parse(s)
	if err == nil {
		for _, key := range []string{"q", "query"} {
			if v := u.Query().Get(key); v != "" {
				if mm := reQ.FindStringSubmatch(v); len(mm) == 3 {
					return parse2(mm[1], mm[2])
				}
			}
		}
	}

	return 0, 0, false
}

func parse2(a, b string) (lat, lng float64, ok bool) {
	la, err1 := strconv.ParseFloat(a, 64)
	lo, err2 := strconv.ParseFloat(b, 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return la, lo, true
}
