// Package catalog holds the fixed set of landmarks a round can start from.
package catalog

import (
	"math/rand"

	"github.com/susu3304/geoguess/internal/geoscore"
)

// UnknownCountry is reported for landmarks without a country.
const UnknownCountry = "Unknown"

// Landmark is a point of interest with guaranteed street-level imagery.
type Landmark struct {
	Location    geoscore.Point `json:"location"`
	DisplayName string         `json:"name"`
	Country     string         `json:"country"`
}

var landmarks = []Landmark{
	{geoscore.Point{Lat: 48.8584, Lng: 2.2945}, "Eiffel Tower, Paris", "France"},
	{geoscore.Point{Lat: 40.7580, Lng: -73.9855}, "Times Square, NYC", "USA"},
	{geoscore.Point{Lat: 35.6762, Lng: 139.6503}, "Tokyo Tower", "Japan"},
	{geoscore.Point{Lat: 51.5007, Lng: -0.1246}, "Big Ben, London", "UK"},
	{geoscore.Point{Lat: -33.8568, Lng: 151.2153}, "Sydney Opera House", "Australia"},
	{geoscore.Point{Lat: 41.8902, Lng: 12.4922}, "Colosseum, Rome", "Italy"},
	{geoscore.Point{Lat: 37.8199, Lng: -122.4783}, "Golden Gate Bridge", "USA"},
	{geoscore.Point{Lat: 55.7558, Lng: 37.6173}, "Red Square, Moscow", "Russia"},
	{geoscore.Point{Lat: -22.9519, Lng: -43.2105}, "Christ the Redeemer", "Brazil"},
	{geoscore.Point{Lat: 27.1751, Lng: 78.0421}, "Taj Mahal", "India"},
	{geoscore.Point{Lat: 40.4319, Lng: 116.5704}, "Great Wall of China", "China"},
	{geoscore.Point{Lat: -13.1631, Lng: -72.5450}, "Machu Picchu", "Peru"},
	{geoscore.Point{Lat: 29.9792, Lng: 31.1342}, "Pyramids of Giza", "Egypt"},
	{geoscore.Point{Lat: 43.7230, Lng: 10.3966}, "Leaning Tower of Pisa", "Italy"},
	{geoscore.Point{Lat: 52.5200, Lng: 13.4050}, "Brandenburg Gate", "Germany"},
}

// Catalog is an immutable landmark table. It is safe for concurrent use as
// long as its random source is.
type Catalog struct {
	landmarks []Landmark
	intN      func(n int) int
}

// New returns a catalog over a copy of entries, picking indices with intN.
// A nil intN uses math/rand, which is safe for concurrent use.
// New panics if entries is empty.
func New(entries []Landmark, intN func(n int) int) *Catalog {
	if len(entries) == 0 {
		panic("catalog: no landmarks")
	}
	if intN == nil {
		intN = rand.Intn
	}

	c := &Catalog{
		landmarks: make([]Landmark, len(entries)),
		intN:      intN,
	}
	copy(c.landmarks, entries)
	for i := range c.landmarks {
		if c.landmarks[i].Country == "" {
			c.landmarks[i].Country = UnknownCountry
		}
	}
	return c
}

// Default returns the built-in 15-landmark catalog.
func Default() *Catalog {
	return New(landmarks, nil)
}

// Pick returns a uniformly random landmark.
func (c *Catalog) Pick() Landmark {
	return c.landmarks[c.intN(len(c.landmarks))]
}

// All returns a copy of every landmark in table order.
func (c *Catalog) All() []Landmark {
	out := make([]Landmark, len(c.landmarks))
	copy(out, c.landmarks)
	return out
}

func (c *Catalog) Len() int {
	return len(c.landmarks)
}
