package geoscore

import (
	"math"
)

const (
	// EarthRadiusKm is the IUGG mean Earth radius. Distances are computed on a
	// sphere of this radius, so the largest possible result is π·R ≈ 20015.114 km.
	EarthRadiusKm = 6371.0088

	// MaxScore is awarded for a perfect guess.
	MaxScore = 5000

	// DecayKm is the e-folding distance of the score curve.
	DecayKm = 2000.0

	// ForfeitKm is the distance beyond which a guess scores nothing.
	ForfeitKm = 20000.0
)

// MaxDistanceKm is the antipodal distance on the reference sphere.
const MaxDistanceKm = math.Pi * EarthRadiusKm

// Point is a WGS84 latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Haversine distance (km) between two points. Crossing the antimeridian needs
// no special casing since only sin² of the longitude delta is used.
func DistanceKm(a, b Point) float64 {
	φ1 := a.Lat * math.Pi / 180.0
	φ2 := b.Lat * math.Pi / 180.0
	dφ := (b.Lat - a.Lat) * math.Pi / 180.0
	dλ := (b.Lng - a.Lng) * math.Pi / 180.0

	sinDφ := math.Sin(dφ / 2)
	sinDλ := math.Sin(dλ / 2)

	h := sinDφ*sinDφ + math.Cos(φ1)*math.Cos(φ2)*sinDλ*sinDλ
	// rounding can push h a hair outside [0,1] near antipodes
	h = math.Min(1, math.Max(0, h))

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// DistanceMeters is DistanceKm in meters.
func DistanceMeters(a, b Point) float64 {
	return DistanceKm(a, b) * 1000.0
}

// Score converts a distance into an integer in [0, MaxScore]:
// round(5000 * exp(-d/2000)), or 0 past ForfeitKm.
// Ties round half to even, so a raw value of 4974.5 scores 4974.
func Score(distanceKm float64) int {
	if distanceKm > ForfeitKm {
		return 0
	}
	if distanceKm < 0 {
		distanceKm = 0
	}
	return roundScore(MaxScore * math.Exp(-distanceKm/DecayKm))
}

func roundScore(raw float64) int {
	score := int(math.RoundToEven(raw))

	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// RoundKm rounds a distance to two decimals for presentation.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
