package guess

import (
	"fmt"

	"github.com/susu3304/geoguess/internal/catalog"
	"github.com/susu3304/geoguess/internal/geoscore"
	"github.com/susu3304/geoguess/internal/streetview"
)

// Service is built once at startup and shared by every request. It holds no
// mutable state.
type Service struct {
	catalog *catalog.Catalog
	signer  *streetview.Signer
}

func NewService(c *catalog.Catalog, signer *streetview.Signer) *Service {
	return &Service{catalog: c, signer: signer}
}

// Location is what a player is told about a new round.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Country string  `json:"country"`
}

// Result of scoring one guess.
type Result struct {
	DistanceKm float64 `json:"distance_km"`
	Score      int     `json:"score"`
}

// RandomLocation picks a landmark for a new round.
func (s *Service) RandomLocation() Location {
	l := s.catalog.Pick()
	return Location{
		Lat:     l.Location.Lat,
		Lng:     l.Location.Lng,
		Country: l.Country,
	}
}

// Score rates guess against actual. Both points must already be validated.
// DistanceKm is rounded to two decimals; the score uses the exact distance.
func (s *Service) Score(actual, guess geoscore.Point) Result {
	d := geoscore.DistanceKm(actual, guess)
	return Result{
		DistanceKm: geoscore.RoundKm(d),
		Score:      geoscore.Score(d),
	}
}

// StreetViewURL returns the signed imagery URL for p.
func (s *Service) StreetViewURL(p geoscore.Point) (string, error) {
	return s.signer.ImageryURL(p)
}

// StreetViewConfigured reports whether StreetViewURL can succeed.
func (s *Service) StreetViewConfigured() bool {
	return s.signer.Err() == nil
}

// Landmarks lists the catalog.
func (s *Service) Landmarks() []catalog.Landmark {
	return s.catalog.All()
}

// FormatDistance formats distance in a human-readable way.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%.0fm", km*1000.0)
	}
	return fmt.Sprintf("%.2fkm", km)
}
