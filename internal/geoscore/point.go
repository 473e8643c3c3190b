package geoscore

import (
	"github.com/susu3304/geoguess/internal/apperr"
)

const (
	MsgLatitudeRange  = "Latitude must be -90 to 90"
	MsgLongitudeRange = "Longitude must be -180 to 180"
)

// ValidLat reports whether lat is in [-90, 90]. NaN is rejected.
func ValidLat(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// ValidLng reports whether lng is in [-180, 180]. NaN is rejected.
func ValidLng(lng float64) bool {
	return lng >= -180 && lng <= 180
}

// Validate checks both coordinates. latField and lngField name the inputs the
// values came from and end up on the returned validation error.
func (p Point) Validate(latField, lngField string) error {
	if !ValidLat(p.Lat) {
		return apperr.NewValidation(latField, MsgLatitudeRange)
	}
	if !ValidLng(p.Lng) {
		return apperr.NewValidation(lngField, MsgLongitudeRange)
	}
	return nil
}
