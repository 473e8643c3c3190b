package api

import (
	"net/http"

	"github.com/susu3304/geoguess/internal/apperr"
	"github.com/susu3304/geoguess/internal/geoscore"
	"github.com/susu3304/geoguess/internal/logging"
	"github.com/susu3304/geoguess/internal/metrics"
)

func (a *API) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "GeoGuessr Backend API",
		"endpoints": map[string]string{
			"GET /random-location": "Get random coordinates with Street View coverage",
			"POST /guess":          "Submit guess and get distance/score",
			"GET /street-view-url": "Get a signed Street View image URL for lat/lng",
		},
	})
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":                 "ok",
		"locations":              len(a.service.Landmarks()),
		"street_view_configured": a.service.StreetViewConfigured(),
	})
}

func (a *API) handleRandomLocation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.service.RandomLocation())
}

var guessFields = []string{"actual_lat", "actual_lng", "guess_lat", "guess_lng"}

func (a *API) handleGuess(w http.ResponseWriter, r *http.Request) {
	body, err := decodeObject(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	v, err := coordsFromBody(body, guessFields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	actual := geoscore.Point{Lat: v["actual_lat"], Lng: v["actual_lng"]}
	guessed := geoscore.Point{Lat: v["guess_lat"], Lng: v["guess_lng"]}

	// latitudes are checked before longitudes across both points
	switch {
	case !geoscore.ValidLat(actual.Lat):
		writeError(w, r, apperr.NewValidation("actual_lat", geoscore.MsgLatitudeRange))
		return
	case !geoscore.ValidLat(guessed.Lat):
		writeError(w, r, apperr.NewValidation("guess_lat", geoscore.MsgLatitudeRange))
		return
	case !geoscore.ValidLng(actual.Lng):
		writeError(w, r, apperr.NewValidation("actual_lng", geoscore.MsgLongitudeRange))
		return
	case !geoscore.ValidLng(guessed.Lng):
		writeError(w, r, apperr.NewValidation("guess_lng", geoscore.MsgLongitudeRange))
		return
	}

	result := a.service.Score(actual, guessed)
	metrics.ObserveGuess(result.DistanceKm, result.Score)

	writeJSON(w, http.StatusOK, result)
}

func (a *API) handleStreetViewURL(w http.ResponseWriter, r *http.Request) {
	v, err := coordsFromQuery(r.URL.Query(), []string{"lat", "lng"})
	if err != nil {
		writeError(w, r, err)
		return
	}

	p := geoscore.Point{Lat: v["lat"], Lng: v["lng"]}
	if err := p.Validate("lat", "lng"); err != nil {
		writeError(w, r, err)
		return
	}

	signed, err := a.service.StreetViewURL(p)
	if err != nil {
		metrics.ObserveSignedURL(apperr.KindOf(err).String())
		writeError(w, r, err)
		return
	}
	metrics.ObserveSignedURL("ok")
	logging.Debug("signed street view url", "lat", p.Lat, "lng", p.Lng, "request_id", RequestIDFrom(r.Context()))

	writeJSON(w, http.StatusOK, map[string]string{"url": signed})
}
