package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/susu3304/geoguess/internal/apperr"
)

const (
	maxBodyBytes = 1 << 16

	errNotNumbers = "Coordinates must be numbers"
	errBadBody    = "Request body must be a JSON object"
)

func missing(field string) error {
	return apperr.NewValidation(field, "Missing: "+field)
}

// decodeObject reads a JSON object body. Numbers are kept as json.Number.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil || body == nil {
		return nil, apperr.NewValidation("", errBadBody)
	}
	return body, nil
}

// coordsFromBody reports the first missing field, then the first non-numeric
// one. Numeric strings are accepted.
func coordsFromBody(body map[string]any, fields []string) (map[string]float64, error) {
	for _, f := range fields {
		if _, ok := body[f]; !ok {
			return nil, missing(f)
		}
	}

	out := make(map[string]float64, len(fields))
	for _, f := range fields {
		var (
			v  float64
			ok bool
		)
		switch raw := body[f].(type) {
		case json.Number:
			v, ok = parseCoord(raw.String())
		case string:
			v, ok = parseCoord(raw)
		}
		if !ok {
			return nil, apperr.NewValidation(f, errNotNumbers)
		}
		out[f] = v
	}
	return out, nil
}

func coordsFromQuery(q url.Values, fields []string) (map[string]float64, error) {
	for _, f := range fields {
		if !q.Has(f) {
			return nil, missing(f)
		}
	}

	out := make(map[string]float64, len(fields))
	for _, f := range fields {
		v, ok := parseCoord(q.Get(f))
		if !ok {
			return nil, apperr.NewValidation(f, errNotNumbers)
		}
		out[f] = v
	}
	return out, nil
}

// parseCoord parses a decimal. Overflow yields ±Inf, which then fails the
// range check instead of the numeric one.
func parseCoord(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}
