package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/susu3304/geoguess/internal/apperr"
	"github.com/susu3304/geoguess/internal/logging"
)

// APIError is the JSON body of every failed request.
type APIError struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type errorMapping struct {
	status int
	code   string
}

// A malformed signing secret is a deployment fault like a missing one, so
// both surface as configuration errors.
var errorStatus = map[apperr.Kind]errorMapping{
	apperr.Validation:    {http.StatusBadRequest, "validation_error"},
	apperr.Configuration: {http.StatusInternalServerError, "configuration_error"},
	apperr.Decoding:      {http.StatusInternalServerError, "configuration_error"},
	apperr.Internal:      {http.StatusInternalServerError, "internal_error"},
}

const internalErrorMessage = "Internal server error"

// writeError maps err through errorStatus. Internal errors are logged and
// their message replaced.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	m := errorStatus[kind]
	reqID := RequestIDFrom(r.Context())

	body := APIError{
		Error:     err.Error(),
		Code:      m.code,
		Field:     apperr.FieldOf(err),
		RequestID: reqID,
	}

	switch kind {
	case apperr.Validation:
	case apperr.Internal:
		logging.Error("request failed", "err", err, "path", r.URL.Path, "request_id", reqID)
		body.Error = internalErrorMessage
	default:
		// the wrapped cause names the env var; clients only get the summary
		logging.Error("server misconfigured", "err", err, "kind", kind.String(), "request_id", reqID)
		var e *apperr.Error
		if errors.As(err, &e) {
			body.Error = e.Message
		}
	}

	writeJSON(w, m.status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn("failed to write response", "err", err)
	}
}

func (a *API) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, APIError{
		Error:     "Not found",
		Code:      "not_found",
		RequestID: RequestIDFrom(r.Context()),
	})
}

func (a *API) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, APIError{
		Error:     "Method not allowed",
		Code:      "method_not_allowed",
		RequestID: RequestIDFrom(r.Context()),
	})
}
