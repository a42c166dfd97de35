// Package resthandler implements the JSON REST handlers for the short-URL
// API, plus the root-level redirect handler.
package resthandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"shortener/internal/shortener"
	"shortener/pkg/logger"
	"shortener/pkg/serrors"
)

// Handler carries the dependencies shared by all REST endpoints.
type Handler struct {
	shortener shortener.Shortener
}

// New constructs a Handler backed by the given service.
func New(svc shortener.Shortener) *Handler {
	return &Handler{shortener: svc}
}

// errorPayload is the JSON body of every non-2xx response.
type errorPayload struct {
	Type   string `json:"type"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

// statusFromErr maps semantic error kinds onto HTTP status codes. Unclassified
// errors are internal.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, serrors.ErrGone):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromErr(err)
	payload := errorPayload{
		Type:   http.StatusText(status),
		Detail: err.Error(),
		Status: status,
	}
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
		// never leak internals
		payload.Detail = "internal server error"
	}

	writeJSON(w, r, status, payload)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error(r.Context(), "could not encode response", zap.Error(err))
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
