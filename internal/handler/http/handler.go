// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and compression
// concerns are all handled at this layer before requests are forwarded
// to the service layer.
package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"devjournal/internal/identity"
	"devjournal/internal/logger"
	"devjournal/internal/service"
	"devjournal/models"
)

type Handler struct {
	services *service.Services
	verifier identity.Verifier

	logger *logger.Logger
}

func NewHandler(services *service.Services, verifier identity.Verifier, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		verifier: verifier,
		logger:   logger,
	}
}

// respondJSON writes v as a JSON response body with the given status.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to encode response body")
	}
}

// respondServiceError maps a service or store error onto an HTTP status
// and writes a JSON error body.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		respondJSON(w, r, status, errorBody{Error: http.StatusText(status)})
		return
	}

	log.Debug().Err(err).Msg("request rejected")
	respondJSON(w, r, status, errorBody{Error: err.Error()})
}

type errorBody struct {
	Error string `json:"error"`
}

// decodeJSON decodes the request body into dst, writing a 400 response
// on malformed input. Reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		respondJSON(w, r, http.StatusBadRequest, errorBody{Error: "invalid JSON body"})
		return false
	}
	return true
}

// pageParams reads the optional page/limit query parameters. Missing or
// malformed values fall back to zero, which the service layer clamps to
// the defaults.
func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}

// respondPage writes the standard pagination envelope.
func respondPage[T any](w http.ResponseWriter, r *http.Request, data []T, total int64, page, limit int) {
	respondJSON(w, r, http.StatusOK, models.NewPaginated(data, total, models.NormalizePage(page, limit)))
}
