// Package api exposes the analysis service over HTTP with JSON bodies.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ncaam_v5/strategy/internal/analysis"
	"ncaam_v5/strategy/internal/metrics"
	"ncaam_v5/strategy/internal/models"

	"github.com/rs/zerolog/log"
)

// Handler serves analysis requests
type Handler struct {
	service *analysis.Service
	started time.Time
}

// errorResponse is the body of every failed request
type errorResponse struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

type teamsResponse struct {
	Count int      `json:"count"`
	Teams []string `json:"teams"`
}

// riskResponse adds the rendered report to the assessment
type riskResponse struct {
	*models.RiskAssessment
	Report string `json:"report"`
}

// NewHandler creates a handler over an analysis service
func NewHandler(service *analysis.Service) *Handler {
	return &Handler{service: service, started: time.Now()}
}

// RegisterHTTP registers the API endpoints onto mux
func (h *Handler) RegisterHTTP(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/compare", h.handleCompare)
	mux.HandleFunc("GET /api/gameplan", h.handleGamePlan)
	mux.HandleFunc("GET /api/risk", h.handleRisk)
	mux.HandleFunc("GET /api/teams", h.handleTeams)
	mux.HandleFunc("GET /health", h.handleHealth)
}

func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.service.Compare(q.Get("team1"), q.Get("team2"))
	if err != nil {
		writeError(w, analysis.OpCompare, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleGamePlan(w http.ResponseWriter, r *http.Request) {
	plan, err := h.service.GamePlan(r.URL.Query().Get("team"))
	if err != nil {
		writeError(w, analysis.OpGamePlan, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (h *Handler) handleRisk(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.service.Risk(q.Get("team1"), q.Get("team2"))
	if err != nil {
		writeError(w, analysis.OpRisk, err)
		return
	}
	writeJSON(w, http.StatusOK, riskResponse{RiskAssessment: result, Report: result.Report()})
}

func (h *Handler) handleTeams(w http.ResponseWriter, r *http.Request) {
	teams := h.service.Teams(r.URL.Query().Get("filter"))
	if teams == nil {
		teams = []string{}
	}
	writeJSON(w, http.StatusOK, teamsResponse{Count: len(teams), Teams: teams})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"teams":          len(h.service.Teams("")),
		"uptime_seconds": int(time.Since(h.started).Seconds()),
	})
}

// StatusFor maps an analysis error onto an HTTP status code
func StatusFor(err error) int {
	var (
		notFound    *analysis.NotFoundError
		unavailable *analysis.UnavailableError
	)
	switch {
	case errors.Is(err, analysis.ErrMissingTeam), errors.Is(err, analysis.ErrMissingTeams):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &unavailable):
		return http.StatusUnprocessableEntity
	default:
		// Schema errors mean the loaded table is unusable
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, operation string, err error) {
	status := StatusFor(err)
	resp := errorResponse{Error: err.Error()}

	var notFound *analysis.NotFoundError
	if errors.As(err, &notFound) {
		resp.Suggestion = notFound.Suggestion
	}

	if status >= http.StatusInternalServerError {
		metrics.RecordError("api", operation)
		log.Error().Err(err).Str("operation", operation).Msg("Request failed")
	}

	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("Failed to write response")
	}
}
