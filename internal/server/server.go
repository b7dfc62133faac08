package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"launch_dash/internal/analytics"
	"launch_dash/internal/models"
)

// Slider mirrors the payload range control rendered by the page
type Slider struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// Handler serves the dashboard page and its JSON endpoints
type Handler struct {
	Dashboard *analytics.Dashboard
	Slider    Slider
}

type errorResponse struct {
	Ok      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type dropdownOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type sliderState struct {
	Slider
	Value [2]float64 `json:"value"`
}

type optionsResponse struct {
	Sites        []string         `json:"sites"`
	Options      []dropdownOption `json:"options"`
	DefaultValue string           `json:"default_value"`
	PayloadMin   float64          `json:"payload_min"`
	PayloadMax   float64          `json:"payload_max"`
	Slider       sliderState      `json:"slider"`
}

// NewRouter wires the handler into a chi router with the standard middleware stack
func NewRouter(h *Handler, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	h.RegisterRoutes(r)
	return r
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Get("/health", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/options", h.handleOptions)
		r.Get("/outcomes", h.handleOutcomes)
		r.Get("/scatter", h.handleScatter)
		r.Get("/dashboard", h.handleDashboard)
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	s := h.Dashboard.Store()
	sites := s.Sites()
	lo, hi := s.PayloadBounds()

	options := []dropdownOption{
		{Label: "All Sites", Value: models.SiteModeAll},
		{Label: "All Sites (Success)", Value: models.SiteModeSuccess},
		{Label: "All Sites (Failures)", Value: models.SiteModeFailure},
	}
	for _, site := range sites {
		options = append(options, dropdownOption{Label: site, Value: site})
	}

	writeJSON(w, http.StatusOK, optionsResponse{
		Sites:        sites,
		Options:      options,
		DefaultValue: models.SiteModeAll,
		PayloadMin:   lo,
		PayloadMax:   hi,
		Slider:       sliderState{Slider: h.Slider, Value: [2]float64{lo, hi}},
	})
}

func (h *Handler) handleOutcomes(w http.ResponseWriter, r *http.Request) {
	mode, err := siteModeParam(r)
	if err != nil {
		writeSelectionError(w, err)
		return
	}
	dist, err := h.Dashboard.Outcomes(mode)
	if err != nil {
		writeSelectionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dist)
}

func (h *Handler) handleScatter(w http.ResponseWriter, r *http.Request) {
	sel, err := h.selectionParams(r)
	if err != nil {
		writeSelectionError(w, err)
		return
	}
	view, err := h.Dashboard.Scatter(sel.Mode, sel.Range)
	if err != nil {
		writeSelectionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sel, err := h.selectionParams(r)
	if err != nil {
		writeSelectionError(w, err)
		return
	}
	view, err := h.Dashboard.Render(sel)
	if err != nil {
		writeSelectionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// siteModeParam reads ?site=, defaulting to ALL like the page's dropdown
func siteModeParam(r *http.Request) (models.SiteMode, error) {
	value := r.URL.Query().Get("site")
	if value == "" {
		return models.CombinedMode(), nil
	}
	mode, err := models.ParseSiteMode(value)
	if err != nil {
		return models.SiteMode{}, &analytics.InvalidSelectionError{Field: "site", Value: value, Reason: err}
	}
	return mode, nil
}

// selectionParams reads ?site=&min=&max=; missing bounds default to the dataset's payload bounds
func (h *Handler) selectionParams(r *http.Request) (models.Selection, error) {
	mode, err := siteModeParam(r)
	if err != nil {
		return models.Selection{}, err
	}

	rng := h.Dashboard.FullRange()
	if rng.Lo, err = floatParam(r, "min", rng.Lo); err != nil {
		return models.Selection{}, err
	}
	if rng.Hi, err = floatParam(r, "max", rng.Hi); err != nil {
		return models.Selection{}, err
	}

	return models.Selection{Mode: mode, Range: rng}, nil
}

func floatParam(r *http.Request, name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &analytics.InvalidSelectionError{
			Field:  "payload_range",
			Value:  raw,
			Reason: errors.Join(models.ErrInvalidPayloadRange, err),
		}
	}
	return v, nil
}

func writeSelectionError(w http.ResponseWriter, err error) {
	var selErr *analytics.InvalidSelectionError
	if errors.As(err, &selErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Ok: false, Code: "invalid_selection", Message: selErr.Error()})
		return
	}
	slog.Error("Failed to build view", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Ok: false, Code: "internal", Message: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// requestLogger logs each request once it completes
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Debug("Handled request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
