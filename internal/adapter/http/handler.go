package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"reachpoint/internal/core/port"
)

// DashboardPath is where clients go after asking for an unknown campaign.
const DashboardPath = "/dashboard"

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP over the session registry and the progress store.
type Handler struct {
	sessions  port.SessionRegistry
	progress  port.ProgressUseCase
	queues    port.QueueUseCase
	followUps port.FollowUpUseCase // nil disables follow-up campaigns
	exports   port.ExportUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	sessions port.SessionRegistry,
	progress port.ProgressUseCase,
	queues port.QueueUseCase,
	followUps port.FollowUpUseCase,
	exports port.ExportUseCase,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{sessions: sessions, progress: progress, queues: queues, followUps: followUps, exports: exports, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns/{campaignID}", func(r chi.Router) {
			r.Post("/sessions", h.handleStartSession)
			r.Get("/summary", h.handleSummary)
			r.Get("/queue", h.handleQueue)
			r.Delete("/progress", h.handleRemoveProgress)
			r.Get("/export/{kind}", h.handleExport)
		})
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", h.handleView)
			r.Delete("/", h.handleEndSession)
			r.Post("/begin", h.handleBegin)
			r.Post("/missed", h.handleBeginMissed)
			r.Post("/outcome", h.handleOutcome)
			r.Post("/survey", h.handleSurvey)
			r.Post("/notes", h.handleNotes)
			r.Post("/back", h.handleBack)
			r.Get("/followups", h.handleFollowUps)
			r.Post("/followups", h.handleCreateFollowUp)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already out
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}
