package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"reachpoint/internal/core/domain"
	"reachpoint/internal/core/port"
)

type queueResponse struct {
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	IDs          []string `json:"ids"`
	NotCalled    []string `json:"not_called"`
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	totals := h.progress.Summary(r.Context(), chi.URLParam(r, "campaignID"))
	h.writeJSON(w, http.StatusOK, struct {
		domain.Totals
		AllDone bool `json:"all_done"`
	}{totals, totals.AllDone()})
}

// handleRemoveProgress forgets the locally cached progress of a campaign.
func (h *Handler) handleRemoveProgress(w http.ResponseWriter, r *http.Request) {
	h.progress.RemoveProgress(r.Context(), chi.URLParam(r, "campaignID"))
	w.WriteHeader(http.StatusNoContent)
}

// handleQueue builds the campaign queue and lists which contacts were
// never attempted.
func (h *Handler) handleQueue(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	campaign, queue, err := h.queues.Build(r.Context(), campaignID)
	if errors.Is(err, port.ErrCampaignNotFound) {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Redirect: DashboardPath})
		return
	}
	if err != nil {
		h.logger.Error("build queue error", slog.String("campaign_id", campaignID), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, queueResponse{
		CampaignID:   campaign.ID,
		CampaignName: campaign.Name,
		IDs:          queue.IDs,
		NotCalled:    h.progress.NotCalled(r.Context(), campaign.ID, queue.IDs),
	})
}

// handleExport serves one report row set as JSON. Every export is also
// recorded by the export use case.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	kind, ok := domain.ParseExportKind(chi.URLParam(r, "kind"))
	if !ok {
		http.Error(w, "unknown export", http.StatusNotFound)
		return
	}

	switch kind {
	case domain.ExportSurvey:
		h.writeJSON(w, http.StatusOK, h.exports.SurveyRows(r.Context(), campaignID))
	case domain.ExportOutcomes:
		h.writeJSON(w, http.StatusOK, h.exports.OutcomeRows(r.Context(), campaignID))
	case domain.ExportNotCalled:
		rows, err := h.exports.NotCalledRows(r.Context(), campaignID)
		if errors.Is(err, port.ErrCampaignNotFound) {
			h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Redirect: DashboardPath})
			return
		}
		if err != nil {
			h.logger.Error("export not called error", slog.String("campaign_id", campaignID), slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		h.writeJSON(w, http.StatusOK, rows)
	}
}
