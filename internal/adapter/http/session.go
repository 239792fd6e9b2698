package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"reachpoint/internal/core/domain"
	"reachpoint/internal/core/port"
)

type outcomeRequest struct {
	Outcome string `json:"outcome"`
}

type surveyRequest struct {
	Answer string `json:"answer"`
}

type notesRequest struct {
	Text string `json:"text"`
}

// handleStartSession boots a session for the campaign in the path. An
// unknown campaign answers 404 with a redirect to the dashboard.
func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	campaignID := chi.URLParam(r, "campaignID")
	sess, err := h.sessions.Start(r.Context(), campaignID)
	if errors.Is(err, port.ErrCampaignNotFound) {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Redirect: DashboardPath})
		return
	}
	if err != nil {
		h.logger.Error("start session error", slog.String("campaign_id", campaignID), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusCreated, sess.View())
}

// session resolves the {sessionID} path parameter, answering 404 itself
// when the session is gone.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (port.ExecutionUseCase, bool) {
	sess, ok := h.sessions.Get(chi.URLParam(r, "sessionID"))
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

func (h *Handler) handleView(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.session(w, r); ok {
		h.writeJSON(w, http.StatusOK, sess.View())
	}
}

func (h *Handler) handleEndSession(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.End(chi.URLParam(r, "sessionID")) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleBegin(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.session(w, r); ok {
		h.writeJSON(w, http.StatusOK, sess.BeginCalls(r.Context()))
	}
}

func (h *Handler) handleBeginMissed(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.session(w, r); ok {
		h.writeJSON(w, http.StatusOK, sess.BeginMissed(r.Context()))
	}
}

// handleOutcome records the result of the current call. Only "answered"
// and "no_answer" are accepted.
func (h *Handler) handleOutcome(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req outcomeRequest
	if !h.decode(w, r, &req) {
		return
	}
	outcome := domain.Outcome(req.Outcome)
	if outcome != domain.OutcomeAnswered && outcome != domain.OutcomeNoAnswer {
		http.Error(w, "outcome must be answered or no_answer", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, sess.RecordOutcome(r.Context(), outcome))
}

func (h *Handler) handleSurvey(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req surveyRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.writeJSON(w, http.StatusOK, sess.SelectSurveyAnswer(r.Context(), req.Answer))
}

func (h *Handler) handleNotes(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req notesRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.writeJSON(w, http.StatusOK, sess.EditNotes(req.Text))
}

func (h *Handler) handleBack(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.session(w, r); ok {
		h.writeJSON(w, http.StatusOK, sess.Back(r.Context()))
	}
}

func followUpFilter(r *http.Request) port.FollowUpFilter {
	q := r.URL.Query()
	return port.FollowUpFilter{Outcome: domain.Outcome(q.Get("outcome")), Query: q.Get("q")}
}

func (h *Handler) handleFollowUps(w http.ResponseWriter, r *http.Request) {
	if sess, ok := h.session(w, r); ok {
		h.writeJSON(w, http.StatusOK, sess.FollowUps(followUpFilter(r)))
	}
}

// handleCreateFollowUp saves a new campaign restricted to the contacts of
// the follow-up list selected by the query string.
func (h *Handler) handleCreateFollowUp(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if h.followUps == nil {
		http.Error(w, "follow-up campaigns unavailable", http.StatusServiceUnavailable)
		return
	}
	rows := sess.FollowUps(followUpFilter(r))
	ids := make([]string, 0, len(rows))
	for _, f := range rows {
		ids = append(ids, f.ID)
	}
	campaign, err := h.followUps.Create(r.Context(), sess.View().CampaignName, ids)
	if errors.Is(err, port.ErrNoContacts) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		h.logger.Error("create follow-up error", slog.String("session_id", sess.ID()), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusCreated, campaign)
}
