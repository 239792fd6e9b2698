package port

import (
	"context"
	"errors"

	"reachpoint/internal/core/domain"
)

// ProgressUseCase is the progress store surface exposed to the transport
// layer.
type ProgressUseCase interface {
	// Summary returns the totals of a campaign.
	Summary(ctx context.Context, campaignID string) domain.Totals
	// RemoveProgress clears the locally cached progress of a campaign.
	// The shared store keeps its history.
	RemoveProgress(ctx context.Context, campaignID string)
	// NotCalled returns queue ids that have never been attempted.
	NotCalled(ctx context.Context, campaignID string, queueIDs []string) []string
}

// Mode is the state of an execution session.
type Mode string

const (
	ModeIdle    Mode = "idle"
	ModeRunning Mode = "running"
	ModeMissed  Mode = "missed"
	ModeSummary Mode = "summary"
)

// Strategy selects the next contact to call.
type Strategy string

const (
	// StrategyUnattempted picks the first queued contact never attempted.
	StrategyUnattempted Strategy = "unattempted"
	// StrategyMissed picks the first queued contact whose last attempt
	// went unanswered.
	StrategyMissed Strategy = "missed"
)

// SessionView is everything a rendering layer needs to draw a session.
type SessionView struct {
	SessionID      string                  `json:"session_id"`
	CampaignID     string                  `json:"campaign_id"`
	CampaignName   string                  `json:"campaign_name"`
	Mode           Mode                    `json:"mode"`
	Strategy       Strategy                `json:"strategy"`
	CurrentID      string                  `json:"current_id,omitempty"`
	Current        domain.Contact          `json:"current,omitempty"`
	Progress       *domain.ContactProgress `json:"progress,omitempty"`
	SurveyAnswer   string                  `json:"survey_answer,omitempty"`
	Notes          string                  `json:"notes"`
	Survey         *domain.Survey          `json:"survey,omitempty"`
	Totals         domain.Totals           `json:"totals"`
	QueueLen       int                     `json:"queue_len"`
	UndoDepth      int                     `json:"undo_depth"`
	AllDone        bool                    `json:"all_done"`
	CanRetryMissed bool                    `json:"can_retry_missed"`
}

// FollowUpFilter narrows the follow-up list. Empty fields match anything.
type FollowUpFilter struct {
	Outcome domain.Outcome
	Query   string
}

// FollowUp is a contact matched by a FollowUpFilter.
type FollowUp struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Phone        string         `json:"phone"`
	Outcome      domain.Outcome `json:"outcome"`
	Answer       string         `json:"answer"`
	LastCalledAt int64          `json:"last_called_at"`
}

// ExecutionUseCase drives one operator through a campaign queue. Every
// method that changes state returns the resulting view.
type ExecutionUseCase interface {
	ID() string
	View() SessionView
	BeginCalls(ctx context.Context) SessionView
	BeginMissed(ctx context.Context) SessionView
	SelectSurveyAnswer(ctx context.Context, answer string) SessionView
	RecordOutcome(ctx context.Context, outcome domain.Outcome) SessionView
	EditNotes(text string) SessionView
	Back(ctx context.Context) SessionView
	FollowUps(filter FollowUpFilter) []FollowUp
	Queue() []string
	Close()
}

// SessionRegistry creates and tracks execution sessions.
type SessionRegistry interface {
	// Start boots a session for a campaign. It returns ErrCampaignNotFound
	// for an unknown campaign id.
	Start(ctx context.Context, campaignID string) (ExecutionUseCase, error)
	Get(id string) (ExecutionUseCase, bool)
	// End closes a session and stops its live updates.
	End(id string) bool
}

// QueueUseCase builds the calling queue of a campaign.
type QueueUseCase interface {
	Build(ctx context.Context, campaignID string) (domain.Campaign, domain.Queue, error)
}

// ErrNoContacts is returned when a follow-up would target nobody.
var ErrNoContacts = errors.New("no contacts selected")

// FollowUpUseCase turns a follow-up selection into a new campaign.
type FollowUpUseCase interface {
	// Create saves a campaign limited to contactIDs and named after the
	// source campaign.
	Create(ctx context.Context, sourceName string, contactIDs []string) (domain.Campaign, error)
}

// ExportUseCase builds report row sets. Every call also records the rows it
// returns when an ExportWriter is configured.
type ExportUseCase interface {
	SurveyRows(ctx context.Context, campaignID string) []domain.SurveyExportRow
	OutcomeRows(ctx context.Context, campaignID string) []domain.OutcomeExportRow
	// NotCalledRows returns ErrCampaignNotFound for an unknown campaign.
	NotCalledRows(ctx context.Context, campaignID string) ([]domain.NotCalledRow, error)
}
