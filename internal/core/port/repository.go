package port

import (
	"context"
	"errors"

	"reachpoint/internal/core/domain"
)

var (
	// ErrCampaignNotFound is returned when a campaign id cannot be resolved.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrCacheMiss is returned by LocalCache.Get for an absent key.
	ErrCacheMiss = errors.New("cache miss")
)

// ContactProvider exposes the student dataset. It is an outbound port in
// hexagonal architecture.
type ContactProvider interface {
	// AllContacts returns every contact in dataset order.
	AllContacts(ctx context.Context) ([]domain.Contact, error)
}

// CampaignProvider resolves campaigns owned by the CRUD layer.
type CampaignProvider interface {
	// CampaignByID returns the campaign, or nil when it does not exist.
	CampaignByID(ctx context.Context, id string) (*domain.Campaign, error)
}

// LocalCache is a best-effort key/value cache private to this process.
// Callers must tolerate every method failing.
type LocalCache interface {
	// Get returns ErrCacheMiss when the key is absent.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// SharedStore is the backing store shared by every operator of a
// campaign. Pushes are append-only or upserts and are safe to retry.
type SharedStore interface {
	// FetchSnapshot returns the remote view of a campaign. A nil snapshot
	// with a nil error means the store is unavailable and the caller
	// should proceed on local state.
	FetchSnapshot(ctx context.Context, campaignID string) (*domain.Snapshot, error)
	// PushOutcome upserts the denormalised per-contact outcome row.
	PushOutcome(ctx context.Context, campaignID, contactID string, rec domain.ContactProgress) error
	// PushSurveyLog appends a survey answer.
	PushSurveyLog(ctx context.Context, campaignID, contactID, answer string, at int64) error
	// PushNoteLog appends a note revision.
	PushNoteLog(ctx context.Context, campaignID, contactID, text string, at int64) error
	// Subscribe calls onChange whenever the remote progress of the
	// campaign changes. The returned function stops the subscription.
	Subscribe(ctx context.Context, campaignID string, onChange func()) (func(), error)
}

// CampaignWriter persists campaigns created by this service.
type CampaignWriter interface {
	SaveCampaign(ctx context.Context, c domain.Campaign) error
}

// ExportWriter keeps a copy of every exported report row set.
type ExportWriter interface {
	// SaveExportRows stores rows, each as its own JSON document.
	SaveExportRows(ctx context.Context, campaignID string, kind domain.ExportKind, rows []any) error
}
