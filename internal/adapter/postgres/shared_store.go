package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reachpoint/internal/core/domain"
)

// Subscriber delivers change notifications for a campaign.
type Subscriber interface {
	Subscribe(campaignID string, onChange func()) func()
}

// ProgressRepository implements port.SharedStore on PostgreSQL. Outcomes
// live in call_progress, one row per campaign and contact; survey answers
// and notes are append-only logs.
type ProgressRepository struct {
	pool     *pgxpool.Pool
	notifier Subscriber
}

// NewProgressRepository returns a repository backed by pool. notifier may
// be nil, in which case Subscribe is a no-op.
func NewProgressRepository(pool *pgxpool.Pool, notifier Subscriber) *ProgressRepository {
	return &ProgressRepository{pool: pool, notifier: notifier}
}

// FetchSnapshot reads the whole remote view of a campaign in one read-only
// transaction. Only the newest notes of each contact are returned.
func (r *ProgressRepository) FetchSnapshot(ctx context.Context, campaignID string) (*domain.Snapshot, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	snap := domain.NewSnapshot(campaignID, 0)

	rows, err := tx.Query(ctx, `
        SELECT contact_id, attempts, COALESCE(outcome, ''), last_called_at
        FROM call_progress
        WHERE campaign_id = $1`, campaignID)
	if err != nil {
		return nil, fmt.Errorf("query call_progress: %w", err)
	}
	type outcomeRow struct {
		ContactID    string
		Attempts     int
		Outcome      string
		LastCalledAt *time.Time
	}
	outcomes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (outcomeRow, error) {
		var o outcomeRow
		err := row.Scan(&o.ContactID, &o.Attempts, &o.Outcome, &o.LastCalledAt)
		return o, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan call_progress: %w", err)
	}
	for _, o := range outcomes {
		c := snap.Contact(o.ContactID)
		c.Attempts = o.Attempts
		if o.Outcome != "" {
			c.Outcome = domain.ParseOutcome(o.Outcome)
		}
		if o.LastCalledAt != nil {
			c.LastCalledAt = o.LastCalledAt.UnixMilli()
		}
		snap.Contacts[o.ContactID] = c
	}

	rows, err = tx.Query(ctx, `
        SELECT contact_id, answer, at
        FROM survey_responses
        WHERE campaign_id = $1
        ORDER BY at, id`, campaignID)
	if err != nil {
		return nil, fmt.Errorf("query survey_responses: %w", err)
	}
	surveys, err := pgx.CollectRows(rows, scanLogRow)
	if err != nil {
		return nil, fmt.Errorf("scan survey_responses: %w", err)
	}
	for _, l := range surveys {
		c := snap.Contact(l.ContactID)
		c.AppendSurvey(l.Value, l.At.UnixMilli())
		snap.Contacts[l.ContactID] = c
	}

	rows, err = tx.Query(ctx, `
        SELECT contact_id, text, at
        FROM (
            SELECT contact_id, text, at, id,
                   row_number() OVER (PARTITION BY contact_id ORDER BY at DESC, id DESC) AS rn
            FROM notes
            WHERE campaign_id = $1
        ) n
        WHERE rn <= $2
        ORDER BY at, id`, campaignID, domain.MaxNotesLogs)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	notes, err := pgx.CollectRows(rows, scanLogRow)
	if err != nil {
		return nil, fmt.Errorf("scan notes: %w", err)
	}
	for _, l := range notes {
		c := snap.Contact(l.ContactID)
		c.AppendNote(l.Value, l.At.UnixMilli())
		snap.Contacts[l.ContactID] = c
	}

	snap.Recount()
	return &snap, nil
}

type logRow struct {
	ContactID string
	Value     string
	At        time.Time
}

func scanLogRow(row pgx.CollectableRow) (logRow, error) {
	var l logRow
	err := row.Scan(&l.ContactID, &l.Value, &l.At)
	return l, err
}

// PushOutcome upserts the outcome row of a contact. Attempts and the last
// call time never move backwards, so replays and out-of-order pushes from
// several operators are harmless.
func (r *ProgressRepository) PushOutcome(ctx context.Context, campaignID, contactID string, rec domain.ContactProgress) error {
	var (
		outcome      *string
		lastCalledAt *time.Time
	)
	if rec.Outcome != domain.OutcomeUnset {
		o := string(rec.Outcome)
		outcome = &o
	}
	if rec.LastCalledAt > 0 {
		t := time.UnixMilli(rec.LastCalledAt).UTC()
		lastCalledAt = &t
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO call_progress (campaign_id, contact_id, attempts, outcome, last_called_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (campaign_id, contact_id) DO UPDATE SET
            attempts       = GREATEST(call_progress.attempts, EXCLUDED.attempts),
            outcome        = COALESCE(EXCLUDED.outcome, call_progress.outcome),
            last_called_at = GREATEST(call_progress.last_called_at, EXCLUDED.last_called_at)`,
		campaignID, contactID, rec.Attempts, outcome, lastCalledAt)
	return err
}

// PushSurveyLog appends a survey answer.
func (r *ProgressRepository) PushSurveyLog(ctx context.Context, campaignID, contactID, answer string, at int64) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO survey_responses (id, campaign_id, contact_id, answer, at)
        VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), campaignID, contactID, answer, time.UnixMilli(at).UTC())
	return err
}

// PushNoteLog appends a note revision.
func (r *ProgressRepository) PushNoteLog(ctx context.Context, campaignID, contactID, text string, at int64) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO notes (id, campaign_id, contact_id, text, at)
        VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), campaignID, contactID, text, time.UnixMilli(at).UTC())
	return err
}

// Subscribe registers onChange with the notifier.
func (r *ProgressRepository) Subscribe(_ context.Context, campaignID string, onChange func()) (func(), error) {
	if r.notifier == nil {
		return func() {}, nil
	}
	return r.notifier.Subscribe(campaignID, onChange), nil
}
