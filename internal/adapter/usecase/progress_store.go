package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"reachpoint/internal/core/domain"
	"reachpoint/internal/core/port"
)

// progressKeyPrefix namespaces campaign snapshots in the local cache.
const progressKeyPrefix = "reachpoint.progress."

const (
	defaultWriteBuffer = 256
	defaultPushTimeout  = 10 * time.Second
	defaultFetchTimeout = 10 * time.Second
)

// ProgressStore keeps campaign progress local-first. Every mutation is
// persisted to the local cache synchronously and then written through to
// the shared store by a background writer. Local state is authoritative
// for the caller; the shared store is eventually consistent.
type ProgressStore struct {
	cache  port.LocalCache
	remote port.SharedStore // nil means local-only
	logger *slog.Logger
	now    func() time.Time

	fetchTimeout time.Duration

	mu      sync.Mutex
	fetches singleflight.Group
	writer  *writeThrough
}

// ProgressOption configures a ProgressStore.
type ProgressOption func(*progressOptions)

type progressOptions struct {
	now          func() time.Time
	buffer       int
	pushTimeout  time.Duration
	fetchTimeout time.Duration
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) ProgressOption {
	return func(o *progressOptions) { o.now = now }
}

// WithWriteBuffer sets how many pushes may wait for the writer before new
// ones are dropped.
func WithWriteBuffer(n int) ProgressOption {
	return func(o *progressOptions) {
		if n > 0 {
			o.buffer = n
		}
	}
}

// WithPushTimeout bounds each push to the shared store.
func WithPushTimeout(d time.Duration) ProgressOption {
	return func(o *progressOptions) {
		if d > 0 {
			o.pushTimeout = d
		}
	}
}

// WithFetchTimeout bounds each snapshot read from the shared store,
// independently of the callers waiting on it.
func WithFetchTimeout(d time.Duration) ProgressOption {
	return func(o *progressOptions) {
		if d > 0 {
			o.fetchTimeout = d
		}
	}
}

// NewProgressStore creates a store and starts its write-through worker.
// remote may be nil to run without a shared store. Call Close on shutdown.
func NewProgressStore(cache port.LocalCache, remote port.SharedStore, logger *slog.Logger, opts ...ProgressOption) *ProgressStore {
	o := progressOptions{
		now:          time.Now,
		buffer:       defaultWriteBuffer,
		pushTimeout:  defaultPushTimeout,
		fetchTimeout: defaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressStore{
		cache:  cache,
		remote: remote,
		logger: logger,
		now:    o.now,
		writer: newWriteThrough(logger, o.buffer, o.pushTimeout),

		fetchTimeout: o.fetchTimeout,
	}
}

// LoadOrInit returns the cached snapshot of a campaign, or creates, caches
// and returns an empty one sized to the queue. A cached snapshot that was
// created before the queue size was known gets it now. It never fails.
func (s *ProgressStore) LoadOrInit(ctx context.Context, campaignID string, queueIDs []string) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.loadOrInitLocked(campaignID, len(queueIDs))
	if p.Totals.Total == 0 && len(queueIDs) > 0 {
		p.Totals.Total = len(queueIDs)
		s.saveLocked(p)
	}
	return p.Clone()
}

// RecordOutcome counts an attempt for the contact and stores its outcome.
func (s *ProgressStore) RecordOutcome(ctx context.Context, campaignID, contactID string, outcome domain.Outcome) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.loadOrInitLocked(campaignID, 0)
	c := p.Contact(contactID)
	c.Attempts++
	c.LastCalledAt = s.now().UnixMilli()
	c.Outcome = domain.ParseOutcome(string(outcome))
	p.Contacts[contactID] = c
	p.Recount()
	s.saveLocked(p)

	s.pushOutcome(ctx, campaignID, contactID, c)
	return p.Clone()
}

// RecordSurveyResponse stores the survey answer of a contact. An empty
// answer clears it. Attempts and outcome are left untouched, but the
// outcome row is republished so the shared store's current view stays
// fresh.
func (s *ProgressStore) RecordSurveyResponse(ctx context.Context, campaignID, contactID, answer string) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.loadOrInitLocked(campaignID, 0)
	c := p.Contact(contactID)
	at := s.now().UnixMilli()
	c.AppendSurvey(answer, at)
	p.Contacts[contactID] = c
	s.saveLocked(p)

	if s.remote != nil {
		s.writer.submit(ctx, "push_survey_log", campaignID, contactID, func(ctx context.Context) error {
			return s.remote.PushSurveyLog(ctx, campaignID, contactID, answer, at)
		})
	}
	s.pushOutcome(ctx, campaignID, contactID, c)
	return p.Clone()
}

// RecordNote stores the current note of a contact and returns it.
func (s *ProgressStore) RecordNote(ctx context.Context, campaignID, contactID, text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.loadOrInitLocked(campaignID, 0)
	c := p.Contact(contactID)
	at := s.now().UnixMilli()
	c.AppendNote(text, at)
	p.Contacts[contactID] = c
	s.saveLocked(p)

	if s.remote != nil {
		s.writer.submit(ctx, "push_note_log", campaignID, contactID, func(ctx context.Context) error {
			return s.remote.PushNoteLog(ctx, campaignID, contactID, text, at)
		})
	}
	return c.Notes
}

// SurveyResponse returns the locally stored survey answer of a contact.
func (s *ProgressStore) SurveyResponse(ctx context.Context, campaignID, contactID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrInitLocked(campaignID, 0).Contact(contactID).SurveyAnswer
}

// Note returns the locally stored note of a contact.
func (s *ProgressStore) Note(ctx context.Context, campaignID, contactID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrInitLocked(campaignID, 0).Contact(contactID).Notes
}

// Summary returns the totals of a campaign.
func (s *ProgressStore) Summary(ctx context.Context, campaignID string) domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrInitLocked(campaignID, 0).Totals
}

// Snapshot returns a copy of the locally stored progress of a campaign.
func (s *ProgressStore) Snapshot(ctx context.Context, campaignID string) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrInitLocked(campaignID, 0).Clone()
}

// NotCalled returns the queue ids without a recorded attempt, in queue
// order.
func (s *ProgressStore) NotCalled(ctx context.Context, campaignID string, queueIDs []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.loadOrInitLocked(campaignID, len(queueIDs))
	out := make([]string, 0, len(queueIDs))
	for _, id := range queueIDs {
		if p.Contact(id).Attempts == 0 {
			out = append(out, id)
		}
	}
	return out
}

// RemoveProgress drops the cached snapshot of a campaign. The shared store
// keeps its own history.
func (s *ProgressStore) RemoveProgress(ctx context.Context, campaignID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(progressKeyPrefix + campaignID); err != nil {
		s.logger.Warn("progress cache delete failed",
			slog.String("campaign_id", campaignID), slog.Any("error", err))
	}
}

// Fetch returns the shared store's snapshot of a campaign. Concurrent
// fetches of the same campaign share one round trip, which is bounded by
// the fetch timeout rather than by any single caller. A caller whose ctx
// ends stops waiting without affecting the others. ok is false when the
// shared store is unavailable or failed.
func (s *ProgressStore) Fetch(ctx context.Context, campaignID string) (domain.Snapshot, bool) {
	if s.remote == nil {
		return domain.Snapshot{}, false
	}
	detached := context.WithoutCancel(ctx)
	ch := s.fetches.DoChan(campaignID, func() (interface{}, error) {
		fctx, cancel := context.WithTimeout(detached, s.fetchTimeout)
		defer cancel()
		return s.remote.FetchSnapshot(fctx, campaignID)
	})

	var (
		v   interface{}
		err error
	)
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case res := <-ch:
		v, err = res.Val, res.Err
	}
	if err != nil {
		s.logger.Warn("remote snapshot fetch failed",
			slog.String("campaign_id", campaignID), slog.Any("error", err))
		return domain.Snapshot{}, false
	}
	snap, _ := v.(*domain.Snapshot)
	if snap == nil {
		return domain.Snapshot{}, false
	}
	return snap.Clone(), true
}

// Subscribe forwards remote change notifications for a campaign. It
// returns a no-op unsubscribe when the shared store is unavailable.
func (s *ProgressStore) Subscribe(ctx context.Context, campaignID string, onChange func()) func() {
	if s.remote == nil {
		return func() {}
	}
	unsubscribe, err := s.remote.Subscribe(ctx, campaignID, onChange)
	if err != nil || unsubscribe == nil {
		if err != nil {
			s.logger.Warn("progress subscription failed",
				slog.String("campaign_id", campaignID), slog.Any("error", err))
		}
		return func() {}
	}
	return unsubscribe
}

// Flush blocks until every queued push has been attempted.
func (s *ProgressStore) Flush() {
	s.writer.flush()
}

// Close drains pending pushes and stops the writer. Later pushes are
// dropped.
func (s *ProgressStore) Close() {
	s.writer.close()
}

func (s *ProgressStore) pushOutcome(ctx context.Context, campaignID, contactID string, c domain.ContactProgress) {
	if s.remote == nil {
		return
	}
	rec := c.Clone()
	s.writer.submit(ctx, "push_outcome", campaignID, contactID, func(ctx context.Context) error {
		return s.remote.PushOutcome(ctx, campaignID, contactID, rec)
	})
}

func (s *ProgressStore) loadOrInitLocked(campaignID string, total int) domain.Snapshot {
	if p, ok := s.loadLocked(campaignID); ok {
		return p
	}
	p := domain.NewSnapshot(campaignID, total)
	s.saveLocked(p)
	return p
}

func (s *ProgressStore) loadLocked(campaignID string) (domain.Snapshot, bool) {
	if s.cache == nil {
		return domain.Snapshot{}, false
	}
	raw, err := s.cache.Get(progressKeyPrefix + campaignID)
	if err != nil {
		if !errors.Is(err, port.ErrCacheMiss) {
			s.logger.Warn("progress cache read failed",
				slog.String("campaign_id", campaignID), slog.Any("error", err))
		}
		return domain.Snapshot{}, false
	}
	var p domain.Snapshot
	if err = json.Unmarshal(raw, &p); err != nil {
		s.logger.Warn("progress cache entry malformed",
			slog.String("campaign_id", campaignID), slog.Any("error", err))
		return domain.Snapshot{}, false
	}
	if p.CampaignID == "" {
		p.CampaignID = campaignID
	}
	if p.Contacts == nil {
		p.Contacts = map[string]domain.ContactProgress{}
	}
	return p, true
}

func (s *ProgressStore) saveLocked(p domain.Snapshot) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err == nil {
		err = s.cache.Set(progressKeyPrefix+p.CampaignID, raw)
	}
	if err != nil {
		s.logger.Warn("progress cache write failed",
			slog.String("campaign_id", p.CampaignID), slog.Any("error", err))
	}
}
