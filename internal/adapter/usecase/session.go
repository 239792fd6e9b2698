package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"reachpoint/internal/core/domain"
	"reachpoint/internal/core/port"
)

// DefaultNotesDelay is the quiet period before an edited note is saved.
const DefaultNotesDelay = 400 * time.Millisecond

type undoKind int

const (
	undoSurvey undoKind = iota
	undoOutcome
)

// undoEntry is one step of the session history. Survey entries carry the
// answers; outcome entries carry the navigation state to go back to.
type undoEntry struct {
	kind      undoKind
	contactID string

	prevAnswer string
	nextAnswer string

	prevMode     port.Mode
	prevStrategy port.Strategy
}

type pendingNote struct {
	contactID string
	text      string
}

// Session walks one operator through the queue of a campaign. Actions are
// serialised; live updates from the shared store are merged under the same
// lock so they never interleave with an action.
//
// Undoing an outcome only moves the cursor back. The attempt and outcome
// already written stay recorded.
type Session struct {
	id         string
	campaignID string
	store      *ProgressStore
	queues     *QueueService
	logger     *slog.Logger
	notesDelay time.Duration

	mu          sync.Mutex
	campaign    domain.Campaign
	queue       domain.Queue
	progress    domain.Snapshot
	mode        port.Mode
	strategy    port.Strategy
	currentID   string
	answer      string
	notes       string
	undo        []undoEntry
	unsubscribe func()
	closed      bool

	notesMu    sync.Mutex
	notesTimer *time.Timer
	notesDue   *pendingNote
}

// NewSession creates an idle session. Boot must be called before use.
func NewSession(id, campaignID string, store *ProgressStore, queues *QueueService, logger *slog.Logger, notesDelay time.Duration) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if notesDelay <= 0 {
		notesDelay = DefaultNotesDelay
	}
	return &Session{
		id:         id,
		campaignID: campaignID,
		store:      store,
		queues:     queues,
		logger:     logger.With(slog.String("session_id", id), slog.String("campaign_id", campaignID)),
		notesDelay: notesDelay,
		mode:       port.ModeIdle,
		strategy:   port.StrategyUnattempted,
	}
}

// Boot builds the queue, loads local progress, merges the shared store's
// view when available and subscribes to live updates.
func (s *Session) Boot(ctx context.Context) error {
	campaign, queue, err := s.queues.Build(ctx, s.campaignID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.campaign = campaign
	s.queue = queue
	s.undo = nil
	s.mode = port.ModeIdle
	s.strategy = port.StrategyUnattempted
	s.currentID = ""

	s.progress = s.store.LoadOrInit(ctx, s.campaignID, queue.IDs)
	if remote, ok := s.store.Fetch(ctx, s.campaignID); ok {
		s.progress = domain.Merge(s.progress, remote)
	}

	if s.unsubscribe == nil {
		s.unsubscribe = s.store.Subscribe(context.WithoutCancel(ctx), s.campaignID, s.onRemoteChange)
	}
	s.logger.Info("session booted", slog.Int("queue_len", queue.Len()))
	return nil
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Queue returns the queue ids of the session.
func (s *Session) Queue() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queue.IDs...)
}

// View returns the current state of the session.
func (s *Session) View() port.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// BeginCalls starts the pass over contacts never attempted.
func (s *Session) BeginCalls(ctx context.Context) port.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.strategy = port.StrategyUnattempted
	s.mode = port.ModeRunning
	s.advanceLocked(ctx, s.strategy, "")
	return s.viewLocked()
}

// BeginMissed starts the retry pass over unanswered contacts.
func (s *Session) BeginMissed(ctx context.Context) port.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.strategy = port.StrategyMissed
	s.mode = port.ModeMissed
	s.advanceLocked(ctx, s.strategy, "")
	return s.viewLocked()
}

// SelectSurveyAnswer records a survey answer for the current contact and
// stays on it.
func (s *Session) SelectSurveyAnswer(ctx context.Context, answer string) port.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentID == "" {
		return s.viewLocked()
	}
	prev := s.store.SurveyResponse(ctx, s.campaignID, s.currentID)
	s.undo = append(s.undo, undoEntry{kind: undoSurvey, contactID: s.currentID, prevAnswer: prev, nextAnswer: answer})

	s.answer = answer
	s.progress = s.store.RecordSurveyResponse(ctx, s.campaignID, s.currentID, answer)
	s.refreshLocked(ctx)
	return s.viewLocked()
}

// RecordOutcome records the call result of the current contact and moves
// to the next one. During the missed pass the resolved contact is never
// picked again by the same advance, even if the shared store has not
// caught up yet.
func (s *Session) RecordOutcome(ctx context.Context, outcome domain.Outcome) port.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentID == "" {
		return s.viewLocked()
	}
	s.undo = append(s.undo, undoEntry{kind: undoOutcome, contactID: s.currentID, prevMode: s.mode, prevStrategy: s.strategy})

	s.progress = s.store.RecordOutcome(ctx, s.campaignID, s.currentID, outcome)
	s.refreshLocked(ctx)

	skip := ""
	if s.strategy == port.StrategyMissed {
		skip = s.currentID
	}
	s.advanceLocked(ctx, s.strategy, skip)
	return s.viewLocked()
}

// EditNotes updates the note of the current contact immediately and saves
// it once edits pause for the notes delay.
func (s *Session) EditNotes(text string) port.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentID == "" || s.closed {
		return s.viewLocked()
	}
	s.notes = text

	s.notesMu.Lock()
	if s.notesDue != nil && s.notesDue.contactID != s.currentID {
		s.saveNotesLocked()
	}
	s.notesDue = &pendingNote{contactID: s.currentID, text: text}
	if s.notesTimer != nil {
		s.notesTimer.Stop()
	}
	s.notesTimer = time.AfterFunc(s.notesDelay, s.saveNotes)
	s.notesMu.Unlock()

	return s.viewLocked()
}

// Back undoes the last survey selection or outcome navigation.
func (s *Session) Back(ctx context.Context) port.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.undo) == 0 {
		return s.viewLocked()
	}
	s.flushNotes()
	last := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]

	switch last.kind {
	case undoSurvey:
		s.progress = s.store.RecordSurveyResponse(ctx, s.campaignID, last.contactID, last.prevAnswer)
		s.currentID = last.contactID
		s.answer = last.prevAnswer
		if s.mode != port.ModeRunning && s.mode != port.ModeMissed {
			s.mode = port.ModeRunning
		}
		s.notes = s.store.Note(ctx, s.campaignID, last.contactID)
		s.refreshLocked(ctx)
	case undoOutcome:
		s.mode = last.prevMode
		if s.mode == "" {
			s.mode = port.ModeRunning
		}
		if last.prevStrategy != "" {
			s.strategy = last.prevStrategy
		}
		s.currentID = last.contactID
		s.loadCurrentLocked(ctx)
	}
	return s.viewLocked()
}

// FollowUps lists contacts of the campaign matching the filter, most
// recently called first.
func (s *Session) FollowUps(filter port.FollowUpFilter) []port.FollowUp {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]port.FollowUp, 0)
	for id, c := range s.progress.Contacts {
		if filter.Outcome != domain.OutcomeUnset && c.Outcome != filter.Outcome {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(c.SurveyAnswer), q) {
			continue
		}
		contact := s.queue.Contact(id)
		name := contact.FullName()
		if name == "" {
			name = "(Unnamed)"
		}
		out = append(out, port.FollowUp{
			ID:           id,
			Name:         name,
			Phone:        contact.Phone(),
			Outcome:      c.Outcome,
			Answer:       c.SurveyAnswer,
			LastCalledAt: c.LastCalledAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastCalledAt != out[j].LastCalledAt {
			return out[i].LastCalledAt > out[j].LastCalledAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Close saves a pending note and stops live updates. The session must not
// be used afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	s.flushNotes()

	// The listener may be blocked on s.mu inside onRemoteChange, so the
	// lock must be released before unsubscribing.
	if unsubscribe != nil {
		unsubscribe()
	}
	s.logger.Info("session closed")
}

// flushNotes saves a pending note now instead of after the notes delay.
func (s *Session) flushNotes() {
	s.notesMu.Lock()
	defer s.notesMu.Unlock()
	if s.notesTimer != nil {
		s.notesTimer.Stop()
	}
	s.saveNotesLocked()
}

func (s *Session) saveNotes() {
	s.notesMu.Lock()
	defer s.notesMu.Unlock()
	s.saveNotesLocked()
}

// saveNotesLocked writes the pending note, if any. Callers hold notesMu.
func (s *Session) saveNotesLocked() {
	due := s.notesDue
	s.notesDue = nil
	if due == nil {
		return
	}
	s.store.RecordNote(context.Background(), s.campaignID, due.contactID, due.text)
}

func (s *Session) onRemoteChange() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.store.fetchTimeout)
	defer cancel()
	if remote, ok := s.store.Fetch(ctx, s.campaignID); ok {
		s.progress = domain.Merge(s.progress, remote)
	}
}

// refreshLocked merges the shared store's latest view, if reachable.
func (s *Session) refreshLocked(ctx context.Context) {
	if remote, ok := s.store.Fetch(ctx, s.campaignID); ok {
		s.progress = domain.Merge(s.progress, remote)
	}
}

// advanceLocked saves a pending note, re-syncs with the shared store,
// falling back to local progress, then picks the next contact. Without one
// the session moves to the summary.
func (s *Session) advanceLocked(ctx context.Context, strategy port.Strategy, skipID string) {
	s.flushNotes()
	if remote, ok := s.store.Fetch(ctx, s.campaignID); ok {
		s.progress = domain.Merge(s.progress, remote)
	} else {
		s.progress = s.store.LoadOrInit(ctx, s.campaignID, s.queue.IDs)
	}

	s.currentID = pickNext(s.queue.IDs, s.progress, strategy, skipID)
	s.answer = ""
	s.notes = ""
	if s.currentID == "" {
		s.mode = port.ModeSummary
		return
	}
	s.loadCurrentLocked(ctx)
}

func (s *Session) loadCurrentLocked(ctx context.Context) {
	if s.currentID == "" {
		return
	}
	s.answer = s.store.SurveyResponse(ctx, s.campaignID, s.currentID)
	s.notes = s.store.Note(ctx, s.campaignID, s.currentID)
}

func (s *Session) viewLocked() port.SessionView {
	t := s.progress.Totals
	v := port.SessionView{
		SessionID:      s.id,
		CampaignID:     s.campaignID,
		CampaignName:   s.campaign.Name,
		Mode:           s.mode,
		Strategy:       s.strategy,
		CurrentID:      s.currentID,
		SurveyAnswer:   s.answer,
		Notes:          s.notes,
		Survey:         s.campaign.Survey,
		Totals:         t,
		QueueLen:       s.queue.Len(),
		UndoDepth:      len(s.undo),
		AllDone:        t.AllDone(),
		CanRetryMissed: !t.AllDone() && t.Missed > 0,
	}
	if s.currentID != "" && (s.mode == port.ModeRunning || s.mode == port.ModeMissed) {
		v.Current = s.queue.Contact(s.currentID)
		rec := s.progress.Contact(s.currentID).Clone()
		v.Progress = &rec
	}
	return v
}

// pickNext returns the first queued id satisfying the strategy, other than
// skipID, or "" when none does.
func pickNext(ids []string, p domain.Snapshot, strategy port.Strategy, skipID string) string {
	for _, id := range ids {
		if id == skipID {
			continue
		}
		c, ok := p.Contacts[id]
		switch strategy {
		case port.StrategyMissed:
			if ok && c.Outcome == domain.OutcomeNoAnswer {
				return id
			}
		default:
			if !ok || c.Attempts == 0 {
				return id
			}
		}
	}
	return ""
}
