package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"reachpoint/internal/core/port"
)

// minReapInterval keeps very short idle timeouts from spinning the reaper.
const minReapInterval = 5 * time.Millisecond

type liveSession struct {
	session  *Session
	lastSeen time.Time
}

// Sessions owns the live execution sessions of the process. With an idle
// timeout, sessions nobody has looked up for that long are ended.
type Sessions struct {
	store       *ProgressStore
	queues      *QueueService
	logger      *slog.Logger
	notesDelay  time.Duration
	idleTimeout time.Duration
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*liveSession

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// SessionsOption configures a Sessions registry.
type SessionsOption func(*Sessions)

// WithIdleTimeout ends sessions that have not been used for d. Zero keeps
// sessions until they are ended explicitly.
func WithIdleTimeout(d time.Duration) SessionsOption {
	return func(m *Sessions) {
		if d > 0 {
			m.idleTimeout = d
		}
	}
}

// NewSessions creates an empty session registry. When an idle timeout is
// set a reaper runs until CloseAll.
func NewSessions(store *ProgressStore, queues *QueueService, logger *slog.Logger, notesDelay time.Duration, opts ...SessionsOption) *Sessions {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Sessions{
		store:      store,
		queues:     queues,
		logger:     logger,
		notesDelay: notesDelay,
		now:        time.Now,
		sessions:   map[string]*liveSession{},
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.idleTimeout > 0 {
		go m.reap()
	} else {
		close(m.done)
	}
	return m
}

// Start boots a new session for a campaign and registers it.
func (m *Sessions) Start(ctx context.Context, campaignID string) (port.ExecutionUseCase, error) {
	s := NewSession(ulid.Make().String(), campaignID, m.store, m.queues, m.logger, m.notesDelay)
	if err := s.Boot(ctx); err != nil {
		s.Close()
		return nil, err
	}

	m.mu.Lock()
	m.sessions[s.ID()] = &liveSession{session: s, lastSeen: m.now()}
	m.mu.Unlock()
	return s, nil
}

// Get returns a live session and marks it as used.
func (m *Sessions) Get(id string) (port.ExecutionUseCase, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ls, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	ls.lastSeen = m.now()
	return ls.session, true
}

// End closes and forgets a session. It reports whether the session existed.
func (m *Sessions) End(id string) bool {
	m.mu.Lock()
	ls, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		ls.session.Close()
	}
	return ok
}

// CloseAll stops the reaper and ends every session.
func (m *Sessions) CloseAll() {
	m.stopOnce.Do(func() { close(m.stop) })
	<-m.done

	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for id, ls := range m.sessions {
		all = append(all, ls.session)
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	for _, s := range all {
		s.Close()
	}
}

func (m *Sessions) reap() {
	defer close(m.done)

	interval := m.idleTimeout / 2
	if interval < minReapInterval {
		interval = minReapInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.expireIdle()
		}
	}
}

// expireIdle ends every session unused for longer than the idle timeout.
func (m *Sessions) expireIdle() {
	cutoff := m.now().Add(-m.idleTimeout)

	m.mu.Lock()
	var stale []*Session
	for id, ls := range m.sessions {
		if ls.lastSeen.Before(cutoff) {
			stale = append(stale, ls.session)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		m.logger.Info("session expired", slog.String("session_id", s.ID()))
		s.Close()
	}
}
