package postgres

import (
	"log/slog"
	"sync"
	"time"

	"github.com/lib/pq"
)

// ProgressChannel is the NOTIFY channel raised by the progress triggers.
// The payload is the campaign id.
const ProgressChannel = "campaign_progress"

const pingInterval = 90 * time.Second

// Notifier fans PostgreSQL progress notifications out to in-process
// subscribers, keyed by campaign id.
type Notifier struct {
	listener *pq.Listener
	logger   *slog.Logger

	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func()

	stop chan struct{}
	done chan struct{}
}

// NewNotifier connects a listener to dsn and starts dispatching. Call Close
// to release the connection.
func NewNotifier(dsn string, logger *slog.Logger) (*Notifier, error) {
	if logger == nil {
		logger = slog.Default()
	}
	report := func(ev pq.ListenerEventType, err error) {
		if err != nil {
			logger.Warn("progress listener event", slog.Int("event", int(ev)), slog.Any("error", err))
		}
	}
	l := pq.NewListener(dsn, 2*time.Second, time.Minute, report)
	if err := l.Listen(ProgressChannel); err != nil {
		_ = l.Close()
		return nil, err
	}

	n := &Notifier{
		listener: l,
		logger:   logger,
		subs:     map[string]map[int]func(){},
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go n.loop()
	return n, nil
}

// Subscribe calls onChange for every notification about campaignID. The
// returned function removes the subscription and is safe to call twice.
func (n *Notifier) Subscribe(campaignID string, onChange func()) func() {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	if n.subs[campaignID] == nil {
		n.subs[campaignID] = map[int]func(){}
	}
	n.subs[campaignID][id] = onChange
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs[campaignID], id)
			if len(n.subs[campaignID]) == 0 {
				delete(n.subs, campaignID)
			}
		})
	}
}

// Close stops dispatching and closes the connection.
func (n *Notifier) Close() error {
	close(n.stop)
	<-n.done
	return n.listener.Close()
}

func (n *Notifier) loop() {
	defer close(n.done)
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-n.stop:
			return
		case note := <-n.listener.Notify:
			// A nil notification follows a reconnect; anything may have
			// changed meanwhile.
			if note == nil {
				n.dispatch("", true)
				continue
			}
			n.dispatch(note.Extra, false)
		case <-ticker.C:
			if err := n.listener.Ping(); err != nil {
				n.logger.Warn("progress listener ping failed", slog.Any("error", err))
			}
		}
	}
}

func (n *Notifier) dispatch(campaignID string, all bool) {
	n.mu.Lock()
	var fns []func()
	for id, subs := range n.subs {
		if !all && id != campaignID {
			continue
		}
		for _, fn := range subs {
			fns = append(fns, fn)
		}
	}
	n.mu.Unlock()

	for _, fn := range fns {
		go fn()
	}
}
