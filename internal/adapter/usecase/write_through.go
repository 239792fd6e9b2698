package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type pushJob struct {
	ctx        context.Context
	op         string
	campaignID string
	contactID  string
	run        func(ctx context.Context) error
}

// writeThrough applies pushes to the shared store one at a time, in
// submission order. Failures are logged and never reach the submitter.
type writeThrough struct {
	logger  *slog.Logger
	timeout time.Duration
	jobs    chan pushJob
	done    chan struct{}

	mu      sync.Mutex
	idle    *sync.Cond // signalled when pending drops to zero
	pending int
	closed  bool
}

func newWriteThrough(logger *slog.Logger, buffer int, timeout time.Duration) *writeThrough {
	w := &writeThrough{
		logger:  logger,
		timeout: timeout,
		jobs:    make(chan pushJob, buffer),
		done:    make(chan struct{}),
	}
	w.idle = sync.NewCond(&w.mu)
	go w.loop()
	return w
}

// submit queues a push without blocking. The push outlives the caller's
// context cancellation but keeps its values.
func (w *writeThrough) submit(ctx context.Context, op, campaignID, contactID string, run func(ctx context.Context) error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	attrs := []any{slog.String("op", op), slog.String("campaign_id", campaignID), slog.String("contact_id", contactID)}
	if w.closed {
		w.logger.Warn("write-through closed, push dropped", attrs...)
		return
	}
	select {
	case w.jobs <- pushJob{ctx: context.WithoutCancel(ctx), op: op, campaignID: campaignID, contactID: contactID, run: run}:
		w.pending++
	default:
		w.logger.Warn("write-through buffer full, push dropped", attrs...)
	}
}

func (w *writeThrough) loop() {
	defer close(w.done)
	for job := range w.jobs {
		ctx, cancel := context.WithTimeout(job.ctx, w.timeout)
		if err := job.run(ctx); err != nil {
			w.logger.Warn("remote push failed",
				slog.String("op", job.op),
				slog.String("campaign_id", job.campaignID),
				slog.String("contact_id", job.contactID),
				slog.Any("error", err))
		}
		cancel()

		w.mu.Lock()
		w.pending--
		if w.pending == 0 {
			w.idle.Broadcast()
		}
		w.mu.Unlock()
	}
}

func (w *writeThrough) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for w.pending > 0 {
		w.idle.Wait()
	}
}

func (w *writeThrough) close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		<-w.done
		return
	}
	w.closed = true
	close(w.jobs)
	w.mu.Unlock()
	<-w.done
}
