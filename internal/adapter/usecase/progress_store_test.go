package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"reachpoint/internal/adapter/cache"
	"reachpoint/internal/core/domain"
	"reachpoint/internal/core/port/mocks"
)

func TestProgressStoreLoadOrInit(t *testing.T) {
	s := newTestStore(t, nil, nil)
	ctx := context.Background()

	snap := s.LoadOrInit(ctx, "c1", []string{"a", "b", "c"})
	assert.Equal(t, "c1", snap.CampaignID)
	assert.Equal(t, domain.Totals{Total: 3}, snap.Totals)
	assert.Empty(t, snap.Contacts)

	// an existing snapshot wins over the queue size
	snap = s.LoadOrInit(ctx, "c1", []string{"a"})
	assert.Equal(t, 3, snap.Totals.Total)
}

func TestProgressStoreOutcomeRoundTrip(t *testing.T) {
	local := cache.NewMemory()
	s := newTestStore(t, local, nil)
	ctx := context.Background()
	s.LoadOrInit(ctx, "c1", []string{"a", "b", "c"})

	snap := s.RecordOutcome(ctx, "c1", "a", domain.OutcomeAnswered)
	assert.Equal(t, domain.Totals{Total: 3, Made: 1, Answered: 1}, snap.Totals)
	a := snap.Contacts["a"]
	assert.Equal(t, 1, a.Attempts)
	assert.Equal(t, domain.OutcomeAnswered, a.Outcome)
	assert.Positive(t, a.LastCalledAt)

	snap = s.RecordOutcome(ctx, "c1", "a", domain.OutcomeNoAnswer)
	assert.Equal(t, domain.Totals{Total: 3, Made: 1, Missed: 1}, snap.Totals)
	assert.Equal(t, 2, snap.Contacts["a"].Attempts)
	assert.Greater(t, snap.Contacts["a"].LastCalledAt, a.LastCalledAt)

	// a fresh store over the same cache sees the same progress
	reopened := newTestStore(t, local, nil)
	assert.Equal(t, snap, reopened.LoadOrInit(ctx, "c1", nil))
	assert.Equal(t, snap.Totals, reopened.Summary(ctx, "c1"))
}

func TestProgressStoreSurveyLeavesCountersAlone(t *testing.T) {
	s := newTestStore(t, nil, nil)
	ctx := context.Background()
	s.LoadOrInit(ctx, "c1", []string{"a"})

	snap := s.RecordSurveyResponse(ctx, "c1", "a", "Yes")
	assert.Equal(t, 0, snap.Contacts["a"].Attempts)
	assert.Equal(t, domain.OutcomeUnset, snap.Contacts["a"].Outcome)
	assert.Equal(t, "Yes", s.SurveyResponse(ctx, "c1", "a"))

	s.RecordSurveyResponse(ctx, "c1", "a", "")
	assert.Equal(t, "", s.SurveyResponse(ctx, "c1", "a"))
	assert.Len(t, s.LoadOrInit(ctx, "c1", nil).Contacts["a"].SurveyLogs, 2)
}

func TestProgressStoreNotesKeepLastTen(t *testing.T) {
	s := newTestStore(t, nil, nil)
	ctx := context.Background()

	for i := 1; i <= 15; i++ {
		assert.Equal(t, fmt.Sprintf("note %d", i), s.RecordNote(ctx, "c1", "a", fmt.Sprintf("note %d", i)))
	}
	assert.Equal(t, "note 15", s.Note(ctx, "c1", "a"))

	logs := s.LoadOrInit(ctx, "c1", nil).Contacts["a"].NotesLogs
	require.Len(t, logs, domain.MaxNotesLogs)
	assert.Equal(t, "note 6", logs[0].Text)
}

func TestProgressStoreNotCalled(t *testing.T) {
	s := newTestStore(t, nil, nil)
	ctx := context.Background()
	ids := []string{"a", "b", "c", "d"}
	s.LoadOrInit(ctx, "c1", ids)

	s.RecordOutcome(ctx, "c1", "b", domain.OutcomeAnswered)
	s.RecordSurveyResponse(ctx, "c1", "c", "Maybe")

	assert.Equal(t, []string{"a", "c", "d"}, s.NotCalled(ctx, "c1", ids))
}

func TestProgressStoreRemoveProgress(t *testing.T) {
	s := newTestStore(t, nil, nil)
	ctx := context.Background()
	s.LoadOrInit(ctx, "c1", []string{"a", "b"})
	s.RecordOutcome(ctx, "c1", "a", domain.OutcomeAnswered)

	s.RemoveProgress(ctx, "c1")
	assert.Equal(t, domain.Totals{}, s.Summary(ctx, "c1"))
}

func TestProgressStoreWritesThroughInOrder(t *testing.T) {
	remote := mocks.NewMockSharedStore(t)
	s := newTestStore(t, nil, remote)
	ctx := context.Background()

	mock.InOrder(
		remote.EXPECT().
			PushOutcome(mock.Anything, "c1", "a", mock.MatchedBy(func(rec domain.ContactProgress) bool {
				return rec.Attempts == 1 && rec.Outcome == domain.OutcomeNoAnswer
			})).
			Return(nil).Once(),
		remote.EXPECT().
			PushSurveyLog(mock.Anything, "c1", "a", "Maybe", mock.AnythingOfType("int64")).
			Return(nil).Once(),
		remote.EXPECT().
			PushOutcome(mock.Anything, "c1", "a", mock.MatchedBy(func(rec domain.ContactProgress) bool {
				return rec.Attempts == 1 && rec.SurveyAnswer == "Maybe"
			})).
			Return(nil).Once(),
		remote.EXPECT().
			PushNoteLog(mock.Anything, "c1", "a", "call after 5", mock.AnythingOfType("int64")).
			Return(nil).Once(),
	)

	s.RecordOutcome(ctx, "c1", "a", domain.OutcomeNoAnswer)
	s.RecordSurveyResponse(ctx, "c1", "a", "Maybe")
	s.RecordNote(ctx, "c1", "a", "call after 5")
	s.Flush()
}

func TestProgressStoreRemoteFailureStaysLocal(t *testing.T) {
	remote := mocks.NewMockSharedStore(t)
	s := newTestStore(t, nil, remote)
	ctx, cancel := context.WithCancel(context.Background())

	remote.EXPECT().
		PushOutcome(mock.Anything, "c1", "a", mock.Anything).
		RunAndReturn(func(ctx context.Context, _, _ string, _ domain.ContactProgress) error {
			// the caller's cancellation does not reach the push
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errors.New("connection refused")
		}).Once()

	snap := s.RecordOutcome(ctx, "c1", "a", domain.OutcomeAnswered)
	cancel()
	s.Flush()

	assert.Equal(t, 1, snap.Totals.Made)
	assert.Equal(t, 1, s.Summary(context.Background(), "c1").Made)
}

func TestProgressStoreDropsPushesAfterClose(t *testing.T) {
	remote := mocks.NewMockSharedStore(t)
	s := newTestStore(t, nil, remote)
	s.Close()

	snap := s.RecordOutcome(context.Background(), "c1", "a", domain.OutcomeAnswered)
	assert.Equal(t, 1, snap.Totals.Made)
	remote.AssertNotCalled(t, "PushOutcome", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProgressStoreFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("local only", func(t *testing.T) {
		_, ok := newTestStore(t, nil, nil).Fetch(ctx, "c1")
		assert.False(t, ok)
	})

	t.Run("snapshot", func(t *testing.T) {
		remote := mocks.NewMockSharedStore(t)
		want := domain.NewSnapshot("c1", 0)
		want.Contacts["a"] = domain.ContactProgress{Attempts: 2}
		remote.EXPECT().FetchSnapshot(mock.Anything, "c1").Return(&want, nil).Once()

		got, ok := newTestStore(t, nil, remote).Fetch(ctx, "c1")
		require.True(t, ok)
		assert.Equal(t, want, got)
	})

	t.Run("unavailable", func(t *testing.T) {
		remote := mocks.NewMockSharedStore(t)
		remote.EXPECT().FetchSnapshot(mock.Anything, "c1").Return(nil, nil).Once()

		_, ok := newTestStore(t, nil, remote).Fetch(ctx, "c1")
		assert.False(t, ok)
	})

	t.Run("error", func(t *testing.T) {
		remote := mocks.NewMockSharedStore(t)
		remote.EXPECT().FetchSnapshot(mock.Anything, "c1").Return(nil, errors.New("timeout")).Once()

		_, ok := newTestStore(t, nil, remote).Fetch(ctx, "c1")
		assert.False(t, ok)
	})
}

func TestProgressStoreFetchOutlivesCancelledCaller(t *testing.T) {
	remote := mocks.NewMockSharedStore(t)
	want := domain.NewSnapshot("c1", 0)
	want.Contacts["a"] = domain.ContactProgress{Attempts: 1, Outcome: domain.OutcomeAnswered}
	remote.EXPECT().FetchSnapshot(mock.Anything, "c1").
		RunAndReturn(func(ctx context.Context, _ string) (*domain.Snapshot, error) {
			select {
			case <-time.After(50 * time.Millisecond):
				cp := want.Clone()
				return &cp, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})
	s := newTestStore(t, nil, remote)

	var (
		wg          sync.WaitGroup
		first, next bool
		got         domain.Snapshot
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		_, first = s.Fetch(ctx, "c1")
	}()
	go func() {
		defer wg.Done()
		time.Sleep(2 * time.Millisecond)
		got, next = s.Fetch(context.Background(), "c1")
	}()
	wg.Wait()

	assert.False(t, first)
	require.True(t, next)
	assert.Equal(t, want, got)
}

func TestProgressStoreFetchTimeout(t *testing.T) {
	remote := mocks.NewMockSharedStore(t)
	remote.EXPECT().FetchSnapshot(mock.Anything, "c1").
		RunAndReturn(func(ctx context.Context, _ string) (*domain.Snapshot, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).Once()
	s := newTestStore(t, nil, remote, WithFetchTimeout(20*time.Millisecond))

	start := time.Now()
	_, ok := s.Fetch(context.Background(), "c1")
	assert.False(t, ok)
	assert.Less(t, time.Since(start), time.Second)
}

func TestProgressStoreSubscribeFailureIsNoop(t *testing.T) {
	remote := mocks.NewMockSharedStore(t)
	remote.EXPECT().Subscribe(mock.Anything, "c1", mock.Anything).Return(nil, errors.New("listener down")).Once()

	unsubscribe := newTestStore(t, nil, remote).Subscribe(context.Background(), "c1", func() {})
	require.NotNil(t, unsubscribe)
	assert.NotPanics(t, unsubscribe)
}
