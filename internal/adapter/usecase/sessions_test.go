package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"reachpoint/internal/core/domain"
	"reachpoint/internal/core/port"
	"reachpoint/internal/core/port/mocks"
)

func TestSessionsLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewSessions(newTestStore(t, nil, nil), newTestQueues(t, abcContacts()), discardLogger(), time.Hour)
	t.Cleanup(m.CloseAll)

	first, err := m.Start(ctx, "c1")
	require.NoError(t, err)
	second, err := m.Start(ctx, "c1")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID(), second.ID())

	got, ok := m.Get(first.ID())
	require.True(t, ok)
	assert.Equal(t, first.ID(), got.ID())
	assert.Equal(t, []string{"A", "B", "C"}, got.Queue())

	assert.True(t, m.End(first.ID()))
	assert.False(t, m.End(first.ID()))
	_, ok = m.Get(first.ID())
	assert.False(t, ok)

	m.CloseAll()
	_, ok = m.Get(second.ID())
	assert.False(t, ok)
}

func TestSessionsShareProgress(t *testing.T) {
	ctx := context.Background()
	m := NewSessions(newTestStore(t, nil, nil), newTestQueues(t, abcContacts()), discardLogger(), time.Hour)
	t.Cleanup(m.CloseAll)

	first, err := m.Start(ctx, "c1")
	require.NoError(t, err)
	first.BeginCalls(ctx)
	first.RecordOutcome(ctx, domain.OutcomeAnswered)

	second, err := m.Start(ctx, "c1")
	require.NoError(t, err)
	v := second.BeginCalls(ctx)
	assert.Equal(t, "B", v.CurrentID)
	assert.Equal(t, 1, v.Totals.Made)
}

func TestSessionsUnknownCampaign(t *testing.T) {
	contacts := mocks.NewMockContactProvider(t)
	campaigns := mocks.NewMockCampaignProvider(t)
	contacts.EXPECT().AllContacts(mock.Anything).Return(abcContacts(), nil).Maybe()
	campaigns.EXPECT().CampaignByID(mock.Anything, "gone").Return(nil, nil)

	m := NewSessions(newTestStore(t, nil, nil), NewQueueService(contacts, campaigns, discardLogger()), discardLogger(), time.Hour)
	_, err := m.Start(context.Background(), "gone")
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestSessionsExpireIdle(t *testing.T) {
	ctx := context.Background()
	m := NewSessions(newTestStore(t, nil, nil), newTestQueues(t, abcContacts()), discardLogger(), time.Hour,
		WithIdleTimeout(time.Minute))
	t.Cleanup(m.CloseAll)

	base := time.Unix(1_700_000_000, 0)
	clock := base
	m.now = func() time.Time { return clock }

	idle, err := m.Start(ctx, "c1")
	require.NoError(t, err)
	busy, err := m.Start(ctx, "c1")
	require.NoError(t, err)
	busy.BeginCalls(ctx)
	busy.EditNotes("left voicemail")

	clock = base.Add(45 * time.Second)
	_, ok := m.Get(busy.ID())
	require.True(t, ok)

	clock = base.Add(90 * time.Second)
	m.expireIdle()

	_, ok = m.Get(idle.ID())
	assert.False(t, ok)
	_, ok = m.Get(busy.ID())
	assert.True(t, ok)

	clock = base.Add(3 * time.Minute)
	m.expireIdle()
	_, ok = m.Get(busy.ID())
	assert.False(t, ok)
	// expiry closes the session, saving its pending note
	assert.Equal(t, "left voicemail", m.store.Note(ctx, "c1", "A"))
}

func TestSessionsReaperEndsIdleSessions(t *testing.T) {
	m := NewSessions(newTestStore(t, nil, nil), newTestQueues(t, abcContacts()), discardLogger(), time.Hour,
		WithIdleTimeout(20*time.Millisecond))
	t.Cleanup(m.CloseAll)

	s, err := m.Start(context.Background(), "c1")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		_, ok := m.sessions[s.ID()]
		return !ok
	}, time.Second, 5*time.Millisecond)

	m.CloseAll()
	m.CloseAll()
}
