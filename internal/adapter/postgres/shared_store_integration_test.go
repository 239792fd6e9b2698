//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reachpoint/internal/adapter/postgres"
	"reachpoint/internal/config/configs"
	"reachpoint/internal/core/domain"
	"reachpoint/internal/db"
)

// Run with: TEST_PSQL_ADDRESS=postgres://... go test -tags integration ./internal/adapter/postgres/
func newIntegrationPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("TEST_PSQL_ADDRESS")
	if addr == "" {
		t.Skip("TEST_PSQL_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr))

	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestProgressRepositoryCountersNeverMoveBackwards(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewProgressRepository(newIntegrationPool(t), nil)
	campaignID := uuid.NewString()
	later := time.Now().Add(-time.Minute).UnixMilli()
	earlier := later - 60_000

	require.NoError(t, repo.PushOutcome(ctx, campaignID, "a", domain.ContactProgress{
		Attempts: 3, Outcome: domain.OutcomeAnswered, LastCalledAt: later,
	}))
	// a stale replay from another operator
	require.NoError(t, repo.PushOutcome(ctx, campaignID, "a", domain.ContactProgress{
		Attempts: 2, Outcome: domain.OutcomeNoAnswer, LastCalledAt: earlier,
	}))
	// a survey-only republish carries no outcome
	require.NoError(t, repo.PushOutcome(ctx, campaignID, "a", domain.ContactProgress{Attempts: 3}))

	snap, err := repo.FetchSnapshot(ctx, campaignID)
	require.NoError(t, err)
	a := snap.Contacts["a"]
	assert.Equal(t, 3, a.Attempts)
	assert.Equal(t, domain.OutcomeNoAnswer, a.Outcome)
	assert.Equal(t, later, a.LastCalledAt)
	assert.Equal(t, domain.Totals{Made: 1, Missed: 1}, snap.Totals)
}

func TestProgressRepositoryKeepsNewestNotes(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewProgressRepository(newIntegrationPool(t), nil)
	campaignID := uuid.NewString()
	base := time.Now().Add(-time.Hour).UnixMilli()

	for i := 1; i <= 12; i++ {
		require.NoError(t, repo.PushNoteLog(ctx, campaignID, "a", fmt.Sprintf("n%d", i), base+int64(i)*1_000))
	}
	require.NoError(t, repo.PushNoteLog(ctx, campaignID, "b", "only", base))
	require.NoError(t, repo.PushSurveyLog(ctx, campaignID, "a", "Yes", base+1_000))
	require.NoError(t, repo.PushSurveyLog(ctx, campaignID, "a", "No", base+2_000))

	snap, err := repo.FetchSnapshot(ctx, campaignID)
	require.NoError(t, err)

	a := snap.Contacts["a"]
	require.Len(t, a.NotesLogs, domain.MaxNotesLogs)
	assert.Equal(t, "n3", a.NotesLogs[0].Text)
	assert.Equal(t, "n12", a.NotesLogs[domain.MaxNotesLogs-1].Text)
	assert.Equal(t, "n12", a.Notes)
	assert.Equal(t, "No", a.SurveyAnswer)
	assert.Len(t, a.SurveyLogs, 2)
	assert.Equal(t, "only", snap.Contacts["b"].Notes)
}

func TestExportRepositorySavesRows(t *testing.T) {
	ctx := context.Background()
	pool := newIntegrationPool(t)
	repo := postgres.NewExportRepository(pool)
	campaignID := uuid.NewString()

	rows := []any{
		domain.NotCalledRow{ContactID: "a", FullName: "Ada Ng"},
		domain.NotCalledRow{ContactID: "b", FullName: "Ben Okafor"},
	}
	require.NoError(t, repo.SaveExportRows(ctx, campaignID, domain.ExportNotCalled, rows))

	var (
		count int
		name  string
	)
	require.NoError(t, pool.QueryRow(ctx, `
        SELECT count(*), min(row->>'full_name')
        FROM export_not_called_rows
        WHERE campaign_id = $1 AND kind = 'not-called'`, campaignID).Scan(&count, &name))
	assert.Equal(t, 2, count)
	assert.Equal(t, "Ada Ng", name)
}
