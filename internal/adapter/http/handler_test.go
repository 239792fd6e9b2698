package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"reachpoint/internal/adapter/cache"
	"reachpoint/internal/adapter/usecase"
	"reachpoint/internal/core/domain"
	"reachpoint/internal/core/port"
	"reachpoint/internal/core/port/mocks"
)

type testServer struct {
	srv     *httptest.Server
	writer  *mocks.MockCampaignWriter
	exports *mocks.MockExportWriter
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	contacts := mocks.NewMockContactProvider(t)
	campaigns := mocks.NewMockCampaignProvider(t)
	contacts.EXPECT().AllContacts(mock.Anything).Return([]domain.Contact{
		{"student_id": "A", "first_name": "Ada", "last_name": "Ng"},
		{"student_id": "B", "first_name": "Ben", "last_name": "Okafor"},
	}, nil).Maybe()
	campaigns.EXPECT().CampaignByID(mock.Anything, "c1").Return(&domain.Campaign{ID: "c1", Name: "Welcome"}, nil).Maybe()
	campaigns.EXPECT().CampaignByID(mock.Anything, "missing").Return(nil, nil).Maybe()

	store := usecase.NewProgressStore(cache.NewMemory(), nil, logger)
	queues := usecase.NewQueueService(contacts, campaigns, logger)
	sessions := usecase.NewSessions(store, queues, logger, time.Hour)
	writer := mocks.NewMockCampaignWriter(t)
	exports := mocks.NewMockExportWriter(t)

	h := NewHandler(sessions, store, queues,
		usecase.NewFollowUpService(writer, logger),
		usecase.NewExportService(store, queues, exports, logger),
		logger)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(func() {
		srv.Close()
		sessions.CloseAll()
		store.Close()
	})
	return &testServer{srv: srv, writer: writer, exports: exports}
}

func (s *testServer) do(t *testing.T, method, path string, body any, out any) int {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(context.Background(), method, s.srv.URL+path, rd)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	var body map[string]string
	assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/healthz", nil, &body))
	assert.Equal(t, "ok", body["status"])
}

func TestSessionFlow(t *testing.T) {
	s := newTestServer(t)

	var v port.SessionView
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/v1/campaigns/c1/sessions", nil, &v))
	assert.Equal(t, port.ModeIdle, v.Mode)
	assert.Equal(t, "Welcome", v.CampaignName)
	base := "/api/v1/sessions/" + v.SessionID

	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/begin", nil, &v))
	assert.Equal(t, "A", v.CurrentID)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/survey", surveyRequest{Answer: "Yes"}, &v))
	assert.Equal(t, "Yes", v.SurveyAnswer)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/notes", notesRequest{Text: "nice"}, &v))
	assert.Equal(t, "nice", v.Notes)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/outcome", outcomeRequest{Outcome: "no_answer"}, &v))
	assert.Equal(t, "B", v.CurrentID)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/back", nil, &v))
	assert.Equal(t, "A", v.CurrentID)

	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, base, nil, &v))
	assert.Equal(t, domain.Totals{Total: 2, Made: 1, Missed: 1}, v.Totals)

	var followUps []port.FollowUp
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, base+"/followups?outcome=no_answer", nil, &followUps))
	require.Len(t, followUps, 1)
	assert.Equal(t, "Ada Ng", followUps[0].Name)

	var summary struct {
		domain.Totals
		AllDone bool `json:"all_done"`
	}
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/campaigns/c1/summary", nil, &summary))
	assert.Equal(t, 1, summary.Made)
	assert.False(t, summary.AllDone)

	var queue queueResponse
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/campaigns/c1/queue", nil, &queue))
	assert.Equal(t, []string{"A", "B"}, queue.IDs)
	assert.Equal(t, []string{"B"}, queue.NotCalled)

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, base, nil, nil))
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, base, nil, nil))

	assert.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/api/v1/campaigns/c1/progress", nil, nil))
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/campaigns/c1/summary", nil, &summary))
	assert.Zero(t, summary.Made)
}

func TestUnknownCampaignRedirectsToDashboard(t *testing.T) {
	s := newTestServer(t)

	resp, err := http.Post(s.srv.URL+"/api/v1/campaigns/missing/sessions", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, DashboardPath, body.Redirect)
}

func TestInvalidRequests(t *testing.T) {
	s := newTestServer(t)

	var v port.SessionView
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/v1/campaigns/c1/sessions", nil, &v))
	base := "/api/v1/sessions/" + v.SessionID

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, base+"/outcome", outcomeRequest{Outcome: "maybe"}, nil))
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, base+"/notes", "not an object", nil))
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, "/api/v1/sessions/nope/begin", nil, nil))
}

func TestCreateFollowUpCampaign(t *testing.T) {
	s := newTestServer(t)
	s.writer.EXPECT().
		SaveCampaign(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool {
			return c.Name == "[Follow Up] Welcome" && len(c.StudentIDs) == 1 && c.StudentIDs[0] == "A"
		})).
		Return(nil).Once()

	var v port.SessionView
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/v1/campaigns/c1/sessions", nil, &v))
	base := "/api/v1/sessions/" + v.SessionID

	assert.Equal(t, http.StatusUnprocessableEntity, s.do(t, http.MethodPost, base+"/followups?outcome=no_answer", nil, nil))

	s.do(t, http.MethodPost, base+"/begin", nil, &v)
	s.do(t, http.MethodPost, base+"/outcome", outcomeRequest{Outcome: "no_answer"}, &v)

	var created domain.Campaign
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, base+"/followups?outcome=no_answer", nil, &created))
	assert.Equal(t, []string{"A"}, created.StudentIDs)
}

func TestExports(t *testing.T) {
	s := newTestServer(t)
	s.exports.EXPECT().SaveExportRows(mock.Anything, "c1", domain.ExportSurvey, mock.Anything).Return(nil).Once()
	s.exports.EXPECT().SaveExportRows(mock.Anything, "c1", domain.ExportOutcomes, mock.Anything).Return(nil).Once()
	s.exports.EXPECT().SaveExportRows(mock.Anything, "c1", domain.ExportNotCalled, mock.Anything).Return(nil).Once()

	var view port.SessionView
	require.Equal(t, http.StatusCreated, s.do(t, http.MethodPost, "/api/v1/campaigns/c1/sessions", nil, &view))
	base := "/api/v1/sessions/" + view.SessionID
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/begin", nil, &view))
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/survey", map[string]string{"answer": "Yes"}, &view))
	require.Equal(t, http.StatusOK, s.do(t, http.MethodPost, base+"/outcome", map[string]string{"outcome": "answered"}, &view))

	var survey []domain.SurveyExportRow
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/campaigns/c1/export/survey", nil, &survey))
	require.Len(t, survey, 1)
	assert.Equal(t, "A", survey[0].ContactID)
	assert.Equal(t, "Yes", survey[0].Answer)

	var outcomes []domain.OutcomeExportRow
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/campaigns/c1/export/outcomes", nil, &outcomes))
	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.OutcomeAnswered, outcomes[0].Outcome)

	var notCalled []domain.NotCalledRow
	require.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/campaigns/c1/export/not-called", nil, &notCalled))
	assert.Equal(t, []domain.NotCalledRow{{ContactID: "B", FullName: "Ben Okafor"}}, notCalled)

	var missing errorResponse
	resp, err := http.Get(s.srv.URL + "/api/v1/campaigns/missing/export/not-called")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&missing))
	assert.Equal(t, DashboardPath, missing.Redirect)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/v1/campaigns/c1/export/full", nil, nil))
}
