package usecase

import (
	"context"
	"log/slog"

	"reachpoint/internal/core/domain"
	"reachpoint/internal/core/port"
)

// ExportService builds report rows from local progress and keeps a copy of
// each exported set in the shared store.
type ExportService struct {
	store  *ProgressStore
	queues port.QueueUseCase
	writer port.ExportWriter // nil skips persistence
	logger *slog.Logger
}

// NewExportService creates an export service. writer may be nil.
func NewExportService(store *ProgressStore, queues port.QueueUseCase, writer port.ExportWriter, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{store: store, queues: queues, writer: writer, logger: logger}
}

// SurveyRows returns every recorded survey answer of the campaign.
func (s *ExportService) SurveyRows(ctx context.Context, campaignID string) []domain.SurveyExportRow {
	rows := domain.SurveyExportRows(s.store.Snapshot(ctx, campaignID))
	s.persist(ctx, campaignID, domain.ExportSurvey, anyRows(rows))
	return rows
}

// OutcomeRows returns the latest outcome of every contact with progress.
func (s *ExportService) OutcomeRows(ctx context.Context, campaignID string) []domain.OutcomeExportRow {
	rows := domain.OutcomeExportRows(s.store.Snapshot(ctx, campaignID))
	s.persist(ctx, campaignID, domain.ExportOutcomes, anyRows(rows))
	return rows
}

// NotCalledRows returns the queued contacts never attempted, by name.
func (s *ExportService) NotCalledRows(ctx context.Context, campaignID string) ([]domain.NotCalledRow, error) {
	campaign, queue, err := s.queues.Build(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	rows := domain.NotCalledRows(s.store.Snapshot(ctx, campaign.ID), queue)
	s.persist(ctx, campaign.ID, domain.ExportNotCalled, anyRows(rows))
	return rows, nil
}

// persist stores rows best-effort; a failure only logs.
func (s *ExportService) persist(ctx context.Context, campaignID string, kind domain.ExportKind, rows []any) {
	if s.writer == nil || len(rows) == 0 {
		return
	}
	if err := s.writer.SaveExportRows(ctx, campaignID, kind, rows); err != nil {
		s.logger.Warn("export rows not saved",
			slog.String("campaign_id", campaignID), slog.String("kind", string(kind)), slog.Any("error", err))
	}
}

func anyRows[T any](rows []T) []any {
	out := make([]any, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}
