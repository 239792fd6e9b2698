package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reachpoint/internal/core/domain"
)

// ExportRepository records exported report rows, one JSON document per row.
type ExportRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewExportRepository returns a new repository instance.
func NewExportRepository(pool *pgxpool.Pool) *ExportRepository {
	return &ExportRepository{pool: pool, now: time.Now}
}

// exportTable maps a row set to its table. Survey and outcome rows share
// the full-export table.
func exportTable(kind domain.ExportKind) (string, error) {
	switch kind {
	case domain.ExportSurvey, domain.ExportOutcomes:
		return "export_full_rows", nil
	case domain.ExportNotCalled:
		return "export_not_called_rows", nil
	default:
		return "", fmt.Errorf("unknown export kind %q", kind)
	}
}

// SaveExportRows inserts rows in one batch, all stamped with the same
// export time.
func (r *ExportRepository) SaveExportRows(ctx context.Context, campaignID string, kind domain.ExportKind, rows []any) error {
	table, err := exportTable(kind)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	exportedAt := r.now().UTC()
	query := fmt.Sprintf(`INSERT INTO %s (campaign_id, kind, row, exported_at) VALUES ($1, $2, $3, $4)`, table)
	batch := &pgx.Batch{}
	for _, row := range rows {
		raw, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("encode export row: %w", err)
		}
		batch.Queue(query, campaignID, string(kind), raw, exportedAt)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}
