package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reachpoint/internal/core/domain"
)

// CampaignRepository reads and writes campaign records.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// CampaignByID returns the campaign, or nil when no row matches. Filter and
// allow-list columns are parsed leniently: a malformed column is treated as
// empty rather than failing the lookup.
func (r *CampaignRepository) CampaignByID(ctx context.Context, id string) (*domain.Campaign, error) {
	var (
		c       domain.Campaign
		filters []byte
		ids     []byte
		survey  []byte
	)
	err := r.pool.QueryRow(ctx, `
        SELECT id, name, filters, student_ids, survey, created_at
        FROM campaigns
        WHERE id = $1`, id).Scan(&c.ID, &c.Name, &filters, &ids, &survey, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	c.Filters = parseFilters(filters)
	c.StudentIDs = parseStudentIDs(ids)
	c.Survey = parseSurvey(survey)
	return &c, nil
}

// SaveCampaign inserts or replaces a campaign record.
func (r *CampaignRepository) SaveCampaign(ctx context.Context, c domain.Campaign) error {
	filters, err := json.Marshal(c.Filters)
	if err != nil {
		return fmt.Errorf("encode filters: %w", err)
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	var ids, survey []byte
	if c.StudentIDs != nil {
		if ids, err = json.Marshal(c.StudentIDs); err != nil {
			return fmt.Errorf("encode student ids: %w", err)
		}
	}
	if c.Survey != nil {
		if survey, err = json.Marshal(c.Survey); err != nil {
			return fmt.Errorf("encode survey: %w", err)
		}
	}
	_, err = r.pool.Exec(ctx, `
        INSERT INTO campaigns (id, name, filters, student_ids, survey, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO UPDATE SET
            name        = EXCLUDED.name,
            filters     = EXCLUDED.filters,
            student_ids = EXCLUDED.student_ids,
            survey      = EXCLUDED.survey`,
		c.ID, c.Name, filters, ids, survey, c.CreatedAt)
	return err
}

// unwrapJSON returns raw, or the document inside it when raw is a JSON
// string holding JSON.
func unwrapJSON(raw []byte) []byte {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return []byte(s)
	}
	return raw
}

func parseFilters(raw []byte) []domain.Filter {
	if len(raw) == 0 {
		return nil
	}
	var out []domain.Filter
	if err := json.Unmarshal(unwrapJSON(raw), &out); err != nil {
		return nil
	}
	return out
}

// parseStudentIDs accepts string and numeric ids. An absent column yields
// nil, which disables the allow-list.
func parseStudentIDs(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var vals []any
	if err := json.Unmarshal(unwrapJSON(raw), &vals); err != nil {
		return nil
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		switch t := v.(type) {
		case string:
			out = append(out, t)
		case float64:
			out = append(out, strconv.FormatFloat(t, 'f', -1, 64))
		}
	}
	return out
}

func parseSurvey(raw []byte) *domain.Survey {
	if len(raw) == 0 {
		return nil
	}
	var s domain.Survey
	if err := json.Unmarshal(unwrapJSON(raw), &s); err != nil || s.Question == "" {
		return nil
	}
	return &s
}
