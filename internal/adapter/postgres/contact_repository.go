package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"reachpoint/internal/core/domain"
)

// ContactRepository serves the student dataset from the students table.
type ContactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository returns a new repository instance.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

// AllContacts returns every student in insertion order.
func (r *ContactRepository) AllContacts(ctx context.Context) ([]domain.Contact, error) {
	rows, err := r.pool.Query(ctx, `SELECT data FROM students ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Contact, error) {
		var raw []byte
		if err := row.Scan(&raw); err != nil {
			return nil, err
		}
		var c domain.Contact
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("decode student: %w", err)
		}
		return domain.NormalizeContact(c), nil
	})
}

// InsertContacts appends students to the dataset.
func (r *ContactRepository) InsertContacts(ctx context.Context, contacts []domain.Contact) error {
	if len(contacts) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, c := range contacts {
		raw, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("encode student: %w", err)
		}
		batch.Queue(`INSERT INTO students (data) VALUES ($1)`, raw)
	}
	return r.pool.SendBatch(ctx, batch).Close()
}
