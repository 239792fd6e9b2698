package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"reachpoint/internal/adapter/postgres"
	"reachpoint/internal/core/domain"
)

var (
	seedFirstNames = []string{"Ada", "Ben", "Chloe", "Dmitri", "Elena", "Farid", "Grace", "Hugo", "Iris", "Jon"}
	seedLastNames  = []string{"Nguyen", "Okafor", "Petrov", "Quinn", "Rossi", "Silva", "Tanaka", "Usman", "Vega", "Weber"}
	seedPrograms   = []string{"Nursing", "Engineering", "Business", "Design"}
)

var seedCampaigns = []domain.Campaign{
	{
		ID:      "demo-all",
		Name:    "Welcome calls",
		Filters: []domain.Filter{},
		Survey: &domain.Survey{
			Question: "Are you planning to enrol next term?",
			Options:  []string{"Yes", "Maybe", "No"},
		},
	},
	{
		ID:      "demo-recent",
		Name:    "Recent graduates",
		Filters: []domain.Filter{{Field: "graduation_year", Op: domain.OpGte, Value: "2024"}},
	},
	{
		ID:      "demo-nursing",
		Name:    "Nursing outreach",
		Filters: []domain.Filter{{Field: "program", Op: domain.OpContains, Value: "nurs"}},
	},
}

// Seed inserts demo students and campaigns. Campaigns are upserted by id,
// so seeding twice adds students but not campaigns.
func Seed(ctx context.Context, db *pgxpool.Pool, students int) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	contacts := make([]domain.Contact, 0, students)
	for i := 0; i < students; i++ {
		first := seedFirstNames[r.Intn(len(seedFirstNames))]
		last := seedLastNames[r.Intn(len(seedLastNames))]
		contacts = append(contacts, domain.Contact{
			"student_id":      uuid.NewString(),
			"first_name":      first,
			"last_name":       last,
			"Mobile Phone":    fmt.Sprintf("+1555%07d", r.Intn(10_000_000)),
			"email":           fmt.Sprintf("%s.%s%d@example.edu", first, last, i),
			"graduation_year": 2020 + r.Intn(8),
			"program":         seedPrograms[r.Intn(len(seedPrograms))],
		})
	}
	if err := postgres.NewContactRepository(db).InsertContacts(ctx, contacts); err != nil {
		return fmt.Errorf("seed students: %w", err)
	}

	campaigns := postgres.NewCampaignRepository(db)
	for _, c := range seedCampaigns {
		if err := campaigns.SaveCampaign(ctx, c); err != nil {
			return fmt.Errorf("seed campaign %s: %w", c.ID, err)
		}
	}
	return nil
}
