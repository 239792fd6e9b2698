package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"reachpoint/internal/core/domain"
	"reachpoint/internal/core/port"
)

// FollowUpNamePrefix is prepended to the source campaign's name.
const FollowUpNamePrefix = "[Follow Up] "

// FollowUpService creates follow-up campaigns from a session's follow-up
// list. The new campaign has no filters; its allow-list is the selection.
type FollowUpService struct {
	campaigns port.CampaignWriter
	logger    *slog.Logger
	now       func() time.Time
}

// NewFollowUpService creates a follow-up service.
func NewFollowUpService(campaigns port.CampaignWriter, logger *slog.Logger) *FollowUpService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FollowUpService{campaigns: campaigns, logger: logger, now: time.Now}
}

// Create saves and returns the follow-up campaign.
func (s *FollowUpService) Create(ctx context.Context, sourceName string, contactIDs []string) (domain.Campaign, error) {
	if len(contactIDs) == 0 {
		return domain.Campaign{}, port.ErrNoContacts
	}
	c := domain.Campaign{
		ID:         uuid.NewString(),
		Name:       FollowUpNamePrefix + sourceName,
		Filters:    []domain.Filter{},
		StudentIDs: append([]string(nil), contactIDs...),
		CreatedAt:  s.now().UTC(),
	}
	if err := s.campaigns.SaveCampaign(ctx, c); err != nil {
		return domain.Campaign{}, fmt.Errorf("save follow-up campaign: %w", err)
	}
	s.logger.Info("follow-up campaign created",
		slog.String("campaign_id", c.ID), slog.Int("contacts", len(contactIDs)))
	return c, nil
}
