package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"reachpoint/internal/core/domain"
	"reachpoint/internal/core/port"
)

// QueueService resolves a campaign and builds its calling queue from the
// dataset.
type QueueService struct {
	contacts  port.ContactProvider
	campaigns port.CampaignProvider
	logger    *slog.Logger
}

// NewQueueService creates a queue service.
func NewQueueService(contacts port.ContactProvider, campaigns port.CampaignProvider, logger *slog.Logger) *QueueService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueueService{contacts: contacts, campaigns: campaigns, logger: logger}
}

// Build loads the campaign and the dataset concurrently and derives the
// queue. An unknown campaign yields port.ErrCampaignNotFound. When the
// campaign lookup itself fails the campaign is treated as an unnamed one
// with no filters, so calling can still proceed on the full dataset.
func (s *QueueService) Build(ctx context.Context, campaignID string) (domain.Campaign, domain.Queue, error) {
	var (
		campaign *domain.Campaign
		contacts []domain.Contact
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.campaigns.CampaignByID(gctx, campaignID)
		if err != nil {
			s.logger.Warn("campaign lookup failed, using placeholder",
				slog.String("campaign_id", campaignID), slog.Any("error", err))
			campaign = &domain.Campaign{ID: campaignID, Name: domain.UnknownCampaignName}
			return nil
		}
		if c == nil {
			return port.ErrCampaignNotFound
		}
		campaign = c
		return nil
	})
	g.Go(func() error {
		rows, err := s.contacts.AllContacts(gctx)
		if err != nil {
			return fmt.Errorf("load contacts: %w", err)
		}
		contacts = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Campaign{}, domain.Queue{}, err
	}

	if campaign.ID == "" {
		campaign.ID = campaignID
	}
	return *campaign, domain.BuildQueue(contacts, *campaign), nil
}
