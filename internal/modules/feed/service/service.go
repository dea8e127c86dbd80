package service

import (
	"fmt"
	"time"

	"github.com/gorilla/feeds"
	historyDomain "github.com/promodesk/social-publisher/internal/modules/history/domain"
	historyRepo "github.com/promodesk/social-publisher/internal/modules/history/repository"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// Service generates an RSS feed of a business's published posts
type Service struct {
	historyRepo historyRepo.Repository
}

// New creates a new feed service
func New(historyRepo historyRepo.Repository) *Service {
	return &Service{historyRepo: historyRepo}
}

// GenerateFeed builds the RSS feed from the most recent publish records
func (s *Service) GenerateFeed(businessID string, baseURL string) (*feeds.Feed, error) {
	records, err := s.historyRepo.GetRecords(businessID, 50)
	if err != nil {
		return nil, oops.With("business_id", businessID, "context", "failed to get history records").Wrap(err)
	}

	published := lo.Filter(records, func(record *historyDomain.Record, _ int) bool {
		return record.Status == historyDomain.StatusPublished
	})

	feed := &feeds.Feed{
		Title:       fmt.Sprintf("Published posts - %s", businessID),
		Link:        &feeds.Link{Href: fmt.Sprintf("%s/feeds/%s", baseURL, businessID)},
		Description: fmt.Sprintf("Recent social media posts published for business %s", businessID),
		Created:     time.Now(),
	}

	feed.Items = lo.Map(published, func(record *historyDomain.Record, _ int) *feeds.Item {
		return &feeds.Item{
			Title:       fmt.Sprintf("%s published to %s", record.ContentType, record.Platform),
			Link:        &feeds.Link{Href: record.ExternalPostURL},
			Description: fmt.Sprintf("Post %s on %s", record.ExternalPostID, record.Platform),
			Created:     record.PublishedAt,
			Id:          record.ID,
		}
	})

	return feed, nil
}
