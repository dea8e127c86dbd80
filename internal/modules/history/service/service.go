package service

import (
	"fmt"
	"time"

	"github.com/promodesk/social-publisher/internal/modules/history/domain"
	historyRepo "github.com/promodesk/social-publisher/internal/modules/history/repository"
	publishDomain "github.com/promodesk/social-publisher/internal/modules/publish/domain"
	"github.com/samber/oops"
)

// Service records publish outcomes for auditing
type Service struct {
	repo historyRepo.Repository
}

// New creates a new history service
func New(repo historyRepo.Repository) *Service {
	return &Service{repo: repo}
}

// Record persists one platform's publish result as an audit row
func (s *Service) Record(businessID, contentID string, contentType publishDomain.ContentType, result publishDomain.PublishResult) (*domain.Record, error) {
	now := time.Now()
	record := &domain.Record{
		ID:          fmt.Sprintf("%d-%s", now.UnixNano(), result.Platform),
		BusinessID:  businessID,
		Platform:    result.Platform,
		ContentType: contentType,
		ContentID:   contentID,
		Status:      domain.StatusFailed,
		RetryCount:  result.RetryCount,
		CreatedAt:   now,
	}
	if result.Success {
		record.Status = domain.StatusPublished
		record.ExternalPostID = result.PostID
		record.ExternalPostURL = result.PostURL
		record.PublishedAt = now
	} else {
		record.ErrorMessage = result.Error
	}

	if err := s.repo.SaveRecord(record); err != nil {
		return nil, oops.With("business_id", businessID, "platform", result.Platform, "context", "failed to save history record").Wrap(err)
	}
	return record, nil
}

// List returns a business's most recent records, newest first
func (s *Service) List(businessID string, limit int) ([]*domain.Record, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.GetRecords(businessID, limit)
}
