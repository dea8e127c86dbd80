package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/promodesk/social-publisher/internal/modules/publish/domain"
	"github.com/promodesk/social-publisher/internal/shared/classify"
	"github.com/promodesk/social-publisher/internal/shared/errs"
)

// Publisher is what the dispatcher requires from a platform implementation
type Publisher interface {
	Platform() domain.Platform
	Publish(ctx context.Context, content domain.PublishContent, creds domain.Credentials, businessName string) domain.PublishResult
	TestConnection(ctx context.Context, creds domain.Credentials) domain.ConnectionStatus
	ValidateCredentials(creds domain.Credentials) error
}

// Service fans a publish request out to the selected platforms and keeps
// their failures contained to their own result.
type Service struct {
	publishers map[domain.Platform]Publisher
}

// New builds the dispatcher over the given publishers
func New(publishers ...Publisher) *Service {
	registry := make(map[domain.Platform]Publisher, len(publishers))
	for _, p := range publishers {
		registry[p.Platform()] = p
	}
	return &Service{publishers: registry}
}

// PublishToAll publishes concurrently to every requested platform and returns
// exactly one result per platform, in no particular order. Callers should key
// results by the Platform field.
func (s *Service) PublishToAll(ctx context.Context, content domain.PublishContent, platforms []domain.Platform, creds domain.Credentials, businessName string) []domain.PublishResult {
	results := make(chan domain.PublishResult, len(platforms))

	var wg sync.WaitGroup
	for _, platform := range platforms {
		wg.Add(1)
		go func(platform domain.Platform) {
			defer wg.Done()
			results <- s.publishOne(ctx, platform, content, creds, businessName)
		}(platform)
	}
	wg.Wait()
	close(results)

	collected := make([]domain.PublishResult, 0, len(platforms))
	for result := range results {
		collected = append(collected, result)
	}
	return collected
}

// publishOne runs a single platform publish at the task boundary: a panic or
// an unknown platform becomes a failed result instead of aborting siblings.
func (s *Service) publishOne(ctx context.Context, platform domain.Platform, content domain.PublishContent, creds domain.Credentials, businessName string) (result domain.PublishResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Publisher panicked", "platform", platform, "panic", r)
			result = domain.PublishResult{
				Platform: platform,
				Error:    fmt.Sprintf("internal error: %v", r),
			}
		}
	}()

	publisher, ok := s.publishers[platform]
	if !ok {
		err := fmt.Errorf("%w: %s", errs.ErrUnknownPlatform, platform)
		return domain.PublishResult{Platform: platform, Error: classify.UserMessage(err)}
	}

	result = publisher.Publish(ctx, content, creds, businessName)
	if result.Success {
		slog.Info("Published", "platform", platform, "post_id", result.PostID, "retries", result.RetryCount)
	} else {
		slog.Warn("Publish failed", "platform", platform, "error", result.Error, "retries", result.RetryCount)
	}
	return result
}

// TestConnection performs the platform's lightweight credential check
func (s *Service) TestConnection(ctx context.Context, platform domain.Platform, creds domain.Credentials) domain.ConnectionStatus {
	publisher, ok := s.publishers[platform]
	if !ok {
		return domain.ConnectionStatus{
			Platform: platform,
			Error:    fmt.Sprintf("%s: %s", errs.ErrUnknownPlatform, platform),
		}
	}
	return publisher.TestConnection(ctx, creds)
}

// ValidateCredentials checks a platform's required credential fields without
// touching the network
func (s *Service) ValidateCredentials(platform domain.Platform, creds domain.Credentials) error {
	publisher, ok := s.publishers[platform]
	if !ok {
		return fmt.Errorf("%w: %s", errs.ErrUnknownPlatform, platform)
	}
	return publisher.ValidateCredentials(creds)
}
