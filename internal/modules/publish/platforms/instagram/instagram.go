package instagram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/promodesk/social-publisher/internal/modules/publish/domain"
	"github.com/promodesk/social-publisher/internal/modules/publish/format"
	"github.com/promodesk/social-publisher/internal/modules/publish/platforms/graph"
	"github.com/promodesk/social-publisher/internal/shared/classify"
	"github.com/promodesk/social-publisher/internal/shared/errs"
	"github.com/promodesk/social-publisher/internal/shared/retry"
)

const (
	defaultPollInterval = 3 * time.Second
	defaultMaxPolls     = 20
	stepAttempts        = 2
	fallbackURL         = "https://www.instagram.com/"
)

// Publisher publishes photos through a business account's media container
// workflow.
type Publisher struct {
	client       *graph.Client
	policy       retry.Policy
	pollInterval time.Duration
	maxPolls     int
}

// New creates an Instagram publisher. baseURL overrides the Graph API root
// (used in tests).
func New(baseURL string, client *http.Client, policy retry.Policy) *Publisher {
	return &Publisher{
		client:       graph.New(baseURL, client, domain.PlatformInstagram.String()),
		policy:       policy,
		pollInterval: defaultPollInterval,
		maxPolls:     defaultMaxPolls,
	}
}

// Platform identifies the publisher
func (p *Publisher) Platform() domain.Platform {
	return domain.PlatformInstagram
}

// Publish runs the container workflow for the content's image. The platform
// cannot post text alone, so a missing image fails before any network call.
func (p *Publisher) Publish(ctx context.Context, content domain.PublishContent, creds domain.Credentials, businessName string) domain.PublishResult {
	if err := p.ValidateCredentials(creds); err != nil {
		return domain.PublishResult{Platform: p.Platform(), Error: classify.UserMessage(err)}
	}
	if content.ImageURL == "" {
		return domain.PublishResult{Platform: p.Platform(), Error: classify.UserMessage(errs.ErrMissingImage)}
	}

	caption := format.Message(content, businessName, format.DialectFor(p.Platform()))
	workflow := &containerWorkflow{
		client:       p.client,
		creds:        creds.Instagram,
		stepPolicy:   retry.Policy{MaxAttempts: stepAttempts, BaseDelay: p.policy.BaseDelay, MaxDelay: p.policy.MaxDelay},
		pollInterval: p.pollInterval,
		maxPolls:     p.maxPolls,
	}

	postID, retries, err := workflow.run(ctx, content.ImageURL, caption)
	if err != nil {
		return domain.PublishResult{Platform: p.Platform(), Error: classify.UserMessage(err), RetryCount: retries}
	}

	return domain.PublishResult{
		Platform:   p.Platform(),
		Success:    true,
		PostID:     postID,
		PostURL:    p.permalink(ctx, creds.Instagram, postID),
		RetryCount: retries,
	}
}

// TestConnection resolves the business account's username
func (p *Publisher) TestConnection(ctx context.Context, creds domain.Credentials) domain.ConnectionStatus {
	if err := p.ValidateCredentials(creds); err != nil {
		return domain.ConnectionStatus{Platform: p.Platform(), Error: err.Error()}
	}

	var out struct {
		Username string `json:"username"`
	}
	query := url.Values{}
	query.Set("fields", "username")
	query.Set("access_token", creds.Instagram.AccessToken)
	if err := p.client.Get(ctx, "/"+creds.Instagram.BusinessAccountID, query, &out); err != nil {
		if classify.Classify(err) == classify.CategoryTokenExpired {
			return domain.ConnectionStatus{Platform: p.Platform(), Error: classify.UserMessage(err)}
		}
		return domain.ConnectionStatus{Platform: p.Platform(), Error: fmt.Sprintf("account unreachable: %s", err)}
	}

	return domain.ConnectionStatus{
		Platform: p.Platform(),
		Success:  true,
		Info:     fmt.Sprintf("connected to @%s", out.Username),
	}
}

// ValidateCredentials checks the required fields without any network call
func (p *Publisher) ValidateCredentials(creds domain.Credentials) error {
	return creds.Instagram.Validate()
}

// permalink resolves a durable post link, best effort. Publishing already
// succeeded at this point, so a failed lookup falls back to the generic
// platform URL instead of failing the publish.
func (p *Publisher) permalink(ctx context.Context, creds *domain.InstagramCredentials, postID string) string {
	var out struct {
		Permalink string `json:"permalink"`
	}
	query := url.Values{}
	query.Set("fields", "permalink")
	query.Set("access_token", creds.AccessToken)
	if err := p.client.Get(ctx, "/"+postID, query, &out); err != nil || out.Permalink == "" {
		slog.Debug("Permalink lookup failed, using fallback", "platform", p.Platform(), "post_id", postID, "error", err)
		return fallbackURL
	}
	return out.Permalink
}
