package facebook

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/promodesk/social-publisher/internal/modules/publish/domain"
	"github.com/promodesk/social-publisher/internal/modules/publish/format"
	"github.com/promodesk/social-publisher/internal/modules/publish/platforms/graph"
	"github.com/promodesk/social-publisher/internal/shared/classify"
	"github.com/promodesk/social-publisher/internal/shared/retry"
)

// Publisher posts to a page feed via the Graph API.
type Publisher struct {
	client *graph.Client
	policy retry.Policy
}

// New creates a Facebook publisher. baseURL overrides the Graph API root
// (used in tests).
func New(baseURL string, client *http.Client, policy retry.Policy) *Publisher {
	return &Publisher{
		client: graph.New(baseURL, client, domain.PlatformFacebook.String()),
		policy: policy,
	}
}

// Platform identifies the publisher
func (p *Publisher) Platform() domain.Platform {
	return domain.PlatformFacebook
}

// Publish issues a single retried POST. The endpoint and payload shape follow
// the available content fields: image → photos, link → feed with link,
// otherwise a plain feed message.
func (p *Publisher) Publish(ctx context.Context, content domain.PublishContent, creds domain.Credentials, businessName string) domain.PublishResult {
	if err := creds.Facebook.Validate(); err != nil {
		return domain.PublishResult{Platform: p.Platform(), Error: classify.UserMessage(err)}
	}

	message := format.Message(content, businessName, format.DialectFor(p.Platform()))

	postID, attempts, err := retry.Do(ctx, p.policy, classify.Retryable, func(ctx context.Context) (string, error) {
		return p.post(ctx, creds.Facebook, content, message)
	})
	if err != nil {
		return domain.PublishResult{Platform: p.Platform(), Error: classify.UserMessage(err), RetryCount: attempts - 1}
	}

	return domain.PublishResult{
		Platform:   p.Platform(),
		Success:    true,
		PostID:     postID,
		PostURL:    fmt.Sprintf("https://www.facebook.com/%s", postID),
		RetryCount: attempts - 1,
	}
}

// TestConnection resolves the configured page and returns its display name
func (p *Publisher) TestConnection(ctx context.Context, creds domain.Credentials) domain.ConnectionStatus {
	if err := creds.Facebook.Validate(); err != nil {
		return domain.ConnectionStatus{Platform: p.Platform(), Error: err.Error()}
	}

	var out struct {
		Name string `json:"name"`
	}
	query := url.Values{}
	query.Set("fields", "name")
	query.Set("access_token", creds.Facebook.AccessToken)
	if err := p.client.Get(ctx, "/"+creds.Facebook.PageID, query, &out); err != nil {
		if classify.Classify(err) == classify.CategoryTokenExpired {
			return domain.ConnectionStatus{Platform: p.Platform(), Error: classify.UserMessage(err)}
		}
		return domain.ConnectionStatus{Platform: p.Platform(), Error: fmt.Sprintf("page unreachable: %s", err)}
	}

	return domain.ConnectionStatus{
		Platform: p.Platform(),
		Success:  true,
		Info:     fmt.Sprintf("connected to %s", out.Name),
	}
}

// ValidateCredentials checks the required fields without any network call
func (p *Publisher) ValidateCredentials(creds domain.Credentials) error {
	return creds.Facebook.Validate()
}

func (p *Publisher) post(ctx context.Context, creds *domain.FacebookCredentials, content domain.PublishContent, message string) (string, error) {
	var out struct {
		ID     string `json:"id"`
		PostID string `json:"post_id"`
	}

	switch {
	case content.ImageURL != "":
		body := map[string]string{
			"url":          content.ImageURL,
			"caption":      message,
			"access_token": creds.AccessToken,
		}
		if err := p.client.PostJSON(ctx, "/"+creds.PageID+"/photos", body, &out); err != nil {
			return "", err
		}
	case content.Link != "":
		form := url.Values{}
		form.Set("message", message)
		form.Set("link", content.Link)
		form.Set("access_token", creds.AccessToken)
		if err := p.client.PostForm(ctx, "/"+creds.PageID+"/feed", form, &out); err != nil {
			return "", err
		}
	default:
		form := url.Values{}
		form.Set("message", message)
		form.Set("access_token", creds.AccessToken)
		if err := p.client.PostForm(ctx, "/"+creds.PageID+"/feed", form, &out); err != nil {
			return "", err
		}
	}

	// Photo uploads report both the photo id and the resulting feed post id.
	if out.PostID != "" {
		return out.PostID, nil
	}
	return out.ID, nil
}
