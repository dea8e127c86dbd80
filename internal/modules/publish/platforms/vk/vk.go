package vk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/promodesk/social-publisher/internal/modules/publish/domain"
	"github.com/promodesk/social-publisher/internal/modules/publish/format"
	"github.com/promodesk/social-publisher/internal/shared/classify"
	"github.com/promodesk/social-publisher/internal/shared/errs"
	"github.com/promodesk/social-publisher/internal/shared/retry"
	"github.com/samber/oops"
)

const (
	defaultBaseURL = "https://api.vk.com"
	apiVersion     = "5.131"
)

// Publisher posts onto a community wall via the VK API.
type Publisher struct {
	baseURL string
	client  *http.Client
	policy  retry.Policy
}

// New creates a VK publisher. baseURL overrides the API host (used in tests).
func New(baseURL string, client *http.Client, policy retry.Policy) *Publisher {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Publisher{baseURL: baseURL, client: client, policy: policy}
}

// Platform identifies the publisher
func (p *Publisher) Platform() domain.Platform {
	return domain.PlatformVk
}

// Publish performs a single retried wall.post call
func (p *Publisher) Publish(ctx context.Context, content domain.PublishContent, creds domain.Credentials, businessName string) domain.PublishResult {
	if err := creds.VK.Validate(); err != nil {
		return domain.PublishResult{Platform: p.Platform(), Error: classify.UserMessage(err)}
	}

	text := format.Message(content, businessName, format.DialectFor(p.Platform()))
	attachment := content.ImageURL
	if attachment == "" {
		attachment = content.Link
	}

	postID, attempts, err := retry.Do(ctx, p.policy, classify.Retryable, func(ctx context.Context) (int64, error) {
		return p.wallPost(ctx, creds.VK, text, attachment)
	})
	if err != nil {
		return domain.PublishResult{Platform: p.Platform(), Error: classify.UserMessage(err), RetryCount: attempts - 1}
	}

	return domain.PublishResult{
		Platform:   p.Platform(),
		Success:    true,
		PostID:     fmt.Sprintf("%d", postID),
		PostURL:    fmt.Sprintf("https://vk.com/wall-%s_%d", creds.VK.GroupID, postID),
		RetryCount: attempts - 1,
	}
}

// TestConnection resolves the configured group and returns its display name
func (p *Publisher) TestConnection(ctx context.Context, creds domain.Credentials) domain.ConnectionStatus {
	if err := creds.VK.Validate(); err != nil {
		return domain.ConnectionStatus{Platform: p.Platform(), Error: err.Error()}
	}

	var payload struct {
		Response []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"response"`
		Error *apiError `json:"error"`
	}
	form := url.Values{}
	form.Set("access_token", creds.VK.AccessToken)
	form.Set("group_id", creds.VK.GroupID)
	form.Set("v", apiVersion)
	if err := p.call(ctx, "groups.getById", form, &payload); err != nil {
		return domain.ConnectionStatus{Platform: p.Platform(), Error: fmt.Sprintf("credentials invalid: %s", err)}
	}
	if payload.Error != nil {
		err := payload.Error.toError()
		if classify.Classify(err) == classify.CategoryTokenExpired {
			return domain.ConnectionStatus{Platform: p.Platform(), Error: classify.UserMessage(err)}
		}
		return domain.ConnectionStatus{Platform: p.Platform(), Error: fmt.Sprintf("group unreachable: %s", err)}
	}
	if len(payload.Response) == 0 {
		return domain.ConnectionStatus{Platform: p.Platform(), Error: "group unreachable: empty response"}
	}

	return domain.ConnectionStatus{
		Platform: p.Platform(),
		Success:  true,
		Info:     fmt.Sprintf("connected to %s", payload.Response[0].Name),
	}
}

// ValidateCredentials checks the required fields without any network call
func (p *Publisher) ValidateCredentials(creds domain.Credentials) error {
	return creds.VK.Validate()
}

type apiError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_msg"`
}

func (e *apiError) toError() error {
	return errs.PlatformError{Platform: domain.PlatformVk.String(), Code: e.Code, Message: e.Message}
}

func (p *Publisher) wallPost(ctx context.Context, creds *domain.VKCredentials, message, attachment string) (int64, error) {
	form := url.Values{}
	form.Set("access_token", creds.AccessToken)
	form.Set("owner_id", "-"+creds.GroupID)
	form.Set("from_group", "1")
	form.Set("message", message)
	form.Set("v", apiVersion)
	if attachment != "" {
		form.Set("attachments", attachment)
	}

	var payload struct {
		Response *struct {
			PostID int64 `json:"post_id"`
		} `json:"response"`
		Error *apiError `json:"error"`
	}
	if err := p.call(ctx, "wall.post", form, &payload); err != nil {
		return 0, err
	}
	if payload.Error != nil {
		return 0, payload.Error.toError()
	}
	if payload.Response == nil {
		return 0, oops.With("method", "wall.post").Errorf("vk response missing post_id")
	}
	return payload.Response.PostID, nil
}

// call posts a form-encoded VK API method and decodes the JSON envelope.
// VK reports failures inside a 200 response; the caller inspects the
// embedded error object.
func (p *Publisher) call(ctx context.Context, method string, form url.Values, out any) error {
	endpoint := fmt.Sprintf("%s/method/%s", p.baseURL, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return oops.With("method", method).Wrap(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return oops.With("method", method).Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errs.PlatformError{Platform: p.Platform().String(), Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return oops.With("method", method).Wrap(err)
	}
	return nil
}
