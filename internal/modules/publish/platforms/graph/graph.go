// Package graph is the thin HTTP client shared by the publishers that talk
// to the Graph API family (Instagram and Facebook pages).
package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/promodesk/social-publisher/internal/shared/errs"
	"github.com/samber/oops"
)

// DefaultBaseURL is the production Graph API root
const DefaultBaseURL = "https://graph.facebook.com/v18.0"

// Client issues Graph API calls and unwraps the embedded error envelope.
type Client struct {
	BaseURL  string
	HTTP     *http.Client
	Platform string
}

// New creates a Graph client for one platform. baseURL overrides the API
// root (used in tests).
func New(baseURL string, client *http.Client, platform string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{BaseURL: baseURL, HTTP: client, Platform: platform}
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

// PostJSON sends a JSON body to the given path
func (c *Client) PostJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return oops.With("path", path).Wrap(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return oops.With("path", path).Wrap(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// PostForm sends a form-encoded body to the given path
func (c *Client) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return oops.With("path", path).Wrap(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

// Get issues a read call with the given query parameters
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return oops.With("path", path).Wrap(err)
	}
	return c.do(req, out)
}

// do executes the request and surfaces the platform's embedded error object
// ahead of any transport-level status check.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return oops.With("url", req.URL.String()).Wrap(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return oops.With("url", req.URL.String()).Wrap(err)
	}

	var envelope struct {
		Error *apiError `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		return errs.PlatformError{Platform: c.Platform, Code: envelope.Error.Code, Message: envelope.Error.Message}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errs.PlatformError{Platform: c.Platform, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return oops.With("url", req.URL.String()).Wrap(err)
	}
	return nil
}
