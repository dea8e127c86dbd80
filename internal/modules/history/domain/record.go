package domain

import (
	"time"

	publishDomain "github.com/promodesk/social-publisher/internal/modules/publish/domain"
)

// Record is one audit row: the outcome of publishing one piece of content to
// one platform.
type Record struct {
	ID              string                    `json:"id"`
	BusinessID      string                    `json:"business_id"`
	Platform        publishDomain.Platform    `json:"platform"`
	ContentType     publishDomain.ContentType `json:"content_type"`
	ContentID       string                    `json:"content_id"`
	Status          Status                    `json:"status"`
	ExternalPostID  string                    `json:"external_post_id,omitempty"`
	ExternalPostURL string                    `json:"external_post_url,omitempty"`
	ErrorMessage    string                    `json:"error_message,omitempty"`
	RetryCount      int                       `json:"retry_count"`
	PublishedAt     time.Time                 `json:"published_at"`
	CreatedAt       time.Time                 `json:"created_at"`
}
