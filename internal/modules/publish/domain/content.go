package domain

import "time"

// PublishContent is the normalized payload shared by every platform publisher.
// It is built once per dispatch and treated as read-only afterwards.
type PublishContent struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	ImageURL    string      `json:"image_url,omitempty"`
	VideoURL    string      `json:"video_url,omitempty"`
	Link        string      `json:"link,omitempty"`
	ContentType ContentType `json:"content_type"`

	Event     *EventDetails     `json:"event,omitempty"`
	Promotion *PromotionDetails `json:"promotion,omitempty"`
}

// EventDetails carries the event-specific part of the payload
type EventDetails struct {
	Date     time.Time `json:"date"`
	Location string    `json:"location,omitempty"`
	Price    float64   `json:"price,omitempty"`
	IsFree   bool      `json:"is_free"`
}

// PromotionDetails carries the promotion-specific part of the payload
type PromotionDetails struct {
	Discount   string    `json:"discount,omitempty"`
	ValidUntil time.Time `json:"valid_until,omitempty"`
}

// HasMedia reports whether the content carries an image or video attachment
func (c PublishContent) HasMedia() bool {
	return c.ImageURL != "" || c.VideoURL != ""
}
