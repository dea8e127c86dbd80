package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/promodesk/social-publisher/internal/modules/publish/domain"
)

// Dialect captures what a platform accepts: a character budget and whether
// reserved markdown punctuation has to be escaped.
type Dialect struct {
	MaxLen         int
	EscapeMarkdown bool
}

// DialectFor returns the formatting rules for a platform
func DialectFor(platform domain.Platform) Dialect {
	switch platform {
	case domain.PlatformTelegram:
		return Dialect{MaxLen: 1000, EscapeMarkdown: true}
	case domain.PlatformVk:
		return Dialect{MaxLen: 1500}
	case domain.PlatformInstagram:
		return Dialect{MaxLen: 300}
	case domain.PlatformFacebook:
		return Dialect{MaxLen: 500}
	default:
		return Dialect{MaxLen: 500}
	}
}

const ellipsis = "..."

// Telegram MarkdownV2 reserved punctuation.
var markdownReserved = "_*[]()~`>#+-=|{}.!"

// Message renders the platform-ready text for a publish. It is deterministic
// and performs no I/O.
func Message(content domain.PublishContent, businessName string, dialect Dialect) string {
	var b strings.Builder

	switch content.ContentType {
	case domain.ContentTypePromotion:
		b.WriteString("🎉 " + content.Title)
	default:
		b.WriteString("📅 " + content.Title)
	}

	if businessName != "" {
		b.WriteString("\n" + businessName)
	}

	if content.Description != "" {
		b.WriteString("\n\n" + content.Description)
	}

	switch content.ContentType {
	case domain.ContentTypeEvent:
		if content.Event != nil {
			b.WriteString("\n")
			if !content.Event.Date.IsZero() {
				b.WriteString("\n🗓 When: " + formatDate(content.Event))
			}
			if content.Event.Location != "" {
				b.WriteString("\n📍 Where: " + content.Event.Location)
			}
			b.WriteString("\n💰 Price: " + formatPrice(content.Event))
		}
	case domain.ContentTypePromotion:
		if content.Promotion != nil {
			b.WriteString("\n")
			if content.Promotion.Discount != "" {
				b.WriteString("\n🔥 Discount: " + content.Promotion.Discount)
			}
			if !content.Promotion.ValidUntil.IsZero() {
				b.WriteString("\n⏳ Valid until: " + content.Promotion.ValidUntil.Format("Monday, 2 January 2006"))
			}
		}
	}

	if content.Link != "" {
		b.WriteString("\n\n🔗 " + content.Link)
	}

	text := b.String()
	if dialect.EscapeMarkdown {
		text = EscapeMarkdown(text)
	}
	return Clip(text, dialect.MaxLen)
}

// EscapeMarkdown escapes the MarkdownV2 reserved punctuation set
func EscapeMarkdown(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(markdownReserved, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Clip shortens text to the character budget, ellipsis included
func Clip(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= len(ellipsis) {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}

func formatDate(event *domain.EventDetails) string {
	return event.Date.Format("Monday, 2 January 2006 at 15:04")
}

func formatPrice(event *domain.EventDetails) string {
	if event.IsFree || event.Price == 0 {
		return "free"
	}
	return fmt.Sprintf("%s ₽", strconv.FormatFloat(event.Price, 'f', -1, 64))
}
