package format

import (
	"strings"
	"testing"
	"time"

	"github.com/promodesk/social-publisher/internal/modules/publish/domain"
	"github.com/stretchr/testify/assert"
)

func eventContent() domain.PublishContent {
	return domain.PublishContent{
		Title:       "Jazz Night",
		Description: "Live quartet on the main stage",
		ContentType: domain.ContentTypeEvent,
		Event: &domain.EventDetails{
			Date:     time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC),
			Location: "City Hall",
			IsFree:   true,
		},
	}
}

func TestEventMessage(t *testing.T) {
	text := Message(eventContent(), "Blue Note Cafe", DialectFor(domain.PlatformVk))

	assert.True(t, strings.HasPrefix(text, "📅 Jazz Night"))
	assert.Contains(t, text, "Blue Note Cafe")
	assert.Contains(t, text, "Live quartet on the main stage")
	assert.Contains(t, text, "🗓 When: Sunday, 1 March 2026 at 19:00")
	assert.Contains(t, text, "📍 Where: City Hall")
	assert.Contains(t, text, "💰 Price: free")
}

func TestPromotionMessage(t *testing.T) {
	content := domain.PublishContent{
		Title:       "Spring Sale",
		ContentType: domain.ContentTypePromotion,
		Link:        "https://example.com/sale",
		Promotion: &domain.PromotionDetails{
			Discount:   "20%",
			ValidUntil: time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	text := Message(content, "", DialectFor(domain.PlatformFacebook))

	assert.True(t, strings.HasPrefix(text, "🎉 Spring Sale"))
	assert.Contains(t, text, "🔥 Discount: 20%")
	assert.Contains(t, text, "⏳ Valid until: Thursday, 30 April 2026")
	assert.Contains(t, text, "🔗 https://example.com/sale")
}

func TestPaidEventPrice(t *testing.T) {
	content := eventContent()
	content.Event.IsFree = false
	content.Event.Price = 12.5

	text := Message(content, "", DialectFor(domain.PlatformVk))
	assert.Contains(t, text, "💰 Price: 12.5 ₽")
}

func TestMessageDeterministic(t *testing.T) {
	first := Message(eventContent(), "Blue Note Cafe", DialectFor(domain.PlatformTelegram))
	second := Message(eventContent(), "Blue Note Cafe", DialectFor(domain.PlatformTelegram))
	assert.Equal(t, first, second)
}

func TestTelegramDialectEscapesMarkdown(t *testing.T) {
	content := domain.PublishContent{
		Title:       "50% off (today only)!",
		ContentType: domain.ContentTypePromotion,
	}

	text := Message(content, "", DialectFor(domain.PlatformTelegram))

	assert.Contains(t, text, `50% off \(today only\)\!`)
}

func TestClipRespectsBudget(t *testing.T) {
	long := strings.Repeat("a", 400)

	clipped := Clip(long, 300)
	assert.Len(t, []rune(clipped), 300)
	assert.True(t, strings.HasSuffix(clipped, "..."))

	// Short text passes through untouched.
	assert.Equal(t, "hello", Clip("hello", 300))
}

func TestInstagramBudgetApplied(t *testing.T) {
	content := eventContent()
	content.Description = strings.Repeat("jazz ", 200)

	text := Message(content, "", DialectFor(domain.PlatformInstagram))
	assert.LessOrEqual(t, len([]rune(text)), 300)
	assert.True(t, strings.HasSuffix(text, "..."))
}

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, `a\.b\-c\_d`, EscapeMarkdown("a.b-c_d"))
	assert.Equal(t, "plain text", EscapeMarkdown("plain text"))
}
