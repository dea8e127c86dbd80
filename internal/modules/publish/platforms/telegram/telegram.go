package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/promodesk/social-publisher/internal/modules/publish/domain"
	"github.com/promodesk/social-publisher/internal/modules/publish/format"
	"github.com/promodesk/social-publisher/internal/shared/classify"
	"github.com/promodesk/social-publisher/internal/shared/retry"
	"github.com/samber/oops"
)

const requestTimeout = 30 * time.Second

// Publisher posts into a Telegram channel through the Bot API.
type Publisher struct {
	apiURL string
	client *http.Client
	policy retry.Policy
}

// New creates a Telegram publisher. apiURL overrides the Bot API host
// (used in tests); empty means api.telegram.org.
func New(apiURL string, client *http.Client, policy retry.Policy) *Publisher {
	return &Publisher{apiURL: apiURL, client: client, policy: policy}
}

// Platform identifies the publisher
func (p *Publisher) Platform() domain.Platform {
	return domain.PlatformTelegram
}

// Publish sends the content as a photo or video with caption, falling back to
// a text-only message once the media attempt has exhausted its retries. The
// reported retry count reflects whichever path produced the final outcome.
func (p *Publisher) Publish(ctx context.Context, content domain.PublishContent, creds domain.Credentials, businessName string) domain.PublishResult {
	if err := creds.Telegram.Validate(); err != nil {
		return domain.PublishResult{Platform: p.Platform(), Error: classify.UserMessage(err)}
	}

	b, err := p.newBot(creds.Telegram.BotToken)
	if err != nil {
		return domain.PublishResult{Platform: p.Platform(), Error: classify.UserMessage(err)}
	}

	channelID := creds.Telegram.ChannelID
	text := format.Message(content, businessName, format.DialectFor(p.Platform()))

	if content.HasMedia() {
		msg, attempts, err := retry.Do(ctx, p.policy, classify.Retryable, func(ctx context.Context) (*models.Message, error) {
			return p.sendMedia(ctx, b, channelID, content, text)
		})
		if err == nil {
			return p.successResult(channelID, msg, attempts-1)
		}
		if !classify.Retryable(err) {
			return domain.PublishResult{Platform: p.Platform(), Error: classify.UserMessage(err), RetryCount: attempts - 1}
		}
		slog.Warn("Media send exhausted retries, falling back to text", "platform", p.Platform(), "error", err)
	}

	msg, attempts, err := retry.Do(ctx, p.policy, classify.Retryable, func(ctx context.Context) (*models.Message, error) {
		return b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:    channelID,
			Text:      text,
			ParseMode: models.ParseModeMarkdown,
		})
	})
	if err != nil {
		return domain.PublishResult{Platform: p.Platform(), Error: classify.UserMessage(err), RetryCount: attempts - 1}
	}
	return p.successResult(channelID, msg, attempts-1)
}

// TestConnection verifies the bot token and the channel reachability
func (p *Publisher) TestConnection(ctx context.Context, creds domain.Credentials) domain.ConnectionStatus {
	if err := creds.Telegram.Validate(); err != nil {
		return domain.ConnectionStatus{Platform: p.Platform(), Error: err.Error()}
	}

	b, err := p.newBot(creds.Telegram.BotToken)
	if err != nil {
		return domain.ConnectionStatus{Platform: p.Platform(), Error: err.Error()}
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		if classify.Classify(err) == classify.CategoryTokenExpired {
			return domain.ConnectionStatus{Platform: p.Platform(), Error: classify.UserMessage(err)}
		}
		return domain.ConnectionStatus{Platform: p.Platform(), Error: fmt.Sprintf("bot credentials invalid: %s", err)}
	}

	chat, err := b.GetChat(ctx, &bot.GetChatParams{ChatID: creds.Telegram.ChannelID})
	if err != nil {
		return domain.ConnectionStatus{Platform: p.Platform(), Error: fmt.Sprintf("channel unreachable: %s", err)}
	}

	return domain.ConnectionStatus{
		Platform: p.Platform(),
		Success:  true,
		Info:     fmt.Sprintf("@%s connected to %s", me.Username, chat.Title),
	}
}

// ValidateCredentials checks the required fields without any network call
func (p *Publisher) ValidateCredentials(creds domain.Credentials) error {
	return creds.Telegram.Validate()
}

func (p *Publisher) newBot(token string) (*bot.Bot, error) {
	opts := []bot.Option{bot.WithSkipGetMe()}
	if p.apiURL != "" {
		opts = append(opts, bot.WithServerURL(p.apiURL))
	}
	if p.client != nil {
		opts = append(opts, bot.WithHTTPClient(requestTimeout, p.client))
	}
	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, oops.With("platform", p.Platform()).Wrap(err)
	}
	return b, nil
}

func (p *Publisher) sendMedia(ctx context.Context, b *bot.Bot, channelID string, content domain.PublishContent, caption string) (*models.Message, error) {
	if content.ImageURL != "" {
		return b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:    channelID,
			Photo:     &models.InputFileString{Data: content.ImageURL},
			Caption:   caption,
			ParseMode: models.ParseModeMarkdown,
		})
	}
	return b.SendVideo(ctx, &bot.SendVideoParams{
		ChatID:    channelID,
		Video:     &models.InputFileString{Data: content.VideoURL},
		Caption:   caption,
		ParseMode: models.ParseModeMarkdown,
	})
}

func (p *Publisher) successResult(channelID string, msg *models.Message, retries int) domain.PublishResult {
	return domain.PublishResult{
		Platform:   p.Platform(),
		Success:    true,
		PostID:     fmt.Sprintf("%d", msg.ID),
		PostURL:    postURL(channelID, msg.ID),
		RetryCount: retries,
	}
}

// postURL synthesizes the public link for a channel message. Public channels
// use t.me/<name>/<id>, private ones the t.me/c/<internal id> form.
func postURL(channelID string, messageID int) string {
	if name, ok := strings.CutPrefix(channelID, "@"); ok {
		return fmt.Sprintf("https://t.me/%s/%d", name, messageID)
	}
	if internal, ok := strings.CutPrefix(channelID, "-100"); ok {
		return fmt.Sprintf("https://t.me/c/%s/%d", internal, messageID)
	}
	return fmt.Sprintf("https://t.me/%s/%d", channelID, messageID)
}
