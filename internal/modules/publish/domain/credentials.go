package domain

import "github.com/promodesk/social-publisher/internal/shared/errs"

// Credentials bundles the per-platform secrets a business has connected.
// Each platform's subset is optional; a publisher validates its own slice
// before doing any network I/O.
type Credentials struct {
	Telegram  *TelegramCredentials  `json:"telegram,omitempty" koanf:"telegram"`
	VK        *VKCredentials        `json:"vk,omitempty" koanf:"vk"`
	Instagram *InstagramCredentials `json:"instagram,omitempty" koanf:"instagram"`
	Facebook  *FacebookCredentials  `json:"facebook,omitempty" koanf:"facebook"`
}

// TelegramCredentials authorizes posting into a channel via a bot
type TelegramCredentials struct {
	BotToken  string `json:"bot_token" koanf:"bot_token"`
	ChannelID string `json:"channel_id" koanf:"channel_id"`
}

// Validate reports the missing required fields, if any
func (c *TelegramCredentials) Validate() error {
	if c == nil {
		return errs.MissingCredentialsError{Platform: PlatformTelegram.String()}
	}
	var missing []string
	if c.BotToken == "" {
		missing = append(missing, "bot_token")
	}
	if c.ChannelID == "" {
		missing = append(missing, "channel_id")
	}
	if len(missing) > 0 {
		return errs.MissingCredentialsError{Platform: PlatformTelegram.String(), Fields: missing}
	}
	return nil
}

// VKCredentials authorizes posting onto a community wall
type VKCredentials struct {
	AccessToken string `json:"access_token" koanf:"access_token"`
	GroupID     string `json:"group_id" koanf:"group_id"`
}

// Validate reports the missing required fields, if any
func (c *VKCredentials) Validate() error {
	if c == nil {
		return errs.MissingCredentialsError{Platform: PlatformVk.String()}
	}
	var missing []string
	if c.AccessToken == "" {
		missing = append(missing, "access_token")
	}
	if c.GroupID == "" {
		missing = append(missing, "group_id")
	}
	if len(missing) > 0 {
		return errs.MissingCredentialsError{Platform: PlatformVk.String(), Fields: missing}
	}
	return nil
}

// InstagramCredentials authorizes publishing via a business account
type InstagramCredentials struct {
	AccessToken       string `json:"access_token" koanf:"access_token"`
	BusinessAccountID string `json:"business_account_id" koanf:"business_account_id"`
}

// Validate reports the missing required fields, if any
func (c *InstagramCredentials) Validate() error {
	if c == nil {
		return errs.MissingCredentialsError{Platform: PlatformInstagram.String()}
	}
	var missing []string
	if c.AccessToken == "" {
		missing = append(missing, "access_token")
	}
	if c.BusinessAccountID == "" {
		missing = append(missing, "business_account_id")
	}
	if len(missing) > 0 {
		return errs.MissingCredentialsError{Platform: PlatformInstagram.String(), Fields: missing}
	}
	return nil
}

// FacebookCredentials authorizes posting to a page
type FacebookCredentials struct {
	AccessToken string `json:"access_token" koanf:"access_token"`
	PageID      string `json:"page_id" koanf:"page_id"`
}

// Validate reports the missing required fields, if any
func (c *FacebookCredentials) Validate() error {
	if c == nil {
		return errs.MissingCredentialsError{Platform: PlatformFacebook.String()}
	}
	var missing []string
	if c.AccessToken == "" {
		missing = append(missing, "access_token")
	}
	if c.PageID == "" {
		missing = append(missing, "page_id")
	}
	if len(missing) > 0 {
		return errs.MissingCredentialsError{Platform: PlatformFacebook.String(), Fields: missing}
	}
	return nil
}
