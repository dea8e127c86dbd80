package domain

import (
	"errors"
	"testing"

	"github.com/promodesk/social-publisher/internal/shared/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNilCredentials(t *testing.T) {
	var creds Credentials

	for _, err := range []error{
		creds.Telegram.Validate(),
		creds.VK.Validate(),
		creds.Instagram.Validate(),
		creds.Facebook.Validate(),
	} {
		var missing errs.MissingCredentialsError
		require.True(t, errors.As(err, &missing))
		assert.Empty(t, missing.Fields)
	}
}

func TestValidateReportsMissingFields(t *testing.T) {
	creds := &FacebookCredentials{PageID: "42"}

	err := creds.Validate()
	var missing errs.MissingCredentialsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, PlatformFacebook.String(), missing.Platform)
	assert.Equal(t, []string{"access_token"}, missing.Fields)
}

func TestValidateComplete(t *testing.T) {
	assert.NoError(t, (&TelegramCredentials{BotToken: "t", ChannelID: "@c"}).Validate())
	assert.NoError(t, (&VKCredentials{AccessToken: "t", GroupID: "1"}).Validate())
	assert.NoError(t, (&InstagramCredentials{AccessToken: "t", BusinessAccountID: "1"}).Validate())
	assert.NoError(t, (&FacebookCredentials{AccessToken: "t", PageID: "1"}).Validate())
}

func TestParsePlatform(t *testing.T) {
	platform, err := ParsePlatform("telegram")
	require.NoError(t, err)
	assert.Equal(t, PlatformTelegram, platform)

	_, err = ParsePlatform("myspace")
	assert.ErrorIs(t, err, ErrInvalidPlatform)
}
