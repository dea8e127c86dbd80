package classify

import (
	"errors"
	"fmt"
	"testing"

	"github.com/promodesk/social-publisher/internal/shared/errs"
	"github.com/stretchr/testify/assert"
)

func TestClassifyTokenExpiredCodes(t *testing.T) {
	for _, code := range []int{190, 463, 102} {
		err := errs.PlatformError{Platform: "facebook", Code: code, Message: "session has been invalidated"}
		assert.Equal(t, CategoryTokenExpired, Classify(err), "code %d", code)
	}
}

func TestClassifyTokenExpiredMessage(t *testing.T) {
	assert.Equal(t, CategoryTokenExpired, Classify(errors.New("token invalid or expired")))
	assert.Equal(t, CategoryTokenExpired, Classify(errors.New("access_token has expired, refresh it")))
	// "token" alone is not enough.
	assert.Equal(t, CategoryTransient, Classify(errors.New("token bucket empty")))
}

func TestClassifyValidation(t *testing.T) {
	assert.Equal(t, CategoryValidation, Classify(errs.MissingCredentialsError{Platform: "vk", Fields: []string{"access_token"}}))
	assert.Equal(t, CategoryValidation, Classify(errs.ErrMissingImage))
	assert.Equal(t, CategoryValidation, Classify(fmt.Errorf("%w: myspace", errs.ErrUnknownPlatform)))
}

func TestClassifyDefaultsToTransient(t *testing.T) {
	assert.Equal(t, CategoryTransient, Classify(errors.New("unexpected status 500")))
	assert.Equal(t, CategoryTransient, Classify(errs.PlatformError{Platform: "vk", Code: 10, Message: "internal server error"}))
}

func TestRetryable(t *testing.T) {
	assert.False(t, Retryable(errs.PlatformError{Platform: "instagram", Code: 190, Message: "expired"}))
	assert.True(t, Retryable(errors.New("connection reset")))
}

func TestUserMessage(t *testing.T) {
	assert.Contains(t, UserMessage(errs.PlatformError{Platform: "facebook", Code: 190, Message: "expired"}), "reconnect")
	assert.Equal(t, "content requires an image", UserMessage(errs.ErrMissingImage))
	assert.Contains(t, UserMessage(errors.New("status 502")), "status 502")
}
