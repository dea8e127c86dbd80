package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingImage is returned when a publisher that can only post media
	// receives content without an image URL.
	ErrMissingImage = errors.New("content requires an image")

	// ErrContainerFailed is returned when the platform reports that media
	// container processing ended in an error state.
	ErrContainerFailed = errors.New("container processing failed")

	// ErrContainerTimeout is returned when a media container did not finish
	// processing within the polling budget.
	ErrContainerTimeout = errors.New("container processing timeout")

	// ErrUnknownPlatform is returned for platform identifiers with no
	// registered publisher.
	ErrUnknownPlatform = errors.New("unknown platform")
)

// MissingCredentialsError is returned when a publisher's required credential
// fields are absent. It is always raised before any network call.
type MissingCredentialsError struct {
	Platform string
	Fields   []string
}

func (e MissingCredentialsError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s is not configured", e.Platform)
	}
	return fmt.Sprintf("%s is not configured (missing %s)", e.Platform, strings.Join(e.Fields, ", "))
}

// PlatformError carries the error object embedded in a platform API response.
// Code is the platform's numeric error code when one was present.
type PlatformError struct {
	Platform string
	Code     int
	Message  string
}

func (e PlatformError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s api error %d: %s", e.Platform, e.Code, e.Message)
	}
	return fmt.Sprintf("%s api error: %s", e.Platform, e.Message)
}
