package classify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/promodesk/social-publisher/internal/shared/errs"
)

// Graph API family error codes that indicate an expired or revoked token.
// Retrying cannot recover from these; the user has to reconnect the account.
var tokenExpiredCodes = map[int]struct{}{
	190: {},
	463: {},
	102: {},
}

// Classify labels a failure from a platform call. Preconditions map to
// validation, known token-expiry signals to token_expired, and everything
// else defaults to transient.
func Classify(err error) Category {
	if err == nil {
		return CategoryTransient
	}

	var missing errs.MissingCredentialsError
	if errors.As(err, &missing) {
		return CategoryValidation
	}
	if errors.Is(err, errs.ErrMissingImage) || errors.Is(err, errs.ErrUnknownPlatform) {
		return CategoryValidation
	}

	var platformErr errs.PlatformError
	if errors.As(err, &platformErr) {
		if _, ok := tokenExpiredCodes[platformErr.Code]; ok {
			return CategoryTokenExpired
		}
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "token") && (strings.Contains(msg, "expired") || strings.Contains(msg, "invalid")) {
		return CategoryTokenExpired
	}

	return CategoryTransient
}

// Retryable is the shared retry predicate: everything except a classified
// token expiry is worth another attempt.
func Retryable(err error) bool {
	return Classify(err) != CategoryTokenExpired
}

// UserMessage turns a failure into the text shown to the business owner,
// keeping the raw platform message only where it is actionable.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	switch Classify(err) {
	case CategoryTokenExpired:
		return "access token expired or revoked, please reconnect the account"
	case CategoryValidation:
		return err.Error()
	default:
		return fmt.Sprintf("publish failed: %s", err.Error())
	}
}
