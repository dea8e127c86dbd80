package retry

import (
	"context"
	"errors"
	"time"
)

// Policy bounds a retried operation. Attempts are counted from 1.
type Policy struct {
	MaxAttempts int           `koanf:"max_attempts"`
	BaseDelay   time.Duration `koanf:"base_delay"`
	MaxDelay    time.Duration `koanf:"max_delay"`
}

// Default is the policy used for platform calls unless configuration
// overrides it.
func Default() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    10 * time.Second,
	}
}

// Delay returns the backoff slept after the given failed attempt:
// min(BaseDelay * 2^(attempt-1), MaxDelay).
func (p Policy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := p.BaseDelay
	for i := 1; i < attempt; i++ {
		d *= 2
		if p.MaxDelay > 0 && d >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if p.MaxDelay > 0 && d > p.MaxDelay {
		return p.MaxDelay
	}
	return d
}

// Do runs op up to p.MaxAttempts times, sleeping Delay(attempt) between
// attempts while shouldRetry approves the failure. A nil shouldRetry retries
// every error. It returns the successful value, the number of attempts that
// were executed, and the final error when attempts are exhausted or the
// predicate rejects the failure. The last error is never swallowed.
func Do[T any](ctx context.Context, p Policy, shouldRetry func(error) bool, op func(ctx context.Context) (T, error)) (T, int, error) {
	var zero T
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if shouldRetry == nil {
		shouldRetry = func(error) bool { return true }
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		value, err := op(ctx)
		if err == nil {
			return value, attempt, nil
		}
		lastErr = err

		if attempt == p.MaxAttempts || !shouldRetry(err) {
			return zero, attempt, lastErr
		}
		if err := sleep(ctx, p.Delay(attempt)); err != nil {
			return zero, attempt, errors.Join(lastErr, err)
		}
	}
	return zero, p.MaxAttempts, lastErr
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
