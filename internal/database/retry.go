package database

import (
	"context"
	"time"

	"github.com/hitekdb/deeplink/internal/logger"
)

// Policy retries an operation when its error is classified as retryable.
// The delay starts at BaseDelay and doubles after each failed attempt.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Retryable   func(error) bool
	Logger      *logger.Logger
}

// DefaultPolicy returns the standard policy for dataset reads:
// 3 attempts, 500ms base delay, retrying only transient contention.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		Retryable:   IsTransient,
	}
}

// Do runs op, retrying per the policy. Non-retryable errors propagate
// immediately; when all attempts are exhausted the final attempt's error is
// returned as-is. The backoff sleep is context-aware and holds no locks.
func (p Policy) Do(ctx context.Context, op func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := p.BaseDelay

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if p.Retryable == nil || !p.Retryable(err) {
			return err
		}
		if attempt == attempts {
			break
		}

		if p.Logger != nil {
			p.Logger.Warnw("Storage busy, retrying",
				"attempt", attempt,
				"max_attempts", attempts,
				"delay", delay,
			)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return err
}
