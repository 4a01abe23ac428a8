package llm

import (
	"context"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"

	"github.com/agentctl/agentctl/pkg/logger"
)

var retryablePatterns = []string{
	"connection refused",
	"connection reset",
	"timeout",
	"temporary failure",
	"service unavailable",
	"internal error",
	"rate limit",
	"too many requests",
	"overloaded",
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range retryablePatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// executeWithRetry runs operation with the configured retry policy. Only
// transient transport errors are retried; context cancellation and API
// rejections surface immediately.
func executeWithRetry(ctx context.Context, cfg RetryConfig, provider string, operation func() error) error {
	if cfg.Attempts == 0 {
		return operation()
	}

	delayType := retry.BackOffDelay
	if cfg.BackoffType == "fixed" {
		delayType = retry.FixedDelay
	}

	return retry.Do(
		operation,
		retry.RetryIf(isRetryableError),
		retry.Attempts(uint(cfg.Attempts)),
		retry.Delay(time.Duration(cfg.InitialDelay)*time.Millisecond),
		retry.MaxDelay(time.Duration(cfg.MaxDelay)*time.Millisecond),
		retry.DelayType(delayType),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.G(ctx).WithError(err).
				WithField("provider", provider).
				WithField("attempt", n+1).
				Warn("retrying chat call")
		}),
	)
}
