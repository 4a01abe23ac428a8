package llm

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil", nil, false},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"rate limited", errors.New("429 Too Many Requests"), true},
		{"overloaded", errors.New("api_error: Overloaded"), true},
		{"timeout", errors.New("request timeout"), true},
		{"wrapped transient", errors.Wrap(errors.New("service unavailable"), "chat failed"), true},
		{"auth rejection", errors.New("401 invalid api key"), false},
		{"bad request", errors.New("400 model not found"), false},
		{"context canceled", context.Canceled, false},
		{"deadline exceeded", context.DeadlineExceeded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryableError(tt.err))
		})
	}
}

func TestExecuteWithRetry(t *testing.T) {
	ctx := context.Background()
	cfg := RetryConfig{Attempts: 3, InitialDelay: 1, MaxDelay: 2, BackoffType: "fixed"}

	t.Run("transient failure is retried to success", func(t *testing.T) {
		calls := 0
		err := executeWithRetry(ctx, cfg, "test", func() error {
			calls++
			if calls < 3 {
				return errors.New("connection reset by peer")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("permanent failure fails fast", func(t *testing.T) {
		calls := 0
		err := executeWithRetry(ctx, cfg, "test", func() error {
			calls++
			return errors.New("401 invalid api key")
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("attempts exhausted returns the last error", func(t *testing.T) {
		calls := 0
		err := executeWithRetry(ctx, cfg, "test", func() error {
			calls++
			return errors.Errorf("timeout %d", calls)
		})
		require.Error(t, err)
		assert.Equal(t, 3, calls)
		assert.Contains(t, err.Error(), "timeout 3")
	})

	t.Run("zero attempts disables retrying", func(t *testing.T) {
		calls := 0
		err := executeWithRetry(ctx, RetryConfig{}, "test", func() error {
			calls++
			return errors.New("connection refused")
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestConfigModelOverride(t *testing.T) {
	cfg := Config{
		Providers: map[string]ProviderConfig{
			"anthropic": {Models: map[string]string{"architect": "custom-opus"}},
		},
	}

	assert.Equal(t, "custom-opus", cfg.modelOverride("anthropic", ModeArchitect))
	assert.Empty(t, cfg.modelOverride("anthropic", ModeWorker))
	assert.Empty(t, cfg.modelOverride("openai", ModeArchitect))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 4096, cfg.MaxTokens)
	assert.Equal(t, 3, cfg.Retry.Attempts)
	assert.Equal(t, "exponential", cfg.Retry.BackoffType)
}
