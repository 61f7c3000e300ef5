package common

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLoggerTo(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, SetupLoggerTo(&buf, slog.LevelDebug, "json"))
	LogDebug("filter committed", Fields{"filter": "whisky"})
	assert.Contains(t, buf.String(), `"filter":"whisky"`)

	buf.Reset()
	require.NoError(t, SetupLoggerTo(&buf, slog.LevelInfo, "console"))
	LogDebug("hidden", nil)
	LogError(errors.New("boom"), "catalog sync failed", Fields{"source": "remote"})
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "error=boom")

	assert.ErrorIs(t, SetupLoggerTo(&buf, slog.LevelInfo, "xml"), ErrInvalidConfig)
}

func TestUserError(t *testing.T) {
	err := NewUserError("could not load catalog", ErrCatalogUnavailable)
	assert.Equal(t, "could not load catalog: catalog unavailable", err.Error())
	assert.ErrorIs(t, err, ErrCatalogUnavailable)

	bare := &UserError{UserMessage: "nothing to show"}
	assert.Equal(t, "nothing to show", bare.Error())
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(fmt.Errorf("fetch: %w", ErrCatalogUnavailable)))
	assert.True(t, IsRetryable(ErrRateLimit))
	assert.True(t, IsRetryable(context.DeadlineExceeded))
	assert.True(t, IsRetryable(&RetryableError{Err: errors.New("503"), Retryable: true}))
	assert.False(t, IsRetryable(&RetryableError{Err: errors.New("404"), Retryable: false}))
	assert.False(t, IsRetryable(ErrInvalidCatalog))
	assert.False(t, IsRetryable(&RetryableError{
		Err:       fmt.Errorf("%w: GET /categories returned 404", ErrCatalogUnavailable),
		Retryable: false,
	}), "explicit verdict beats the wrapped sentinel")
}

func TestWithRetry(t *testing.T) {
	ctx := context.Background()
	opts := RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		attempts := 0
		err := WithRetry(ctx, func() error {
			attempts++
			if attempts < 3 {
				return ErrCatalogUnavailable
			}
			return nil
		}, opts)
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		attempts := 0
		err := WithRetry(ctx, func() error {
			attempts++
			return ErrCatalogUnavailable
		}, opts)
		assert.ErrorIs(t, err, ErrMaxRetries)
		assert.ErrorIs(t, err, ErrCatalogUnavailable)
		assert.Equal(t, 3, attempts)
	})

	t.Run("stops on non-retryable error", func(t *testing.T) {
		attempts := 0
		err := WithRetry(ctx, func() error {
			attempts++
			return &RetryableError{Err: errors.New("bad request"), Retryable: false}
		}, opts)
		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("does not retry unclassified errors", func(t *testing.T) {
		attempts := 0
		err := WithRetry(ctx, func() error {
			attempts++
			return fmt.Errorf("decode categories: %w", ErrInvalidCatalog)
		}, opts)
		assert.ErrorIs(t, err, ErrInvalidCatalog)
		assert.NotErrorIs(t, err, ErrMaxRetries)
		assert.Equal(t, 1, attempts)
	})

	t.Run("retries rate limits", func(t *testing.T) {
		attempts := 0
		err := WithRetry(ctx, func() error {
			attempts++
			if attempts == 1 {
				return fmt.Errorf("GET /products: %w", ErrRateLimit)
			}
			return nil
		}, opts)
		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err := WithRetry(cancelled, func() error { return ErrCatalogUnavailable }, RetryOptions{MaxAttempts: 5, InitialDelay: time.Second})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
