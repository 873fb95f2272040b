package common

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContributionError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		inner := errors.New("connection refused")
		err := NewContributionError("887961123456", "registry unreachable", inner)

		assert.Contains(t, err.Error(), "887961123456")
		assert.Contains(t, err.Error(), "registry unreachable")
		assert.ErrorIs(t, err, inner)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewContributionError("887961123456", "barcode is required", nil)

		var contributionErr *ContributionError
		require.ErrorAs(t, err, &contributionErr)
		assert.Equal(t, "887961123456", contributionErr.Barcode)
		assert.NoError(t, contributionErr.Unwrap())
	})
}

func TestUserError(t *testing.T) {
	inner := errors.New("disk full")
	err := NewUserError("failed to save the item", inner)

	assert.Contains(t, err.Error(), "failed to save the item")
	assert.ErrorIs(t, err, inner)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "registry unavailable", err: ErrRegistryUnavailable, want: true},
		{name: "wrapped registry unavailable", err: NewContributionError("x", "down", ErrRegistryUnavailable), want: true},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: true},
		{name: "retryable flag set", err: &RetryableError{Err: errors.New("x"), Retryable: true}, want: true},
		{name: "retryable flag unset", err: &RetryableError{Err: errors.New("x"), Retryable: false}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "not found", err: ErrNotFound, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
