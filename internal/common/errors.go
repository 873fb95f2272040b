// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Registry errors.
	ErrNotFound            = errors.New("not found")
	ErrRegistryUnavailable = errors.New("registry unavailable")
	ErrDuplicateEntry      = errors.New("duplicate entry")

	// Input errors.
	ErrInvalidBarcode = errors.New("invalid barcode format")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ContributionError reports a failed registry write-back. Contribution
// failures must propagate to the caller: silently dropping a confirmed
// classification would leave the shared registry incomplete.
type ContributionError struct {
	Err     error
	Barcode string
	Reason  string
}

func (e *ContributionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("contribution for %s rejected: %s: %v", e.Barcode, e.Reason, e.Err)
	}
	return fmt.Sprintf("contribution for %s rejected: %s", e.Barcode, e.Reason)
}

func (e *ContributionError) Unwrap() error {
	return e.Err
}

// NewContributionError creates a typed contribution failure.
func NewContributionError(barcode, reason string, err error) error {
	return &ContributionError{Barcode: barcode, Reason: reason, Err: err}
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRegistryUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
