// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"diecast/internal/model"
)

// RegistryReader is the read side of the shared item registry. Lookup must
// be idempotent and return (nil, nil) for an unknown barcode rather than
// erroring; a non-nil error means the registry itself was unreachable.
type RegistryReader interface {
	Lookup(ctx context.Context, barcode string) (*model.RegistryRecord, error)
}

// RegistryWriter is the write side of the shared item registry. Contribute
// may fail (network, validation); failures surface as typed errors so the
// caller can retry or inform the user.
type RegistryWriter interface {
	Contribute(ctx context.Context, contribution model.Contribution) error
}

// Registry combines both registry ports with lifecycle management.
type Registry interface {
	RegistryReader
	RegistryWriter
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
