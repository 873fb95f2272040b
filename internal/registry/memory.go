// Package registry provides adapters for the shared item registry: a
// local SQLite store, a remote HTTP client, and an in-memory fake.
package registry

import (
	"context"
	"sync"

	"diecast/internal/model"
)

// MemoryRegistry is an in-memory registry used by tests and offline runs.
type MemoryRegistry struct {
	records map[string]model.RegistryRecord
	mu      sync.RWMutex
}

// NewMemory creates an empty in-memory registry.
func NewMemory() *MemoryRegistry {
	return &MemoryRegistry{records: make(map[string]model.RegistryRecord)}
}

// Lookup returns the record for a barcode, or (nil, nil) when absent.
func (m *MemoryRegistry) Lookup(ctx context.Context, barcode string) (*model.RegistryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[barcode]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Contribute stores a contribution. Re-contributing a known barcode bumps
// its verification count instead of replacing the record.
func (m *MemoryRegistry) Contribute(_ context.Context, c model.Contribution) error {
	if err := validateContribution(c); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.records[c.Barcode]; ok {
		existing.VerificationCount++
		m.records[c.Barcode] = existing
		return nil
	}

	m.records[c.Barcode] = model.RegistryRecord{
		Barcode:           c.Barcode,
		Name:              c.Name,
		Brand:             c.Brand,
		Series:            c.Series,
		Color:             c.Color,
		Subcategory:       c.Subcategory,
		Category:          c.Category,
		Year:              c.Year,
		VerificationCount: 1,
	}
	return nil
}

// Seed inserts a record directly, bypassing contribution validation.
func (m *MemoryRegistry) Seed(record model.RegistryRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.Barcode] = record
}

// Close implements service.Registry.
func (m *MemoryRegistry) Close() error {
	return nil
}
