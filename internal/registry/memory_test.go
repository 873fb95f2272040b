package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diecast/internal/common"
	"diecast/internal/model"
)

func TestMemoryRegistry_Lookup(t *testing.T) {
	reg := NewMemory()
	ctx := context.Background()

	t.Run("absent barcode returns nil without error", func(t *testing.T) {
		record, err := reg.Lookup(ctx, "887961123456")
		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("seeded record is returned", func(t *testing.T) {
		reg.Seed(model.RegistryRecord{
			Barcode:  "194735654321",
			Name:     "McLaren F1 GTR",
			Category: model.CategoryPremium,
		})

		record, err := reg.Lookup(ctx, "194735654321")
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, "McLaren F1 GTR", record.Name)
	})

	t.Run("cancelled context surfaces the context error", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		record, err := reg.Lookup(cancelled, "194735654321")
		require.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, record)
	})
}

func TestMemoryRegistry_Contribute(t *testing.T) {
	ctx := context.Background()

	t.Run("new contribution creates a record", func(t *testing.T) {
		reg := NewMemory()

		err := reg.Contribute(ctx, model.Contribution{
			Barcode:  "887961123456",
			Name:     "Twin Mill",
			Brand:    "Chevrolet",
			Category: model.CategoryMainline,
		})
		require.NoError(t, err)

		record, err := reg.Lookup(ctx, "887961123456")
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, "Twin Mill", record.Name)
		assert.Equal(t, 1, record.VerificationCount)
	})

	t.Run("re-contribution bumps the verification count", func(t *testing.T) {
		reg := NewMemory()
		contribution := model.Contribution{
			Barcode:  "887961123456",
			Name:     "Twin Mill",
			Category: model.CategoryMainline,
		}

		require.NoError(t, reg.Contribute(ctx, contribution))
		require.NoError(t, reg.Contribute(ctx, contribution))
		require.NoError(t, reg.Contribute(ctx, contribution))

		record, err := reg.Lookup(ctx, "887961123456")
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, 3, record.VerificationCount)
		// The original fields survive re-contribution.
		assert.Equal(t, "Twin Mill", record.Name)
	})
}

func TestMemoryRegistry_ContributionValidation(t *testing.T) {
	reg := NewMemory()
	ctx := context.Background()

	tests := []struct {
		name         string
		contribution model.Contribution
		wantReason   string
	}{
		{
			name:         "missing barcode",
			contribution: model.Contribution{Category: model.CategoryMainline},
			wantReason:   "barcode is required",
		},
		{
			name:         "missing category",
			contribution: model.Contribution{Barcode: "887961123456"},
			wantReason:   "category must be resolved",
		},
		{
			name: "unknown category",
			contribution: model.Contribution{
				Barcode:  "887961123456",
				Category: model.CategoryUnknown,
			},
			wantReason: "category must be resolved",
		},
		{
			name: "unparseable category",
			contribution: model.Contribution{
				Barcode:  "887961123456",
				Category: model.Category("vintage"),
			},
			wantReason: "unknown category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := reg.Contribute(ctx, tt.contribution)
			require.Error(t, err)

			var contributionErr *common.ContributionError
			require.ErrorAs(t, err, &contributionErr)
			assert.Contains(t, contributionErr.Reason, tt.wantReason)

			// Rejected contributions must not create records.
			if tt.contribution.Barcode != "" {
				record, lookupErr := reg.Lookup(ctx, tt.contribution.Barcode)
				require.NoError(t, lookupErr)
				assert.Nil(t, record)
			}
		})
	}
}
