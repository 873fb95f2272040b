package registry

import (
	"diecast/internal/common"
	"diecast/internal/model"
)

// validateContribution rejects write-backs that would leave the shared
// registry with unusable records.
func validateContribution(c model.Contribution) error {
	if c.Barcode == "" {
		return common.NewContributionError(c.Barcode, "barcode is required", nil)
	}
	if c.Category == "" || c.Category == model.CategoryUnknown {
		return common.NewContributionError(c.Barcode, "category must be resolved before contributing", nil)
	}
	if !c.Category.Valid() {
		return common.NewContributionError(c.Barcode, "unknown category "+string(c.Category), nil)
	}
	return nil
}
