// Package barcode classifies manufacturer barcodes against a fixed table of
// product-line prefix patterns.
package barcode

import "diecast/internal/model"

// Confidence tiers. Each pattern carries a fixed constant, never a
// computed score.
const (
	// ConfidenceExact applies to patterns narrowed down to a single
	// product line by a serial sub-range.
	ConfidenceExact = 0.95
	// ConfidenceHigh applies to single-prefix manufacturer patterns.
	ConfidenceHigh = 0.9
	// ConfidenceMedium applies to broader multi-prefix patterns.
	ConfidenceMedium = 0.8
)

// SerialRange restricts a pattern to a window of the trailing six digits.
type SerialRange struct {
	Min int
	Max int
}

// Pattern binds a barcode shape to a product line. Higher-priority
// patterns are checked first, so a sub-range pattern must outrank the
// broader prefix that contains it.
type Pattern struct {
	Name        string
	Regex       string
	Series      string
	ProductLine string
	Category    model.Category
	Serial      *SerialRange
	Priority    int
	Confidence  float64
}

// DefaultPatterns returns the known manufacturer prefix patterns, ordered
// most-specific-first by priority.
func DefaultPatterns() []Pattern {
	return []Pattern{
		// Team Transport shares the premium prefix and is distinguished only
		// by its serial window, so it must be ranked above the broad premium
		// pattern or it would never match.
		{
			Name:        "Team Transport",
			Regex:       `^194735\d{6}$`,
			Category:    model.CategoryPremium,
			Series:      "team_transport",
			ProductLine: "Die-cast Premium",
			Serial:      &SerialRange{Min: 100000, Max: 199999},
			Priority:    100,
			Confidence:  ConfidenceExact,
		},
		{
			Name:        "Premium",
			Regex:       `^194735\d{6}$`,
			Category:    model.CategoryPremium,
			ProductLine: "Die-cast Premium",
			Priority:    90,
			Confidence:  ConfidenceHigh,
		},
		{
			Name:        "Mainline",
			Regex:       `^887961\d{6}$`,
			Category:    model.CategoryMainline,
			ProductLine: "Die-cast Basic",
			Priority:    80,
			Confidence:  ConfidenceHigh,
		},
		{
			Name:        "Others",
			Regex:       `^(736313|746775)\d{6}$`,
			Category:    model.CategoryOthers,
			ProductLine: "Die-cast Others",
			Priority:    70,
			Confidence:  ConfidenceMedium,
		},
	}
}
