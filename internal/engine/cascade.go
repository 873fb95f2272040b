// Package engine implements the classification cascade and the discovery
// orchestrator that together turn partial item evidence into a structured
// classification.
package engine

import (
	"diecast/internal/barcode"
	"diecast/internal/model"
	"diecast/internal/ocr"
	"diecast/internal/taxonomy"
)

// Cascade runs the fixed-order classification stages. All stages are pure
// functions over static tables, so a single Cascade is safe for any number
// of concurrent Classify calls.
type Cascade struct {
	matcher   *barcode.Matcher
	extractor *ocr.Extractor
	taxonomy  *taxonomy.Taxonomy
}

// NewCascade creates a cascade over the given components.
func NewCascade(matcher *barcode.Matcher, extractor *ocr.Extractor, tax *taxonomy.Taxonomy) *Cascade {
	return &Cascade{
		matcher:   matcher,
		extractor: extractor,
		taxonomy:  tax,
	}
}

// NewDefaultCascade wires a cascade over the default tables.
func NewDefaultCascade() *Cascade {
	return NewCascade(barcode.NewDefaultMatcher(), ocr.NewDefaultExtractor(), taxonomy.Default())
}

// Classify runs the stages in fixed priority order and always returns a
// result: ambiguous or unmatched evidence yields the Unknown category with
// RequiresUserSelection set, never an error, so the calling form can still
// pre-fill whatever was detected.
func (c *Cascade) Classify(evidence model.Evidence) model.ClassificationResult {
	if evidence.Barcode != "" {
		if result, ok := c.classifyBarcode(evidence.Barcode); ok {
			return result
		}
	}

	if evidence.RecognizedText != "" {
		if result, ok := c.classifyText(evidence.RecognizedText); ok {
			return result
		}
	}

	if evidence.Hint != nil {
		if result, ok := c.classifyHint(evidence.Hint); ok {
			return result
		}
	}

	return model.ClassificationResult{
		Category:              model.CategoryUnknown,
		Confidence:            0.0,
		RequiresUserSelection: true,
	}
}

// classifyBarcode is stage one: manufacturer prefix patterns.
func (c *Cascade) classifyBarcode(code string) (model.ClassificationResult, bool) {
	match := c.matcher.Match(code)
	if match == nil || match.Confidence <= BarcodeAcceptThreshold {
		return model.ClassificationResult{}, false
	}

	result := model.ClassificationResult{
		Category:   match.Category,
		Series:     match.Series,
		Confidence: match.Confidence,
	}
	return c.checked(result), true
}

// classifyText is stage two: dictionary evidence from recognized text.
// The stage accepts on the extractor's aggregate confidence; the category
// itself comes from the detected series, brand or category field, in that
// order.
func (c *Cascade) classifyText(text string) (model.ClassificationResult, bool) {
	details := c.extractor.Extract(text)
	if details.Confidence <= TextAcceptThreshold {
		return model.ClassificationResult{}, false
	}

	result := c.resultFromDetails(details)
	if result.Category == model.CategoryUnknown {
		// High field confidence without a resolvable category (say, a year
		// and a color alone) is not an acceptable classification.
		return model.ClassificationResult{}, false
	}
	result.Confidence = details.Confidence
	return c.checked(result), true
}

// resultFromDetails maps extracted fields onto the taxonomy.
func (c *Cascade) resultFromDetails(details model.DetectedDetails) model.ClassificationResult {
	var result model.ClassificationResult
	result.Category = model.CategoryUnknown

	if details.Brand.Present() {
		if name, ok := c.taxonomy.DisplayName(details.Brand.Value); ok {
			result.Brand = name
		} else {
			result.Brand = details.Brand.Value
		}
	}

	// A premium series keyword is decisive on its own. The generic
	// "mainline"/"premium" markers pick the category but leave the series
	// to the brand table.
	if details.Series.Present() {
		switch details.Series.Value {
		case "premium":
			result.Category = model.CategoryPremium
			return result
		case "mainline":
			result.Category = model.CategoryMainline
		default:
			if cat, ok := c.taxonomy.CategoryForSeries(details.Series.Value); ok {
				result.Category = cat
				result.Series = details.Series.Value
				return result
			}
		}
	}

	if details.Brand.Present() {
		if series, ok := c.taxonomy.SeriesForBrand(details.Brand.Value); ok {
			result.Category = model.CategoryMainline
			result.Series = series
			return result
		}
	}

	if details.Category.Present() {
		if cat, ok := c.taxonomy.CategoryForSeries(details.Category.Value); ok {
			result.Category = cat
			result.Series = details.Category.Value
		}
	}

	return result
}

// classifyHint is stage three: details typed in by the user. A brand that
// resolves through the taxonomy, or an explicit premium flag, is enough to
// place the item; anything else falls through to manual selection.
func (c *Cascade) classifyHint(hint *model.UserHint) (model.ClassificationResult, bool) {
	series, resolved := "", false
	if hint.Brand != "" {
		series, resolved = c.taxonomy.SeriesForBrand(hint.Brand)
	}

	result := model.ClassificationResult{
		Category:   model.CategoryUnknown,
		Confidence: hintUnresolvedConfidence,
	}

	switch {
	case hint.IsPremium != nil && *hint.IsPremium:
		result.Category = model.CategoryPremium
		result.Series = taxonomy.NormalizeBrand(hint.Series)
		result.Confidence = hintResolvedConfidence
	case resolved:
		result.Category = model.CategoryMainline
		result.Series = series
		result.Confidence = hintResolvedConfidence
	}

	if hint.Brand != "" {
		if name, ok := c.taxonomy.DisplayName(hint.Brand); ok {
			result.Brand = name
		} else {
			result.Brand = hint.Brand
		}
	}

	if result.Confidence <= HintAcceptThreshold || result.Category == model.CategoryUnknown {
		return model.ClassificationResult{}, false
	}
	return c.checked(result), true
}

// checked enforces the taxonomy invariant: a result must never carry a
// series that does not belong to its category's known set.
func (c *Cascade) checked(result model.ClassificationResult) model.ClassificationResult {
	if result.Series != "" && !c.taxonomy.SeriesBelongs(result.Category, result.Series) {
		result.Series = ""
	}
	return result
}
