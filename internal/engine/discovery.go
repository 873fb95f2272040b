package engine

import (
	"context"
	"errors"
	"log/slog"

	"diecast/internal/barcode"
	"diecast/internal/model"
	"diecast/internal/ocr"
	"diecast/internal/service"
	"diecast/internal/taxonomy"
)

// Orchestrator is the top-level discovery entry point: registry lookup
// first, classification cascade for anything the registry does not know.
// It performs exactly one registry read per call and never writes;
// contribution is a separate caller-invoked step.
type Orchestrator struct {
	registry  service.RegistryReader
	cascade   *Cascade
	matcher   *barcode.Matcher
	extractor *ocr.Extractor
	taxonomy  *taxonomy.Taxonomy
}

// NewOrchestrator creates an orchestrator over the given registry reader
// and classification components.
func NewOrchestrator(registry service.RegistryReader, cascade *Cascade, matcher *barcode.Matcher, extractor *ocr.Extractor, tax *taxonomy.Taxonomy) *Orchestrator {
	return &Orchestrator{
		registry:  registry,
		cascade:   cascade,
		matcher:   matcher,
		extractor: extractor,
		taxonomy:  tax,
	}
}

// NewDefaultOrchestrator wires an orchestrator over the default tables.
func NewDefaultOrchestrator(registry service.RegistryReader) *Orchestrator {
	matcher := barcode.NewDefaultMatcher()
	extractor := ocr.NewDefaultExtractor()
	tax := taxonomy.Default()
	return NewOrchestrator(registry, NewCascade(matcher, extractor, tax), matcher, extractor, tax)
}

// Discover resolves a scanned barcode to either a known registry item or a
// new item carrying the cascade's best-effort suggestion. A registry hit
// short-circuits classification entirely. A failed, cancelled or timed-out
// lookup is treated exactly like "not found" so the user is never blocked
// on registry availability.
func (o *Orchestrator) Discover(ctx context.Context, code string, recognizedText string) model.DiscoveryResult {
	record, err := o.registry.Lookup(ctx, code)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			slog.Warn("Registry lookup cancelled, falling back to classification", "barcode", code)
		} else {
			slog.Warn("Registry lookup failed, falling back to classification",
				"barcode", code, "error", err)
		}
		record = nil
	}

	if record != nil {
		return model.DiscoveryResult{
			Barcode: code,
			Known: &model.KnownItem{
				Record:       *record,
				SaveLocation: o.saveLocation(*record),
			},
		}
	}

	suggestion := o.cascade.Classify(model.Evidence{
		Barcode:        code,
		RecognizedText: recognizedText,
	})

	return model.DiscoveryResult{
		Barcode: code,
		New: &model.NewItem{
			Suggestion:           &suggestion,
			RequiresContribution: true,
		},
	}
}

// saveLocation derives the collection placement from a registry record.
// Records verified by more than VerificationBoostCount independent
// contributors get the boosted confidence.
func (o *Orchestrator) saveLocation(record model.RegistryRecord) model.SaveLocation {
	confidence := UnverifiedConfidence
	if record.VerificationCount > VerificationBoostCount {
		confidence = VerifiedConfidence
	}

	series := record.Subcategory
	if series != "" && !o.taxonomy.SeriesBelongs(record.Category, series) {
		series = ""
	}

	return model.SaveLocation{
		Category:   record.Category,
		Series:     series,
		Brand:      record.Brand,
		Confidence: confidence,
	}
}

// IsValidFormat reports whether a barcode is well-formed enough to attempt
// discovery. Exposed here so the calling form can reject malformed scans
// without constructing its own matcher.
func (o *Orchestrator) IsValidFormat(code string) bool {
	return o.matcher.IsValidFormat(code)
}

// Classify exposes the cascade directly for callers holding richer
// evidence than a bare scan (user hints in particular).
func (o *Orchestrator) Classify(evidence model.Evidence) model.ClassificationResult {
	return o.cascade.Classify(evidence)
}

// Suggestions combines barcode and text analysis into form pre-fill
// values. The reported confidence is the maximum of the two analyses.
func (o *Orchestrator) Suggestions(code string, recognizedText string) model.SmartFormSuggestions {
	classification := o.cascade.Classify(model.Evidence{
		Barcode:        code,
		RecognizedText: recognizedText,
	})

	var details model.DetectedDetails
	if recognizedText != "" {
		details = o.extractor.Extract(recognizedText)
	}

	confidence := classification.Confidence
	if details.Confidence > confidence {
		confidence = details.Confidence
	}

	suggestions := model.SmartFormSuggestions{
		Brand:       details.Brand.Value,
		Model:       details.Model.Value,
		Year:        details.Year.Year,
		Series:      details.Series.Value,
		Color:       details.Color.Value,
		Category:    classification.Category,
		Subcategory: classification.Series,
		Confidence:  confidence,
	}
	if suggestions.Brand == "" {
		suggestions.Brand = classification.Brand
	}
	return suggestions
}

// CategorySuggestions ranks fallback buckets for the manual-selection
// path, most likely first.
func (o *Orchestrator) CategorySuggestions(recognizedText string) []model.CategorySuggestion {
	suggestions := []model.CategorySuggestion{
		{
			Category:      model.CategoryMainline,
			Subcategories: o.taxonomy.SeriesFor(model.CategoryMainline),
			Confidence:    0.7,
			Reason:        "Most die-cast cars are mainline",
		},
	}

	text := ocr.Normalize(recognizedText)
	if text != "" {
		details := o.extractor.Extract(text)
		cat, known := o.taxonomy.CategoryForSeries(details.Series.Value)
		if details.Series.Value == "premium" || (known && cat == model.CategoryPremium) {
			premium := model.CategorySuggestion{
				Category:      model.CategoryPremium,
				Subcategories: o.taxonomy.SeriesFor(model.CategoryPremium),
				Confidence:    0.9,
				Reason:        "Detected premium series indicators",
			}
			suggestions = append([]model.CategorySuggestion{premium}, suggestions...)
		}
	}

	suggestions = append(suggestions, model.CategorySuggestion{
		Category:      model.CategoryOthers,
		Subcategories: []string{"trucks", "buses", "motorcycles", "planes"},
		Confidence:    0.5,
		Reason:        "For non-car vehicles",
	})

	return suggestions
}
