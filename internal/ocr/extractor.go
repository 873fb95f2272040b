// Package ocr extracts structured item details from OCR-recognized
// packaging text using static keyword dictionaries. Text recognition
// itself happens upstream; this package only consumes the result.
package ocr

import (
	"regexp"
	"strconv"
	"strings"

	"diecast/internal/model"
)

// Fixed per-field confidences. Detection either hits a dictionary entry at
// the field's constant confidence or yields nothing.
const (
	modelConfidence      = 0.9
	seriesConfidence     = 0.9
	categoryConfidence   = 0.8
	colorConfidence      = 0.8
	yearRecentConfidence = 0.9
	yearOldConfidence    = 0.7

	// Weight of an exact brand-name indicator vs. a model indicator when
	// scoring brand candidates.
	brandNameWeight      = 1.0
	brandIndicatorWeight = 0.7
)

// Recent-year window: years in this range score higher because current
// product lines dominate scanned packaging.
const (
	recentYearMin = 2020
	recentYearMax = 2025
)

var (
	yearRegex       = regexp.MustCompile(`(19[9][0-9]|20[0-3][0-9])`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Extractor scans normalized free text for brand, model, year, series,
// category and color evidence. Pure function of the input and the
// injected dictionaries; safe for concurrent use.
type Extractor struct {
	dict Dictionaries
}

// NewExtractor creates an extractor over the given dictionaries.
func NewExtractor(dict Dictionaries) *Extractor {
	return &Extractor{dict: dict}
}

// NewDefaultExtractor builds an extractor over the default dictionaries.
func NewDefaultExtractor() *Extractor {
	return NewExtractor(DefaultDictionaries())
}

// Extract runs every field scan over the normalized text. Matching is
// case- and whitespace-insensitive. The aggregate confidence is the mean
// of all present field confidences, or 0 when nothing was detected.
func (e *Extractor) Extract(text string) model.DetectedDetails {
	clean := Normalize(text)
	if clean == "" {
		return model.DetectedDetails{}
	}

	details := model.DetectedDetails{
		Brand:  e.extractBrand(clean),
		Year:   e.extractYear(clean),
		Series: e.extractKeyword(clean, e.dict.Series, seriesConfidence),
		Color:  e.extractColor(clean),
	}
	details.Model = e.extractModel(clean, details.Brand)
	details.Category = e.extractKeyword(clean, e.dict.Categories, categoryConfidence)
	details.Confidence = aggregate(details)

	return details
}

// Normalize uppercases, strips newlines and collapses runs of whitespace
// so dictionary lookups are case- and layout-insensitive.
func Normalize(text string) string {
	clean := strings.ToUpper(text)
	clean = strings.ReplaceAll(clean, "\n", " ")
	clean = whitespaceRegex.ReplaceAllString(clean, " ")
	return strings.TrimSpace(clean)
}

// extractBrand scores every candidate brand as matched indicators over
// total indicators, keeping the highest scorer. Ties resolve to the
// first-declared brand: a later candidate must strictly beat the current
// best, which makes the overlap between category dictionaries
// deterministic.
func (e *Extractor) extractBrand(text string) model.DetectedField {
	var best model.DetectedField

	for _, entry := range e.dict.Brands {
		var score float64
		matched := false
		for _, indicator := range entry.Indicators {
			if !strings.Contains(text, strings.ToUpper(indicator)) {
				continue
			}
			matched = true
			if strings.EqualFold(indicator, entry.Name) {
				score += brandNameWeight
			} else {
				score += brandIndicatorWeight
			}
		}
		if !matched {
			continue
		}

		confidence := score / float64(len(entry.Indicators))
		if confidence > 1.0 {
			confidence = 1.0
		}
		if confidence > best.Confidence {
			best = model.DetectedField{Value: entry.Name, Confidence: confidence}
		}
	}

	return best
}

// extractModel searches the brand-specific candidate list. Only attempted
// once a brand is known; the first textual match wins.
func (e *Extractor) extractModel(text string, brand model.DetectedField) model.DetectedField {
	if !brand.Present() {
		return model.DetectedField{}
	}
	for _, candidate := range e.dict.Models[brand.Value] {
		if strings.Contains(text, candidate) {
			return model.DetectedField{Value: candidate, Confidence: modelConfidence}
		}
	}
	return model.DetectedField{}
}

// extractYear takes the first 4-digit token in the 1990-2039 window found
// left to right. Years inside the recent window score higher.
func (e *Extractor) extractYear(text string) model.DetectedYear {
	match := yearRegex.FindString(text)
	if match == "" {
		return model.DetectedYear{}
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return model.DetectedYear{}
	}
	confidence := yearOldConfidence
	if year >= recentYearMin && year <= recentYearMax {
		confidence = yearRecentConfidence
	}
	return model.DetectedYear{Year: year, Confidence: confidence}
}

// extractKeyword runs a first-match-wins scan over a keyword table.
func (e *Extractor) extractKeyword(text string, entries []KeywordEntry, confidence float64) model.DetectedField {
	for _, entry := range entries {
		for _, keyword := range entry.Keywords {
			if strings.Contains(text, strings.ToUpper(keyword)) {
				return model.DetectedField{Value: entry.ID, Confidence: confidence}
			}
		}
	}
	return model.DetectedField{}
}

func (e *Extractor) extractColor(text string) model.DetectedField {
	for _, color := range e.dict.Colors {
		if strings.Contains(text, color) {
			return model.DetectedField{Value: color, Confidence: colorConfidence}
		}
	}
	return model.DetectedField{}
}

// aggregate averages the confidences of all present fields.
func aggregate(d model.DetectedDetails) float64 {
	var sum float64
	var n int

	for _, f := range []model.DetectedField{d.Brand, d.Model, d.Series, d.Category, d.Color} {
		if f.Present() {
			sum += f.Confidence
			n++
		}
	}
	if d.Year.Present() {
		sum += d.Year.Confidence
		n++
	}

	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
