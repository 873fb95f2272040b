package barcode

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"diecast/internal/model"
)

// upcRegex is the generic 12-digit retail barcode shape. It makes a
// barcode well-formed for scanning purposes without classifying it.
var upcRegex = regexp.MustCompile(`^\d{12}$`)

// Match is a successful pattern classification.
type Match struct {
	PatternName string
	Series      string
	ProductLine string
	Category    model.Category
	Confidence  float64
}

// compiledPattern pairs a pattern with its compiled regex.
type compiledPattern struct {
	regex *regexp.Regexp
	Pattern
}

// Matcher evaluates barcodes against an ordered pattern table. It is
// stateless after construction and safe for concurrent use.
type Matcher struct {
	patterns []compiledPattern
}

// NewMatcher compiles the given patterns and orders them by priority,
// highest first.
func NewMatcher(patterns []Pattern) (*Matcher, error) {
	compiled := make([]compiledPattern, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p.Regex)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %s: %w", p.Name, err)
		}
		compiled = append(compiled, compiledPattern{regex: re, Pattern: p})
	}

	sort.SliceStable(compiled, func(i, j int) bool {
		return compiled[i].Priority > compiled[j].Priority
	})

	return &Matcher{patterns: compiled}, nil
}

// NewDefaultMatcher builds a matcher over the default pattern table.
func NewDefaultMatcher() *Matcher {
	m, err := NewMatcher(DefaultPatterns())
	if err != nil {
		panic(err)
	}
	return m
}

// Match classifies a barcode. The first matching pattern in priority order
// wins. Unmatched or empty input returns nil; Match never fails.
func (m *Matcher) Match(barcode string) *Match {
	code := trim(barcode)
	if code == "" {
		return nil
	}

	for _, p := range m.patterns {
		if !p.regex.MatchString(code) {
			continue
		}
		if p.Serial != nil && !inSerialRange(code, p.Serial) {
			continue
		}
		return &Match{
			PatternName: p.Name,
			Category:    p.Category,
			Series:      p.Series,
			ProductLine: p.ProductLine,
			Confidence:  p.Confidence,
		}
	}

	return nil
}

// IsValidFormat reports whether the barcode is well-formed: either a known
// manufacturer pattern or the generic 12-digit UPC shape. Callers use this
// to reject malformed scans before attempting discovery.
func (m *Matcher) IsValidFormat(barcode string) bool {
	code := trim(barcode)
	if code == "" {
		return false
	}
	for _, p := range m.patterns {
		if p.regex.MatchString(code) {
			return true
		}
	}
	return upcRegex.MatchString(code)
}

// Analyze inspects a barcode without running the full cascade, decoding the
// estimated production year alongside the pattern classification.
func (m *Matcher) Analyze(barcode string) model.BarcodeAnalysis {
	match := m.Match(barcode)
	if match == nil {
		return model.BarcodeAnalysis{
			Category:    model.CategoryUnknown,
			ProductLine: "Unknown",
		}
	}

	return model.BarcodeAnalysis{
		Valid:         true,
		Category:      match.Category,
		ProductLine:   match.ProductLine,
		Confidence:    match.Confidence,
		EstimatedYear: estimatedYear(trim(barcode)),
	}
}

// estimatedYear decodes the production year window encoded in the last two
// digits of manufacturer barcodes. Zero means undecodable.
func estimatedYear(code string) int {
	if len(code) < 2 {
		return 0
	}
	lastTwo, err := strconv.Atoi(code[len(code)-2:])
	if err != nil {
		return 0
	}
	switch {
	case lastTwo >= 20 && lastTwo <= 24:
		return 2020 + (lastTwo - 20)
	case lastTwo >= 15 && lastTwo <= 19:
		return 2015 + (lastTwo - 15)
	default:
		return 0
	}
}

// inSerialRange checks the trailing six digits against a serial window.
func inSerialRange(code string, r *SerialRange) bool {
	if len(code) < 6 {
		return false
	}
	serial, err := strconv.Atoi(code[len(code)-6:])
	if err != nil {
		return false
	}
	return serial >= r.Min && serial <= r.Max
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
