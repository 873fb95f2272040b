package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diecast/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase input", in: "ferrari 488", want: "FERRARI 488"},
		{name: "newlines become spaces", in: "FERRARI\n488\nGTB", want: "FERRARI 488 GTB"},
		{name: "runs of whitespace collapse", in: "  FERRARI   488\t GTB ", want: "FERRARI 488 GTB"},
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: " \n\t ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestExtractor_Extract(t *testing.T) {
	e := NewDefaultExtractor()

	t.Run("rally packaging text", func(t *testing.T) {
		details := e.Extract("SUBARU WRX STI RALLY 2023")

		assert.Equal(t, "SUBARU", details.Brand.Value)
		assert.InDelta(t, 0.4, details.Brand.Confidence, 0.001)
		assert.Equal(t, "WRX", details.Model.Value)
		assert.Equal(t, 0.9, details.Model.Confidence)
		assert.Equal(t, 2023, details.Year.Year)
		assert.Equal(t, 0.9, details.Year.Confidence)
		assert.Equal(t, "rally", details.Category.Value)
		assert.Equal(t, 0.8, details.Category.Confidence)
		assert.False(t, details.Series.Present())
		assert.False(t, details.Color.Present())
		assert.InDelta(t, 0.75, details.Confidence, 0.001)
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		assert.Equal(t, e.Extract("Ferrari 488"), e.Extract("FERRARI 488"))
		assert.Equal(t, e.Extract("subaru\nwrx sti"), e.Extract("SUBARU WRX STI"))
	})

	t.Run("empty text yields nothing", func(t *testing.T) {
		details := e.Extract("")
		assert.Equal(t, model.DetectedDetails{}, details)
	})

	t.Run("year and color alone", func(t *testing.T) {
		details := e.Extract("RED PAINT 1995")

		assert.False(t, details.Brand.Present())
		assert.Equal(t, 1995, details.Year.Year)
		assert.Equal(t, 0.7, details.Year.Confidence)
		assert.Equal(t, "RED", details.Color.Value)
		assert.InDelta(t, 0.75, details.Confidence, 0.001)
	})

	t.Run("premium series keyword", func(t *testing.T) {
		details := e.Extract("TEAM TRANSPORT SET")

		assert.Equal(t, "team_transport", details.Series.Value)
		assert.Equal(t, 0.9, details.Series.Confidence)
	})

	t.Run("generic premium marker", func(t *testing.T) {
		details := e.Extract("PREMIUM COLLECTOR SERIES")

		assert.Equal(t, "premium", details.Series.Value)
	})

	t.Run("model requires a detected brand", func(t *testing.T) {
		// HILUX is a known Toyota model but not a brand indicator, so
		// without brand evidence the model must stay empty.
		details := e.Extract("HILUX")

		assert.False(t, details.Brand.Present())
		assert.False(t, details.Model.Present())
		assert.Equal(t, 0.0, details.Confidence)
	})
}

func TestExtractor_BrandScoring(t *testing.T) {
	dict := Dictionaries{
		Brands: []BrandEntry{
			{Name: "ALPHA", Indicators: []string{"alpha", "one"}},
			{Name: "BETA", Indicators: []string{"beta", "two"}},
		},
	}
	e := NewExtractor(dict)

	tests := []struct {
		name      string
		text      string
		wantBrand string
	}{
		{
			name:      "equal scores resolve to the first-declared brand",
			text:      "ALPHA BETA",
			wantBrand: "ALPHA",
		},
		{
			name:      "higher ratio wins over declaration order",
			text:      "BETA TWO ONE",
			wantBrand: "BETA",
		},
		{
			name:      "no indicators",
			text:      "GAMMA",
			wantBrand: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := e.Extract(tt.text)
			assert.Equal(t, tt.wantBrand, details.Brand.Value)
		})
	}
}

func TestExtractor_BrandConfidenceCap(t *testing.T) {
	dict := Dictionaries{
		Brands: []BrandEntry{
			// One exact-name indicator scores 1.0 over a single-entry list.
			{Name: "SOLO", Indicators: []string{"solo"}},
		},
	}
	e := NewExtractor(dict)

	details := e.Extract("SOLO")
	require.True(t, details.Brand.Present())
	assert.LessOrEqual(t, details.Brand.Confidence, 1.0)
	assert.Equal(t, 1.0, details.Brand.Confidence)
}

func TestExtractor_YearWindow(t *testing.T) {
	e := NewDefaultExtractor()

	tests := []struct {
		name           string
		text           string
		wantYear       int
		wantConfidence float64
	}{
		{name: "recent year", text: "RELEASED 2023", wantYear: 2023, wantConfidence: 0.9},
		{name: "window lower edge", text: "RELEASED 2020", wantYear: 2020, wantConfidence: 0.9},
		{name: "older year", text: "ORIGINAL 1999", wantYear: 1999, wantConfidence: 0.7},
		{name: "first match wins", text: "1995 REISSUE OF 2021", wantYear: 1995, wantConfidence: 0.7},
		{name: "out of range", text: "SCALE 1:64", wantYear: 0, wantConfidence: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := e.Extract(tt.text)
			assert.Equal(t, tt.wantYear, details.Year.Year)
			assert.Equal(t, tt.wantConfidence, details.Year.Confidence)
		})
	}
}
