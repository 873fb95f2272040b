package model

// ClassificationResult is the outcome of one cascade run. It is produced
// fresh per call and never mutated after construction. Low confidence is
// signalled through RequiresUserSelection, never through an error.
type ClassificationResult struct {
	Category              Category
	Series                string
	Brand                 string
	Confidence            float64
	RequiresUserSelection bool
}

// DetectedField is a single text-extraction result with its own confidence.
// An empty Value means the field was not detected.
type DetectedField struct {
	Value      string
	Confidence float64
}

// Present reports whether the field was detected.
func (f DetectedField) Present() bool { return f.Value != "" }

// DetectedYear is a detected model year. Zero means not detected.
type DetectedYear struct {
	Year       int
	Confidence float64
}

// Present reports whether a year was detected.
func (y DetectedYear) Present() bool { return y.Year != 0 }

// DetectedDetails bundles the per-field results of text evidence
// extraction. Confidence is the arithmetic mean of the confidences of all
// present fields, or 0 when nothing was detected.
type DetectedDetails struct {
	Brand      DetectedField
	Model      DetectedField
	Series     DetectedField
	Category   DetectedField
	Color      DetectedField
	Year       DetectedYear
	Confidence float64
}

// SmartFormSuggestions pre-fills the new-item form. Confidence is the
// maximum of the barcode and text analysis confidences.
type SmartFormSuggestions struct {
	Brand       string
	Model       string
	Series      string
	Color       string
	Subcategory string
	Category    Category
	Year        int
	Confidence  float64
}

// CategorySuggestion is one ranked fallback option offered when automatic
// classification fails and the user must pick a bucket manually.
type CategorySuggestion struct {
	Category      Category
	Reason        string
	Subcategories []string
	Confidence    float64
}

// BarcodeAnalysis is the standalone result of inspecting a barcode without
// running the full cascade.
type BarcodeAnalysis struct {
	Category      Category
	ProductLine   string
	EstimatedYear int
	Confidence    float64
	Valid         bool
}
