package engine

// Per-stage acceptance thresholds. A stage's result is accepted only when
// its confidence exceeds the stage threshold; otherwise the cascade falls
// through to the next stage. The ordering reflects how verifiable each
// evidence source is: manufacturer-controlled barcodes first, noisy OCR
// text second, unverifiable user hints last.
const (
	// BarcodeAcceptThreshold gates the barcode pattern stage.
	BarcodeAcceptThreshold = 0.8
	// TextAcceptThreshold gates the recognized-text stage.
	TextAcceptThreshold = 0.7
	// HintAcceptThreshold gates the user-hint stage.
	HintAcceptThreshold = 0.6
)

// Hint-stage confidences: a hint that resolves through the brand table is
// trusted more than one that does not resolve at all.
const (
	hintResolvedConfidence   = 0.8
	hintUnresolvedConfidence = 0.5
)

// Registry-hit confidences. Independently verified records are more
// trustworthy than single contributions.
const (
	// VerificationBoostCount is the verification count above which a
	// registry record is considered independently confirmed.
	VerificationBoostCount = 3
	// VerifiedConfidence applies to records above the boost count.
	VerifiedConfidence = 0.95
	// UnverifiedConfidence applies to all other registry hits.
	UnverifiedConfidence = 0.85
)
