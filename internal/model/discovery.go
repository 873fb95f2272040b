package model

// SaveLocation tells the form layer where a recognized item belongs in the
// user's collection, derived deterministically from a classification or a
// registry record.
type SaveLocation struct {
	Category              Category
	Series                string
	Brand                 string
	Confidence            float64
	RequiresUserSelection bool
}

// KnownItem is a discovery outcome backed by an existing registry record.
type KnownItem struct {
	Record       RegistryRecord
	SaveLocation SaveLocation
}

// NewItem is a discovery outcome for an item absent from the registry.
// Suggestion is the cascade's best effort and may flag user selection.
type NewItem struct {
	Suggestion           *ClassificationResult
	RequiresContribution bool
}

// DiscoveryResult is the tagged union produced by one discovery request:
// exactly one of Known or New is set. It is consumed immediately by the
// calling form logic and never persisted here.
type DiscoveryResult struct {
	Known   *KnownItem
	New     *NewItem
	Barcode string
}

// IsKnown reports whether the item was found in the shared registry.
func (r DiscoveryResult) IsKnown() bool { return r.Known != nil }
