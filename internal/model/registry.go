package model

// RegistryRecord is a previously-classified item from the shared registry.
// It is owned and mutated exclusively by the registry; this engine treats
// it as read-only input.
type RegistryRecord struct {
	Barcode           string
	Name              string
	Brand             string
	Series            string
	Color             string
	Subcategory       string
	Category          Category
	Year              int
	VerificationCount int
}

// Contribution is the write-back payload for a newly classified item,
// sent to the shared registry after the user confirms the fields.
type Contribution struct {
	Barcode      string
	Name         string
	Brand        string
	Series       string
	Color        string
	Subcategory  string
	Category     Category
	Year         int
	EvidenceRefs []string
}
