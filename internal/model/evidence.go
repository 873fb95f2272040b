package model

// UserHint carries optional item details supplied directly by the user.
// All fields are optional; IsPremium is a tri-state flag (nil = unstated).
type UserHint struct {
	IsPremium *bool
	Name      string
	Brand     string
	Series    string
}

// Evidence is the immutable input to one classification attempt. Empty
// strings mean the signal is absent.
type Evidence struct {
	Hint           *UserHint
	Barcode        string
	RecognizedText string
}

// IsEmpty reports whether no signal is present at all.
func (e Evidence) IsEmpty() bool {
	return e.Barcode == "" && e.RecognizedText == "" && e.Hint == nil
}
