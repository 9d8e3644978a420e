package schema

// AuditForm is the wizard input as read from a form file: the facts
// needed for classification plus any values the user already filled
// in, keyed "section.field" (e.g. "homeDetails.stories").
type AuditForm struct {
	HomeType      string         `json:"homeType"`
	YearBuilt     int            `json:"yearBuilt"`
	SquareFootage int            `json:"squareFootage"`
	State         string         `json:"state,omitempty"`
	UnitPosition  string         `json:"unitPosition,omitempty"`
	Overrides     map[string]any `json:"overrides,omitempty"`
}

// FilledForm is an AuditForm after default resolution: the resolved
// bundle with user overrides applied, plus per-field provenance so a
// later auto-fill pass knows which values it may overwrite.
type FilledForm struct {
	Resolution
	Provenance map[string]Provenance `json:"provenance"`
}

// UserFields returns the keys the user set, in no particular order.
func (f *FilledForm) UserFields() []string {
	var keys []string
	for k, p := range f.Provenance {
		if p == UserProvenance {
			keys = append(keys, k)
		}
	}
	return keys
}
