// Package store defines the venue identifiers shared across every domain.
package store

// Store IDs are fixed short codes, not surrogate keys. The set of venues
// changes rarely enough that the chain manages them as configuration.
const (
	Teppen   = "TEPPEN"
	Store201 = "201"
	Store202 = "202"

	// All is the sentinel used where a record applies to the whole chain
	// rather than a single venue, e.g. chain-wide staff memos.
	All = "ALL"
)

// IDs lists the real venues in display order.
var IDs = []string{Teppen, Store201, Store202}

func IsValid(id string) bool {
	for _, s := range IDs {
		if s == id {
			return true
		}
	}
	return false
}

// IsManualSalary reports whether the venue pays staff on manually entered
// bases only, with no automatic sales-derived salary.
func IsManualSalary(id string) bool {
	return id == Store202
}

// HasShisha reports whether the venue sells shisha. TEPPEN does not carry
// the product line, so its entry forms omit the field entirely.
func HasShisha(id string) bool {
	return id != Teppen
}
