package staff

import "time"

// Staff is a member of the floor staff. IDs are small integers assigned by
// the manager and printed on the daily entry sheets, so they are chosen
// explicitly rather than generated.
type Staff struct {
	ID   int
	Name string

	// Stores lists the venues the member may be rostered at. Empty means
	// eligible everywhere.
	Stores    []string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EligibleFor reports whether the member can work at the given venue.
func (s Staff) EligibleFor(storeID string) bool {
	if len(s.Stores) == 0 {
		return true
	}
	for _, id := range s.Stores {
		if id == storeID {
			return true
		}
	}
	return false
}
