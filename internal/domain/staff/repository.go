package staff

import "context"

// StaffRepository defines data access for the staff roster.
type StaffRepository interface {
	// List returns staff ordered by ID. When activeOnly is set, soft
	// deleted members are excluded.
	List(ctx context.Context, activeOnly bool) ([]Staff, error)

	GetByID(ctx context.Context, id int) (Staff, error)

	Create(ctx context.Context, s Staff) (Staff, error)

	UpdateName(ctx context.Context, id int, name string) error

	// UpdateStores replaces the member's venue eligibility list.
	UpdateStores(ctx context.Context, id int, stores []string) error

	// Deactivate soft deletes; the row is kept so historical day rows can
	// still resolve the name.
	Deactivate(ctx context.Context, id int) error

	// ReassignID atomically moves a roster entry to a new ID. Fails if the
	// target ID already belongs to an active member.
	ReassignID(ctx context.Context, fromID, toID int) error
}
