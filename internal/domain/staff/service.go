package staff

import "context"

// StaffService defines business logic for roster management.
type StaffService interface {
	// ListStaff returns the roster. When storeID is non-empty only members
	// eligible to work at that venue are returned.
	ListStaff(ctx context.Context, includeInactive bool, storeID string) (ListStaffResponse, error)

	CreateStaff(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)

	RenameStaff(ctx context.Context, req UpdateStaffRequest) (StaffResponse, error)

	DeactivateStaff(ctx context.Context, id int) error

	ReassignStaffID(ctx context.Context, req ReassignIDRequest) (StaffResponse, error)
}
