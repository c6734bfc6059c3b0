package staffresult

import "context"

// StaffResultRepository defines data access for per-staff day rows.
type StaffResultRepository interface {
	// Upsert writes one staff day, keyed on (staff_id, store_id, date).
	Upsert(ctx context.Context, r StaffResult) error

	GetByStaffDay(ctx context.Context, staffID int, storeID, date string) (*StaffResult, error)

	// ListByStoreDay returns all staff rows for one venue and day, ordered
	// by staff ID ascending.
	ListByStoreDay(ctx context.Context, storeID, date string) ([]StaffResult, error)

	// ListByStaffRange returns one staff member's rows across venues within
	// an inclusive date range, ordered by date then store.
	ListByStaffRange(ctx context.Context, staffID int, from, to string) ([]StaffResult, error)

	// ListByRange returns every staff row within an inclusive date range,
	// optionally narrowed to one venue (empty storeID means all venues).
	ListByRange(ctx context.Context, storeID, from, to string) ([]StaffResult, error)

	DeleteByStaffDay(ctx context.Context, staffID int, storeID, date string) error
}
