package memo

import "context"

// MemoRepository defines data access for monthly and yearly staff memos.
// Saves replace the whole set for the period and store scope in one
// transaction; only non-empty memos are kept.
type MemoRepository interface {
	ReplaceMonthly(ctx context.Context, year, month int, storeID string, memos []StaffMemo) error

	ListMonthly(ctx context.Context, year, month int, storeID string) ([]StaffMemo, error)

	ReplaceYearly(ctx context.Context, year int, storeID string, memos []StaffMemo) error

	ListYearly(ctx context.Context, year int, storeID string) ([]StaffMemo, error)
}
