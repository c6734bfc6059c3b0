package dailyreport

import "context"

// DailyReportRepository defines data access for the per-day rollups.
type DailyReportRepository interface {
	// Upsert writes one rollup, keyed on (date, store_id).
	Upsert(ctx context.Context, r DailyReport) error

	GetByDay(ctx context.Context, storeID, date string) (*DailyReport, error)

	// ListByRange returns rollups within an inclusive date range ordered by
	// date then store. Empty storeID means all venues.
	ListByRange(ctx context.Context, storeID, from, to string) ([]DailyReport, error)

	// ListDirtyDays returns the (date, store) pairs that have staff rows or
	// expenses newer than their rollup, within the lookback window. Used by
	// the background reconciliation job.
	ListDirtyDays(ctx context.Context, from, to string) ([]DayKey, error)
}

// DayKey identifies one rollup row.
type DayKey struct {
	Date    string
	StoreID string
}
