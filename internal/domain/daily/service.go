package daily

import "context"

// DailyService is the daily entry screen's backend: loading a day,
// saving entries, previewing the summary, and keeping the rollups honest.
type DailyService interface {
	// GetDay loads everything for one venue and date.
	GetDay(ctx context.Context, storeID, date string) (DayResponse, error)

	// Save persists new expenses, the staff entry and the day memo, then
	// recomputes the rollup. Expenses are written first so they count even
	// when the staff entry fails validation downstream.
	Save(ctx context.Context, req SaveDailyRequest) (DayResponse, error)

	// Preview computes the live summary and salary figures without writing.
	Preview(ctx context.Context, req PreviewRequest) (PreviewResponse, error)

	DeleteExpense(ctx context.Context, id int64, storeID, date string) (DayResponse, error)

	// DeleteStaffEntry hard deletes one staff member's row for the day and
	// recomputes the rollup. There is no soft delete for day rows.
	DeleteStaffEntry(ctx context.Context, staffID int, storeID, date string) (DayResponse, error)

	SuggestExpenseNames(ctx context.Context) ([]string, error)

	// RecomputeRange rebuilds rollups for every dirty venue-day in the
	// inclusive range. The background job calls this on a timer.
	RecomputeRange(ctx context.Context, from, to string) (int, error)
}
