package performance

import "context"

// PerformanceService builds one staff member's monthly breakdown.
// An empty storeID spans every venue.
type PerformanceService interface {
	GetMonthly(ctx context.Context, staffID, year, month int, storeID string) (PerformanceResponse, error)
}
