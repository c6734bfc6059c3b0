package yearly

import "context"

type YearlyService interface {
	GetReport(ctx context.Context, year int, storeID string) (YearlyReportResponse, error)

	// Save replaces the year's staff memos for the given store scope.
	Save(ctx context.Context, req SaveYearlyRequest) error
}
