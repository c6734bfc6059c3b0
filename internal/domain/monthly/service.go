package monthly

import "context"

// MonthlyService builds and persists the monthly report. StoreID may be a
// venue code or the ALL sentinel for the chain-wide view.
type MonthlyService interface {
	GetReport(ctx context.Context, year, month int, storeID string) (MonthlyReportResponse, error)

	// Save upserts fixed costs per venue and replaces the month's manual
	// lines and staff memos transactionally.
	Save(ctx context.Context, req SaveMonthlyRequest) error

	// ExportXLSX renders the report as a spreadsheet. The returned name is
	// the suggested download filename.
	ExportXLSX(ctx context.Context, year, month int, storeID string) (data []byte, name string, err error)
}
