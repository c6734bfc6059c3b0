package dailyreport

import "time"

// DailyReport is the per-venue per-day rollup the report screens read.
// It is recomputed from the staff rows and expenses on every save, so it
// is derived state, but it is persisted to keep the monthly and yearly
// queries cheap.
type DailyReport struct {
	ID               int64
	Date             string // YYYY-MM-DD
	StoreID          string
	TotalSalesAmount int
	CreditAmount     int
	TotalGroups      int
	TotalCustomers   int
	TotalShisha      int
	TotalSalary      int
	TotalExpense     int
	Memo             string
	Opinion          string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Balance is sales less expenses and salaries for the day.
func (r DailyReport) Balance() int {
	return r.TotalSalesAmount - (r.TotalExpense + r.TotalSalary)
}
