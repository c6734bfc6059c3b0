package staffresult

import "time"

// StaffResult is one staff member's figures for one day at one venue.
// Amounts are integer yen; BaseSalary is the effective base already
// resolved from the manual override or the automatic calculation.
type StaffResult struct {
	ID                 int64
	StaffID            int
	StoreID            string
	Date               string // YYYY-MM-DD
	SalesAmount        int
	CreditAmount       int
	ShishaCount        int
	Groups             int
	Customers          int
	BaseSalary         int
	ChampagneDeduction int
	PaidSalary         int
	FractionCut        int
	SalesMemo          string
	SalaryMemo         string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// DTO
	StaffName *string
}
