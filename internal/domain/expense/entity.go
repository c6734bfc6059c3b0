package expense

import "time"

// Expense is a one-off cost entered on the daily screen.
type Expense struct {
	ID        int64
	StoreID   string
	Date      string // YYYY-MM-DD
	Name      string
	Amount    int
	Note      string
	CreatedAt time.Time
}

// FixedExpense holds the recurring monthly costs for one venue. One row
// per (year, month, store); absent fields are zero.
type FixedExpense struct {
	ID          int64
	Year        int
	Month       int
	StoreID     string
	Rent        int
	Karaoke     int
	Wifi        int
	Oshibori    int
	PestControl int
	UpdatedAt   time.Time
}

// Total sums every fixed cost field.
func (f FixedExpense) Total() int {
	return f.Rent + f.Karaoke + f.Wifi + f.Oshibori + f.PestControl
}

// ManualExpense is a free-form monthly cost line. The whole set for a
// month is replaced on save rather than edited row by row.
type ManualExpense struct {
	ID        int64
	Year      int
	Month     int
	StoreID   string
	Name      string
	Amount    int
	Note      *string
	CreatedAt time.Time
}
