package performance

// DayRow is one worked day in a staff member's month.
type DayRow struct {
	Date               string `json:"date"`
	StoreID            string `json:"store_id"`
	SalesAmount        int    `json:"sales_amount"`
	CreditAmount       int    `json:"credit_amount"`
	ShishaCount        int    `json:"shisha_count"`
	Groups             int    `json:"groups"`
	Customers          int    `json:"customers"`
	BaseSalary         int    `json:"base_salary"`
	ChampagneDeduction int    `json:"champagne_deduction"`
	PaidSalary         int    `json:"paid_salary"`
	FractionCut        int    `json:"fraction_cut"`
}

// Summary totals one staff member's month. DailyPaid is the average
// payout per worked day, floored to the yen.
type Summary struct {
	WorkDays         int `json:"work_days"`
	TotalGroups      int `json:"total_groups"`
	TotalCustomers   int `json:"total_customers"`
	TotalSales       int `json:"total_sales"`
	TotalCredit      int `json:"total_credit"`
	TotalShisha      int `json:"total_shisha"`
	TotalBaseSalary  int `json:"total_base_salary"`
	TotalDeduction   int `json:"total_deduction"`
	TotalFractionCut int `json:"total_fraction_cut"`
	TotalPaidSalary  int `json:"total_paid_salary"`
	DailyPaid        int `json:"daily_paid"`
}

type PerformanceResponse struct {
	StaffID   int      `json:"staff_id"`
	StaffName string   `json:"staff_name"`
	Year      int      `json:"year"`
	Month     int      `json:"month"`
	StoreID   string   `json:"store_id,omitempty"` // empty means all venues
	Days      []DayRow `json:"days"`
	Summary   Summary  `json:"summary"`
}
