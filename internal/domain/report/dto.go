package report

// StaffAggregate is one staff member's totals across a reporting period.
type StaffAggregate struct {
	StaffID            int    `json:"staff_id"`
	StaffName          string `json:"staff_name"`
	SalesAmount        int    `json:"sales_amount"`
	CreditAmount       int    `json:"credit_amount"`
	ShishaCount        int    `json:"shisha_count"`
	Groups             int    `json:"groups"`
	Customers          int    `json:"customers"`
	BaseSalary         int    `json:"base_salary"`
	ChampagneDeduction int    `json:"champagne_deduction"`
	PaidSalary         int    `json:"paid_salary"`
	FractionCut        int    `json:"fraction_cut"`
	WorkDays           int    `json:"work_days"`
}

// DayAggregate is one venue-day's totals recomputed from staff rows.
type DayAggregate struct {
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
}

// Summary is the headline block shared by the daily, monthly and yearly
// screens. Balance is sales less expenses and salaries.
type Summary struct {
	TotalSales     int `json:"total_sales"`
	TotalCredit    int `json:"total_credit"`
	TotalSalary    int `json:"total_salary"`
	TotalExpense   int `json:"total_expense"`
	TotalGroups    int `json:"total_groups"`
	TotalCustomers int `json:"total_customers"`
	TotalShisha    int `json:"total_shisha"`
	Balance        int `json:"balance"`
	DaysCount      int `json:"days_count"`
}

// ExpenseLine is a flattened expense row used by the period breakdowns,
// regardless of whether it came from the daily, fixed or manual table.
type ExpenseLine struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
	Note   string `json:"note,omitempty"`
}

// PendingEntry carries the unsaved figures from the entry form so the
// summary preview can reflect them before anything hits the database.
type PendingEntry struct {
	StaffID      int
	SalesAmount  int
	CreditAmount int
	Groups       int
	Customers    int
	BaseSalary   int
}
