package daily

import (
	"github.com/teppen-ops/venue-backend/internal/domain/report"
	"github.com/teppen-ops/venue-backend/internal/domain/staffresult"
	"github.com/teppen-ops/venue-backend/internal/domain/store"
	"github.com/teppen-ops/venue-backend/internal/pkg/validator"
)

// StaffEntryInput carries one staff member's figures from the entry form.
// Pointer fields distinguish "left blank" from an explicit zero: a blank
// form saves nothing, but a typed 0 is a real value.
type StaffEntryInput struct {
	StaffID            int    `json:"staff_id"`
	SalesAmount        *int   `json:"sales_amount"`
	CreditAmount       *int   `json:"credit_amount"`
	ShishaCount        *int   `json:"shisha_count"`
	Groups             *int   `json:"groups"`
	Customers          *int   `json:"customers"`
	ManualBaseSalary   *int   `json:"manual_base_salary"`
	ChampagneDeduction *int   `json:"champagne_deduction"`
	Memo               string `json:"memo"`
}

// HasInput reports whether anything was actually entered. An entirely
// blank form must not create a row.
func (in StaffEntryInput) HasInput() bool {
	for _, p := range []*int{in.SalesAmount, in.CreditAmount, in.ShishaCount, in.Groups, in.Customers, in.ManualBaseSalary, in.ChampagneDeduction} {
		if p != nil {
			return true
		}
	}
	return in.Memo != ""
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func (in StaffEntryInput) Sales() int     { return intOrZero(in.SalesAmount) }
func (in StaffEntryInput) Credit() int    { return intOrZero(in.CreditAmount) }
func (in StaffEntryInput) Shisha() int    { return intOrZero(in.ShishaCount) }
func (in StaffEntryInput) GroupCnt() int  { return intOrZero(in.Groups) }
func (in StaffEntryInput) Customer() int  { return intOrZero(in.Customers) }
func (in StaffEntryInput) Manual() int    { return intOrZero(in.ManualBaseSalary) }
func (in StaffEntryInput) Deduction() int { return intOrZero(in.ChampagneDeduction) }

// ExpenseInput is one expense line on the daily screen. A line carrying an
// ID edits the existing row; without one it inserts.
type ExpenseInput struct {
	ID     *int64 `json:"id"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`
	Note   string `json:"note"`
}

// SaveDailyRequest is the single save action of the daily screen: new
// expense lines, the selected staff member's figures, and the day memo.
type SaveDailyRequest struct {
	Date     string           `json:"date"`
	StoreID  string           `json:"store_id"`
	Staff    *StaffEntryInput `json:"staff"`
	Expenses []ExpenseInput   `json:"expenses"`
	Memo     string           `json:"memo"`
	Opinion  string           `json:"opinion"`
}

func (r *SaveDailyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !store.IsValid(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id must be a known store",
		})
	}
	if r.Staff != nil && r.Staff.StaffID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "staff.staff_id",
			Message: "staff_id must be a positive integer",
		})
	}
	if !store.HasShisha(r.StoreID) && r.Staff != nil && r.Staff.ShishaCount != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "staff.shisha_count",
			Message: "this store does not sell shisha",
		})
	}
	for _, e := range r.Expenses {
		if validator.IsEmpty(e.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "expenses",
				Message: "expense name is required",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PreviewRequest asks for the live summary and salary breakdown without
// persisting anything.
type PreviewRequest struct {
	Date    string           `json:"date"`
	StoreID string           `json:"store_id"`
	Staff   *StaffEntryInput `json:"staff"`
	// PendingExpenseTotal is the sum of unsaved expense lines on the form.
	PendingExpenseTotal int `json:"pending_expense_total"`
}

func (r *PreviewRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidDate(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !store.IsValid(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id must be a known store",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SalaryBreakdown is the calculator block on the entry form.
type SalaryBreakdown struct {
	AutoSalary    int `json:"auto_salary"`
	EffectiveBase int `json:"effective_base"`
	PaidSalary    int `json:"paid_salary"`
	FractionCut   int `json:"fraction_cut"`
	Deduction     int `json:"deduction"`
}

type PreviewResponse struct {
	Summary report.Summary   `json:"summary"`
	Salary  *SalaryBreakdown `json:"salary,omitempty"`
}

type ExpenseResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`
	Note   string `json:"note,omitempty"`
}

type StaffRowResponse struct {
	StaffID            int    `json:"staff_id"`
	StaffName          string `json:"staff_name,omitempty"`
	SalesAmount        int    `json:"sales_amount"`
	CreditAmount       int    `json:"credit_amount"`
	ShishaCount        int    `json:"shisha_count"`
	Groups             int    `json:"groups"`
	Customers          int    `json:"customers"`
	BaseSalary         int    `json:"base_salary"`
	ChampagneDeduction int    `json:"champagne_deduction"`
	PaidSalary         int    `json:"paid_salary"`
	FractionCut        int    `json:"fraction_cut"`
	Memo               string `json:"memo,omitempty"`
}

func ToStaffRow(r staffresult.StaffResult) StaffRowResponse {
	row := StaffRowResponse{
		StaffID:            r.StaffID,
		SalesAmount:        r.SalesAmount,
		CreditAmount:       r.CreditAmount,
		ShishaCount:        r.ShishaCount,
		Groups:             r.Groups,
		Customers:          r.Customers,
		BaseSalary:         r.BaseSalary,
		ChampagneDeduction: r.ChampagneDeduction,
		PaidSalary:         r.PaidSalary,
		FractionCut:        r.FractionCut,
		Memo:               r.SalesMemo,
	}
	if r.StaffName != nil {
		row.StaffName = *r.StaffName
	}
	return row
}

// DayResponse is everything the daily screen needs when it loads a day.
type DayResponse struct {
	Date      string             `json:"date"`
	StoreID   string             `json:"store_id"`
	Summary   report.Summary     `json:"summary"`
	StaffRows []StaffRowResponse `json:"staff_rows"`
	Expenses  []ExpenseResponse  `json:"expenses"`
	Memo      string             `json:"memo"`
	Opinion   string             `json:"opinion"`
	HasRollup bool               `json:"has_rollup"`
}
