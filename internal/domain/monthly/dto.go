package monthly

import (
	"github.com/teppen-ops/venue-backend/internal/domain/report"
	"github.com/teppen-ops/venue-backend/internal/domain/store"
	"github.com/teppen-ops/venue-backend/internal/pkg/validator"
)

// FixedInput carries one venue's recurring costs. Values are yen; blank
// form fields arrive as zero and are stored as zero.
type FixedInput struct {
	Rent        int `json:"rent"`
	Karaoke     int `json:"karaoke"`
	Wifi        int `json:"wifi"`
	Oshibori    int `json:"oshibori"`
	PestControl int `json:"pest_control"`
}

func (f FixedInput) Total() int {
	return f.Rent + f.Karaoke + f.Wifi + f.Oshibori + f.PestControl
}

// ManualLineInput is one free-form monthly cost line. Lines that are
// entirely empty are dropped on save; a line with an amount but no name
// is stored under the uncategorized label.
type ManualLineInput struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
	Note   string `json:"note"`
}

type MemoInput struct {
	StaffID int    `json:"staff_id"`
	Memo    string `json:"memo"`
}

// SaveMonthlyRequest replaces the month's fixed costs, manual lines and
// staff memos. MemoStoreID scopes the memos only; fixed and manual data
// always cover every venue.
type SaveMonthlyRequest struct {
	Year        int                          `json:"year"`
	Month       int                          `json:"month"`
	MemoStoreID string                       `json:"memo_store_id"`
	Fixed       map[string]FixedInput        `json:"fixed"`
	Manual      map[string][]ManualLineInput `json:"manual"`
	Memos       []MemoInput                  `json:"memos"`
}

func (r *SaveMonthlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.MemoStoreID != store.All && !store.IsValid(r.MemoStoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "memo_store_id",
			Message: "memo_store_id must be a known store or ALL",
		})
	}
	for storeID := range r.Fixed {
		if !store.IsValid(storeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "fixed",
				Message: "fixed expenses keyed by unknown store",
			})
			break
		}
	}
	for storeID := range r.Manual {
		if !store.IsValid(storeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "manual",
				Message: "manual expenses keyed by unknown store",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ManualLineResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`
	Note   string `json:"note,omitempty"`
}

// MonthlyReportResponse is the whole monthly screen in one payload.
type MonthlyReportResponse struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	StoreID string `json:"store_id"` // venue code or ALL

	Summary  report.Summary          `json:"summary"`
	PerStaff []report.StaffAggregate `json:"per_staff"`
	PerDay   []report.DayAggregate   `json:"per_day"`

	// ExpenseBreakdown merges daily, fixed and manual costs grouped by
	// name; ExpenseTotal is their flat sum and feeds the balance.
	ExpenseBreakdown []report.ExpenseLine            `json:"expense_breakdown"`
	ExpenseTotal     int                             `json:"expense_total"`
	FixedByStore     map[string]FixedInput           `json:"fixed_by_store"`
	ManualByStore    map[string][]ManualLineResponse `json:"manual_by_store"`

	Memos map[int]string `json:"memos"`
}
