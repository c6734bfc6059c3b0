package yearly

import (
	"github.com/teppen-ops/venue-backend/internal/domain/report"
	"github.com/teppen-ops/venue-backend/internal/domain/store"
	"github.com/teppen-ops/venue-backend/internal/pkg/validator"
)

type MemoInput struct {
	StaffID int    `json:"staff_id"`
	Memo    string `json:"memo"`
}

// SaveYearlyRequest replaces the year's staff memos for one store scope.
type SaveYearlyRequest struct {
	Year        int         `json:"year"`
	MemoStoreID string      `json:"memo_store_id"`
	Memos       []MemoInput `json:"memos"`
}

func (r *SaveYearlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if r.MemoStoreID != store.All && !store.IsValid(r.MemoStoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "memo_store_id",
			Message: "memo_store_id must be a known store or ALL",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// StaffRef is a roster entry for the yearly screen. Inactive members stay
// listed so their historical rows keep a name; members sharing a name are
// collapsed to the highest ID.
type StaffRef struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// FixedYearTotals sums a venue's fixed costs across the year's months.
type FixedYearTotals struct {
	Rent        int `json:"rent"`
	Karaoke     int `json:"karaoke"`
	Wifi        int `json:"wifi"`
	Oshibori    int `json:"oshibori"`
	PestControl int `json:"pest_control"`
	Total       int `json:"total"`
}

type YearlyReportResponse struct {
	Year    int    `json:"year"`
	StoreID string `json:"store_id"` // venue code or ALL

	Summary  report.Summary          `json:"summary"`
	PerStaff []report.StaffAggregate `json:"per_staff"`
	PerDay   []report.DayAggregate   `json:"per_day"`
	Staff    []StaffRef              `json:"staff"`

	ExpenseBreakdown []report.ExpenseLine       `json:"expense_breakdown"`
	ExpenseTotal     int                        `json:"expense_total"`
	FixedByStore     map[string]FixedYearTotals `json:"fixed_by_store"`

	Memos map[int]string `json:"memos"`
}
