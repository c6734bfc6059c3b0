package yearly

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/teppen-ops/venue-backend/internal/domain/dailyreport"
	"github.com/teppen-ops/venue-backend/internal/domain/expense"
	"github.com/teppen-ops/venue-backend/internal/domain/memo"
	"github.com/teppen-ops/venue-backend/internal/domain/report"
	"github.com/teppen-ops/venue-backend/internal/domain/staff"
	"github.com/teppen-ops/venue-backend/internal/domain/staffresult"
	"github.com/teppen-ops/venue-backend/internal/domain/store"
	"github.com/teppen-ops/venue-backend/internal/domain/yearly"
)

type YearlyServiceImpl struct {
	dailyReportRepo    dailyreport.DailyReportRepository
	staffResultRepo    staffresult.StaffResultRepository
	expenseRepo        expense.ExpenseRepository
	monthlyExpenseRepo expense.MonthlyExpenseRepository
	memoRepo           memo.MemoRepository
	staffRepo          staff.StaffRepository
}

func NewYearlyService(
	dailyReportRepo dailyreport.DailyReportRepository,
	staffResultRepo staffresult.StaffResultRepository,
	expenseRepo expense.ExpenseRepository,
	monthlyExpenseRepo expense.MonthlyExpenseRepository,
	memoRepo memo.MemoRepository,
	staffRepo staff.StaffRepository,
) yearly.YearlyService {
	return &YearlyServiceImpl{
		dailyReportRepo:    dailyReportRepo,
		staffResultRepo:    staffResultRepo,
		expenseRepo:        expenseRepo,
		monthlyExpenseRepo: monthlyExpenseRepo,
		memoRepo:           memoRepo,
		staffRepo:          staffRepo,
	}
}

func (s *YearlyServiceImpl) GetReport(ctx context.Context, year int, storeID string) (yearly.YearlyReportResponse, error) {
	from := fmt.Sprintf("%04d-01-01", year)
	to := fmt.Sprintf("%04d-12-31", year)

	filter := ""
	if storeID != store.All {
		filter = storeID
	}

	rollups, err := s.dailyReportRepo.ListByRange(ctx, filter, from, to)
	if err != nil {
		return yearly.YearlyReportResponse{}, err
	}
	rows, err := s.staffResultRepo.ListByRange(ctx, filter, from, to)
	if err != nil {
		return yearly.YearlyReportResponse{}, err
	}
	dailyExpenses, err := s.expenseRepo.ListByRange(ctx, filter, from, to)
	if err != nil {
		return yearly.YearlyReportResponse{}, err
	}
	fixed, err := s.monthlyExpenseRepo.ListFixedByYear(ctx, year)
	if err != nil {
		return yearly.YearlyReportResponse{}, err
	}
	manual, err := s.monthlyExpenseRepo.ListManualByYear(ctx, year)
	if err != nil {
		return yearly.YearlyReportResponse{}, err
	}
	memos, err := s.memoRepo.ListYearly(ctx, year, memoScope(storeID))
	if err != nil {
		return yearly.YearlyReportResponse{}, err
	}
	roster, err := s.staffRepo.List(ctx, false)
	if err != nil {
		return yearly.YearlyReportResponse{}, err
	}

	if filter != "" {
		fixed = filterFixed(fixed, filter)
		manual = filterManual(manual, filter)
	}

	// Sales and salary figures come from the staff rows themselves, not the
	// rollups, so a stale rollup cannot skew the year. Only the expense
	// total and day count live on the rollup side.
	summary := report.SumStaffResults(rows)
	rollupSum := report.SumDailyReports(rollups)
	summary.TotalExpense = rollupSum.TotalExpense
	summary.DaysCount = rollupSum.DaysCount

	resp := yearly.YearlyReportResponse{
		Year:     year,
		StoreID:  storeID,
		Summary:  summary,
		PerStaff: report.AggregateByStaff(rows),
		PerDay:   report.AggregateByDay(rows),
		Staff:    dedupeRoster(roster),
	}

	lines := report.FlattenExpenses(dailyExpenses, fixed, manual)
	resp.ExpenseBreakdown = report.GroupExpensesByName(lines)
	resp.FixedByStore = sumFixedByStore(fixed)
	for _, l := range lines {
		resp.ExpenseTotal += l.Amount
	}
	resp.Summary.TotalExpense = resp.ExpenseTotal
	resp.Summary.Balance = resp.Summary.TotalSales - (resp.ExpenseTotal + resp.Summary.TotalSalary)

	resp.Memos = make(map[int]string, len(memos))
	for _, m := range memos {
		resp.Memos[m.StaffID] = m.Memo
	}

	return resp, nil
}

func (s *YearlyServiceImpl) Save(ctx context.Context, req yearly.SaveYearlyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	memos := make([]memo.StaffMemo, 0, len(req.Memos))
	for _, in := range req.Memos {
		memos = append(memos, memo.StaffMemo{StaffID: in.StaffID, Memo: strings.TrimSpace(in.Memo)})
	}
	if err := s.memoRepo.ReplaceYearly(ctx, req.Year, req.MemoStoreID, memos); err != nil {
		return err
	}

	slog.Info("Yearly memos saved", "year", req.Year, "store_id", req.MemoStoreID)
	return nil
}

// dedupeRoster collapses roster entries sharing a name to the one with
// the highest ID. Reassigned members leave an inactive row behind under
// the old ID; the newest entry is the one reports should label with.
func dedupeRoster(roster []staff.Staff) []yearly.StaffRef {
	byName := make(map[string]staff.Staff)
	for _, m := range roster {
		if cur, ok := byName[m.Name]; !ok || m.ID > cur.ID {
			byName[m.Name] = m
		}
	}

	out := make([]yearly.StaffRef, 0, len(byName))
	for _, m := range byName {
		out = append(out, yearly.StaffRef{ID: m.ID, Name: m.Name, IsActive: m.IsActive})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// sumFixedByStore folds the year's monthly fixed costs into one total set
// per venue.
func sumFixedByStore(fixed []expense.FixedExpense) map[string]yearly.FixedYearTotals {
	out := make(map[string]yearly.FixedYearTotals, len(store.IDs))
	for _, f := range fixed {
		t := out[f.StoreID]
		t.Rent += f.Rent
		t.Karaoke += f.Karaoke
		t.Wifi += f.Wifi
		t.Oshibori += f.Oshibori
		t.PestControl += f.PestControl
		t.Total += f.Total()
		out[f.StoreID] = t
	}
	return out
}

func memoScope(storeID string) string {
	if storeID == store.All {
		return store.All
	}
	return storeID
}

func filterFixed(in []expense.FixedExpense, storeID string) []expense.FixedExpense {
	out := in[:0]
	for _, f := range in {
		if f.StoreID == storeID {
			out = append(out, f)
		}
	}
	return out
}

func filterManual(in []expense.ManualExpense, storeID string) []expense.ManualExpense {
	out := in[:0]
	for _, m := range in {
		if m.StoreID == storeID {
			out = append(out, m)
		}
	}
	return out
}
