package monthly

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/teppen-ops/venue-backend/internal/domain/dailyreport"
	"github.com/teppen-ops/venue-backend/internal/domain/expense"
	"github.com/teppen-ops/venue-backend/internal/domain/memo"
	"github.com/teppen-ops/venue-backend/internal/domain/monthly"
	"github.com/teppen-ops/venue-backend/internal/domain/report"
	"github.com/teppen-ops/venue-backend/internal/domain/staffresult"
	"github.com/teppen-ops/venue-backend/internal/domain/store"
)

// uncategorizedLabel names manual expense lines saved without a name.
const uncategorizedLabel = "未分類"

type MonthlyServiceImpl struct {
	dailyReportRepo    dailyreport.DailyReportRepository
	staffResultRepo    staffresult.StaffResultRepository
	expenseRepo        expense.ExpenseRepository
	monthlyExpenseRepo expense.MonthlyExpenseRepository
	memoRepo           memo.MemoRepository
}

func NewMonthlyService(
	dailyReportRepo dailyreport.DailyReportRepository,
	staffResultRepo staffresult.StaffResultRepository,
	expenseRepo expense.ExpenseRepository,
	monthlyExpenseRepo expense.MonthlyExpenseRepository,
	memoRepo memo.MemoRepository,
) monthly.MonthlyService {
	return &MonthlyServiceImpl{
		dailyReportRepo:    dailyReportRepo,
		staffResultRepo:    staffResultRepo,
		expenseRepo:        expenseRepo,
		monthlyExpenseRepo: monthlyExpenseRepo,
		memoRepo:           memoRepo,
	}
}

// monthRange returns the inclusive date bounds of a month.
func monthRange(year, month int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

func storeFilter(storeID string) string {
	if storeID == store.All {
		return ""
	}
	return storeID
}

func (s *MonthlyServiceImpl) GetReport(ctx context.Context, year, month int, storeID string) (monthly.MonthlyReportResponse, error) {
	from, to := monthRange(year, month)
	filter := storeFilter(storeID)

	rollups, err := s.dailyReportRepo.ListByRange(ctx, filter, from, to)
	if err != nil {
		return monthly.MonthlyReportResponse{}, err
	}
	rows, err := s.staffResultRepo.ListByRange(ctx, filter, from, to)
	if err != nil {
		return monthly.MonthlyReportResponse{}, err
	}
	dailyExpenses, err := s.expenseRepo.ListByRange(ctx, filter, from, to)
	if err != nil {
		return monthly.MonthlyReportResponse{}, err
	}
	fixed, err := s.monthlyExpenseRepo.ListFixedByMonth(ctx, year, month)
	if err != nil {
		return monthly.MonthlyReportResponse{}, err
	}
	manual, err := s.monthlyExpenseRepo.ListManualByMonth(ctx, year, month)
	if err != nil {
		return monthly.MonthlyReportResponse{}, err
	}
	memos, err := s.memoRepo.ListMonthly(ctx, year, month, memoScope(storeID))
	if err != nil {
		return monthly.MonthlyReportResponse{}, err
	}

	fixed = filterFixed(fixed, filter)
	manual = filterManual(manual, filter)

	resp := monthly.MonthlyReportResponse{
		Year:     year,
		Month:    month,
		StoreID:  storeID,
		Summary:  report.SumDailyReports(rollups),
		PerStaff: report.AggregateByStaff(rows),
		PerDay:   report.AggregateByDay(rows),
	}

	// The period expense total layers fixed and manual costs on top of the
	// daily expenses already rolled into the summaries, and the balance is
	// restated against it.
	lines := report.FlattenExpenses(dailyExpenses, fixed, manual)
	resp.ExpenseBreakdown = report.GroupExpensesByName(lines)
	for _, l := range lines {
		resp.ExpenseTotal += l.Amount
	}
	resp.Summary.TotalExpense = resp.ExpenseTotal
	resp.Summary.Balance = resp.Summary.TotalSales - (resp.ExpenseTotal + resp.Summary.TotalSalary)

	resp.FixedByStore = make(map[string]monthly.FixedInput, len(fixed))
	for _, f := range fixed {
		resp.FixedByStore[f.StoreID] = monthly.FixedInput{
			Rent: f.Rent, Karaoke: f.Karaoke, Wifi: f.Wifi, Oshibori: f.Oshibori, PestControl: f.PestControl,
		}
	}

	resp.ManualByStore = make(map[string][]monthly.ManualLineResponse)
	for _, m := range manual {
		line := monthly.ManualLineResponse{ID: m.ID, Name: m.Name, Amount: m.Amount}
		if m.Note != nil {
			line.Note = *m.Note
		}
		resp.ManualByStore[m.StoreID] = append(resp.ManualByStore[m.StoreID], line)
	}

	resp.Memos = make(map[int]string, len(memos))
	for _, m := range memos {
		resp.Memos[m.StaffID] = m.Memo
	}

	return resp, nil
}

func (s *MonthlyServiceImpl) Save(ctx context.Context, req monthly.SaveMonthlyRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// Fixed costs cover every venue regardless of the screen's store
	// selection, so absent entries write zeros.
	for _, storeID := range store.IDs {
		f := req.Fixed[storeID]
		if err := s.monthlyExpenseRepo.UpsertFixed(ctx, expense.FixedExpense{
			Year: req.Year, Month: req.Month, StoreID: storeID,
			Rent: f.Rent, Karaoke: f.Karaoke, Wifi: f.Wifi, Oshibori: f.Oshibori, PestControl: f.PestControl,
		}); err != nil {
			return err
		}
	}

	var lines []expense.ManualExpense
	for _, storeID := range store.IDs {
		for _, in := range req.Manual[storeID] {
			name := strings.TrimSpace(in.Name)
			note := strings.TrimSpace(in.Note)
			if name == "" && in.Amount == 0 && note == "" {
				continue
			}
			if name == "" {
				name = uncategorizedLabel
			}
			line := expense.ManualExpense{
				Year: req.Year, Month: req.Month, StoreID: storeID,
				Name: name, Amount: in.Amount,
			}
			if note != "" {
				line.Note = &note
			}
			lines = append(lines, line)
		}
	}
	if err := s.monthlyExpenseRepo.ReplaceManual(ctx, req.Year, req.Month, lines); err != nil {
		return err
	}

	memos := make([]memo.StaffMemo, 0, len(req.Memos))
	for _, in := range req.Memos {
		memos = append(memos, memo.StaffMemo{StaffID: in.StaffID, Memo: strings.TrimSpace(in.Memo)})
	}
	if err := s.memoRepo.ReplaceMonthly(ctx, req.Year, req.Month, req.MemoStoreID, memos); err != nil {
		return err
	}

	slog.Info("Monthly report saved", "year", req.Year, "month", req.Month, "manual_lines", len(lines))
	return nil
}

func memoScope(storeID string) string {
	if storeID == store.All {
		return store.All
	}
	return storeID
}

func filterFixed(in []expense.FixedExpense, storeID string) []expense.FixedExpense {
	if storeID == "" {
		return in
	}
	out := in[:0]
	for _, f := range in {
		if f.StoreID == storeID {
			out = append(out, f)
		}
	}
	return out
}

func filterManual(in []expense.ManualExpense, storeID string) []expense.ManualExpense {
	if storeID == "" {
		return in
	}
	out := in[:0]
	for _, m := range in {
		if m.StoreID == storeID {
			out = append(out, m)
		}
	}
	return out
}
