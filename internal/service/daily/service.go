package daily

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/teppen-ops/venue-backend/internal/domain/daily"
	"github.com/teppen-ops/venue-backend/internal/domain/dailyreport"
	"github.com/teppen-ops/venue-backend/internal/domain/expense"
	"github.com/teppen-ops/venue-backend/internal/domain/report"
	"github.com/teppen-ops/venue-backend/internal/domain/salary"
	"github.com/teppen-ops/venue-backend/internal/domain/staffresult"
	"github.com/teppen-ops/venue-backend/internal/domain/store"
	"github.com/teppen-ops/venue-backend/internal/pkg/database"
	"github.com/teppen-ops/venue-backend/internal/repository/postgresql"
)

const expenseSuggestionLimit = 50

type DailyServiceImpl struct {
	db              *database.DB
	staffResultRepo staffresult.StaffResultRepository
	expenseRepo     expense.ExpenseRepository
	dailyReportRepo dailyreport.DailyReportRepository
}

func NewDailyService(
	db *database.DB,
	staffResultRepo staffresult.StaffResultRepository,
	expenseRepo expense.ExpenseRepository,
	dailyReportRepo dailyreport.DailyReportRepository,
) daily.DailyService {
	return &DailyServiceImpl{
		db:              db,
		staffResultRepo: staffResultRepo,
		expenseRepo:     expenseRepo,
		dailyReportRepo: dailyReportRepo,
	}
}

func (s *DailyServiceImpl) GetDay(ctx context.Context, storeID, date string) (daily.DayResponse, error) {
	rows, err := s.staffResultRepo.ListByStoreDay(ctx, storeID, date)
	if err != nil {
		return daily.DayResponse{}, err
	}
	expenses, err := s.expenseRepo.ListByStoreDay(ctx, storeID, date)
	if err != nil {
		return daily.DayResponse{}, err
	}
	rollup, err := s.dailyReportRepo.GetByDay(ctx, storeID, date)
	if err != nil {
		return daily.DayResponse{}, err
	}

	return s.buildDayResponse(storeID, date, rows, expenses, rollup), nil
}

// Save runs the daily pipeline: expenses first, then the staff row, then
// a requery of everything persisted to rebuild the rollup. The requery is
// what makes the rollup authoritative; in-memory figures are never
// trusted after a write.
func (s *DailyServiceImpl) Save(ctx context.Context, req daily.SaveDailyRequest) (daily.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return daily.DayResponse{}, err
	}

	for _, in := range req.Expenses {
		e := expense.Expense{
			StoreID: req.StoreID,
			Date:    req.Date,
			Name:    strings.TrimSpace(in.Name),
			Amount:  in.Amount,
			Note:    strings.TrimSpace(in.Note),
		}
		if in.ID != nil {
			e.ID = *in.ID
			if err := s.expenseRepo.Update(ctx, e); err != nil {
				return daily.DayResponse{}, err
			}
			continue
		}
		if _, err := s.expenseRepo.Create(ctx, e); err != nil {
			return daily.DayResponse{}, err
		}
	}

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if req.Staff != nil && req.Staff.HasInput() {
			in := *req.Staff
			calc := salary.Compute(in.Sales(), in.Manual(), in.Deduction(), store.IsManualSalary(req.StoreID))

			if err := s.staffResultRepo.Upsert(txCtx, staffresult.StaffResult{
				StaffID:            in.StaffID,
				StoreID:            req.StoreID,
				Date:               req.Date,
				SalesAmount:        in.Sales(),
				CreditAmount:       in.Credit(),
				ShishaCount:        in.Shisha(),
				Groups:             in.GroupCnt(),
				Customers:          in.Customer(),
				BaseSalary:         calc.EffectiveBase,
				ChampagneDeduction: calc.Deduction,
				PaidSalary:         calc.PaidSalary,
				FractionCut:        calc.FractionCut,
				SalesMemo:          in.Memo,
				SalaryMemo:         in.Memo,
			}); err != nil {
				return err
			}
		}

		return s.recomputeRollup(txCtx, req.StoreID, req.Date, &req.Memo, &req.Opinion)
	})
	if err != nil {
		return daily.DayResponse{}, err
	}

	slog.Info("Daily entry saved", "store_id", req.StoreID, "date", req.Date)
	return s.GetDay(ctx, req.StoreID, req.Date)
}

func (s *DailyServiceImpl) Preview(ctx context.Context, req daily.PreviewRequest) (daily.PreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return daily.PreviewResponse{}, err
	}

	rows, err := s.staffResultRepo.ListByStoreDay(ctx, req.StoreID, req.Date)
	if err != nil {
		return daily.PreviewResponse{}, err
	}
	saved, err := s.expenseRepo.ListByStoreDay(ctx, req.StoreID, req.Date)
	if err != nil {
		return daily.PreviewResponse{}, err
	}

	totalExpense := req.PendingExpenseTotal
	for _, e := range saved {
		totalExpense += e.Amount
	}

	var pending *report.PendingEntry
	var breakdown *daily.SalaryBreakdown
	if req.Staff != nil {
		in := *req.Staff
		calc := salary.Compute(in.Sales(), in.Manual(), in.Deduction(), store.IsManualSalary(req.StoreID))
		breakdown = &daily.SalaryBreakdown{
			AutoSalary:    calc.AutoSalary,
			EffectiveBase: calc.EffectiveBase,
			PaidSalary:    calc.PaidSalary,
			FractionCut:   calc.FractionCut,
			Deduction:     calc.Deduction,
		}
		if in.HasInput() {
			pending = &report.PendingEntry{
				StaffID:      in.StaffID,
				SalesAmount:  in.Sales(),
				CreditAmount: in.Credit(),
				Groups:       in.GroupCnt(),
				Customers:    in.Customer(),
				BaseSalary:   calc.EffectiveBase,
			}
		}
	}

	return daily.PreviewResponse{
		Summary: report.PreviewSummary(req.Date, rows, pending, totalExpense),
		Salary:  breakdown,
	}, nil
}

func (s *DailyServiceImpl) DeleteExpense(ctx context.Context, id int64, storeID, date string) (daily.DayResponse, error) {
	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		return daily.DayResponse{}, err
	}
	if err := s.recomputeRollup(ctx, storeID, date, nil, nil); err != nil {
		return daily.DayResponse{}, err
	}
	return s.GetDay(ctx, storeID, date)
}

func (s *DailyServiceImpl) DeleteStaffEntry(ctx context.Context, staffID int, storeID, date string) (daily.DayResponse, error) {
	if err := s.staffResultRepo.DeleteByStaffDay(ctx, staffID, storeID, date); err != nil {
		return daily.DayResponse{}, err
	}
	if err := s.recomputeRollup(ctx, storeID, date, nil, nil); err != nil {
		return daily.DayResponse{}, err
	}

	slog.Info("Staff day row deleted", "staff_id", staffID, "store_id", storeID, "date", date)
	return s.GetDay(ctx, storeID, date)
}

func (s *DailyServiceImpl) SuggestExpenseNames(ctx context.Context) ([]string, error) {
	return s.expenseRepo.SuggestNames(ctx, expenseSuggestionLimit)
}

func (s *DailyServiceImpl) RecomputeRange(ctx context.Context, from, to string) (int, error) {
	dirty, err := s.dailyReportRepo.ListDirtyDays(ctx, from, to)
	if err != nil {
		return 0, err
	}

	for _, k := range dirty {
		if err := s.recomputeRollup(ctx, k.StoreID, k.Date, nil, nil); err != nil {
			return 0, fmt.Errorf("recompute %s %s: %w", k.StoreID, k.Date, err)
		}
	}
	if len(dirty) > 0 {
		slog.Info("Rollups recomputed", "count", len(dirty), "from", from, "to", to)
	}
	return len(dirty), nil
}

// recomputeRollup rebuilds one venue-day rollup from the persisted staff
// rows and expenses. Nil memo/opinion keep whatever the rollup already
// holds.
func (s *DailyServiceImpl) recomputeRollup(ctx context.Context, storeID, date string, memo, opinion *string) error {
	rows, err := s.staffResultRepo.ListByStoreDay(ctx, storeID, date)
	if err != nil {
		return err
	}
	expenses, err := s.expenseRepo.ListByStoreDay(ctx, storeID, date)
	if err != nil {
		return err
	}

	dr := dailyreport.DailyReport{Date: date, StoreID: storeID}
	for _, r := range rows {
		dr.TotalSalesAmount += r.SalesAmount
		dr.CreditAmount += r.CreditAmount
		dr.TotalGroups += r.Groups
		dr.TotalCustomers += r.Customers
		dr.TotalShisha += r.ShishaCount
		dr.TotalSalary += r.BaseSalary
	}
	for _, e := range expenses {
		dr.TotalExpense += e.Amount
	}

	if memo != nil && opinion != nil {
		dr.Memo = *memo
		dr.Opinion = *opinion
	} else {
		existing, err := s.dailyReportRepo.GetByDay(ctx, storeID, date)
		if err != nil {
			return err
		}
		if existing != nil {
			dr.Memo = existing.Memo
			dr.Opinion = existing.Opinion
		}
	}

	return s.dailyReportRepo.Upsert(ctx, dr)
}

func (s *DailyServiceImpl) buildDayResponse(storeID, date string, rows []staffresult.StaffResult, expenses []expense.Expense, rollup *dailyreport.DailyReport) daily.DayResponse {
	resp := daily.DayResponse{
		Date:      date,
		StoreID:   storeID,
		StaffRows: make([]daily.StaffRowResponse, 0, len(rows)),
		Expenses:  make([]daily.ExpenseResponse, 0, len(expenses)),
	}

	var totalExpense int
	for _, e := range expenses {
		totalExpense += e.Amount
		resp.Expenses = append(resp.Expenses, daily.ExpenseResponse{
			ID: e.ID, Name: e.Name, Amount: e.Amount, Note: e.Note,
		})
	}
	for _, r := range rows {
		resp.StaffRows = append(resp.StaffRows, daily.ToStaffRow(r))
	}

	resp.Summary = report.PreviewSummary(date, rows, nil, totalExpense)
	if rollup != nil {
		resp.Memo = rollup.Memo
		resp.Opinion = rollup.Opinion
		resp.HasRollup = true
	}
	return resp
}
