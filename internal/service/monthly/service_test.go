package monthly

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teppen-ops/venue-backend/internal/domain/dailyreport"
	"github.com/teppen-ops/venue-backend/internal/domain/expense"
	"github.com/teppen-ops/venue-backend/internal/domain/memo"
	"github.com/teppen-ops/venue-backend/internal/domain/monthly"
	"github.com/teppen-ops/venue-backend/internal/domain/staffresult"
	"github.com/teppen-ops/venue-backend/internal/domain/store"
)

type fakeDailyReportRepo struct {
	reports []dailyreport.DailyReport
}

func (r *fakeDailyReportRepo) Upsert(ctx context.Context, report dailyreport.DailyReport) error {
	r.reports = append(r.reports, report)
	return nil
}

func (r *fakeDailyReportRepo) GetByDay(ctx context.Context, storeID, date string) (*dailyreport.DailyReport, error) {
	return nil, nil
}

func (r *fakeDailyReportRepo) ListByRange(ctx context.Context, storeID, from, to string) ([]dailyreport.DailyReport, error) {
	var out []dailyreport.DailyReport
	for _, report := range r.reports {
		if (storeID == "" || report.StoreID == storeID) && report.Date >= from && report.Date <= to {
			out = append(out, report)
		}
	}
	return out, nil
}

func (r *fakeDailyReportRepo) ListDirtyDays(ctx context.Context, from, to string) ([]dailyreport.DayKey, error) {
	return nil, nil
}

type fakeStaffResultRepo struct {
	rows []staffresult.StaffResult
}

func (r *fakeStaffResultRepo) Upsert(ctx context.Context, row staffresult.StaffResult) error {
	r.rows = append(r.rows, row)
	return nil
}

func (r *fakeStaffResultRepo) GetByStaffDay(ctx context.Context, staffID int, storeID, date string) (*staffresult.StaffResult, error) {
	return nil, nil
}

func (r *fakeStaffResultRepo) ListByStoreDay(ctx context.Context, storeID, date string) ([]staffresult.StaffResult, error) {
	return nil, nil
}

func (r *fakeStaffResultRepo) ListByStaffRange(ctx context.Context, staffID int, from, to string) ([]staffresult.StaffResult, error) {
	return nil, nil
}

func (r *fakeStaffResultRepo) ListByRange(ctx context.Context, storeID, from, to string) ([]staffresult.StaffResult, error) {
	var out []staffresult.StaffResult
	for _, row := range r.rows {
		if (storeID == "" || row.StoreID == storeID) && row.Date >= from && row.Date <= to {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeStaffResultRepo) DeleteByStaffDay(ctx context.Context, staffID int, storeID, date string) error {
	return nil
}

type fakeExpenseRepo struct {
	expenses []expense.Expense
}

func (r *fakeExpenseRepo) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	r.expenses = append(r.expenses, e)
	return e, nil
}

func (r *fakeExpenseRepo) ListByStoreDay(ctx context.Context, storeID, date string) ([]expense.Expense, error) {
	return nil, nil
}

func (r *fakeExpenseRepo) ListByRange(ctx context.Context, storeID, from, to string) ([]expense.Expense, error) {
	var out []expense.Expense
	for _, e := range r.expenses {
		if (storeID == "" || e.StoreID == storeID) && e.Date >= from && e.Date <= to {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeExpenseRepo) Update(ctx context.Context, e expense.Expense) error { return nil }

func (r *fakeExpenseRepo) Delete(ctx context.Context, id int64) error { return nil }

func (r *fakeExpenseRepo) SuggestNames(ctx context.Context, limit int) ([]string, error) {
	return nil, nil
}

type fakeMonthlyExpenseRepo struct {
	fixed  []expense.FixedExpense
	manual []expense.ManualExpense
}

func (r *fakeMonthlyExpenseRepo) UpsertFixed(ctx context.Context, f expense.FixedExpense) error {
	for i, cur := range r.fixed {
		if cur.Year == f.Year && cur.Month == f.Month && cur.StoreID == f.StoreID {
			r.fixed[i] = f
			return nil
		}
	}
	r.fixed = append(r.fixed, f)
	return nil
}

func (r *fakeMonthlyExpenseRepo) ListFixedByMonth(ctx context.Context, year, month int) ([]expense.FixedExpense, error) {
	var out []expense.FixedExpense
	for _, f := range r.fixed {
		if f.Year == year && f.Month == month {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeMonthlyExpenseRepo) ListFixedByYear(ctx context.Context, year int) ([]expense.FixedExpense, error) {
	var out []expense.FixedExpense
	for _, f := range r.fixed {
		if f.Year == year {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeMonthlyExpenseRepo) ReplaceManual(ctx context.Context, year, month int, lines []expense.ManualExpense) error {
	kept := r.manual[:0]
	for _, m := range r.manual {
		if m.Year != year || m.Month != month {
			kept = append(kept, m)
		}
	}
	r.manual = append(kept, lines...)
	return nil
}

func (r *fakeMonthlyExpenseRepo) ListManualByMonth(ctx context.Context, year, month int) ([]expense.ManualExpense, error) {
	var out []expense.ManualExpense
	for _, m := range r.manual {
		if m.Year == year && m.Month == month {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMonthlyExpenseRepo) ListManualByYear(ctx context.Context, year int) ([]expense.ManualExpense, error) {
	var out []expense.ManualExpense
	for _, m := range r.manual {
		if m.Year == year {
			out = append(out, m)
		}
	}
	return out, nil
}

type memoKey struct {
	year  int
	month int
	store string
}

type fakeMemoRepo struct {
	memos map[memoKey][]memo.StaffMemo
}

func newFakeMemoRepo() *fakeMemoRepo {
	return &fakeMemoRepo{memos: make(map[memoKey][]memo.StaffMemo)}
}

func (r *fakeMemoRepo) ReplaceMonthly(ctx context.Context, year, month int, storeID string, memos []memo.StaffMemo) error {
	var kept []memo.StaffMemo
	for _, m := range memos {
		if m.Memo != "" {
			kept = append(kept, m)
		}
	}
	r.memos[memoKey{year, month, storeID}] = kept
	return nil
}

func (r *fakeMemoRepo) ListMonthly(ctx context.Context, year, month int, storeID string) ([]memo.StaffMemo, error) {
	return r.memos[memoKey{year, month, storeID}], nil
}

func (r *fakeMemoRepo) ReplaceYearly(ctx context.Context, year int, storeID string, memos []memo.StaffMemo) error {
	return r.ReplaceMonthly(ctx, year, 0, storeID, memos)
}

func (r *fakeMemoRepo) ListYearly(ctx context.Context, year int, storeID string) ([]memo.StaffMemo, error) {
	return r.ListMonthly(ctx, year, 0, storeID)
}

func newTestMonthlyService() (monthly.MonthlyService, *fakeDailyReportRepo, *fakeStaffResultRepo, *fakeExpenseRepo, *fakeMonthlyExpenseRepo, *fakeMemoRepo) {
	dailyReportRepo := &fakeDailyReportRepo{}
	staffResultRepo := &fakeStaffResultRepo{}
	expenseRepo := &fakeExpenseRepo{}
	monthlyExpenseRepo := &fakeMonthlyExpenseRepo{}
	memoRepo := newFakeMemoRepo()
	service := NewMonthlyService(dailyReportRepo, staffResultRepo, expenseRepo, monthlyExpenseRepo, memoRepo)
	return service, dailyReportRepo, staffResultRepo, expenseRepo, monthlyExpenseRepo, memoRepo
}

func TestMonthlyService_Save_WritesFixedForEveryStore(t *testing.T) {
	ctx := context.Background()
	service, _, _, _, monthlyExpenseRepo, _ := newTestMonthlyService()

	err := service.Save(ctx, monthly.SaveMonthlyRequest{
		Year: 2025, Month: 6, MemoStoreID: store.All,
		Fixed: map[string]monthly.FixedInput{
			store.Teppen: {Rent: 200000, Wifi: 5000},
		},
	})
	require.NoError(t, err)

	fixed, err := monthlyExpenseRepo.ListFixedByMonth(ctx, 2025, 6)
	require.NoError(t, err)
	require.Len(t, fixed, len(store.IDs), "absent venues still get a zero row")

	byStore := make(map[string]expense.FixedExpense)
	for _, f := range fixed {
		byStore[f.StoreID] = f
	}
	assert.Equal(t, 205000, byStore[store.Teppen].Total())
	assert.Equal(t, 0, byStore[store.Store201].Total())
	assert.Equal(t, 0, byStore[store.Store202].Total())
}

func TestMonthlyService_Save_NormalizesManualLines(t *testing.T) {
	ctx := context.Background()
	service, _, _, _, monthlyExpenseRepo, _ := newTestMonthlyService()

	err := service.Save(ctx, monthly.SaveMonthlyRequest{
		Year: 2025, Month: 6, MemoStoreID: store.All,
		Manual: map[string][]monthly.ManualLineInput{
			store.Store201: {
				{Name: "  清掃業者  ", Amount: 12000, Note: " monthly deep clean "},
				{Name: "", Amount: 0, Note: ""}, // fully blank line is dropped
				{Name: "", Amount: 8000},        // amount without a name
			},
		},
	})
	require.NoError(t, err)

	manual, err := monthlyExpenseRepo.ListManualByMonth(ctx, 2025, 6)
	require.NoError(t, err)
	require.Len(t, manual, 2)

	assert.Equal(t, "清掃業者", manual[0].Name)
	require.NotNil(t, manual[0].Note)
	assert.Equal(t, "monthly deep clean", *manual[0].Note)

	assert.Equal(t, "未分類", manual[1].Name)
	assert.Equal(t, 8000, manual[1].Amount)
	assert.Nil(t, manual[1].Note)
}

func TestMonthlyService_Save_ReplacesWholeMonth(t *testing.T) {
	ctx := context.Background()
	service, _, _, _, monthlyExpenseRepo, _ := newTestMonthlyService()

	first := monthly.SaveMonthlyRequest{
		Year: 2025, Month: 6, MemoStoreID: store.All,
		Manual: map[string][]monthly.ManualLineInput{
			store.Teppen: {{Name: "A", Amount: 1000}, {Name: "B", Amount: 2000}},
		},
	}
	require.NoError(t, service.Save(ctx, first))

	second := monthly.SaveMonthlyRequest{
		Year: 2025, Month: 6, MemoStoreID: store.All,
		Manual: map[string][]monthly.ManualLineInput{
			store.Teppen: {{Name: "C", Amount: 3000}},
		},
	}
	require.NoError(t, service.Save(ctx, second))

	manual, err := monthlyExpenseRepo.ListManualByMonth(ctx, 2025, 6)
	require.NoError(t, err)
	require.Len(t, manual, 1)
	assert.Equal(t, "C", manual[0].Name)
}

func TestMonthlyService_GetReport_RestatesBalanceWithPeriodExpenses(t *testing.T) {
	ctx := context.Background()
	service, dailyReportRepo, _, expenseRepo, monthlyExpenseRepo, _ := newTestMonthlyService()

	require.NoError(t, dailyReportRepo.Upsert(ctx, dailyreport.DailyReport{
		Date: "2025-06-10", StoreID: store.Teppen,
		TotalSalesAmount: 300000, TotalSalary: 135000, TotalExpense: 10000,
	}))
	_, err := expenseRepo.Create(ctx, expense.Expense{StoreID: store.Teppen, Date: "2025-06-10", Name: "氷", Amount: 10000})
	require.NoError(t, err)
	require.NoError(t, monthlyExpenseRepo.UpsertFixed(ctx, expense.FixedExpense{
		Year: 2025, Month: 6, StoreID: store.Teppen, Rent: 200000,
	}))
	require.NoError(t, monthlyExpenseRepo.ReplaceManual(ctx, 2025, 6, []expense.ManualExpense{
		{Year: 2025, Month: 6, StoreID: store.Teppen, Name: "清掃業者", Amount: 12000},
	}))

	resp, err := service.GetReport(ctx, 2025, 6, store.Teppen)
	require.NoError(t, err)

	assert.Equal(t, 300000, resp.Summary.TotalSales)
	assert.Equal(t, 1, resp.Summary.DaysCount)

	// 10000 daily + 200000 fixed + 12000 manual
	assert.Equal(t, 222000, resp.ExpenseTotal)
	assert.Equal(t, 222000, resp.Summary.TotalExpense)
	assert.Equal(t, 300000-(222000+135000), resp.Summary.Balance)

	require.Contains(t, resp.FixedByStore, store.Teppen)
	assert.Equal(t, 200000, resp.FixedByStore[store.Teppen].Rent)
	require.Len(t, resp.ManualByStore[store.Teppen], 1)
}

func TestMonthlyService_Save_TrimsAndStoresMemos(t *testing.T) {
	ctx := context.Background()
	service, _, _, _, _, memoRepo := newTestMonthlyService()

	err := service.Save(ctx, monthly.SaveMonthlyRequest{
		Year: 2025, Month: 6, MemoStoreID: store.Store201,
		Memos: []monthly.MemoInput{
			{StaffID: 1, Memo: "  carried the weekend  "},
			{StaffID: 2, Memo: "   "},
		},
	})
	require.NoError(t, err)

	memos, err := memoRepo.ListMonthly(ctx, 2025, 6, store.Store201)
	require.NoError(t, err)
	require.Len(t, memos, 1, "blank memos are not stored")
	assert.Equal(t, 1, memos[0].StaffID)
	assert.Equal(t, "carried the weekend", memos[0].Memo)
}
