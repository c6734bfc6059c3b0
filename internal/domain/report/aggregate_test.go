package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teppen-ops/venue-backend/internal/domain/dailyreport"
	"github.com/teppen-ops/venue-backend/internal/domain/staffresult"
)

func strPtr(s string) *string { return &s }

func sampleRows() []staffresult.StaffResult {
	return []staffresult.StaffResult{
		{StaffID: 3, StoreID: "TEPPEN", Date: "2026-08-02", SalesAmount: 30000, BaseSalary: 13500, ChampagneDeduction: 500, PaidSalary: 13000, Groups: 2, Customers: 5, StaffName: strPtr("Mika")},
		{StaffID: 1, StoreID: "TEPPEN", Date: "2026-08-01", SalesAmount: 100000, BaseSalary: 45000, ChampagneDeduction: 2300, PaidSalary: 42000, Groups: 4, Customers: 10, StaffName: strPtr("Aoi")},
		{StaffID: 1, StoreID: "201", Date: "2026-08-02", SalesAmount: 50000, CreditAmount: 20000, ShishaCount: 3, BaseSalary: 22500, PaidSalary: 22000, FractionCut: 500, Groups: 3, Customers: 6, StaffName: strPtr("Aoi")},
	}
}

func TestAggregateByStaff(t *testing.T) {
	out := AggregateByStaff(sampleRows())
	require.Len(t, out, 2)

	// Sorted ascending by staff ID.
	assert.Equal(t, 1, out[0].StaffID)
	assert.Equal(t, 3, out[1].StaffID)

	aoi := out[0]
	assert.Equal(t, "Aoi", aoi.StaffName)
	assert.Equal(t, 150000, aoi.SalesAmount)
	assert.Equal(t, 20000, aoi.CreditAmount)
	assert.Equal(t, 67500, aoi.BaseSalary)
	assert.Equal(t, 2300, aoi.ChampagneDeduction)
	assert.Equal(t, 64000, aoi.PaidSalary)
	assert.Equal(t, 500, aoi.FractionCut)
	assert.Equal(t, 2, aoi.WorkDays)

	assert.Equal(t, 1, out[1].WorkDays)
}

func TestAggregateByStaffOrderIndependent(t *testing.T) {
	rows := sampleRows()
	reversed := make([]staffresult.StaffResult, len(rows))
	for i, r := range rows {
		reversed[len(rows)-1-i] = r
	}
	assert.Equal(t, AggregateByStaff(rows), AggregateByStaff(reversed))
}

func TestAggregateByDay(t *testing.T) {
	out := AggregateByDay(sampleRows())
	require.Len(t, out, 3)

	// Ordered by date then store.
	assert.Equal(t, "2026-08-01", out[0].Date)
	assert.Equal(t, "TEPPEN", out[0].StoreID)
	assert.Equal(t, "2026-08-02", out[1].Date)
	assert.Equal(t, "201", out[1].StoreID)
	assert.Equal(t, "2026-08-02", out[2].Date)
	assert.Equal(t, "TEPPEN", out[2].StoreID)

	// Paid is recomputed as base minus deduction, not the rounded payout.
	assert.Equal(t, 42700, out[0].PaidSalary)
	assert.Equal(t, 42000, sampleRows()[1].PaidSalary)
}

func TestWorkDays(t *testing.T) {
	assert.Equal(t, 2, WorkDays(sampleRows()))
	assert.Equal(t, 0, WorkDays(nil))
}

func TestSumDailyReports(t *testing.T) {
	rows := []dailyreport.DailyReport{
		{Date: "2026-08-01", StoreID: "TEPPEN", TotalSalesAmount: 100000, TotalSalary: 45000, TotalExpense: 12000, TotalGroups: 4, TotalCustomers: 10},
		{Date: "2026-08-01", StoreID: "201", TotalSalesAmount: 50000, TotalSalary: 22500, TotalExpense: 3000, TotalShisha: 3},
		{Date: "2026-08-02", StoreID: "TEPPEN", TotalSalesAmount: 30000, TotalSalary: 13500, TotalExpense: 0},
	}
	s := SumDailyReports(rows)
	assert.Equal(t, 180000, s.TotalSales)
	assert.Equal(t, 81000, s.TotalSalary)
	assert.Equal(t, 15000, s.TotalExpense)
	assert.Equal(t, 180000-(15000+81000), s.Balance)
	// Two venues share 08-01, so three rows span two days.
	assert.Equal(t, 2, s.DaysCount)
}

func TestGroupExpensesByName(t *testing.T) {
	lines := []ExpenseLine{
		{Name: "ice", Amount: 1200, Note: "am"},
		{Name: "flowers", Amount: 5000},
		{Name: "ice", Amount: 800, Note: "pm"},
		{Name: "ice", Amount: 500, Note: "am"}, // duplicate note collapses
	}
	out := GroupExpensesByName(lines)
	require.Len(t, out, 2)

	assert.Equal(t, "flowers", out[0].Name)
	assert.Equal(t, "ice", out[1].Name)
	assert.Equal(t, 2500, out[1].Amount)
	assert.Equal(t, "am / pm", out[1].Note)
}

func TestPreviewSummary(t *testing.T) {
	persisted := []staffresult.StaffResult{
		{StaffID: 1, SalesAmount: 100000, BaseSalary: 45000, Groups: 4, Customers: 10},
	}

	t.Run("pending staff not yet saved is added", func(t *testing.T) {
		pending := &PendingEntry{StaffID: 2, SalesAmount: 40000, BaseSalary: 18000, Groups: 2, Customers: 4}
		s := PreviewSummary("2026-08-01", persisted, pending, 5000)
		assert.Equal(t, 140000, s.TotalSales)
		assert.Equal(t, 63000, s.TotalSalary)
		assert.Equal(t, 6, s.TotalGroups)
		assert.Equal(t, 140000-(5000+63000), s.Balance)
	})

	t.Run("persisted row wins over pending entry", func(t *testing.T) {
		pending := &PendingEntry{StaffID: 1, SalesAmount: 999999, BaseSalary: 999999}
		s := PreviewSummary("2026-08-01", persisted, pending, 0)
		assert.Equal(t, 100000, s.TotalSales)
		assert.Equal(t, 45000, s.TotalSalary)
	})

	t.Run("no pending entry", func(t *testing.T) {
		s := PreviewSummary("2026-08-01", persisted, nil, 2000)
		assert.Equal(t, 100000, s.TotalSales)
		assert.Equal(t, 100000-(2000+45000), s.Balance)
	})
}
