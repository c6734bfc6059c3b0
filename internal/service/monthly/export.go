package monthly

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/teppen-ops/venue-backend/internal/domain/monthly"
)

const (
	summarySheet = "Summary"
	staffSheet   = "Staff"
	daySheet     = "Days"
	expenseSheet = "Expenses"
)

// ExportXLSX renders the monthly report as a workbook with one sheet per
// screen section.
func (s *MonthlyServiceImpl) ExportXLSX(ctx context.Context, year, month int, storeID string) ([]byte, string, error) {
	rep, err := s.GetReport(ctx, year, month, storeID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, "", err
	}
	for _, name := range []string{staffSheet, daySheet, expenseSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, "", err
		}
	}

	writeSummarySheet(f, rep)
	writeStaffSheet(f, rep)
	writeDaySheet(f, rep)
	writeExpenseSheet(f, rep)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("write workbook: %w", err)
	}

	name := fmt.Sprintf("monthly-report-%04d-%02d-%s.xlsx", year, month, storeID)
	return buf.Bytes(), name, nil
}

func writeSummarySheet(f *excelize.File, rep monthly.MonthlyReportResponse) {
	rows := [][]any{
		{"Period", fmt.Sprintf("%04d-%02d", rep.Year, rep.Month)},
		{"Store", rep.StoreID},
		{"Total Sales", rep.Summary.TotalSales},
		{"Credit Sales", rep.Summary.TotalCredit},
		{"Total Salary", rep.Summary.TotalSalary},
		{"Total Expense", rep.ExpenseTotal},
		{"Balance", rep.Summary.Balance},
		{"Groups", rep.Summary.TotalGroups},
		{"Customers", rep.Summary.TotalCustomers},
		{"Shisha", rep.Summary.TotalShisha},
		{"Open Days", rep.Summary.DaysCount},
	}
	writeRows(f, summarySheet, rows)
}

func writeStaffSheet(f *excelize.File, rep monthly.MonthlyReportResponse) {
	rows := [][]any{{
		"Staff ID", "Name", "Work Days", "Sales", "Credit", "Shisha",
		"Groups", "Customers", "Base Salary", "Deduction", "Paid Salary", "Fraction Cut",
	}}
	for _, a := range rep.PerStaff {
		rows = append(rows, []any{
			a.StaffID, a.StaffName, a.WorkDays, a.SalesAmount, a.CreditAmount, a.ShishaCount,
			a.Groups, a.Customers, a.BaseSalary, a.ChampagneDeduction, a.PaidSalary, a.FractionCut,
		})
	}
	writeRows(f, staffSheet, rows)
}

func writeDaySheet(f *excelize.File, rep monthly.MonthlyReportResponse) {
	rows := [][]any{{
		"Date", "Store", "Sales", "Credit", "Shisha", "Groups", "Customers",
		"Base Salary", "Deduction", "Paid Salary",
	}}
	for _, d := range rep.PerDay {
		rows = append(rows, []any{
			d.Date, d.StoreID, d.SalesAmount, d.CreditAmount, d.ShishaCount, d.Groups, d.Customers,
			d.BaseSalary, d.ChampagneDeduction, d.PaidSalary,
		})
	}
	writeRows(f, daySheet, rows)
}

func writeExpenseSheet(f *excelize.File, rep monthly.MonthlyReportResponse) {
	rows := [][]any{{"Name", "Amount", "Note"}}
	for _, l := range rep.ExpenseBreakdown {
		rows = append(rows, []any{l.Name, l.Amount, l.Note})
	}
	rows = append(rows, []any{"Total", rep.ExpenseTotal, ""})
	writeRows(f, expenseSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) {
	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				continue
			}
			f.SetCellValue(sheet, cell, v)
		}
	}
}
