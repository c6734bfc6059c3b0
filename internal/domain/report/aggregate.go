// Package report holds the pure aggregation logic shared by the daily,
// monthly, yearly and performance services. Everything here operates on
// already-loaded rows; no I/O.
package report

import (
	"sort"
	"strings"

	"github.com/teppen-ops/venue-backend/internal/domain/dailyreport"
	"github.com/teppen-ops/venue-backend/internal/domain/expense"
	"github.com/teppen-ops/venue-backend/internal/domain/staffresult"
)

// AggregateByStaff folds staff day rows into per-staff totals, ordered by
// staff ID ascending. WorkDays counts distinct dates per staff.
func AggregateByStaff(rows []staffresult.StaffResult) []StaffAggregate {
	byStaff := make(map[int]*StaffAggregate)
	daysSeen := make(map[int]map[string]struct{})

	for _, r := range rows {
		agg, ok := byStaff[r.StaffID]
		if !ok {
			agg = &StaffAggregate{StaffID: r.StaffID}
			byStaff[r.StaffID] = agg
			daysSeen[r.StaffID] = make(map[string]struct{})
		}
		if r.StaffName != nil && agg.StaffName == "" {
			agg.StaffName = *r.StaffName
		}
		agg.SalesAmount += r.SalesAmount
		agg.CreditAmount += r.CreditAmount
		agg.ShishaCount += r.ShishaCount
		agg.Groups += r.Groups
		agg.Customers += r.Customers
		agg.BaseSalary += r.BaseSalary
		agg.ChampagneDeduction += r.ChampagneDeduction
		agg.PaidSalary += r.PaidSalary
		agg.FractionCut += r.FractionCut
		daysSeen[r.StaffID][r.Date] = struct{}{}
	}

	out := make([]StaffAggregate, 0, len(byStaff))
	for id, agg := range byStaff {
		agg.WorkDays = len(daysSeen[id])
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StaffID < out[j].StaffID })
	return out
}

// AggregateByDay folds staff day rows into venue-day totals, ordered by
// date then store. The paid total is recomputed as base less deduction
// rather than summing the per-staff rounded payouts, so the figure lines
// up with what the venue actually owes for the day.
func AggregateByDay(rows []staffresult.StaffResult) []DayAggregate {
	type key struct{ date, store string }
	byDay := make(map[key]*DayAggregate)

	for _, r := range rows {
		k := key{r.Date, r.StoreID}
		agg, ok := byDay[k]
		if !ok {
			agg = &DayAggregate{Date: r.Date, StoreID: r.StoreID}
			byDay[k] = agg
		}
		agg.SalesAmount += r.SalesAmount
		agg.CreditAmount += r.CreditAmount
		agg.ShishaCount += r.ShishaCount
		agg.Groups += r.Groups
		agg.Customers += r.Customers
		agg.BaseSalary += r.BaseSalary
		agg.ChampagneDeduction += r.ChampagneDeduction
		agg.PaidSalary += r.BaseSalary - r.ChampagneDeduction
	}

	out := make([]DayAggregate, 0, len(byDay))
	for _, agg := range byDay {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StoreID < out[j].StoreID
	})
	return out
}

// WorkDays counts distinct dates across the given rows.
func WorkDays(rows []staffresult.StaffResult) int {
	days := make(map[string]struct{})
	for _, r := range rows {
		days[r.Date] = struct{}{}
	}
	return len(days)
}

// SumStaffResults folds staff day rows into a period summary. Staff rows
// are the authoritative source for sales and salary figures; expense and
// day count are not derivable from them, so callers fill those from the
// persisted rollups.
func SumStaffResults(rows []staffresult.StaffResult) Summary {
	var s Summary
	for _, r := range rows {
		s.TotalSales += r.SalesAmount
		s.TotalCredit += r.CreditAmount
		s.TotalSalary += r.BaseSalary
		s.TotalGroups += r.Groups
		s.TotalCustomers += r.Customers
		s.TotalShisha += r.ShishaCount
	}
	s.Balance = s.TotalSales - (s.TotalExpense + s.TotalSalary)
	return s
}

// SumDailyReports folds persisted rollups into a period summary.
// DaysCount is the number of distinct dates with at least one rollup, not
// the number of rows, since a date can have a row per venue.
func SumDailyReports(rows []dailyreport.DailyReport) Summary {
	var s Summary
	days := make(map[string]struct{})
	for _, r := range rows {
		s.TotalSales += r.TotalSalesAmount
		s.TotalCredit += r.CreditAmount
		s.TotalSalary += r.TotalSalary
		s.TotalExpense += r.TotalExpense
		s.TotalGroups += r.TotalGroups
		s.TotalCustomers += r.TotalCustomers
		s.TotalShisha += r.TotalShisha
		days[r.Date] = struct{}{}
	}
	s.DaysCount = len(days)
	s.Balance = s.TotalSales - (s.TotalExpense + s.TotalSalary)
	return s
}

// GroupExpensesByName merges flat expense lines sharing a name, summing
// amounts and joining distinct notes with " / ". Output is ordered by
// descending amount, ties by name.
func GroupExpensesByName(lines []ExpenseLine) []ExpenseLine {
	type entry struct {
		amount int
		notes  []string
		seen   map[string]struct{}
	}
	byName := make(map[string]*entry)
	for _, l := range lines {
		e, ok := byName[l.Name]
		if !ok {
			e = &entry{seen: make(map[string]struct{})}
			byName[l.Name] = e
		}
		e.amount += l.Amount
		note := strings.TrimSpace(l.Note)
		if note != "" {
			if _, dup := e.seen[note]; !dup {
				e.seen[note] = struct{}{}
				e.notes = append(e.notes, note)
			}
		}
	}

	out := make([]ExpenseLine, 0, len(byName))
	for name, e := range byName {
		out = append(out, ExpenseLine{
			Name:   name,
			Amount: e.amount,
			Note:   strings.Join(e.notes, " / "),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// FlattenExpenses turns daily, fixed and manual expenses for a period into
// one list of lines. Fixed costs appear as a single line per venue.
func FlattenExpenses(daily []expense.Expense, fixed []expense.FixedExpense, manual []expense.ManualExpense) []ExpenseLine {
	out := make([]ExpenseLine, 0, len(daily)+len(fixed)+len(manual))
	for _, e := range daily {
		out = append(out, ExpenseLine{Name: e.Name, Amount: e.Amount, Note: e.Note})
	}
	for _, f := range fixed {
		if f.Total() == 0 {
			continue
		}
		out = append(out, ExpenseLine{Name: "固定費", Amount: f.Total()})
	}
	for _, m := range manual {
		line := ExpenseLine{Name: m.Name, Amount: m.Amount}
		if m.Note != nil {
			line.Note = *m.Note
		}
		out = append(out, line)
	}
	return out
}
