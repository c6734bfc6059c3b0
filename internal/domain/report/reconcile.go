package report

import "github.com/teppen-ops/venue-backend/internal/domain/staffresult"

// PreviewSummary builds the daily summary shown while the operator is
// still typing. Persisted staff rows are authoritative: if a row for the
// pending staff member already exists, the persisted figures stand and
// the pending entry is ignored; otherwise the pending figures are added
// on top. Expenses are passed in as a total because the form tracks saved
// and unsaved lines separately.
func PreviewSummary(date string, persisted []staffresult.StaffResult, pending *PendingEntry, totalExpense int) Summary {
	var s Summary
	for _, r := range persisted {
		s.TotalSales += r.SalesAmount
		s.TotalCredit += r.CreditAmount
		s.TotalSalary += r.BaseSalary
		s.TotalGroups += r.Groups
		s.TotalCustomers += r.Customers
		s.TotalShisha += r.ShishaCount
	}

	if pending != nil && !hasPersisted(persisted, pending.StaffID) {
		s.TotalSales += pending.SalesAmount
		s.TotalCredit += pending.CreditAmount
		s.TotalSalary += pending.BaseSalary
		s.TotalGroups += pending.Groups
		s.TotalCustomers += pending.Customers
	}

	s.TotalExpense = totalExpense
	s.Balance = s.TotalSales - (s.TotalExpense + s.TotalSalary)
	s.DaysCount = 1
	return s
}

func hasPersisted(rows []staffresult.StaffResult, staffID int) bool {
	for _, r := range rows {
		if r.StaffID == staffID {
			return true
		}
	}
	return false
}
