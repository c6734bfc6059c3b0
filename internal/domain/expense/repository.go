package expense

import "context"

// ExpenseRepository defines data access for daily one-off expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, e Expense) (Expense, error)

	// Update rewrites name, amount and note of an existing row by ID.
	Update(ctx context.Context, e Expense) error

	// ListByStoreDay returns expenses for one venue and day in entry order.
	ListByStoreDay(ctx context.Context, storeID, date string) ([]Expense, error)

	// ListByRange returns expenses within an inclusive date range ordered by
	// date then store. Empty storeID means all venues.
	ListByRange(ctx context.Context, storeID, from, to string) ([]Expense, error)

	Delete(ctx context.Context, id int64) error

	// SuggestNames returns distinct names from the most recent entries,
	// newest first, for the entry form's autocomplete.
	SuggestNames(ctx context.Context, limit int) ([]string, error)
}

// MonthlyExpenseRepository defines data access for the monthly fixed and
// manual expense tables.
type MonthlyExpenseRepository interface {
	// UpsertFixed writes one venue's fixed costs, keyed on
	// (year, month, store_id).
	UpsertFixed(ctx context.Context, f FixedExpense) error

	ListFixedByMonth(ctx context.Context, year, month int) ([]FixedExpense, error)

	ListFixedByYear(ctx context.Context, year int) ([]FixedExpense, error)

	// ReplaceManual deletes every manual line for the month across all
	// venues and inserts the given set in one transaction.
	ReplaceManual(ctx context.Context, year, month int, lines []ManualExpense) error

	ListManualByMonth(ctx context.Context, year, month int) ([]ManualExpense, error)

	ListManualByYear(ctx context.Context, year int) ([]ManualExpense, error)
}
