package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/teppen-ops/venue-backend/internal/domain/expense"
	"github.com/teppen-ops/venue-backend/internal/pkg/database"
)

type monthlyExpenseRepositoryImpl struct {
	db *database.DB
}

func NewMonthlyExpenseRepository(db *database.DB) expense.MonthlyExpenseRepository {
	return &monthlyExpenseRepositoryImpl{db: db}
}

func (r *monthlyExpenseRepositoryImpl) UpsertFixed(ctx context.Context, f expense.FixedExpense) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO monthly_fixed_expenses (year, month, store_id, rent, karaoke, wifi, oshibori, pest_control)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (year, month, store_id) DO UPDATE SET
			rent = EXCLUDED.rent,
			karaoke = EXCLUDED.karaoke,
			wifi = EXCLUDED.wifi,
			oshibori = EXCLUDED.oshibori,
			pest_control = EXCLUDED.pest_control,
			updated_at = now()
	`, f.Year, f.Month, f.StoreID, f.Rent, f.Karaoke, f.Wifi, f.Oshibori, f.PestControl)
	if err != nil {
		return fmt.Errorf("failed to upsert fixed expenses: %w", err)
	}
	return nil
}

func (r *monthlyExpenseRepositoryImpl) ListFixedByMonth(ctx context.Context, year, month int) ([]expense.FixedExpense, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, year, month, store_id, rent, karaoke, wifi, oshibori, pest_control, updated_at
		FROM monthly_fixed_expenses
		WHERE year = $1 AND month = $2
		ORDER BY store_id
	`, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed expenses: %w", err)
	}
	defer rows.Close()

	var out []expense.FixedExpense
	for rows.Next() {
		var f expense.FixedExpense
		if err := rows.Scan(&f.ID, &f.Year, &f.Month, &f.StoreID, &f.Rent, &f.Karaoke, &f.Wifi, &f.Oshibori, &f.PestControl, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fixed expenses: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *monthlyExpenseRepositoryImpl) ListFixedByYear(ctx context.Context, year int) ([]expense.FixedExpense, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, year, month, store_id, rent, karaoke, wifi, oshibori, pest_control, updated_at
		FROM monthly_fixed_expenses
		WHERE year = $1
		ORDER BY month, store_id
	`, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed expenses: %w", err)
	}
	defer rows.Close()

	var out []expense.FixedExpense
	for rows.Next() {
		var f expense.FixedExpense
		if err := rows.Scan(&f.ID, &f.Year, &f.Month, &f.StoreID, &f.Rent, &f.Karaoke, &f.Wifi, &f.Oshibori, &f.PestControl, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fixed expenses: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// ReplaceManual clears the month and reinserts the full set. Done in one
// transaction so a failed insert never leaves the month half-empty.
func (r *monthlyExpenseRepositoryImpl) ReplaceManual(ctx context.Context, year, month int, lines []expense.ManualExpense) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM monthly_manual_expenses WHERE year = $1 AND month = $2
		`, year, month); err != nil {
			return fmt.Errorf("failed to clear manual expenses: %w", err)
		}

		for _, l := range lines {
			if _, err := tx.Exec(ctx, `
				INSERT INTO monthly_manual_expenses (year, month, store_id, name, amount, note)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, year, month, l.StoreID, l.Name, l.Amount, l.Note); err != nil {
				return fmt.Errorf("failed to insert manual expense: %w", err)
			}
		}
		return nil
	})
}

func (r *monthlyExpenseRepositoryImpl) ListManualByMonth(ctx context.Context, year, month int) ([]expense.ManualExpense, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, year, month, store_id, name, amount, note, created_at
		FROM monthly_manual_expenses
		WHERE year = $1 AND month = $2
		ORDER BY store_id, created_at, id
	`, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to query manual expenses: %w", err)
	}
	defer rows.Close()

	var out []expense.ManualExpense
	for rows.Next() {
		var m expense.ManualExpense
		if err := rows.Scan(&m.ID, &m.Year, &m.Month, &m.StoreID, &m.Name, &m.Amount, &m.Note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan manual expense: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *monthlyExpenseRepositoryImpl) ListManualByYear(ctx context.Context, year int) ([]expense.ManualExpense, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, year, month, store_id, name, amount, note, created_at
		FROM monthly_manual_expenses
		WHERE year = $1
		ORDER BY month, store_id, created_at, id
	`, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query manual expenses: %w", err)
	}
	defer rows.Close()

	var out []expense.ManualExpense
	for rows.Next() {
		var m expense.ManualExpense
		if err := rows.Scan(&m.ID, &m.Year, &m.Month, &m.StoreID, &m.Name, &m.Amount, &m.Note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan manual expense: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
