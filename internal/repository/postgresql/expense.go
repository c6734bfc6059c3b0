package postgresql

import (
	"context"
	"fmt"

	"github.com/teppen-ops/venue-backend/internal/domain/expense"
	"github.com/teppen-ops/venue-backend/internal/pkg/database"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepositoryImpl{db: db}
}

func (r *expenseRepositoryImpl) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO expenses (store_id, date, name, amount, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, e.StoreID, e.Date, e.Name, e.Amount, e.Note).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}
	return e, nil
}

func (r *expenseRepositoryImpl) Update(ctx context.Context, e expense.Expense) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE expenses SET name = $2, amount = $3, note = $4 WHERE id = $1
	`, e.ID, e.Name, e.Amount, e.Note)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}
	return nil
}

func (r *expenseRepositoryImpl) ListByStoreDay(ctx context.Context, storeID, date string) ([]expense.Expense, error) {
	return r.list(ctx, `
		SELECT id, store_id, date::text, name, amount, note, created_at
		FROM expenses
		WHERE store_id = $1 AND date = $2
		ORDER BY created_at, id
	`, storeID, date)
}

func (r *expenseRepositoryImpl) ListByRange(ctx context.Context, storeID, from, to string) ([]expense.Expense, error) {
	if storeID == "" {
		return r.list(ctx, `
			SELECT id, store_id, date::text, name, amount, note, created_at
			FROM expenses
			WHERE date >= $1 AND date <= $2
			ORDER BY date, store_id, id
		`, from, to)
	}
	return r.list(ctx, `
		SELECT id, store_id, date::text, name, amount, note, created_at
		FROM expenses
		WHERE store_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, id
	`, storeID, from, to)
}

func (r *expenseRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}
	return nil
}

// SuggestNames pulls distinct names from the most recent entries. The
// inner limit bounds the scan so suggestions track what staff are
// actually typing lately.
func (r *expenseRepositoryImpl) SuggestNames(ctx context.Context, limit int) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT DISTINCT ON (name) name
		FROM (
			SELECT name, created_at FROM expenses
			ORDER BY created_at DESC
			LIMIT $1
		) recent
		ORDER BY name, created_at DESC
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense suggestions: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan expense name: %w", err)
		}
		if name != "" {
			out = append(out, name)
		}
	}
	return out, rows.Err()
}

func (r *expenseRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var out []expense.Expense
	for rows.Next() {
		var e expense.Expense
		if err := rows.Scan(&e.ID, &e.StoreID, &e.Date, &e.Name, &e.Amount, &e.Note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
