package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/teppen-ops/venue-backend/internal/domain/memo"
	"github.com/teppen-ops/venue-backend/internal/pkg/database"
)

type memoRepositoryImpl struct {
	db *database.DB
}

func NewMemoRepository(db *database.DB) memo.MemoRepository {
	return &memoRepositoryImpl{db: db}
}

func (r *memoRepositoryImpl) ReplaceMonthly(ctx context.Context, year, month int, storeID string, memos []memo.StaffMemo) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM monthly_staff_memos WHERE year = $1 AND month = $2 AND store_id = $3
		`, year, month, storeID); err != nil {
			return fmt.Errorf("failed to clear monthly memos: %w", err)
		}

		for _, m := range memos {
			if m.Memo == "" {
				continue
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO monthly_staff_memos (year, month, store_id, staff_id, memo)
				VALUES ($1, $2, $3, $4, $5)
			`, year, month, storeID, m.StaffID, m.Memo); err != nil {
				return fmt.Errorf("failed to insert monthly memo: %w", err)
			}
		}
		return nil
	})
}

func (r *memoRepositoryImpl) ListMonthly(ctx context.Context, year, month int, storeID string) ([]memo.StaffMemo, error) {
	return r.list(ctx, `
		SELECT id, year, month, store_id, staff_id, memo
		FROM monthly_staff_memos
		WHERE year = $1 AND month = $2 AND store_id = $3
		ORDER BY staff_id
	`, year, month, storeID)
}

func (r *memoRepositoryImpl) ReplaceYearly(ctx context.Context, year int, storeID string, memos []memo.StaffMemo) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM yearly_staff_memos WHERE year = $1 AND store_id = $2
		`, year, storeID); err != nil {
			return fmt.Errorf("failed to clear yearly memos: %w", err)
		}

		for _, m := range memos {
			if m.Memo == "" {
				continue
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO yearly_staff_memos (year, store_id, staff_id, memo)
				VALUES ($1, $2, $3, $4)
			`, year, storeID, m.StaffID, m.Memo); err != nil {
				return fmt.Errorf("failed to insert yearly memo: %w", err)
			}
		}
		return nil
	})
}

func (r *memoRepositoryImpl) ListYearly(ctx context.Context, year int, storeID string) ([]memo.StaffMemo, error) {
	return r.list(ctx, `
		SELECT id, year, 0 AS month, store_id, staff_id, memo
		FROM yearly_staff_memos
		WHERE year = $1 AND store_id = $2
		ORDER BY staff_id
	`, year, storeID)
}

func (r *memoRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]memo.StaffMemo, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff memos: %w", err)
	}
	defer rows.Close()

	var out []memo.StaffMemo
	for rows.Next() {
		var m memo.StaffMemo
		if err := rows.Scan(&m.ID, &m.Year, &m.Month, &m.StoreID, &m.StaffID, &m.Memo); err != nil {
			return nil, fmt.Errorf("failed to scan staff memo: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
