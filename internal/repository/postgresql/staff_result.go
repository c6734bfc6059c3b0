package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/teppen-ops/venue-backend/internal/domain/staffresult"
	"github.com/teppen-ops/venue-backend/internal/pkg/database"
)

type staffResultRepositoryImpl struct {
	db *database.DB
}

func NewStaffResultRepository(db *database.DB) staffresult.StaffResultRepository {
	return &staffResultRepositoryImpl{db: db}
}

const staffResultColumns = `
	r.id, r.staff_id, r.store_id, r.date::text,
	r.sales_amount, r.credit_amount, r.shisha_count, r.groups, r.customers,
	r.base_salary, r.champagne_deduction, r.paid_salary, r.fraction_cut,
	r.sales_memo, r.salary_memo, r.created_at, r.updated_at, s.name
`

func scanStaffResult(row pgx.Row) (staffresult.StaffResult, error) {
	var sr staffresult.StaffResult
	err := row.Scan(
		&sr.ID, &sr.StaffID, &sr.StoreID, &sr.Date,
		&sr.SalesAmount, &sr.CreditAmount, &sr.ShishaCount, &sr.Groups, &sr.Customers,
		&sr.BaseSalary, &sr.ChampagneDeduction, &sr.PaidSalary, &sr.FractionCut,
		&sr.SalesMemo, &sr.SalaryMemo, &sr.CreatedAt, &sr.UpdatedAt, &sr.StaffName,
	)
	return sr, err
}

func (r *staffResultRepositoryImpl) Upsert(ctx context.Context, sr staffresult.StaffResult) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO staff_daily_results (
			staff_id, store_id, date,
			sales_amount, credit_amount, shisha_count, groups, customers,
			base_salary, champagne_deduction, paid_salary, fraction_cut,
			sales_memo, salary_memo
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (staff_id, store_id, date) DO UPDATE SET
			sales_amount = EXCLUDED.sales_amount,
			credit_amount = EXCLUDED.credit_amount,
			shisha_count = EXCLUDED.shisha_count,
			groups = EXCLUDED.groups,
			customers = EXCLUDED.customers,
			base_salary = EXCLUDED.base_salary,
			champagne_deduction = EXCLUDED.champagne_deduction,
			paid_salary = EXCLUDED.paid_salary,
			fraction_cut = EXCLUDED.fraction_cut,
			sales_memo = EXCLUDED.sales_memo,
			salary_memo = EXCLUDED.salary_memo,
			updated_at = now()
	`,
		sr.StaffID, sr.StoreID, sr.Date,
		sr.SalesAmount, sr.CreditAmount, sr.ShishaCount, sr.Groups, sr.Customers,
		sr.BaseSalary, sr.ChampagneDeduction, sr.PaidSalary, sr.FractionCut,
		sr.SalesMemo, sr.SalaryMemo,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert staff daily result: %w", err)
	}
	return nil
}

func (r *staffResultRepositoryImpl) GetByStaffDay(ctx context.Context, staffID int, storeID, date string) (*staffresult.StaffResult, error) {
	q := GetQuerier(ctx, r.db)

	sr, err := scanStaffResult(q.QueryRow(ctx, `
		SELECT `+staffResultColumns+`
		FROM staff_daily_results r
		LEFT JOIN staffs s ON s.id = r.staff_id
		WHERE r.staff_id = $1 AND r.store_id = $2 AND r.date = $3
	`, staffID, storeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get staff daily result: %w", err)
	}
	return &sr, nil
}

func (r *staffResultRepositoryImpl) ListByStoreDay(ctx context.Context, storeID, date string) ([]staffresult.StaffResult, error) {
	return r.list(ctx, `
		SELECT `+staffResultColumns+`
		FROM staff_daily_results r
		LEFT JOIN staffs s ON s.id = r.staff_id
		WHERE r.store_id = $1 AND r.date = $2
		ORDER BY r.staff_id
	`, storeID, date)
}

func (r *staffResultRepositoryImpl) ListByStaffRange(ctx context.Context, staffID int, from, to string) ([]staffresult.StaffResult, error) {
	return r.list(ctx, `
		SELECT `+staffResultColumns+`
		FROM staff_daily_results r
		LEFT JOIN staffs s ON s.id = r.staff_id
		WHERE r.staff_id = $1 AND r.date >= $2 AND r.date <= $3
		ORDER BY r.date, r.store_id
	`, staffID, from, to)
}

func (r *staffResultRepositoryImpl) ListByRange(ctx context.Context, storeID, from, to string) ([]staffresult.StaffResult, error) {
	if storeID == "" {
		return r.list(ctx, `
			SELECT `+staffResultColumns+`
			FROM staff_daily_results r
			LEFT JOIN staffs s ON s.id = r.staff_id
			WHERE r.date >= $1 AND r.date <= $2
			ORDER BY r.date, r.store_id, r.staff_id
		`, from, to)
	}
	return r.list(ctx, `
		SELECT `+staffResultColumns+`
		FROM staff_daily_results r
		LEFT JOIN staffs s ON s.id = r.staff_id
		WHERE r.store_id = $1 AND r.date >= $2 AND r.date <= $3
		ORDER BY r.date, r.staff_id
	`, storeID, from, to)
}

func (r *staffResultRepositoryImpl) DeleteByStaffDay(ctx context.Context, staffID int, storeID, date string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM staff_daily_results
		WHERE staff_id = $1 AND store_id = $2 AND date = $3
	`, staffID, storeID, date)
	if err != nil {
		return fmt.Errorf("failed to delete staff daily result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staffresult.ErrResultNotFound
	}
	return nil
}

func (r *staffResultRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]staffresult.StaffResult, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff daily results: %w", err)
	}
	defer rows.Close()

	var out []staffresult.StaffResult
	for rows.Next() {
		sr, err := scanStaffResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff daily result: %w", err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}
