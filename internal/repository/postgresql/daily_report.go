package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/teppen-ops/venue-backend/internal/domain/dailyreport"
	"github.com/teppen-ops/venue-backend/internal/pkg/database"
)

type dailyReportRepositoryImpl struct {
	db *database.DB
}

func NewDailyReportRepository(db *database.DB) dailyreport.DailyReportRepository {
	return &dailyReportRepositoryImpl{db: db}
}

const dailyReportColumns = `
	id, date::text, store_id,
	total_sales_amount, credit_amount, total_groups, total_customers, total_shisha,
	total_salary_amount, total_expense_amount, memo, opinion, created_at, updated_at
`

func scanDailyReport(row pgx.Row) (dailyreport.DailyReport, error) {
	var dr dailyreport.DailyReport
	err := row.Scan(
		&dr.ID, &dr.Date, &dr.StoreID,
		&dr.TotalSalesAmount, &dr.CreditAmount, &dr.TotalGroups, &dr.TotalCustomers, &dr.TotalShisha,
		&dr.TotalSalary, &dr.TotalExpense, &dr.Memo, &dr.Opinion, &dr.CreatedAt, &dr.UpdatedAt,
	)
	return dr, err
}

func (r *dailyReportRepositoryImpl) Upsert(ctx context.Context, dr dailyreport.DailyReport) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO daily_reports (
			date, store_id,
			total_sales_amount, credit_amount, total_groups, total_customers, total_shisha,
			total_salary_amount, total_expense_amount, memo, opinion
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (date, store_id) DO UPDATE SET
			total_sales_amount = EXCLUDED.total_sales_amount,
			credit_amount = EXCLUDED.credit_amount,
			total_groups = EXCLUDED.total_groups,
			total_customers = EXCLUDED.total_customers,
			total_shisha = EXCLUDED.total_shisha,
			total_salary_amount = EXCLUDED.total_salary_amount,
			total_expense_amount = EXCLUDED.total_expense_amount,
			memo = EXCLUDED.memo,
			opinion = EXCLUDED.opinion,
			updated_at = now()
	`,
		dr.Date, dr.StoreID,
		dr.TotalSalesAmount, dr.CreditAmount, dr.TotalGroups, dr.TotalCustomers, dr.TotalShisha,
		dr.TotalSalary, dr.TotalExpense, dr.Memo, dr.Opinion,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert daily report: %w", err)
	}
	return nil
}

func (r *dailyReportRepositoryImpl) GetByDay(ctx context.Context, storeID, date string) (*dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	dr, err := scanDailyReport(q.QueryRow(ctx, `
		SELECT `+dailyReportColumns+`
		FROM daily_reports
		WHERE store_id = $1 AND date = $2
	`, storeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily report: %w", err)
	}
	return &dr, nil
}

func (r *dailyReportRepositoryImpl) ListByRange(ctx context.Context, storeID, from, to string) ([]dailyreport.DailyReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + dailyReportColumns + `
		FROM daily_reports
		WHERE date >= $1 AND date <= $2
	`
	args := []any{from, to}
	if storeID != "" {
		query += " AND store_id = $3"
		args = append(args, storeID)
	}
	query += " ORDER BY date, store_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily reports: %w", err)
	}
	defer rows.Close()

	var out []dailyreport.DailyReport
	for rows.Next() {
		dr, err := scanDailyReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily report: %w", err)
		}
		out = append(out, dr)
	}
	return out, rows.Err()
}

// ListDirtyDays finds venue-days whose staff rows or expenses changed
// after the rollup was last written, plus days that have data but no
// rollup at all.
func (r *dailyReportRepositoryImpl) ListDirtyDays(ctx context.Context, from, to string) ([]dailyreport.DayKey, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		WITH sources AS (
			SELECT store_id, date, max(updated_at) AS changed_at
			FROM staff_daily_results
			WHERE date >= $1 AND date <= $2
			GROUP BY store_id, date
			UNION ALL
			SELECT store_id, date, max(created_at) AS changed_at
			FROM expenses
			WHERE date >= $1 AND date <= $2
			GROUP BY store_id, date
		),
		latest AS (
			SELECT store_id, date, max(changed_at) AS changed_at
			FROM sources
			GROUP BY store_id, date
		)
		SELECT l.date::text, l.store_id
		FROM latest l
		LEFT JOIN daily_reports d ON d.store_id = l.store_id AND d.date = l.date
		WHERE d.id IS NULL OR d.updated_at < l.changed_at
		ORDER BY l.date, l.store_id
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query dirty days: %w", err)
	}
	defer rows.Close()

	var out []dailyreport.DayKey
	for rows.Next() {
		var k dailyreport.DayKey
		if err := rows.Scan(&k.Date, &k.StoreID); err != nil {
			return nil, fmt.Errorf("failed to scan dirty day: %w", err)
		}
		out = append(out, k)
	}
	return out, rows.Err()
}
