package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/teppen-ops/venue-backend/internal/domain/staff"
	"github.com/teppen-ops/venue-backend/internal/pkg/database"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

func (r *staffRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, stores, is_active, created_at, updated_at
		FROM staffs
	`
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY id"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var out []staff.Staff
	for rows.Next() {
		var s staff.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Stores, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *staffRepositoryImpl) GetByID(ctx context.Context, id int) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	var s staff.Staff
	err := q.QueryRow(ctx, `
		SELECT id, name, stores, is_active, created_at, updated_at
		FROM staffs
		WHERE id = $1
	`, id).Scan(&s.ID, &s.Name, &s.Stores, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}
	return s, nil
}

func (r *staffRepositoryImpl) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	if s.Stores == nil {
		s.Stores = []string{}
	}
	err := q.QueryRow(ctx, `
		INSERT INTO staffs (id, name, stores, is_active)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (id) DO NOTHING
		RETURNING id, name, stores, is_active, created_at, updated_at
	`, s.ID, s.Name, s.Stores).Scan(&s.ID, &s.Name, &s.Stores, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return staff.Staff{}, staff.ErrStaffIDTaken
		}
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}
	return s, nil
}

func (r *staffRepositoryImpl) UpdateName(ctx context.Context, id int, name string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE staffs SET name = $2, updated_at = now() WHERE id = $1
	`, id, name)
	if err != nil {
		return fmt.Errorf("failed to update staff name: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}

func (r *staffRepositoryImpl) UpdateStores(ctx context.Context, id int, stores []string) error {
	q := GetQuerier(ctx, r.db)

	if stores == nil {
		stores = []string{}
	}
	tag, err := q.Exec(ctx, `
		UPDATE staffs SET stores = $2, updated_at = now() WHERE id = $1
	`, id, stores)
	if err != nil {
		return fmt.Errorf("failed to update staff stores: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}

func (r *staffRepositoryImpl) Deactivate(ctx context.Context, id int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE staffs SET is_active = FALSE, updated_at = now() WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}

func (r *staffRepositoryImpl) ReassignID(ctx context.Context, fromID, toID int) error {
	q := GetQuerier(ctx, r.db)

	var taken bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM staffs WHERE id = $1 AND is_active = TRUE)
	`, toID).Scan(&taken)
	if err != nil {
		return fmt.Errorf("failed to check target staff id: %w", err)
	}
	if taken {
		return staff.ErrStaffIDTaken
	}

	// An inactive row may still hold the target ID; clear it first so the
	// insert below does not conflict.
	if _, err := q.Exec(ctx, `DELETE FROM staffs WHERE id = $1 AND is_active = FALSE`, toID); err != nil {
		return fmt.Errorf("failed to clear target staff id: %w", err)
	}

	tag, err := q.Exec(ctx, `
		UPDATE staffs SET id = $2, updated_at = now() WHERE id = $1
	`, fromID, toID)
	if err != nil {
		return fmt.Errorf("failed to reassign staff id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}
