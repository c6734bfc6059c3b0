package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/teppen-ops/venue-backend/internal/domain/auth"
	"github.com/teppen-ops/venue-backend/internal/pkg/database"
)

type operatorRepositoryImpl struct {
	db *database.DB
}

func NewOperatorRepository(db *database.DB) auth.OperatorRepository {
	return &operatorRepositoryImpl{db: db}
}

func scanOperator(row pgx.Row) (auth.Operator, error) {
	var op auth.Operator
	err := row.Scan(&op.ID, &op.Email, &op.Name, &op.PasswordHash, &op.GoogleID, &op.CreatedAt, &op.UpdatedAt)
	return op, err
}

func (r *operatorRepositoryImpl) GetByID(ctx context.Context, id string) (auth.Operator, error) {
	q := GetQuerier(ctx, r.db)

	op, err := scanOperator(q.QueryRow(ctx, `
		SELECT id, email, name, password_hash, google_id, created_at, updated_at
		FROM operators WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Operator{}, auth.ErrOperatorNotFound
		}
		return auth.Operator{}, fmt.Errorf("failed to get operator: %w", err)
	}
	return op, nil
}

func (r *operatorRepositoryImpl) GetByEmail(ctx context.Context, email string) (auth.Operator, error) {
	q := GetQuerier(ctx, r.db)

	op, err := scanOperator(q.QueryRow(ctx, `
		SELECT id, email, name, password_hash, google_id, created_at, updated_at
		FROM operators WHERE lower(email) = lower($1)
	`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Operator{}, auth.ErrOperatorNotFound
		}
		return auth.Operator{}, fmt.Errorf("failed to get operator by email: %w", err)
	}
	return op, nil
}

func (r *operatorRepositoryImpl) Create(ctx context.Context, op auth.Operator) (auth.Operator, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO operators (id, email, name, password_hash, google_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, email, name, password_hash, google_id, created_at, updated_at
	`, op.ID, op.Email, op.Name, op.PasswordHash, op.GoogleID).Scan(
		&op.ID, &op.Email, &op.Name, &op.PasswordHash, &op.GoogleID, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Operator{}, auth.ErrEmailTaken
		}
		return auth.Operator{}, fmt.Errorf("failed to create operator: %w", err)
	}
	return op, nil
}

func (r *operatorRepositoryImpl) LinkGoogleID(ctx context.Context, operatorID, googleID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE operators SET google_id = $2, updated_at = now() WHERE id = $1
	`, operatorID, googleID)
	if err != nil {
		return fmt.Errorf("failed to link google id: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrOperatorNotFound
	}
	return nil
}
