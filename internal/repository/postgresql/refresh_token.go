package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/teppen-ops/venue-backend/internal/domain/auth"
	"github.com/teppen-ops/venue-backend/internal/pkg/database"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

func (r *refreshTokenRepositoryImpl) Create(ctx context.Context, t auth.RefreshToken) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO refresh_tokens (jti, operator_id, expires_at)
		VALUES ($1, $2, $3)
	`, t.JTI, t.OperatorID, t.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to create refresh token: %w", err)
	}
	return nil
}

func (r *refreshTokenRepositoryImpl) GetByJTI(ctx context.Context, jti string) (auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	var t auth.RefreshToken
	err := q.QueryRow(ctx, `
		SELECT jti, operator_id, expires_at, revoked_at, created_at
		FROM refresh_tokens WHERE jti = $1
	`, jti).Scan(&t.JTI, &t.OperatorID, &t.ExpiresAt, &t.RevokedAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.RefreshToken{}, auth.ErrInvalidToken
		}
		return auth.RefreshToken{}, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return t, nil
}

func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, jti string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE refresh_tokens SET revoked_at = now() WHERE jti = $1 AND revoked_at IS NULL
	`, jti)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (r *refreshTokenRepositoryImpl) RevokeAllForOperator(ctx context.Context, operatorID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE refresh_tokens SET revoked_at = now() WHERE operator_id = $1 AND revoked_at IS NULL
	`, operatorID)
	if err != nil {
		return fmt.Errorf("failed to revoke operator tokens: %w", err)
	}
	return nil
}

func (r *refreshTokenRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < now()`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
