package auth

import "context"

// OperatorRepository defines data access for dashboard accounts.
type OperatorRepository interface {
	GetByID(ctx context.Context, id string) (Operator, error)
	GetByEmail(ctx context.Context, email string) (Operator, error)
	Create(ctx context.Context, op Operator) (Operator, error)
	LinkGoogleID(ctx context.Context, operatorID, googleID string) error
}

// RefreshTokenRepository persists issued refresh tokens so revocation
// survives restarts.
type RefreshTokenRepository interface {
	Create(ctx context.Context, t RefreshToken) error
	GetByJTI(ctx context.Context, jti string) (RefreshToken, error)
	Revoke(ctx context.Context, jti string) error
	RevokeAllForOperator(ctx context.Context, operatorID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
