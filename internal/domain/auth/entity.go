package auth

import "time"

// Operator is a back-office account that logs into the dashboard. This is
// the login identity, distinct from floor staff who never sign in.
type Operator struct {
	ID           string
	Email        string
	Name         string
	PasswordHash *string // nil for Google-only accounts
	GoogleID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is one issued refresh token. Tokens are rotated on use and
// revoked on logout.
type RefreshToken struct {
	JTI        string
	OperatorID string
	ExpiresAt  time.Time
	RevokedAt  *time.Time
	CreatedAt  time.Time
}

func (t RefreshToken) Valid(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
