package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrOperatorNotFound    = errors.New("operator not found")
	ErrEmailTaken          = errors.New("email is already registered")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrGoogleLoginDisabled = errors.New("google login is not configured")
)
