package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// GoogleLoginURL returns the consent-screen redirect plus the state to
	// pin in a cookie.
	GoogleLoginURL(ctx context.Context) (url string, state string, err error)
	GoogleCallback(ctx context.Context, code string) (TokenResponse, error)

	Me(ctx context.Context, operatorID string) (OperatorResponse, error)
}
