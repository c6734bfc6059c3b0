package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/teppen-ops/venue-backend/internal/domain/auth"
	"github.com/teppen-ops/venue-backend/internal/pkg/jwt"
	"github.com/teppen-ops/venue-backend/internal/pkg/oauth"
)

type AuthServiceImpl struct {
	operatorRepo auth.OperatorRepository
	tokenRepo    auth.RefreshTokenRepository
	jwtService   jwt.Service
	google       oauth.GoogleService // nil when Google login is not configured
}

func NewAuthService(
	operatorRepo auth.OperatorRepository,
	tokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
	google oauth.GoogleService,
) auth.AuthService {
	return &AuthServiceImpl{
		operatorRepo: operatorRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
		google:       google,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	op, err := s.operatorRepo.Create(ctx, auth.Operator{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: &hashStr,
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	slog.Info("Operator registered", "operator_id", op.ID)
	return s.issueTokens(ctx, op)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	op, err := s.operatorRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrOperatorNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}
	if op.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*op.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, op)
}

// RefreshToken rotates the refresh token: the presented one is revoked
// and a fresh pair is issued.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	operatorID, jti, err := s.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	stored, err := s.tokenRepo.GetByJTI(ctx, jti)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if !stored.Valid(time.Now()) || stored.OperatorID != operatorID {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	if err := s.tokenRepo.Revoke(ctx, jti); err != nil {
		return auth.TokenResponse{}, err
	}

	op, err := s.operatorRepo.GetByID(ctx, operatorID)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	return s.issueTokens(ctx, op)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	_, jti, err := s.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		// Nothing to revoke; treat as already logged out.
		return nil
	}
	s.jwtService.RevokeToken(refreshToken)
	return s.tokenRepo.Revoke(ctx, jti)
}

func (s *AuthServiceImpl) GoogleLoginURL(ctx context.Context) (string, string, error) {
	if s.google == nil {
		return "", "", auth.ErrGoogleLoginDisabled
	}
	state, err := s.google.GenerateState()
	if err != nil {
		return "", "", err
	}
	return s.google.RedirectURL(state), state, nil
}

func (s *AuthServiceImpl) GoogleCallback(ctx context.Context, code string) (auth.TokenResponse, error) {
	if s.google == nil {
		return auth.TokenResponse{}, auth.ErrGoogleLoginDisabled
	}

	token, err := s.google.Exchange(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	user, err := s.google.FetchUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	op, err := s.operatorRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		// Only known operators may sign in; Google is a login method, not
		// an open registration path.
		if errors.Is(err, auth.ErrOperatorNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if op.GoogleID == nil {
		if err := s.operatorRepo.LinkGoogleID(ctx, op.ID, user.Email); err != nil {
			slog.Warn("Failed to link google account", "operator_id", op.ID, "error", err)
		}
	}

	return s.issueTokens(ctx, op)
}

func (s *AuthServiceImpl) Me(ctx context.Context, operatorID string) (auth.OperatorResponse, error) {
	op, err := s.operatorRepo.GetByID(ctx, operatorID)
	if err != nil {
		return auth.OperatorResponse{}, err
	}
	return auth.OperatorResponse{ID: op.ID, Email: op.Email, Name: op.Name}, nil
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, op auth.Operator) (auth.TokenResponse, error) {
	access, expiresAt, err := s.jwtService.GenerateAccessToken(op.ID, op.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, jti, refreshExp, err := s.jwtService.GenerateRefreshToken(op.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokenRepo.Create(ctx, auth.RefreshToken{
		JTI:        jti,
		OperatorID: op.ID,
		ExpiresAt:  time.Unix(refreshExp, 0),
	}); err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:      access,
		RefreshToken:     refresh,
		ExpiresAt:        expiresAt,
		RefreshExpiresAt: refreshExp,
		Operator:         auth.OperatorResponse{ID: op.ID, Email: op.Email, Name: op.Name},
	}, nil
}
