package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	"github.com/ReemOthm/home-decor-backend/internal/hash"
	"github.com/ReemOthm/home-decor-backend/internal/logging"
	"github.com/ReemOthm/home-decor-backend/internal/models"
	"github.com/ReemOthm/home-decor-backend/internal/repo"
	"github.com/ReemOthm/home-decor-backend/internal/tokens"
)

type AuthService struct {
	Repo   *repo.Repo
	Tokens *tokens.Service
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	TokenPair
	User *models.User
}

// Login verifies the password and issues a fresh token pair. An unknown
// email and a wrong password fail identically so the response does not
// reveal whether the account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			l.Warn("login failed", "reason", "unknown email")
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login failed", "reason", "password mismatch", "user_id", user.ID)
		return nil, apperr.ErrInvalidCredentials
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(tokens.RefreshTokenTTL)
	if err := s.Repo.SetRefreshToken(ctx, user.ID, &pair.RefreshToken, &expiresAt); err != nil {
		return nil, err
	}
	user.RefreshToken = &pair.RefreshToken
	user.RefreshTokenExpiresAt = &expiresAt

	l.Info("login", "user_id", user.ID, "admin", user.IsAdmin)
	return &LoginResult{TokenPair: pair, User: user}, nil
}

// Refresh rotates the token pair. The presented access token may be expired
// but must still verify cryptographically; the presented refresh token must
// match the stored one exactly and the stored expiry must be in the future.
// The stored expiry is not extended by rotation: seven days after login the
// user authenticates again regardless of activity.
func (s *AuthService) Refresh(ctx context.Context, accessToken, refreshToken string) (*TokenPair, error) {
	l := logging.FromContext(ctx).With("svc", "auth.refresh")

	claims, err := s.Tokens.ParseExpiredAccessToken(accessToken)
	if err != nil {
		return nil, err
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, err
	}

	user, err := s.Repo.UserByID(ctx, userID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, apperr.ErrInvalidToken
		}
		return nil, err
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		l.Warn("refresh rejected", "reason", "token mismatch", "user_id", user.ID)
		return nil, apperr.ErrInvalidToken
	}
	if user.RefreshTokenExpiresAt == nil || !user.RefreshTokenExpiresAt.After(time.Now()) {
		l.Warn("refresh rejected", "reason", "refresh token expired", "user_id", user.ID)
		return nil, apperr.ErrInvalidToken
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.SetRefreshToken(ctx, user.ID, &pair.RefreshToken, nil); err != nil {
		return nil, err
	}

	l.Info("refresh", "user_id", user.ID)
	return &pair, nil
}

// Revoke clears the stored refresh token. Revoking an already-revoked
// session is a no-op, not an error.
func (s *AuthService) Revoke(ctx context.Context, userID uuid.UUID) error {
	if err := s.Repo.SetRefreshToken(ctx, userID, nil, nil); err != nil {
		return err
	}
	logging.FromContext(ctx).Info("refresh token revoked", "user_id", userID)
	return nil
}

func (s *AuthService) issuePair(user *models.User) (TokenPair, error) {
	access, err := s.Tokens.GenerateAccessToken(user.ID, tokens.RoleOf(user.IsAdmin), user.IsBanned)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.Tokens.GenerateRefreshToken()
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
