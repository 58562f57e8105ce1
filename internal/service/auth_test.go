package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
	"github.com/ReemOthm/home-decor-backend/internal/models"
	"github.com/ReemOthm/home-decor-backend/internal/repo"
	"github.com/ReemOthm/home-decor-backend/internal/tokens"
)

func newAuthEnv(t *testing.T) (*AuthService, *repo.Repo, *models.User) {
	t.Helper()

	r := repo.New(newTestDB(t))
	svc := &AuthService{Repo: r, Tokens: newTestTokens(t)}
	user := seedUser(t, r, "login@example.com", false)
	return svc, r, user
}

func TestLogin_IssuesPairAndPersistsRefreshToken(t *testing.T) {
	t.Parallel()

	svc, r, user := newAuthEnv(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, user.Email, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	require.NotEmpty(t, res.RefreshToken)

	claims, err := svc.Tokens.ParseAccessToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, tokens.RoleUser, claims.Role)
	assert.False(t, claims.Banned)

	stored := reloadUser(t, r, user)
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, res.RefreshToken, *stored.RefreshToken)
	require.NotNil(t, stored.RefreshTokenExpiresAt)
	assert.WithinDuration(t, time.Now().Add(tokens.RefreshTokenTTL), *stored.RefreshTokenExpiresAt, 5*time.Second)
}

func TestLogin_AdminRoleInClaims(t *testing.T) {
	t.Parallel()

	r := repo.New(newTestDB(t))
	svc := &AuthService{Repo: r, Tokens: newTestTokens(t)}
	admin := seedUser(t, r, "admin@example.com", true)

	res, err := svc.Login(context.Background(), admin.Email, testPassword)
	require.NoError(t, err)

	claims, err := svc.Tokens.ParseAccessToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, tokens.RoleAdmin, claims.Role)
}

// An unknown email and a wrong password must be indistinguishable to the
// caller.
func TestLogin_UniformFailure(t *testing.T) {
	t.Parallel()

	svc, _, user := newAuthEnv(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", testPassword},
		{"wrong password", user.Email, "not the password"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Login(ctx, tt.email, tt.password)
			assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
		})
	}
}

func TestRefresh_RotatesPair(t *testing.T) {
	t.Parallel()

	svc, r, user := newAuthEnv(t)
	ctx := context.Background()

	first, err := svc.Login(ctx, user.Email, testPassword)
	require.NoError(t, err)
	originalExpiry := *reloadUser(t, r, user).RefreshTokenExpiresAt

	pair, err := svc.Refresh(ctx, first.AccessToken, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, pair.RefreshToken)

	claims, err := svc.Tokens.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)

	stored := reloadUser(t, r, user)
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, pair.RefreshToken, *stored.RefreshToken)

	// Rotation must not extend the session window.
	require.NotNil(t, stored.RefreshTokenExpiresAt)
	assert.Equal(t, originalExpiry.Unix(), stored.RefreshTokenExpiresAt.Unix())

	// The previous refresh token is spent.
	_, err = svc.Refresh(ctx, first.AccessToken, first.RefreshToken)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestRefresh_AcceptsExpiredAccessToken(t *testing.T) {
	t.Parallel()

	svc, _, user := newAuthEnv(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, user.Email, testPassword)
	require.NoError(t, err)

	expired := signExpiredAccess(t, user, "unit-test-secret")
	pair, err := svc.Refresh(ctx, expired, res.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestRefresh_Rejections(t *testing.T) {
	t.Parallel()

	svc, r, user := newAuthEnv(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, user.Email, testPassword)
	require.NoError(t, err)

	t.Run("mismatched refresh token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, res.AccessToken, "someone-elses-token")
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})

	t.Run("tampered access token", func(t *testing.T) {
		forged := signExpiredAccess(t, user, "wrong-secret")
		_, err := svc.Refresh(ctx, forged, res.RefreshToken)
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})

	t.Run("failed attempts leave the session intact", func(t *testing.T) {
		stored := reloadUser(t, r, user)
		require.NotNil(t, stored.RefreshToken)
		assert.Equal(t, res.RefreshToken, *stored.RefreshToken)
	})

	t.Run("stored expiry in the past", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		require.NoError(t, r.SetRefreshToken(ctx, user.ID, &res.TokenPair.RefreshToken, &past))

		_, err := svc.Refresh(ctx, res.AccessToken, res.RefreshToken)
		assert.ErrorIs(t, err, apperr.ErrInvalidToken)
	})
}

func TestRevoke_ClearsTokenAndIsIdempotent(t *testing.T) {
	t.Parallel()

	svc, r, user := newAuthEnv(t)
	ctx := context.Background()

	res, err := svc.Login(ctx, user.Email, testPassword)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, user.ID))
	stored := reloadUser(t, r, user)
	assert.Nil(t, stored.RefreshToken)
	assert.Nil(t, stored.RefreshTokenExpiresAt)

	// Second revoke is a no-op.
	require.NoError(t, svc.Revoke(ctx, user.ID))

	_, err = svc.Refresh(ctx, res.AccessToken, res.RefreshToken)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

// signExpiredAccess mints an access token for the user that expired an hour
// ago, signed with the given secret.
func signExpiredAccess(t *testing.T, user *models.User, secret string) string {
	t.Helper()

	claims := tokens.AccessClaims{
		Role: tokens.RoleOf(user.IsAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    "home-decor",
			Audience:  jwt.ClaimStrings{"home-decor-clients"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}
