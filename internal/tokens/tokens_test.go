package tokens

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-jwt-secret"
	testIssuer   = "home-decor"
	testAudience = "home-decor-clients"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService([]byte(testSecret), testIssuer, testAudience)
	require.NoError(t, err)
	return svc
}

// signAccess mints a token outside the service so tests control the expiry
// and the signing key.
func signAccess(t *testing.T, secret []byte, method jwt.SigningMethod, userID uuid.UUID, role Role, exp time.Time) string {
	t.Helper()
	claims := AccessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	raw, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)
	return raw
}

func TestNewService_EmptySecret(t *testing.T) {
	t.Parallel()

	_, err := NewService(nil, testIssuer, testAudience)
	require.Error(t, err)
}

func TestGenerateAccessToken_SetsExpectedClaims(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	userID := uuid.New()

	raw, err := svc.GenerateAccessToken(userID, RoleAdmin, true)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := svc.ParseAccessToken(raw)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.True(t, claims.Banned)
	assert.Equal(t, testIssuer, claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), claims.ExpiresAt.Time, 5*time.Second)

	parsed, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseAccessToken_RejectsExpired(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	raw := signAccess(t, []byte(testSecret), jwt.SigningMethodHS256,
		uuid.New(), RoleUser, time.Now().Add(-time.Minute))

	_, err := svc.ParseAccessToken(raw)
	require.Error(t, err)
}

func TestParseExpiredAccessToken_AcceptsExpired(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	userID := uuid.New()
	raw := signAccess(t, []byte(testSecret), jwt.SigningMethodHS256,
		userID, RoleAdmin, time.Now().Add(-time.Hour))

	claims, err := svc.ParseExpiredAccessToken(raw)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestParse_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	raw := signAccess(t, []byte("some-other-secret"), jwt.SigningMethodHS256,
		uuid.New(), RoleUser, time.Now().Add(time.Hour))

	_, err := svc.ParseAccessToken(raw)
	require.Error(t, err)
	_, err = svc.ParseExpiredAccessToken(raw)
	require.Error(t, err)
}

// A token signed with a different algorithm must be rejected even when the
// signature would verify, otherwise an attacker can downgrade the check.
func TestParse_RejectsAlgorithmSubstitution(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	raw := signAccess(t, []byte(testSecret), jwt.SigningMethodHS384,
		uuid.New(), RoleAdmin, time.Now().Add(time.Hour))

	_, err := svc.ParseAccessToken(raw)
	require.Error(t, err)
	_, err = svc.ParseExpiredAccessToken(raw)
	require.Error(t, err)
}

func TestParse_RejectsGarbage(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.ParseExpiredAccessToken(raw)
		require.Error(t, err, "token %q", raw)
	}
}

func TestGenerateRefreshToken_OpaqueRandom(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	first, err := svc.GenerateRefreshToken()
	require.NoError(t, err)
	second, err := svc.GenerateRefreshToken()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	decoded, err := base64.StdEncoding.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, decoded, 32)
}

func TestRoleOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RoleAdmin, RoleOf(true))
	assert.Equal(t, RoleUser, RoleOf(false))
}
