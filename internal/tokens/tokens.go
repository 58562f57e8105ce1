// Package tokens issues and validates the bearer credentials: a short-lived
// signed access token and a long-lived opaque refresh token. The refresh
// token carries no claims; its validity is established only by comparing it
// to the value stored on the user row.
package tokens

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ReemOthm/home-decor-backend/internal/apperr"
)

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

func RoleOf(isAdmin bool) Role {
	if isAdmin {
		return RoleAdmin
	}
	return RoleUser
}

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

type AccessClaims struct {
	Role   Role `json:"role"`
	Banned bool `json:"banned"`
	jwt.RegisteredClaims
}

type Service struct {
	secret   []byte
	issuer   string
	audience string
}

func NewService(secret []byte, issuer, audience string) (*Service, error) {
	if len(secret) == 0 {
		return nil, errors.New("tokens: signing secret is empty")
	}
	return &Service{secret: secret, issuer: issuer, audience: audience}, nil
}

func (s *Service) GenerateAccessToken(userID uuid.UUID, role Role, banned bool) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Role:   role,
		Banned: banned,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// GenerateRefreshToken returns 32 bytes from the CSPRNG, base64-encoded.
func (s *Service) GenerateRefreshToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

// ParseAccessToken fully validates the token, expiry included.
func (s *Service) ParseAccessToken(raw string) (*AccessClaims, error) {
	return s.parse(raw)
}

// ParseExpiredAccessToken verifies signature and structure while ignoring
// expiry. This is the refresh hinge: the token must still be cryptographically
// valid, only time-expired. The signing method stays pinned to HS256 so an
// algorithm-substitution token is rejected outright.
func (s *Service) ParseExpiredAccessToken(raw string) (*AccessClaims, error) {
	return s.parse(raw, jwt.WithoutClaimsValidation())
}

func (s *Service) parse(raw string, opts ...jwt.ParserOption) (*AccessClaims, error) {
	var claims AccessClaims
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, apperr.ErrInvalidToken
	}
	return &claims, nil
}

// Subject returns the user id the token was issued for.
func (c *AccessClaims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, apperr.ErrInvalidToken
	}
	return id, nil
}
