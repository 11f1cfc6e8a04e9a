// Package auth issues and verifies bearer tokens, hashes passwords and
// carries the authenticated caller through request contexts.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/KirkDiggler/arcanum-api/internal/entities"
	"github.com/KirkDiggler/arcanum-api/internal/errors"
	"github.com/KirkDiggler/arcanum-api/internal/pkg/clock"
)

// Issuer is the iss claim of every token.
const Issuer = "arcanum-api"

// DefaultTokenTTL is how long a token stays valid.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims is the token payload. Subject is the user id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManagerConfig contains configuration for a TokenManager
type TokenManagerConfig struct {
	Secret string
	TTL    time.Duration
	Clock  clock.Clock
}

// Validate checks the configuration
func (c *TokenManagerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Secret == "" {
		vb.RequiredField("Secret")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}
	return vb.Build()
}

// TokenManager signs and verifies HS256 tokens
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewTokenManager creates a TokenManager
func NewTokenManager(cfg *TokenManagerConfig) (*TokenManager, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid token config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &TokenManager{secret: []byte(cfg.Secret), ttl: ttl, clock: c}, nil
}

// Issue returns a signed token for the user
func (m *TokenManager) Issue(user *entities.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", errors.InvalidArgument("user is required")
	}

	now := m.clock.Now()
	claims := &Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Verify parses a token and returns its claims. Any failure is
// Unauthenticated.
func (m *TokenManager) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Unauthenticated("token has expired")
		}
		return nil, errors.Unauthenticated("invalid token")
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, errors.Unauthenticated("invalid token")
	}

	return claims, nil
}
