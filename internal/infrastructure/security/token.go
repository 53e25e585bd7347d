package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/storefront/ecommerce-api/internal/core/domain"
)

// TokenTTL is the fixed lifetime of an access token.
const TokenTTL = 48 * time.Hour

var errEmptySecret = errors.New("token: signing secret is empty")

type accessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 access tokens. It implements both
// ports.TokenIssuer and ports.TokenVerifier.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a TokenManager around a server-held secret.
func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, errEmptySecret
	}
	return &TokenManager{secret: []byte(secret), ttl: TokenTTL, now: time.Now}, nil
}

// Issue signs a token for subjectID carrying role.
func (m *TokenManager) Issue(subjectID string, role domain.Role) (string, error) {
	now := m.now()
	claims := accessClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify checks signature, expiry and structure. Every failure is reported as
// domain.ErrInvalidToken; expiry is compared against local time with no leeway.
func (m *TokenManager) Verify(token string) (domain.Principal, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	return domain.Principal{UserID: claims.Subject, Role: role}, nil
}
