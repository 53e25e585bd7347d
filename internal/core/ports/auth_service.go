package ports

import (
	"context"

	"github.com/storefront/ecommerce-api/internal/core/domain"
)

// PasswordHasher hashes and verifies account secrets.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify never fails loudly: any mismatch or unparsable hash is false.
	Verify(plaintext, hash string) bool
}

// TokenIssuer mints signed access tokens.
type TokenIssuer interface {
	Issue(subjectID string, role domain.Role) (string, error)
}

// TokenVerifier checks access tokens and returns the identity they carry.
type TokenVerifier interface {
	Verify(token string) (domain.Principal, error)
}

// RegisterInput carries a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
