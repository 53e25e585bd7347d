package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a Customer account. Admin accounts are never created here.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	email := domain.NormalizeEmail(input.Email)

	_, err := s.users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Username:     input.Username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login checks the credentials and returns a signed access token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Info().Str("user_id", user.ID).Msg("login rejected")
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}
