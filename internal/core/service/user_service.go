package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

// newestUsersLimit is how many users a "new" listing returns.
const newestUsersLimit = 5

type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
	now    func() time.Time
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger, now: time.Now}
}

func (s *UserService) Get(ctx context.Context, actor domain.Principal, id string) (*domain.User, error) {
	if !actor.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, newestOnly bool) ([]*domain.User, error) {
	var f ports.UserListFilter
	if newestOnly {
		f.Limit = newestUsersLimit
	}
	return s.repo.List(ctx, f)
}

// Stats counts registrations per calendar month over the last year.
func (s *UserService) Stats(ctx context.Context) ([]domain.MonthlyCount, error) {
	since := s.now().UTC().AddDate(-1, 0, 0)
	return s.repo.CountByMonth(ctx, since)
}

// Update applies a partial profile change. The password is re-hashed only when
// a new one is supplied and only admins may change a role.
func (s *UserService) Update(ctx context.Context, actor domain.Principal, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if !actor.CanAccess(id) {
		return nil, domain.ErrForbidden
	}
	if input.Role != nil && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	patch := domain.UserPatch{
		Username: input.Username,
		Role:     input.Role,
	}

	if input.Email != nil {
		email := domain.NormalizeEmail(*input.Email)
		existing, err := s.repo.FindByEmail(ctx, email)
		switch {
		case err == nil && existing.ID != id:
			return nil, domain.ErrEmailTaken
		case err != nil && !errors.Is(err, domain.ErrUserNotFound):
			return nil, err
		}
		patch.Email = &email
	}

	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
	}

	if patch.IsEmpty() {
		return s.repo.FindByID(ctx, id)
	}

	user, err := s.repo.UpdateByID(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Str("actor", actor.UserID).Bool("password_changed", patch.PasswordHash != nil).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, actor domain.Principal, id string) error {
	if !actor.CanAccess(id) {
		return domain.ErrForbidden
	}
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrUserNotFound
	}
	s.logger.Info().Str("user_id", id).Str("actor", actor.UserID).Msg("user deleted")
	return nil
}
