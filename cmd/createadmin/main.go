// createadmin creates an Admin account, or promotes an existing account to
// Admin. Public registration only ever produces Customers.
//
// Usage: go run ./cmd/createadmin -email admin@example.com -username admin -password secret
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/storefront/ecommerce-api/internal/core/domain"
	"github.com/storefront/ecommerce-api/internal/core/ports"
	"github.com/storefront/ecommerce-api/internal/infrastructure/db/mongo"
	"github.com/storefront/ecommerce-api/internal/infrastructure/security"
	"github.com/storefront/ecommerce-api/internal/pkg/config"
	"github.com/storefront/ecommerce-api/pkg/logger"
)

const minPasswordLength = 6

var errUsage = errors.New("usage")

type options struct {
	email    string
	username string
	password string
}

// accountStore is the part of the user repository this command needs.
type accountStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateByID(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error)
}

func main() {
	var opts options
	flag.StringVar(&opts.email, "email", "", "account email (required)")
	flag.StringVar(&opts.username, "username", "admin", "username for a new account")
	flag.StringVar(&opts.password, "password", "", "password for a new account, at least 6 characters")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "createadmin: %v\n", err)
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(opts options) error {
	if opts.email == "" {
		return fmt.Errorf("%w: -email is required", errUsage)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "createadmin"})

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	hasher := security.NewBcryptHasher(security.DefaultCost)
	user, promoted, err := ensureAdmin(ctx, mongo.NewUserRepository(db), hasher, opts, time.Now().UTC())
	if err != nil {
		return err
	}

	if promoted {
		log.Info().Str("user_id", user.ID).Msg("account promoted to admin")
		return nil
	}
	log.Info().Str("user_id", user.ID).Msg("admin account ready")
	return nil
}

// ensureAdmin promotes the account registered under opts.email, or creates
// a new Admin when there is none. promoted is true only when an existing
// non-admin account changed role.
func ensureAdmin(ctx context.Context, users accountStore, hasher ports.PasswordHasher, opts options, now time.Time) (*domain.User, bool, error) {
	email := domain.NormalizeEmail(opts.email)
	admin := domain.RoleAdmin

	existing, err := users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role.IsAdmin() {
			return existing, false, nil
		}
		updated, err := users.UpdateByID(ctx, existing.ID, domain.UserPatch{Role: &admin})
		if err != nil {
			return nil, false, fmt.Errorf("promote account: %w", err)
		}
		return updated, true, nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, false, fmt.Errorf("look up account: %w", err)
	}

	if len(opts.password) < minPasswordLength {
		return nil, false, fmt.Errorf("%w: -password must be at least %d characters", errUsage, minPasswordLength)
	}
	hash, err := hasher.Hash(opts.password)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	created, err := users.Create(ctx, &domain.User{
		Username:     opts.username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, false, fmt.Errorf("create account: %w", err)
	}
	return created, false, nil
}
