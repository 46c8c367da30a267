// Package identity registers users and resolves them for the HTTP surface.
// Usernames only attribute ownership and answers; they are not credentials.
package identity

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/nailuj1992/polls-api/internal/config"
	"github.com/nailuj1992/polls-api/pkg/domain"
	"github.com/nailuj1992/polls-api/pkg/logger"
	"github.com/nailuj1992/polls-api/pkg/serrors"
	"github.com/nailuj1992/polls-api/pkg/storage"
)

// NewUser is the registration payload.
type NewUser struct {
	Name     string
	Username string
	Email    string
	Password string
}

// Options configure password hashing.
type Options struct {
	// BcryptCost is the bcrypt work factor. Values outside bcrypt's range
	// fall back to bcrypt.DefaultCost.
	BcryptCost int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{BcryptCost: cfg.Password.BcryptCost}
}

type directory struct {
	options Options
	storage storage.Storage
}

// New creates a Directory backed by the provided storage.
func New(storage storage.Storage, options Options) Directory {
	if options.BcryptCost < bcrypt.MinCost || options.BcryptCost > bcrypt.MaxCost {
		options.BcryptCost = bcrypt.DefaultCost
	}

	return &directory{
		options: options,
		storage: storage,
	}
}

// Create registers a user. Username and email are checked in that order
// before the insert; a concurrent registration that slips past the checks
// is caught by the unique constraints and reported the same way.
func (d *directory) Create(ctx context.Context, input NewUser) (*domain.User, error) {
	if input.Name == "" || input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, serrors.With(serrors.ErrInvalidInput, "missing required fields")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), d.options.BcryptCost)
	if err != nil {
		// bcrypt rejects passwords longer than 72 bytes
		return nil, serrors.Wrap(serrors.ErrInvalidInput, err, "invalid password")
	}

	var user *domain.User
	if err := d.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.UserByUsername(ctx, input.Username)
		if err != nil {
			return fmt.Errorf("could not get user by username: %w", err)
		}
		if existing != nil {
			return serrors.With(serrors.ErrConflict, "username already exists")
		}

		existing, err = tx.UserByEmail(ctx, input.Email)
		if err != nil {
			return fmt.Errorf("could not get user by email: %w", err)
		}
		if existing != nil {
			return serrors.With(serrors.ErrConflict, "email already exists")
		}

		user, err = tx.StoreUser(ctx, domain.User{
			Name:         input.Name,
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: string(hash),
		})
		if errors.Is(err, storage.ErrDuplicate) {
			return serrors.Wrap(serrors.ErrConflict, err, "username or email already exists")
		}
		if err != nil {
			return fmt.Errorf("could not store user: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	logger.Info(ctx, "user created", zap.Int64("userID", int64(user.ID)), zap.String("username", user.Username))

	return user, nil
}

func (d *directory) List(ctx context.Context) ([]domain.User, error) {
	users, err := d.storage.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	return users, nil
}

func (d *directory) ByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := d.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}
