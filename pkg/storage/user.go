package storage

import (
	"context"

	"github.com/nailuj1992/polls-api/pkg/domain"
)

// UserStorage persists identities. Lookups return nil when nothing matches.
type UserStorage interface {
	// StoreUser inserts a user and returns the stored row. A username or email
	// that is already registered yields ErrDuplicate.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// Users returns all users ordered by id.
	Users(ctx context.Context) ([]domain.User, error)
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
}
