package identity

import (
	"context"

	"github.com/nailuj1992/polls-api/pkg/domain"
)

//go:generate mockgen -package mockidentity -source=interface.go -destination=mock/mockidentity.go *
type Directory interface {
	Create(ctx context.Context, user NewUser) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}
