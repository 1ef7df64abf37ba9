package user

import (
	"context"

	"github.com/fekuna/tortilleria-pos/internal/model"
	"github.com/fekuna/tortilleria-pos/internal/user/dto"
)

type Repository interface {
	// Get returns nil, nil when the username is absent.
	Get(ctx context.Context, username string) (*model.User, error)
	// List preserves insertion order.
	List(ctx context.Context) ([]dto.UserEntry, error)
	Put(ctx context.Context, username string, u *model.User) error
	Delete(ctx context.Context, username string) error

	Replace(ctx context.Context, entries []dto.UserEntry) error
}
