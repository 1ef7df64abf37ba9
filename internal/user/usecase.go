package user

import (
	"context"

	"github.com/fekuna/tortilleria-pos/internal/model"
	"github.com/fekuna/tortilleria-pos/internal/user/dto"
)

// UseCase is the user directory. Session policy (who may delete whom while
// logged in) lives in the presentation layer, not here.
type UseCase interface {
	// Authenticate does an exact, case-sensitive match on username and
	// password.
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	GetUser(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]dto.UserEntry, error)
	CreateUser(ctx context.Context, input *dto.CreateUserInput) error
	UpdateUser(ctx context.Context, input *dto.UpdateUserInput) error
	DeleteUser(ctx context.Context, username string) error
}
