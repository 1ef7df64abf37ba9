package usecase_test

import (
	"context"
	"testing"

	"github.com/fekuna/tortilleria-pos/internal/model"
	"github.com/fekuna/tortilleria-pos/internal/user"
	"github.com/fekuna/tortilleria-pos/internal/user/dto"
	userRepo "github.com/fekuna/tortilleria-pos/internal/user/repository"
	userUC "github.com/fekuna/tortilleria-pos/internal/user/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDirectory(t *testing.T) user.UseCase {
	t.Helper()
	uc := userUC.NewUserUseCase(userRepo.NewMemoryRepository(), zap.NewNop())

	err := uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Username: "cajero",
		Name:     "Luis Rodríguez",
		Password: "caja123",
		Role:     model.RoleEmployee,
	})
	require.NoError(t, err)
	return uc
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	uc := newDirectory(t)

	u, err := uc.Authenticate(ctx, "cajero", "caja123")
	require.NoError(t, err)
	assert.Equal(t, "Luis Rodríguez", u.Name)
	assert.Equal(t, model.RoleEmployee, u.Role)
}

func TestAuthenticate_Failures(t *testing.T) {
	ctx := context.Background()
	uc := newDirectory(t)

	_, err := uc.Authenticate(ctx, "cajero", "equivocada")
	assert.ErrorIs(t, err, model.ErrAuthFailure)

	_, err = uc.Authenticate(ctx, "nadie", "caja123")
	assert.ErrorIs(t, err, model.ErrAuthFailure)

	// Matching is case-sensitive on both fields.
	_, err = uc.Authenticate(ctx, "Cajero", "caja123")
	assert.ErrorIs(t, err, model.ErrAuthFailure)
	_, err = uc.Authenticate(ctx, "cajero", "CAJA123")
	assert.ErrorIs(t, err, model.ErrAuthFailure)
}

func TestCreateUser_Conflict(t *testing.T) {
	uc := newDirectory(t)

	err := uc.CreateUser(context.Background(), &dto.CreateUserInput{
		Username: "cajero",
		Name:     "Otro Cajero",
		Password: "otra123",
		Role:     model.RoleEmployee,
	})
	assert.ErrorIs(t, err, model.ErrConflict)
}

func TestCreateUser_NormalizesUsername(t *testing.T) {
	ctx := context.Background()
	uc := newDirectory(t)

	err := uc.CreateUser(ctx, &dto.CreateUserInput{
		Username: "  Gerente ",
		Name:     "Gerente General",
		Password: "gerente123",
		Role:     model.RoleAdmin,
	})
	require.NoError(t, err)

	u, err := uc.GetUser(ctx, "gerente")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.Role)
}

func TestCreateUser_Validation(t *testing.T) {
	ctx := context.Background()
	uc := newDirectory(t)

	cases := []dto.CreateUserInput{
		{Username: "", Name: "X", Password: "y", Role: model.RoleEmployee},
		{Username: "x", Name: "", Password: "y", Role: model.RoleEmployee},
		{Username: "x", Name: "X", Password: "", Role: model.RoleEmployee},
		{Username: "x", Name: "X", Password: "y", Role: "gerente"},
	}
	for _, input := range cases {
		assert.ErrorIs(t, uc.CreateUser(ctx, &input), model.ErrInvalidInput)
	}
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	uc := newDirectory(t)

	err := uc.UpdateUser(ctx, &dto.UpdateUserInput{
		Username: "cajero",
		Name:     "Luis R. Hernández",
		Password: "nueva123",
		Role:     model.RoleAdmin,
	})
	require.NoError(t, err)

	u, err := uc.Authenticate(ctx, "cajero", "nueva123")
	require.NoError(t, err)
	assert.Equal(t, "Luis R. Hernández", u.Name)
	assert.Equal(t, model.RoleAdmin, u.Role)
}

func TestUpdateUser_NotFound(t *testing.T) {
	uc := newDirectory(t)

	err := uc.UpdateUser(context.Background(), &dto.UpdateUserInput{
		Username: "nadie", Name: "N", Password: "p", Role: model.RoleEmployee,
	})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	uc := newDirectory(t)

	require.NoError(t, uc.DeleteUser(ctx, "cajero"))

	_, err := uc.GetUser(ctx, "cajero")
	assert.ErrorIs(t, err, model.ErrNotFound)

	assert.ErrorIs(t, uc.DeleteUser(ctx, "cajero"), model.ErrNotFound)
}

func TestListUsers_PreservesOrder(t *testing.T) {
	ctx := context.Background()
	uc := newDirectory(t)

	require.NoError(t, uc.CreateUser(ctx, &dto.CreateUserInput{
		Username: "admin", Name: "Administrador", Password: "admin123", Role: model.RoleAdmin,
	}))

	entries, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "cajero", entries[0].Username)
	assert.Equal(t, "admin", entries[1].Username)
}
