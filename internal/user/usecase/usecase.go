package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/tortilleria-pos/internal/logger"
	"github.com/fekuna/tortilleria-pos/internal/model"
	"github.com/fekuna/tortilleria-pos/internal/user"
	"github.com/fekuna/tortilleria-pos/internal/user/dto"
	"go.uber.org/zap"
)

type userUseCase struct {
	repo   user.Repository
	logger logger.Logger
}

func NewUserUseCase(repo user.Repository, log logger.Logger) user.UseCase {
	return &userUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *userUseCase) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	u, err := uc.repo.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Password != password {
		uc.logger.Warn("failed login attempt", zap.String("username", username))
		return nil, model.ErrAuthFailure
	}
	return u, nil
}

func (uc *userUseCase) GetUser(ctx context.Context, username string) (*model.User, error) {
	u, err := uc.repo.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %q: %w", username, model.ErrNotFound)
	}
	return u, nil
}

func (uc *userUseCase) ListUsers(ctx context.Context) ([]dto.UserEntry, error) {
	return uc.repo.List(ctx)
}

func (uc *userUseCase) CreateUser(ctx context.Context, input *dto.CreateUserInput) error {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	if username == "" || strings.TrimSpace(input.Name) == "" || input.Password == "" {
		return fmt.Errorf("%w: username, name and password are required", model.ErrInvalidInput)
	}
	if !input.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", model.ErrInvalidInput, input.Role)
	}

	existing, err := uc.repo.Get(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("user %q: %w", username, model.ErrConflict)
	}

	u := &model.User{
		Name:     input.Name,
		Password: input.Password,
		Role:     input.Role,
	}
	if err := uc.repo.Put(ctx, username, u); err != nil {
		return err
	}

	uc.logger.Info("user created", zap.String("username", username), zap.String("role", string(input.Role)))
	return nil
}

func (uc *userUseCase) UpdateUser(ctx context.Context, input *dto.UpdateUserInput) error {
	existing, err := uc.repo.Get(ctx, input.Username)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("user %q: %w", input.Username, model.ErrNotFound)
	}

	if strings.TrimSpace(input.Name) == "" || input.Password == "" {
		return fmt.Errorf("%w: name and password are required", model.ErrInvalidInput)
	}
	if !input.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", model.ErrInvalidInput, input.Role)
	}

	u := &model.User{
		Name:     input.Name,
		Password: input.Password,
		Role:     input.Role,
	}
	return uc.repo.Put(ctx, input.Username, u)
}

func (uc *userUseCase) DeleteUser(ctx context.Context, username string) error {
	existing, err := uc.repo.Get(ctx, username)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("user %q: %w", username, model.ErrNotFound)
	}

	if err := uc.repo.Delete(ctx, username); err != nil {
		return err
	}
	uc.logger.Info("user deleted", zap.String("username", username))
	return nil
}
