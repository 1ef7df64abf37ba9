package dto

import "github.com/fekuna/tortilleria-pos/internal/model"

type CreateUserInput struct {
	Username string
	Name     string
	Password string
	Role     model.Role
}

type UpdateUserInput struct {
	Username string
	Name     string
	Password string
	Role     model.Role
}

// UserEntry pairs a user with its username for ordered listings.
type UserEntry struct {
	Username string
	User     model.User
}
