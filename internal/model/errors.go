package model

import "errors"

// Sentinel errors shared across the store packages. Callers match them with
// errors.Is; usecases wrap them with fmt.Errorf("%w: ...") to add detail.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrConflict          = errors.New("already exists")
	ErrAuthFailure       = errors.New("invalid credentials")
	ErrInvalidBackup     = errors.New("invalid backup file")
)
