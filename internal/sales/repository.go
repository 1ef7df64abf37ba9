package sales

import (
	"context"

	"github.com/fekuna/tortilleria-pos/internal/model"
)

// Repository is the append-only sales ledger. Insertion order is
// chronological order; nothing ever reorders or rewrites it short of a
// backup import.
type Repository interface {
	Append(ctx context.Context, sale model.Sale) error
	ListAll(ctx context.Context) ([]model.Sale, error)
	Count(ctx context.Context) (int, error)
	Replace(ctx context.Context, sales []model.Sale) error
}
