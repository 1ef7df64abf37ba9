package movement

import (
	"context"

	"github.com/fekuna/tortilleria-pos/internal/model"
)

// Repository is the append-only stock movement audit log.
type Repository interface {
	Append(ctx context.Context, m model.StockMovement) error
	ListAll(ctx context.Context) ([]model.StockMovement, error)
	ListByProduct(ctx context.Context, key string) ([]model.StockMovement, error)
	Replace(ctx context.Context, movements []model.StockMovement) error
}
