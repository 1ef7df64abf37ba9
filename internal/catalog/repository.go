package catalog

import (
	"context"

	"github.com/fekuna/tortilleria-pos/internal/catalog/dto"
	"github.com/fekuna/tortilleria-pos/internal/model"
)

type Repository interface {
	// Get returns nil, nil when the key is absent.
	Get(ctx context.Context, key string) (*model.Product, error)
	Exists(ctx context.Context, key string) (bool, error)
	// List preserves insertion order.
	List(ctx context.Context) ([]dto.ProductEntry, error)
	// Put inserts or replaces; a new key goes to the end of the order.
	Put(ctx context.Context, key string, p *model.Product) error

	// Replace swaps the whole store, used by load and backup import.
	Replace(ctx context.Context, entries []dto.ProductEntry) error
}
