package catalog

import (
	"context"

	"github.com/fekuna/tortilleria-pos/internal/catalog/dto"
	"github.com/fekuna/tortilleria-pos/internal/model"
)

type UseCase interface {
	GetProduct(ctx context.Context, key string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]dto.ProductEntry, error)
	// CreateProduct returns the generated product key.
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (string, error)
	// UpdateProduct is a full-field replace.
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) error
	// AdjustStock is the only stock mutation path available to the
	// transaction engine. Delta is usually negative.
	AdjustStock(ctx context.Context, input *dto.AdjustStockInput) error
	Stats(ctx context.Context) (*dto.CatalogStats, error)
}
