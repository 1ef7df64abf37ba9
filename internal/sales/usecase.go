package sales

import (
	"context"

	"github.com/fekuna/tortilleria-pos/internal/cart"
	"github.com/fekuna/tortilleria-pos/internal/model"
	"github.com/fekuna/tortilleria-pos/internal/sales/dto"
)

type UseCase interface {
	// Checkout commits a cart: it re-validates stock, decrements it through
	// the catalog, appends the sale to the ledger, flushes persistence and
	// clears the cart. It is the sole path that decreases stock or creates
	// sale records. A non-nil sale with a non-nil error means the sale was
	// committed in memory but could not be persisted.
	Checkout(ctx context.Context, c *cart.Cart, seller string) (*model.Sale, error)

	History(ctx context.Context) ([]model.Sale, error)
	// SalesByDate filters by the date component ("YYYY-MM-DD"), preserving
	// ledger order.
	SalesByDate(ctx context.Context, date string) ([]model.Sale, error)
	AggregateByDay(ctx context.Context) (map[string]dto.DaySummary, error)
	AggregateByProduct(ctx context.Context) (map[string]dto.ProductSales, error)
	Summary(ctx context.Context) (dto.Summary, error)
}
