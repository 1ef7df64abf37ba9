package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fekuna/tortilleria-pos/internal/cart"
	"github.com/fekuna/tortilleria-pos/internal/catalog"
	catalogdto "github.com/fekuna/tortilleria-pos/internal/catalog/dto"
	"github.com/fekuna/tortilleria-pos/internal/logger"
	"github.com/fekuna/tortilleria-pos/internal/model"
	"github.com/fekuna/tortilleria-pos/internal/sales"
	"github.com/fekuna/tortilleria-pos/internal/sales/dto"
	"github.com/fekuna/tortilleria-pos/internal/storage"
	"go.uber.org/zap"
)

type salesUseCase struct {
	repo    sales.Repository
	catalog catalog.UseCase
	gateway storage.Gateway
	logger  logger.Logger

	// commitMu keeps commits from interleaving; stock validation and the
	// decrements below must be one critical section.
	commitMu sync.Mutex
}

func NewSalesUseCase(repo sales.Repository, cat catalog.UseCase, gateway storage.Gateway, log logger.Logger) sales.UseCase {
	return &salesUseCase{
		repo:    repo,
		catalog: cat,
		gateway: gateway,
		logger:  log,
	}
}

func (uc *salesUseCase) Checkout(ctx context.Context, c *cart.Cart, seller string) (*model.Sale, error) {
	uc.commitMu.Lock()
	defer uc.commitMu.Unlock()

	if c.IsEmpty() {
		return nil, model.ErrEmptyCart
	}

	keys := c.Keys()
	quantities := c.Quantities()

	// Re-validate against current stock and price the cart before any
	// decrement: all-or-nothing.
	var total float64
	for _, key := range keys {
		p, err := uc.catalog.GetProduct(ctx, key)
		if err != nil {
			return nil, err
		}
		qty := quantities[key]
		if qty > p.Stock {
			return nil, fmt.Errorf("%w: %s has %.1f %s, cart holds %.1f",
				model.ErrInsufficientStock, p.Name, p.Stock, p.Unit, qty)
		}
		total += qty * p.Price
	}

	for _, key := range keys {
		err := uc.catalog.AdjustStock(ctx, &catalogdto.AdjustStockInput{
			Key:       key,
			Delta:     -quantities[key],
			Reference: model.MovementSale,
			Actor:     seller,
		})
		if err != nil {
			return nil, err
		}
	}

	sale := model.Sale{
		Date:     model.NewSaleTime(time.Now()),
		Customer: model.WalkInCustomer,
		Products: quantities,
		Total:    total,
		Seller:   seller,
	}
	if err := uc.repo.Append(ctx, sale); err != nil {
		return nil, err
	}

	uc.logger.Info("sale committed",
		zap.String("seller", seller),
		zap.Int("items", len(keys)),
		zap.Float64("total", total))

	flushErr := uc.flush(ctx)
	c.Clear()
	if flushErr != nil {
		// In-memory state is already committed; the caller decides how to
		// surface the divergence.
		uc.logger.Error("sale committed but flush failed", zap.Error(flushErr))
		return &sale, fmt.Errorf("sale recorded but not persisted: %w", flushErr)
	}
	return &sale, nil
}

func (uc *salesUseCase) flush(ctx context.Context) error {
	if err := uc.gateway.SaveCatalog(ctx); err != nil {
		return err
	}
	if err := uc.gateway.SaveSales(ctx); err != nil {
		return err
	}
	return uc.gateway.SaveMovements(ctx)
}

func (uc *salesUseCase) History(ctx context.Context) ([]model.Sale, error) {
	return uc.repo.ListAll(ctx)
}

func (uc *salesUseCase) SalesByDate(ctx context.Context, date string) ([]model.Sale, error) {
	records, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var filtered []model.Sale
	for _, s := range records {
		if s.Date.Day() == date {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

func (uc *salesUseCase) AggregateByDay(ctx context.Context) (map[string]dto.DaySummary, error) {
	records, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byDay := map[string]dto.DaySummary{}
	for _, s := range records {
		day := byDay[s.Date.Day()]
		day.Count++
		day.Total += s.Total
		byDay[s.Date.Day()] = day
	}
	return byDay, nil
}

func (uc *salesUseCase) AggregateByProduct(ctx context.Context) (map[string]dto.ProductSales, error) {
	records, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byProduct := map[string]dto.ProductSales{}
	for _, s := range records {
		for key, qty := range s.Products {
			p, err := uc.catalog.GetProduct(ctx, key)
			if errors.Is(err, model.ErrNotFound) {
				// Product no longer in the catalog: skip, not an error.
				continue
			}
			if err != nil {
				return nil, err
			}
			agg := byProduct[key]
			agg.Quantity += qty
			agg.Revenue += qty * p.Price
			agg.Occurrences++
			byProduct[key] = agg
		}
	}
	return byProduct, nil
}

func (uc *salesUseCase) Summary(ctx context.Context) (dto.Summary, error) {
	records, err := uc.repo.ListAll(ctx)
	if err != nil {
		return dto.Summary{}, err
	}
	return Summarize(records), nil
}

// Summarize reduces any sequence of sales; the average of zero sales is
// zero.
func Summarize(records []model.Sale) dto.Summary {
	s := dto.Summary{Count: len(records)}
	for _, r := range records {
		s.Total += r.Total
	}
	if s.Count > 0 {
		s.Average = s.Total / float64(s.Count)
	}
	return s
}
