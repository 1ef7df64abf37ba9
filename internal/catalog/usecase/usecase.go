package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/tortilleria-pos/internal/catalog"
	"github.com/fekuna/tortilleria-pos/internal/catalog/dto"
	"github.com/fekuna/tortilleria-pos/internal/logger"
	"github.com/fekuna/tortilleria-pos/internal/model"
	"github.com/fekuna/tortilleria-pos/internal/movement"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type catalogUseCase struct {
	repo      catalog.Repository
	movements movement.Repository
	logger    logger.Logger
}

func NewCatalogUseCase(repo catalog.Repository, movements movement.Repository, log logger.Logger) catalog.UseCase {
	return &catalogUseCase{
		repo:      repo,
		movements: movements,
		logger:    log,
	}
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, key string) (*model.Product, error) {
	p, err := uc.repo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("product %q: %w", key, model.ErrNotFound)
	}
	return p, nil
}

func (uc *catalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductEntry, error) {
	return uc.repo.List(ctx)
}

func (uc *catalogUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (string, error) {
	if err := validateProduct(input.Name, input.Description, input.Price, input.Stock); err != nil {
		return "", err
	}

	key, err := uc.uniqueKey(ctx, input.Name)
	if err != nil {
		return "", err
	}

	p := &model.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Unit:        input.Unit,
		Category:    input.Category,
	}
	if err := uc.repo.Put(ctx, key, p); err != nil {
		return "", err
	}

	uc.logger.Info("product created", zap.String("key", key), zap.String("name", input.Name))
	return key, nil
}

func (uc *catalogUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) error {
	p, err := uc.repo.Get(ctx, input.Key)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("product %q: %w", input.Key, model.ErrNotFound)
	}

	if err := validateProduct(input.Name, input.Description, input.Price, input.Stock); err != nil {
		return err
	}

	stockBefore := p.Stock

	p.Name = input.Name
	p.Description = input.Description
	p.Price = input.Price
	p.Stock = input.Stock
	p.Unit = input.Unit
	p.Category = input.Category

	if err := uc.repo.Put(ctx, input.Key, p); err != nil {
		return err
	}

	if input.Stock != stockBefore {
		uc.recordMovement(ctx, input.Key, input.Stock-stockBefore, stockBefore, model.MovementAdjustment, input.Actor)
	}
	return nil
}

func (uc *catalogUseCase) AdjustStock(ctx context.Context, input *dto.AdjustStockInput) error {
	p, err := uc.repo.Get(ctx, input.Key)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("product %q: %w", input.Key, model.ErrNotFound)
	}

	before := p.Stock
	after := before + input.Delta
	if after < 0 {
		return fmt.Errorf("%w: %s has %.1f %s, requested %.1f",
			model.ErrInsufficientStock, p.Name, before, p.Unit, -input.Delta)
	}

	p.Stock = after
	if err := uc.repo.Put(ctx, input.Key, p); err != nil {
		return err
	}

	uc.recordMovement(ctx, input.Key, input.Delta, before, input.Reference, input.Actor)
	return nil
}

func (uc *catalogUseCase) Stats(ctx context.Context) (*dto.CatalogStats, error) {
	entries, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.CatalogStats{TotalProducts: len(entries)}
	for _, e := range entries {
		switch e.Product.StockStatus() {
		case model.StockDepleted:
			stats.Depleted++
		case model.StockLow:
			stats.LowStock++
		}
		stats.InventoryValue += e.Product.Stock * e.Product.Price
	}
	return stats, nil
}

// recordMovement never fails the stock mutation it audits.
func (uc *catalogUseCase) recordMovement(ctx context.Context, key string, delta, before float64, reference, actor string) {
	m := model.StockMovement{
		ID:         uuid.New().String(),
		ProductKey: key,
		Delta:      delta,
		Before:     before,
		After:      before + delta,
		Reference:  reference,
		Actor:      actor,
		Date:       model.NewSaleTime(time.Now()),
	}
	if err := uc.movements.Append(ctx, m); err != nil {
		uc.logger.Error("failed to record stock movement",
			zap.String("product", key), zap.Error(err))
	}
}

func validateProduct(name, description string, price, stock float64) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: name and description are required", model.ErrInvalidInput)
	}
	if price <= 0 {
		return fmt.Errorf("%w: price must be greater than 0", model.ErrInvalidInput)
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", model.ErrInvalidInput)
	}
	return nil
}

var keyReplacer = strings.NewReplacer(
	" ", "_",
	"ñ", "n",
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ú", "u",
	"ü", "u",
)

// makeKey turns a display name into a product slug.
func makeKey(name string) string {
	return keyReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
}

// uniqueKey appends a numeric suffix, starting at 1, until the slug is free.
func (uc *catalogUseCase) uniqueKey(ctx context.Context, name string) (string, error) {
	base := makeKey(name)
	key := base
	for counter := 1; ; counter++ {
		exists, err := uc.repo.Exists(ctx, key)
		if err != nil {
			return "", err
		}
		if !exists {
			return key, nil
		}
		key = fmt.Sprintf("%s_%d", base, counter)
	}
}
