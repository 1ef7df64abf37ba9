package usecase

import (
	"context"
	"testing"

	"github.com/fekuna/tortilleria-pos/internal/catalog"
	"github.com/fekuna/tortilleria-pos/internal/catalog/dto"
	catalogRepo "github.com/fekuna/tortilleria-pos/internal/catalog/repository"
	"github.com/fekuna/tortilleria-pos/internal/model"
	"github.com/fekuna/tortilleria-pos/internal/movement"
	movementRepo "github.com/fekuna/tortilleria-pos/internal/movement/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCatalog(t *testing.T) (catalog.UseCase, movement.Repository) {
	t.Helper()
	movements := movementRepo.NewMemoryRepository()
	uc := NewCatalogUseCase(catalogRepo.NewMemoryRepository(), movements, zap.NewNop())
	return uc, movements
}

func maizInput() *dto.CreateProductInput {
	return &dto.CreateProductInput{
		Name:        "Tortillas de Maíz",
		Description: "Tortillas de maíz tradicionales",
		Price:       25.0,
		Stock:       50.0,
		Unit:        "kg",
		Category:    "tortillas",
	}
}

func TestCreateProduct_GeneratesSlug(t *testing.T) {
	uc, _ := newTestCatalog(t)
	ctx := context.Background()

	key, err := uc.CreateProduct(ctx, maizInput())
	require.NoError(t, err)
	assert.Equal(t, "tortillas_de_maiz", key)

	p, err := uc.GetProduct(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 50.0, p.Stock)
	assert.Equal(t, 25.0, p.Price)
}

func TestCreateProduct_CollisionSuffix(t *testing.T) {
	uc, _ := newTestCatalog(t)
	ctx := context.Background()

	first, err := uc.CreateProduct(ctx, maizInput())
	require.NoError(t, err)
	second, err := uc.CreateProduct(ctx, maizInput())
	require.NoError(t, err)
	third, err := uc.CreateProduct(ctx, maizInput())
	require.NoError(t, err)

	assert.Equal(t, "tortillas_de_maiz", first)
	assert.Equal(t, "tortillas_de_maiz_1", second)
	assert.Equal(t, "tortillas_de_maiz_2", third)
}

func TestCreateProduct_Validation(t *testing.T) {
	uc, _ := newTestCatalog(t)
	ctx := context.Background()

	cases := []struct {
		name string
		edit func(*dto.CreateProductInput)
	}{
		{"empty name", func(in *dto.CreateProductInput) { in.Name = "  " }},
		{"empty description", func(in *dto.CreateProductInput) { in.Description = "" }},
		{"zero price", func(in *dto.CreateProductInput) { in.Price = 0 }},
		{"negative price", func(in *dto.CreateProductInput) { in.Price = -1 }},
		{"negative stock", func(in *dto.CreateProductInput) { in.Stock = -0.5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := maizInput()
			tc.edit(input)
			_, err := uc.CreateProduct(ctx, input)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	uc, _ := newTestCatalog(t)

	_, err := uc.GetProduct(context.Background(), "no_existe")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUpdateProduct(t *testing.T) {
	uc, movements := newTestCatalog(t)
	ctx := context.Background()

	key, err := uc.CreateProduct(ctx, maizInput())
	require.NoError(t, err)

	err = uc.UpdateProduct(ctx, &dto.UpdateProductInput{
		Key:         key,
		Name:        "Tortillas de Maíz Azul",
		Description: "Maíz azul criollo",
		Price:       28.0,
		Stock:       60.0,
		Unit:        "kg",
		Category:    "tortillas",
		Actor:       "Gerente General",
	})
	require.NoError(t, err)

	p, err := uc.GetProduct(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "Tortillas de Maíz Azul", p.Name)
	assert.Equal(t, 28.0, p.Price)
	assert.Equal(t, 60.0, p.Stock)

	// The stock change (50 -> 60) is audited.
	ms, err := movements.ListByProduct(ctx, key)
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, 10.0, ms[0].Delta)
	assert.Equal(t, model.MovementAdjustment, ms[0].Reference)
	assert.Equal(t, "Gerente General", ms[0].Actor)
	assert.NotEmpty(t, ms[0].ID)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	uc, _ := newTestCatalog(t)

	err := uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{
		Key: "no_existe", Name: "x", Description: "y", Price: 1, Stock: 1,
	})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAdjustStock(t *testing.T) {
	uc, movements := newTestCatalog(t)
	ctx := context.Background()

	key, err := uc.CreateProduct(ctx, maizInput())
	require.NoError(t, err)

	err = uc.AdjustStock(ctx, &dto.AdjustStockInput{
		Key: key, Delta: -2.0, Reference: model.MovementSale, Actor: "Luis Rodríguez",
	})
	require.NoError(t, err)

	p, err := uc.GetProduct(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 48.0, p.Stock)

	ms, err := movements.ListByProduct(ctx, key)
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, -2.0, ms[0].Delta)
	assert.Equal(t, 50.0, ms[0].Before)
	assert.Equal(t, 48.0, ms[0].After)
}

func TestAdjustStock_InsufficientStock(t *testing.T) {
	uc, movements := newTestCatalog(t)
	ctx := context.Background()

	key, err := uc.CreateProduct(ctx, maizInput())
	require.NoError(t, err)

	err = uc.AdjustStock(ctx, &dto.AdjustStockInput{Key: key, Delta: -60.0})
	assert.ErrorIs(t, err, model.ErrInsufficientStock)

	// Nothing changed, nothing audited.
	p, err := uc.GetProduct(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 50.0, p.Stock)

	ms, err := movements.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, ms)
}

func TestStats(t *testing.T) {
	uc, _ := newTestCatalog(t)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, maizInput()) // stock 50, price 25
	require.NoError(t, err)

	low := maizInput()
	low.Name = "Masa de Maíz"
	low.Stock = 3.0
	low.Price = 20.0
	_, err = uc.CreateProduct(ctx, low)
	require.NoError(t, err)

	out := maizInput()
	out.Name = "Masa de Harina"
	out.Stock = 0
	out.Price = 22.0
	_, err = uc.CreateProduct(ctx, out)
	require.NoError(t, err)

	stats, err := uc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 1, stats.Depleted)
	assert.Equal(t, 1, stats.LowStock)
	assert.Equal(t, 50.0*25.0+3.0*20.0, stats.InventoryValue)
}

func TestMakeKey(t *testing.T) {
	assert.Equal(t, "tortillas_de_maiz", makeKey("Tortillas de Maíz"))
	assert.Equal(t, "nopales", makeKey("Ñopales"))
	assert.Equal(t, "cafe_de_olla", makeKey("  Café de Olla "))
}
