package cart_test

import (
	"context"
	"testing"

	"github.com/fekuna/tortilleria-pos/internal/cart"
	"github.com/fekuna/tortilleria-pos/internal/catalog"
	"github.com/fekuna/tortilleria-pos/internal/catalog/dto"
	catalogRepo "github.com/fekuna/tortilleria-pos/internal/catalog/repository"
	catalogUC "github.com/fekuna/tortilleria-pos/internal/catalog/usecase"
	"github.com/fekuna/tortilleria-pos/internal/model"
	movementRepo "github.com/fekuna/tortilleria-pos/internal/movement/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalog(t *testing.T) catalog.UseCase {
	t.Helper()
	uc := catalogUC.NewCatalogUseCase(catalogRepo.NewMemoryRepository(), movementRepo.NewMemoryRepository(), zap.NewNop())

	_, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name:        "Tortillas de Maíz",
		Description: "Tortillas de maíz tradicionales",
		Price:       25.0,
		Stock:       50.0,
		Unit:        "kg",
		Category:    "tortillas",
	})
	require.NoError(t, err)
	_, err = uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		Name:        "Masa de Maíz",
		Description: "Masa fresca",
		Price:       20.0,
		Stock:       10.0,
		Unit:        "kg",
		Category:    "masa",
	})
	require.NoError(t, err)
	return uc
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	c := cart.New(newCatalog(t))

	require.NoError(t, c.Add(ctx, "tortillas_de_maiz", 2.0))
	assert.Equal(t, 2.0, c.Quantity("tortillas_de_maiz"))

	total, err := c.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50.0, total)
}

func TestAdd_InvalidQuantity(t *testing.T) {
	ctx := context.Background()
	c := cart.New(newCatalog(t))

	assert.ErrorIs(t, c.Add(ctx, "tortillas_de_maiz", 0), model.ErrInvalidInput)
	assert.ErrorIs(t, c.Add(ctx, "tortillas_de_maiz", -1.5), model.ErrInvalidInput)
	assert.True(t, c.IsEmpty())
}

func TestAdd_ExceedsStock(t *testing.T) {
	ctx := context.Background()
	c := cart.New(newCatalog(t))

	err := c.Add(ctx, "tortillas_de_maiz", 60.0)
	assert.ErrorIs(t, err, model.ErrInsufficientStock)
	assert.True(t, c.IsEmpty())
}

func TestAdd_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	c := cart.New(newCatalog(t))

	assert.ErrorIs(t, c.Add(ctx, "no_existe", 1.0), model.ErrNotFound)
}

func TestAdd_AccumulatesAndClamps(t *testing.T) {
	ctx := context.Background()
	c := cart.New(newCatalog(t))

	require.NoError(t, c.Add(ctx, "masa_de_maiz", 6.0))
	// 6 + 6 would exceed the stock of 10: clamped, not rejected.
	require.NoError(t, c.Add(ctx, "masa_de_maiz", 6.0))
	assert.Equal(t, 10.0, c.Quantity("masa_de_maiz"))
}

func TestRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	c := cart.New(newCatalog(t))

	require.NoError(t, c.Add(ctx, "tortillas_de_maiz", 1.0))
	require.NoError(t, c.Add(ctx, "masa_de_maiz", 2.0))

	c.Remove("tortillas_de_maiz")
	assert.Equal(t, []string{"masa_de_maiz"}, c.Keys())

	// Removing an absent key is a no-op.
	c.Remove("no_existe")
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.True(t, c.IsEmpty())
}

func TestLines_PreserveOrderAndPriceLive(t *testing.T) {
	ctx := context.Background()
	cat := newCatalog(t)
	c := cart.New(cat)

	require.NoError(t, c.Add(ctx, "tortillas_de_maiz", 2.0))
	require.NoError(t, c.Add(ctx, "masa_de_maiz", 1.0))

	lines, err := c.Lines(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "tortillas_de_maiz", lines[0].Key)
	assert.Equal(t, 50.0, lines[0].Subtotal)
	assert.Equal(t, "masa_de_maiz", lines[1].Key)

	// Totals always price against the live catalog.
	err = cat.UpdateProduct(ctx, &dto.UpdateProductInput{
		Key:         "tortillas_de_maiz",
		Name:        "Tortillas de Maíz",
		Description: "Tortillas de maíz tradicionales",
		Price:       30.0,
		Stock:       50.0,
		Unit:        "kg",
		Category:    "tortillas",
	})
	require.NoError(t, err)

	total, err := c.Total(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.0*30.0+1.0*20.0, total)
}
