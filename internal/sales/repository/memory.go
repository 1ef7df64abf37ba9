package repository

import (
	"context"
	"sync"

	"github.com/fekuna/tortilleria-pos/internal/model"
	"github.com/fekuna/tortilleria-pos/internal/sales"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	sales []model.Sale
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Verify interface compliance
var _ sales.Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) Append(ctx context.Context, sale model.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sales = append(r.sales, sale)
	return nil
}

func (r *MemoryRepository) ListAll(ctx context.Context) ([]model.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sales), nil
}

func (r *MemoryRepository) Replace(ctx context.Context, sales []model.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sales = make([]model.Sale, len(sales))
	copy(r.sales, sales)
	return nil
}
