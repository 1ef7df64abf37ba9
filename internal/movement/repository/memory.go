package repository

import (
	"context"
	"sync"

	"github.com/fekuna/tortilleria-pos/internal/model"
	"github.com/fekuna/tortilleria-pos/internal/movement"
)

type MemoryRepository struct {
	mu        sync.RWMutex
	movements []model.StockMovement
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Verify interface compliance
var _ movement.Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) Append(ctx context.Context, m model.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.movements = append(r.movements, m)
	return nil
}

func (r *MemoryRepository) ListAll(ctx context.Context) ([]model.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.StockMovement, len(r.movements))
	copy(out, r.movements)
	return out, nil
}

func (r *MemoryRepository) ListByProduct(ctx context.Context, key string) ([]model.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.StockMovement
	for _, m := range r.movements {
		if m.ProductKey == key {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MemoryRepository) Replace(ctx context.Context, movements []model.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.movements = make([]model.StockMovement, len(movements))
	copy(r.movements, movements)
	return nil
}
