package repository

import (
	"context"
	"sync"

	"github.com/fekuna/tortilleria-pos/internal/catalog"
	"github.com/fekuna/tortilleria-pos/internal/catalog/dto"
	"github.com/fekuna/tortilleria-pos/internal/model"
)

// MemoryRepository keeps the catalog in memory, insertion-ordered. The
// persistence gateway snapshots it through List and refills it through
// Replace.
type MemoryRepository struct {
	mu    sync.RWMutex
	keys  []string
	items map[string]model.Product
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: map[string]model.Product{},
	}
}

// Verify interface compliance
var _ catalog.Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) Get(ctx context.Context, key string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[key]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *MemoryRepository) Exists(ctx context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[key]
	return ok, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]dto.ProductEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]dto.ProductEntry, 0, len(r.keys))
	for _, key := range r.keys {
		entries = append(entries, dto.ProductEntry{Key: key, Product: r.items[key]})
	}
	return entries, nil
}

func (r *MemoryRepository) Put(ctx context.Context, key string, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.items[key] = *p
	return nil
}

func (r *MemoryRepository) Replace(ctx context.Context, entries []dto.ProductEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.keys = make([]string, 0, len(entries))
	r.items = make(map[string]model.Product, len(entries))
	for _, e := range entries {
		if _, ok := r.items[e.Key]; !ok {
			r.keys = append(r.keys, e.Key)
		}
		r.items[e.Key] = e.Product
	}
	return nil
}
