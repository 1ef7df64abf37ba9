package repository

import (
	"context"
	"sync"

	"github.com/fekuna/tortilleria-pos/internal/model"
	"github.com/fekuna/tortilleria-pos/internal/user"
	"github.com/fekuna/tortilleria-pos/internal/user/dto"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	order []string
	users map[string]model.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: map[string]model.User{},
	}
}

// Verify interface compliance
var _ user.Repository = (*MemoryRepository)(nil)

func (r *MemoryRepository) Get(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]dto.UserEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]dto.UserEntry, 0, len(r.order))
	for _, username := range r.order {
		entries = append(entries, dto.UserEntry{Username: username, User: r.users[username]})
	}
	return entries, nil
}

func (r *MemoryRepository) Put(ctx context.Context, username string, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; !ok {
		r.order = append(r.order, username)
	}
	r.users[username] = *u
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, username string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[username]; !ok {
		return nil
	}
	delete(r.users, username)
	for i, name := range r.order {
		if name == username {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryRepository) Replace(ctx context.Context, entries []dto.UserEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = make([]string, 0, len(entries))
	r.users = make(map[string]model.User, len(entries))
	for _, e := range entries {
		if _, ok := r.users[e.Username]; !ok {
			r.order = append(r.order, e.Username)
		}
		r.users[e.Username] = e.User
	}
	return nil
}
