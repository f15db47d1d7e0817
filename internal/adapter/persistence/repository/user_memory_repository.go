package repository

import (
	"context"
	"strings"
	"sync"

	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase/interfaces"
)

// UserMemoryRepository holds platform accounts in memory. Accounts are
// owned by this service in every storage mode, so there is no remote
// variant.

type UserMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.User
}

var _ interfaces.IUserRepository = (*UserMemoryRepository)(nil)

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{}
}

func (r *UserMemoryRepository) Create(_ context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]entities.User{u}, r.items...)
	return u, nil
}

func (r *UserMemoryRepository) GetByID(_ context.Context, id string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.ID == id {
			return u, nil
		}
	}
	return entities.User{}, nil
}

func (r *UserMemoryRepository) GetByEmail(_ context.Context, email string) (entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.Email == email {
			return u, nil
		}
	}
	return entities.User{}, nil
}

func (r *UserMemoryRepository) List(_ context.Context) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.User, len(r.items))
	copy(out, r.items)
	return out, nil
}
