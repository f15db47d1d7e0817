package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase/interfaces"
)

// OrderMemoryRepository is a mutex-guarded in-memory order store behind
// the repository port. The same use case logic runs against it in tests
// and against DynamoDB or the backend API in production.
//
// New orders are prepended, so listings come back newest-first.
// OrderNumber is PED-<year>-<seq> with seq monotonically increasing for
// the lifetime of the store.

type OrderMemoryRepository struct {
	mu     sync.RWMutex
	orders []entities.ServiceOrder
	seq    int
}

var _ interfaces.IOrderRepository = (*OrderMemoryRepository)(nil)

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{}
}

func (r *OrderMemoryRepository) Create(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	if o.OrderNumber == "" {
		o.OrderNumber = fmt.Sprintf("PED-%d-%04d", time.Now().Year(), r.seq)
	}
	r.orders = append([]entities.ServiceOrder{o}, r.orders...)
	return o, nil
}

func (r *OrderMemoryRepository) GetByID(_ context.Context, id string) (entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return entities.ServiceOrder{}, nil
}

func (r *OrderMemoryRepository) List(_ context.Context, filter entities.OrderFilter) ([]entities.ServiceOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.ServiceOrder, 0, len(r.orders))
	for _, o := range r.orders {
		if filter.Matches(o) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *OrderMemoryRepository) Update(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == o.ID {
			r.orders[i] = o
			return o, nil
		}
	}
	return entities.ServiceOrder{}, nil
}

// UpdateIf compares the stored status and writes under the same lock, so
// concurrent transitions on one order serialize and at most one wins.
func (r *OrderMemoryRepository) UpdateIf(_ context.Context, o entities.ServiceOrder, from entities.OrderStatus) (entities.ServiceOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == o.ID {
			if r.orders[i].Status != from {
				return entities.ServiceOrder{}, interfaces.ErrStatusConflict
			}
			r.orders[i] = o
			return o, nil
		}
	}
	return entities.ServiceOrder{}, nil
}
