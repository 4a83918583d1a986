package repositories

import (
	"context"
	"sync"

	"github.com/lapuropizza/storefront/internal/models"
)

// MemoryOrderRepository keeps order history in memory, for tests and
// deployments without Postgres.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []*models.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) BulkCreate(_ context.Context, orders []*models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range orders {
		o := *order
		r.orders = append(r.orders, &o)
	}
	return nil
}

func (r *MemoryOrderRepository) Create(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o := *order
	r.orders = append(r.orders, &o)
	return nil
}

func (r *MemoryOrderRepository) GetAll(_ context.Context) ([]*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Order, len(r.orders))
	for i, order := range r.orders {
		o := *order
		out[i] = &o
	}
	return out, nil
}

func (r *MemoryOrderRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders), nil
}

func (r *MemoryOrderRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = nil
	return nil
}
