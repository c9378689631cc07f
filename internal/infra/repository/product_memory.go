package repository

import (
	"context"
	"slices"
	"sync"

	"beaticafe/internal/domain/model"
	repo "beaticafe/internal/repository"
)

// ProductMemoryRepository serves the embedded catalog without a database.
type ProductMemoryRepository struct {
	mu       sync.RWMutex
	products []model.Product
}

func NewProductMemoryRepository(products []model.Product) *ProductMemoryRepository {
	r := &ProductMemoryRepository{}
	for _, p := range products {
		r.put(p)
	}
	return r
}

func (r *ProductMemoryRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.products), nil
}

func (r *ProductMemoryRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.index(id); i >= 0 {
		return r.products[i], nil
	}
	return model.Product{}, repo.ErrNotFound
}

func (r *ProductMemoryRepository) Upsert(ctx context.Context, p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(p)
	return nil
}

func (r *ProductMemoryRepository) put(p model.Product) {
	if i := r.index(p.ID); i >= 0 {
		r.products[i] = p
	} else {
		r.products = append(r.products, p)
	}
	slices.SortStableFunc(r.products, func(a, b model.Product) int { return a.Position - b.Position })
}

func (r *ProductMemoryRepository) index(id string) int {
	return slices.IndexFunc(r.products, func(p model.Product) bool { return p.ID == id })
}
