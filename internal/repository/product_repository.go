package repository

import (
	"context"
	"errors"

	"beaticafe/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ProductRepository is the catalog source. Products come back in catalog
// order (Position); the catalog engine relies on it for tie-breaks.
type ProductRepository interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)

	// Upsert inserts or overwrites by ID (seeding).
	Upsert(ctx context.Context, p model.Product) error
}
