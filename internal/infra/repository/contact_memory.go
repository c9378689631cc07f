package repository

import (
	"context"
	"sync"

	"beaticafe/internal/domain/model"
	repo "beaticafe/internal/repository"
)

type contactMemoryRepository struct {
	mu   sync.Mutex
	msgs []model.ContactMessage
}

func NewContactMemoryRepository() repo.ContactRepository {
	return &contactMemoryRepository{}
}

func (r *contactMemoryRepository) Create(ctx context.Context, msg model.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
	return nil
}

func (r *contactMemoryRepository) List(ctx context.Context, filter repo.ContactFilter) ([]model.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []model.ContactMessage{}
	skip := max(filter.Offset, 0)
	limit := filter.NormalizedLimit()

	// append order is creation order; walk backwards for newest first
	for i := len(r.msgs) - 1; i >= 0 && len(out) < limit; i-- {
		m := r.msgs[i]
		if filter.Kind != nil && m.Kind != *filter.Kind {
			continue
		}
		if filter.Email != "" && m.Email != filter.Email {
			continue
		}
		if filter.CreatedFrom != nil && m.CreatedAt.Before(*filter.CreatedFrom) {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
