package repository

import (
	"context"
	"strings"
	"sync"

	"beaticafe/internal/domain/model"
	domainrepo "beaticafe/internal/repository"

	"github.com/go-faster/errors"
)

type userMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*model.User
	byEmail map[string]string
}

func NewUserMemoryRepository() domainrepo.UserRepository {
	return &userMemoryRepository{
		byID:    make(map[string]*model.User),
		byEmail: make(map[string]string),
	}
}

func (r *userMemoryRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// same rule as the unique index in postgres
	if _, taken := r.byEmail[strings.ToLower(user.Email)]; taken {
		return errors.Errorf("email %q already used", user.Email)
	}
	u := *user
	r.byID[u.ID] = &u
	r.byEmail[strings.ToLower(u.Email)] = u.ID
	return nil
}

func (r *userMemoryRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domainrepo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *userMemoryRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	id, ok := r.byEmail[strings.ToLower(email)]
	r.mu.RUnlock()
	if !ok {
		return nil, domainrepo.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *userMemoryRepository) Update(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; !ok {
		return domainrepo.ErrNotFound
	}
	u := *user
	r.byID[u.ID] = &u
	return nil
}

func (r *userMemoryRepository) IncrementTokenVersion(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return domainrepo.ErrNotFound
	}
	u.TokenVersion++
	return nil
}
