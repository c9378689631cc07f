package repository

import (
	"context"

	"beaticafe/internal/domain/model"
	repo "beaticafe/internal/repository"

	"github.com/go-faster/errors"
	"gorm.io/gorm"
)

type contactGormRepository struct {
	db *gorm.DB
}

func NewContactGormRepository(db *gorm.DB) repo.ContactRepository {
	return &contactGormRepository{db: db}
}

func (r *contactGormRepository) Create(ctx context.Context, msg model.ContactMessage) error {
	if err := r.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return errors.Wrap(err, "create contact message")
	}
	return nil
}

func (r *contactGormRepository) List(ctx context.Context, filter repo.ContactFilter) ([]model.ContactMessage, error) {
	q := r.db.WithContext(ctx).Model(&model.ContactMessage{})

	if filter.Kind != nil {
		q = q.Where("kind = ?", *filter.Kind)
	}
	if filter.Email != "" {
		q = q.Where("email = ?", filter.Email)
	}
	if filter.CreatedFrom != nil {
		q = q.Where("created_at >= ?", *filter.CreatedFrom)
	}

	// newest first
	q = q.Order("created_at DESC").Order("id DESC")

	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	q = q.Limit(filter.NormalizedLimit()).Offset(offset)

	var msgs []model.ContactMessage
	if err := q.Find(&msgs).Error; err != nil {
		return nil, errors.Wrap(err, "list contact messages")
	}
	return msgs, nil
}
