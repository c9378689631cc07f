package repository

import (
	"context"
	"time"

	"beaticafe/internal/domain/model"
)

// ContactFilter narrows the staff listing of messages.
type ContactFilter struct {
	Kind        *model.ContactKind
	Email       string
	CreatedFrom *time.Time
	Limit       int
	Offset      int
}

// NormalizedLimit is Limit, or 50 when unset or above 200.
func (f ContactFilter) NormalizedLimit() int {
	if f.Limit <= 0 || f.Limit > 200 {
		return 50
	}
	return f.Limit
}

// ContactRepository stores contact messages and issue reports.
type ContactRepository interface {
	Create(ctx context.Context, msg model.ContactMessage) error
	// List returns newest first.
	List(ctx context.Context, filter ContactFilter) ([]model.ContactMessage, error)
}
