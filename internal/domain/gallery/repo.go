package gallery

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup or mutation targets an unknown row.
var ErrNotFound = errors.New("not found")

type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	Update(ctx context.Context, it *Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all rows, optionally filtered by category.
	List(ctx context.Context, category string, limit, offset int) ([]*Item, int, error)
	// ListActive returns active rows only, optionally filtered by category.
	ListActive(ctx context.Context, category string) ([]*Item, error)
}
