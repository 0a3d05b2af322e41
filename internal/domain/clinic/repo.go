package clinic

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a lookup or mutation targets an unknown row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateSlug is returned when a page slug collides with an existing one.
	ErrDuplicateSlug = errors.New("slug already exists")
)

type ClinicPageRepository interface {
	Create(ctx context.Context, p *ClinicPage) error
	GetByID(ctx context.Context, id uuid.UUID) (*ClinicPage, error)
	GetBySlug(ctx context.Context, slug string) (*ClinicPage, error)
	Update(ctx context.Context, p *ClinicPage) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*ClinicPage, int, error)
	ListActive(ctx context.Context) ([]*ClinicPage, error)
}

type TreatmentPageRepository interface {
	Create(ctx context.Context, p *TreatmentPage) error
	GetByID(ctx context.Context, id uuid.UUID) (*TreatmentPage, error)
	GetBySlug(ctx context.Context, slug string) (*TreatmentPage, error)
	Update(ctx context.Context, p *TreatmentPage) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*TreatmentPage, int, error)
	ListActive(ctx context.Context) ([]*TreatmentPage, error)
}

type ServiceItemRepository interface {
	Create(ctx context.Context, s *ServiceItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceItem, error)
	Update(ctx context.Context, s *ServiceItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*ServiceItem, int, error)
	ListActive(ctx context.Context) ([]*ServiceItem, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, e *Equipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Equipment, error)
	Update(ctx context.Context, e *Equipment) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Equipment, int, error)
	ListActive(ctx context.Context) ([]*Equipment, error)
}
