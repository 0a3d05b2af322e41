package content

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup or mutation targets an unknown row.
var ErrNotFound = errors.New("not found")

type HeroSlideRepository interface {
	Create(ctx context.Context, s *HeroSlide) error
	GetByID(ctx context.Context, id uuid.UUID) (*HeroSlide, error)
	Update(ctx context.Context, s *HeroSlide) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*HeroSlide, int, error)
	ListActive(ctx context.Context) ([]*HeroSlide, error)
}

type PopupRepository interface {
	Create(ctx context.Context, p *Popup) error
	GetByID(ctx context.Context, id uuid.UUID) (*Popup, error)
	Update(ctx context.Context, p *Popup) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*Popup, int, error)
	ListVisible(ctx context.Context, at time.Time) ([]*Popup, error)
}

type NoticeRepository interface {
	Create(ctx context.Context, n *Notice) error
	GetByID(ctx context.Context, id uuid.UUID) (*Notice, error)
	Update(ctx context.Context, n *Notice) error
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Notice, int, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}

type InfoCardRepository interface {
	Create(ctx context.Context, ic *InfoCard) error
	GetByID(ctx context.Context, id uuid.UUID) (*InfoCard, error)
	Update(ctx context.Context, ic *InfoCard) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*InfoCard, int, error)
	ListActive(ctx context.Context) ([]*InfoCard, error)
}

type HealthInfoRepository interface {
	Create(ctx context.Context, hi *HealthInfo) error
	GetByID(ctx context.Context, id uuid.UUID) (*HealthInfo, error)
	Update(ctx context.Context, hi *HealthInfo) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]*HealthInfo, int, error)
	ListActive(ctx context.Context) ([]*HealthInfo, error)
}
