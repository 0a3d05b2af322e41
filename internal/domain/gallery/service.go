package gallery

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validateItem(it *Item) error {
	if it.Title == "" {
		return fmt.Errorf("title is required")
	}
	if it.ImageURL == "" {
		return fmt.Errorf("image_url is required")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, it *Item) error {
	if err := validateItem(it); err != nil {
		return err
	}
	return s.repo.Create(ctx, it)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, it *Item) error {
	if err := validateItem(it); err != nil {
		return err
	}
	return s.repo.Update(ctx, it)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, category string, limit, offset int) ([]*Item, int, error) {
	return s.repo.List(ctx, category, limit, offset)
}

func (s *Service) ListActive(ctx context.Context, category string) ([]*Item, error) {
	return s.repo.ListActive(ctx, category)
}

func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active *bool) (*Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active != nil {
		it.Active = *active
	} else {
		it.Active = !it.Active
	}
	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}
