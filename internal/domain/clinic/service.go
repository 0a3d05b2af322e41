package clinic

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Service struct {
	pages      ClinicPageRepository
	treatments TreatmentPageRepository
	services   ServiceItemRepository
	equipment  EquipmentRepository
}

func NewService(pages ClinicPageRepository, treatments TreatmentPageRepository, services ServiceItemRepository, equipment EquipmentRepository) *Service {
	return &Service{
		pages:      pages,
		treatments: treatments,
		services:   services,
		equipment:  equipment,
	}
}

func validateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug is required")
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("slug must be lowercase letters, digits, and hyphens")
	}
	return nil
}

// -- Clinic pages --

func (s *Service) CreateClinicPage(ctx context.Context, p *ClinicPage) error {
	if err := validateClinicPage(p); err != nil {
		return err
	}
	return s.pages.Create(ctx, p)
}

func (s *Service) GetClinicPage(ctx context.Context, id uuid.UUID) (*ClinicPage, error) {
	return s.pages.GetByID(ctx, id)
}

// GetPublicClinicPage resolves an active page by slug.
func (s *Service) GetPublicClinicPage(ctx context.Context, slug string) (*ClinicPage, error) {
	p, err := s.pages.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) UpdateClinicPage(ctx context.Context, p *ClinicPage) error {
	if err := validateClinicPage(p); err != nil {
		return err
	}
	return s.pages.Update(ctx, p)
}

func (s *Service) DeleteClinicPage(ctx context.Context, id uuid.UUID) error {
	return s.pages.Delete(ctx, id)
}

func (s *Service) ListClinicPages(ctx context.Context, limit, offset int) ([]*ClinicPage, int, error) {
	return s.pages.List(ctx, limit, offset)
}

func (s *Service) ListActiveClinicPages(ctx context.Context) ([]*ClinicPage, error) {
	return s.pages.ListActive(ctx)
}

func (s *Service) SetClinicPageActive(ctx context.Context, id uuid.UUID, active *bool) (*ClinicPage, error) {
	p, err := s.pages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active != nil {
		p.Active = *active
	} else {
		p.Active = !p.Active
	}
	if err := s.pages.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func validateClinicPage(p *ClinicPage) error {
	if err := validateSlug(p.Slug); err != nil {
		return err
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Body == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}

// -- Treatment pages --

func (s *Service) CreateTreatmentPage(ctx context.Context, p *TreatmentPage) error {
	if err := validateTreatmentPage(p); err != nil {
		return err
	}
	return s.treatments.Create(ctx, p)
}

func (s *Service) GetTreatmentPage(ctx context.Context, id uuid.UUID) (*TreatmentPage, error) {
	return s.treatments.GetByID(ctx, id)
}

func (s *Service) GetPublicTreatmentPage(ctx context.Context, slug string) (*TreatmentPage, error) {
	p, err := s.treatments.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) UpdateTreatmentPage(ctx context.Context, p *TreatmentPage) error {
	if err := validateTreatmentPage(p); err != nil {
		return err
	}
	return s.treatments.Update(ctx, p)
}

func (s *Service) DeleteTreatmentPage(ctx context.Context, id uuid.UUID) error {
	return s.treatments.Delete(ctx, id)
}

func (s *Service) ListTreatmentPages(ctx context.Context, limit, offset int) ([]*TreatmentPage, int, error) {
	return s.treatments.List(ctx, limit, offset)
}

func (s *Service) ListActiveTreatmentPages(ctx context.Context) ([]*TreatmentPage, error) {
	return s.treatments.ListActive(ctx)
}

func (s *Service) SetTreatmentPageActive(ctx context.Context, id uuid.UUID, active *bool) (*TreatmentPage, error) {
	p, err := s.treatments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active != nil {
		p.Active = *active
	} else {
		p.Active = !p.Active
	}
	if err := s.treatments.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func validateTreatmentPage(p *TreatmentPage) error {
	if err := validateSlug(p.Slug); err != nil {
		return err
	}
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Body == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}

// -- Services --

func (s *Service) CreateServiceItem(ctx context.Context, si *ServiceItem) error {
	if si.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.services.Create(ctx, si)
}

func (s *Service) GetServiceItem(ctx context.Context, id uuid.UUID) (*ServiceItem, error) {
	return s.services.GetByID(ctx, id)
}

func (s *Service) UpdateServiceItem(ctx context.Context, si *ServiceItem) error {
	if si.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.services.Update(ctx, si)
}

func (s *Service) DeleteServiceItem(ctx context.Context, id uuid.UUID) error {
	return s.services.Delete(ctx, id)
}

func (s *Service) ListServiceItems(ctx context.Context, limit, offset int) ([]*ServiceItem, int, error) {
	return s.services.List(ctx, limit, offset)
}

func (s *Service) ListActiveServiceItems(ctx context.Context) ([]*ServiceItem, error) {
	return s.services.ListActive(ctx)
}

func (s *Service) SetServiceItemActive(ctx context.Context, id uuid.UUID, active *bool) (*ServiceItem, error) {
	si, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active != nil {
		si.Active = *active
	} else {
		si.Active = !si.Active
	}
	if err := s.services.Update(ctx, si); err != nil {
		return nil, err
	}
	return si, nil
}

// -- Equipment --

func (s *Service) CreateEquipment(ctx context.Context, e *Equipment) error {
	if e.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.equipment.Create(ctx, e)
}

func (s *Service) GetEquipment(ctx context.Context, id uuid.UUID) (*Equipment, error) {
	return s.equipment.GetByID(ctx, id)
}

func (s *Service) UpdateEquipment(ctx context.Context, e *Equipment) error {
	if e.Name == "" {
		return fmt.Errorf("name is required")
	}
	return s.equipment.Update(ctx, e)
}

func (s *Service) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	return s.equipment.Delete(ctx, id)
}

func (s *Service) ListEquipment(ctx context.Context, limit, offset int) ([]*Equipment, int, error) {
	return s.equipment.List(ctx, limit, offset)
}

func (s *Service) ListActiveEquipment(ctx context.Context) ([]*Equipment, error) {
	return s.equipment.ListActive(ctx)
}

func (s *Service) SetEquipmentActive(ctx context.Context, id uuid.UUID, active *bool) (*Equipment, error) {
	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active != nil {
		e.Active = *active
	} else {
		e.Active = !e.Active
	}
	if err := s.equipment.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
