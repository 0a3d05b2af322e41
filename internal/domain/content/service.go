package content

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	slides     HeroSlideRepository
	popups     PopupRepository
	notices    NoticeRepository
	cards      InfoCardRepository
	healthInfo HealthInfoRepository
}

func NewService(slides HeroSlideRepository, popups PopupRepository, notices NoticeRepository, cards InfoCardRepository, healthInfo HealthInfoRepository) *Service {
	return &Service{
		slides:     slides,
		popups:     popups,
		notices:    notices,
		cards:      cards,
		healthInfo: healthInfo,
	}
}

// -- Hero slides --

func (s *Service) CreateHeroSlide(ctx context.Context, hs *HeroSlide) error {
	if err := validateHeroSlide(hs); err != nil {
		return err
	}
	return s.slides.Create(ctx, hs)
}

func (s *Service) GetHeroSlide(ctx context.Context, id uuid.UUID) (*HeroSlide, error) {
	return s.slides.GetByID(ctx, id)
}

func (s *Service) UpdateHeroSlide(ctx context.Context, hs *HeroSlide) error {
	if err := validateHeroSlide(hs); err != nil {
		return err
	}
	return s.slides.Update(ctx, hs)
}

func (s *Service) DeleteHeroSlide(ctx context.Context, id uuid.UUID) error {
	return s.slides.Delete(ctx, id)
}

func (s *Service) ListHeroSlides(ctx context.Context, limit, offset int) ([]*HeroSlide, int, error) {
	return s.slides.List(ctx, limit, offset)
}

func (s *Service) ListActiveHeroSlides(ctx context.Context) ([]*HeroSlide, error) {
	return s.slides.ListActive(ctx)
}

func (s *Service) SetHeroSlideActive(ctx context.Context, id uuid.UUID, active *bool) (*HeroSlide, error) {
	hs, err := s.slides.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active != nil {
		hs.Active = *active
	} else {
		hs.Active = !hs.Active
	}
	if err := s.slides.Update(ctx, hs); err != nil {
		return nil, err
	}
	return hs, nil
}

func validateHeroSlide(hs *HeroSlide) error {
	if hs.ImageURL == "" {
		return fmt.Errorf("image_url is required")
	}
	if hs.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

// -- Popups --

func (s *Service) CreatePopup(ctx context.Context, p *Popup) error {
	if err := validatePopup(p); err != nil {
		return err
	}
	return s.popups.Create(ctx, p)
}

func (s *Service) GetPopup(ctx context.Context, id uuid.UUID) (*Popup, error) {
	return s.popups.GetByID(ctx, id)
}

func (s *Service) UpdatePopup(ctx context.Context, p *Popup) error {
	if err := validatePopup(p); err != nil {
		return err
	}
	return s.popups.Update(ctx, p)
}

func (s *Service) DeletePopup(ctx context.Context, id uuid.UUID) error {
	return s.popups.Delete(ctx, id)
}

func (s *Service) ListPopups(ctx context.Context, limit, offset int) ([]*Popup, int, error) {
	return s.popups.List(ctx, limit, offset)
}

// ListVisiblePopups returns the popups the public site should display now.
func (s *Service) ListVisiblePopups(ctx context.Context) ([]*Popup, error) {
	return s.popups.ListVisible(ctx, time.Now())
}

func (s *Service) SetPopupActive(ctx context.Context, id uuid.UUID, active *bool) (*Popup, error) {
	p, err := s.popups.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active != nil {
		p.Active = *active
	} else {
		p.Active = !p.Active
	}
	if err := s.popups.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func validatePopup(p *Popup) error {
	if p.Title == "" {
		return fmt.Errorf("title is required")
	}
	if p.Content == "" {
		return fmt.Errorf("content is required")
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(*p.StartDate) {
		return fmt.Errorf("end_date must not precede start_date")
	}
	return nil
}

// -- Notices --

func (s *Service) CreateNotice(ctx context.Context, n *Notice) error {
	if err := validateNotice(n); err != nil {
		return err
	}
	return s.notices.Create(ctx, n)
}

func (s *Service) GetNotice(ctx context.Context, id uuid.UUID) (*Notice, error) {
	return s.notices.GetByID(ctx, id)
}

// GetPublicNotice returns an active notice and bumps its view counter.
func (s *Service) GetPublicNotice(ctx context.Context, id uuid.UUID) (*Notice, error) {
	n, err := s.notices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !n.Active {
		return nil, ErrNotFound
	}
	if err := s.notices.IncrementViewCount(ctx, id); err != nil {
		return nil, err
	}
	n.ViewCount++
	return n, nil
}

func (s *Service) UpdateNotice(ctx context.Context, n *Notice) error {
	if err := validateNotice(n); err != nil {
		return err
	}
	return s.notices.Update(ctx, n)
}

func (s *Service) DeleteNotice(ctx context.Context, id uuid.UUID) error {
	return s.notices.Delete(ctx, id)
}

// SearchNotices filters by q (title/content substring) and category.
func (s *Service) SearchNotices(ctx context.Context, params map[string]string, limit, offset int) ([]*Notice, int, error) {
	return s.notices.Search(ctx, params, limit, offset)
}

func (s *Service) SetNoticeActive(ctx context.Context, id uuid.UUID, active *bool) (*Notice, error) {
	n, err := s.notices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active != nil {
		n.Active = *active
	} else {
		n.Active = !n.Active
	}
	if err := s.notices.Update(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func validateNotice(n *Notice) error {
	if n.Title == "" {
		return fmt.Errorf("title is required")
	}
	if n.Content == "" {
		return fmt.Errorf("content is required")
	}
	return nil
}

// -- Info cards --

func (s *Service) CreateInfoCard(ctx context.Context, ic *InfoCard) error {
	if err := validateInfoCard(ic); err != nil {
		return err
	}
	return s.cards.Create(ctx, ic)
}

func (s *Service) GetInfoCard(ctx context.Context, id uuid.UUID) (*InfoCard, error) {
	return s.cards.GetByID(ctx, id)
}

func (s *Service) UpdateInfoCard(ctx context.Context, ic *InfoCard) error {
	if err := validateInfoCard(ic); err != nil {
		return err
	}
	return s.cards.Update(ctx, ic)
}

func (s *Service) DeleteInfoCard(ctx context.Context, id uuid.UUID) error {
	return s.cards.Delete(ctx, id)
}

func (s *Service) ListInfoCards(ctx context.Context, limit, offset int) ([]*InfoCard, int, error) {
	return s.cards.List(ctx, limit, offset)
}

func (s *Service) ListActiveInfoCards(ctx context.Context) ([]*InfoCard, error) {
	return s.cards.ListActive(ctx)
}

func (s *Service) SetInfoCardActive(ctx context.Context, id uuid.UUID, active *bool) (*InfoCard, error) {
	ic, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active != nil {
		ic.Active = *active
	} else {
		ic.Active = !ic.Active
	}
	if err := s.cards.Update(ctx, ic); err != nil {
		return nil, err
	}
	return ic, nil
}

func validateInfoCard(ic *InfoCard) error {
	if ic.Title == "" {
		return fmt.Errorf("title is required")
	}
	if ic.Body == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}

// -- Health info --

func (s *Service) CreateHealthInfo(ctx context.Context, hi *HealthInfo) error {
	if err := validateHealthInfo(hi); err != nil {
		return err
	}
	return s.healthInfo.Create(ctx, hi)
}

func (s *Service) GetHealthInfo(ctx context.Context, id uuid.UUID) (*HealthInfo, error) {
	return s.healthInfo.GetByID(ctx, id)
}

func (s *Service) UpdateHealthInfo(ctx context.Context, hi *HealthInfo) error {
	if err := validateHealthInfo(hi); err != nil {
		return err
	}
	return s.healthInfo.Update(ctx, hi)
}

func (s *Service) DeleteHealthInfo(ctx context.Context, id uuid.UUID) error {
	return s.healthInfo.Delete(ctx, id)
}

func (s *Service) ListHealthInfo(ctx context.Context, limit, offset int) ([]*HealthInfo, int, error) {
	return s.healthInfo.List(ctx, limit, offset)
}

func (s *Service) ListActiveHealthInfo(ctx context.Context) ([]*HealthInfo, error) {
	return s.healthInfo.ListActive(ctx)
}

func (s *Service) SetHealthInfoActive(ctx context.Context, id uuid.UUID, active *bool) (*HealthInfo, error) {
	hi, err := s.healthInfo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if active != nil {
		hi.Active = *active
	} else {
		hi.Active = !hi.Active
	}
	if err := s.healthInfo.Update(ctx, hi); err != nil {
		return nil, err
	}
	return hi, nil
}

func validateHealthInfo(hi *HealthInfo) error {
	if hi.Title == "" {
		return fmt.Errorf("title is required")
	}
	if hi.Summary == "" {
		return fmt.Errorf("summary is required")
	}
	if hi.Body == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}
