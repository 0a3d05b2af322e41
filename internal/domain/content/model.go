package content

import (
	"time"

	"github.com/google/uuid"
)

// HeroSlide maps to the hero_slides table. Slides rotate on the landing
// page banner in SortOrder.
type HeroSlide struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description,omitempty"`
	ButtonText  *string   `db:"button_text" json:"button_text,omitempty"`
	ButtonLink  *string   `db:"button_link" json:"button_link,omitempty"`
	SortOrder   int       `db:"sort_order" json:"sort_order"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Popup maps to the popups table. The public site shows popups that are
// active and inside their date window; a null bound leaves that side open.
type Popup struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Title         string     `db:"title" json:"title"`
	Content       string     `db:"content" json:"content"`
	ImageURL      *string    `db:"image_url" json:"image_url,omitempty"`
	ShowDoNotShow bool       `db:"show_do_not_show" json:"show_do_not_show"`
	StartDate     *time.Time `db:"start_date" json:"start_date,omitempty"`
	EndDate       *time.Time `db:"end_date" json:"end_date,omitempty"`
	Active        bool       `db:"active" json:"active"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// VisibleAt reports whether the popup should display at the given time.
func (p *Popup) VisibleAt(at time.Time) bool {
	if !p.Active {
		return false
	}
	if p.StartDate != nil && at.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && at.After(*p.EndDate) {
		return false
	}
	return true
}

// Notice maps to the notices table. Pinned notices sort before the rest;
// ViewCount increments on every public read.
type Notice struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Category  string    `db:"category" json:"category"`
	Pinned    bool      `db:"pinned" json:"pinned"`
	ViewCount int       `db:"view_count" json:"view_count"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// InfoCard maps to the info_cards table (quick-link cards on the landing
// page).
type InfoCard struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"`
	Icon      *string   `db:"icon" json:"icon,omitempty"`
	LinkURL   *string   `db:"link_url" json:"link_url,omitempty"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// HealthInfo maps to the health_info table (patient education articles).
type HealthInfo struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Summary   string    `db:"summary" json:"summary"`
	Body      string    `db:"body" json:"body"`
	ImageURL  *string   `db:"image_url" json:"image_url,omitempty"`
	Source    *string   `db:"source" json:"source,omitempty"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
