package clinic

import (
	"time"

	"github.com/google/uuid"
)

// ClinicPage maps to the clinic_pages table. Slugs are unique and form the
// public URL of each department page.
type ClinicPage struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Slug      string    `db:"slug" json:"slug"`
	Title     string    `db:"title" json:"title"`
	Body      string    `db:"body" json:"body"`
	ImageURL  *string   `db:"image_url" json:"image_url,omitempty"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TreatmentPage maps to the treatment_pages table.
type TreatmentPage struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Slug      string    `db:"slug" json:"slug"`
	Title     string    `db:"title" json:"title"`
	Summary   *string   `db:"summary" json:"summary,omitempty"`
	Body      string    `db:"body" json:"body"`
	ImageURL  *string   `db:"image_url" json:"image_url,omitempty"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ServiceItem maps to the services table (the hospital's offered services
// list).
type ServiceItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	ImageURL    *string   `db:"image_url" json:"image_url,omitempty"`
	SortOrder   int       `db:"sort_order" json:"sort_order"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Equipment maps to the equipment table (diagnostic equipment showcased on
// the facilities page).
type Equipment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Purpose   *string   `db:"purpose" json:"purpose,omitempty"`
	ImageURL  *string   `db:"image_url" json:"image_url,omitempty"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
