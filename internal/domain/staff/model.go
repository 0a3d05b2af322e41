package staff

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctors table. Doctors appear on the medical staff
// page ordered by SortOrder; inactive doctors stay editable in the admin
// but never render publicly.
type Doctor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Title     string    `db:"title" json:"title"`
	Specialty string    `db:"specialty" json:"specialty"`
	PhotoURL  *string   `db:"photo_url" json:"photo_url,omitempty"`
	Education *string   `db:"education" json:"education,omitempty"`
	Career    *string   `db:"career" json:"career,omitempty"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Schedule maps to the doctor_schedules table. DoctorID is a free
// reference kept for display grouping; it is not validated against the
// doctors table so schedules survive doctor edits.
type Schedule struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	DoctorID   *uuid.UUID `db:"doctor_id" json:"doctor_id,omitempty"`
	DoctorName string     `db:"doctor_name" json:"doctor_name"`
	Weekday    int        `db:"weekday" json:"weekday"`
	StartTime  string     `db:"start_time" json:"start_time"`
	EndTime    string     `db:"end_time" json:"end_time"`
	Note       *string    `db:"note" json:"note,omitempty"`
	Active     bool       `db:"active" json:"active"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}
