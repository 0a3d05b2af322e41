package siteinfo

import (
	"time"

	"github.com/google/uuid"
)

// Singleton site records. Each table holds at most one row, enforced by a
// unique constant column in the schema; writes upsert against it.

type ContactInfo struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Phone       string    `db:"phone" json:"phone"`
	Fax         *string   `db:"fax" json:"fax,omitempty"`
	Email       *string   `db:"email" json:"email,omitempty"`
	Address     string    `db:"address" json:"address"`
	MapURL      *string   `db:"map_url" json:"map_url,omitempty"`
	ParkingInfo *string   `db:"parking_info" json:"parking_info,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type FooterInfo struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	HospitalName       string    `db:"hospital_name" json:"hospital_name"`
	RepresentativeName *string   `db:"representative_name" json:"representative_name,omitempty"`
	BusinessNumber     *string   `db:"business_number" json:"business_number,omitempty"`
	Phone              *string   `db:"phone" json:"phone,omitempty"`
	Address            *string   `db:"address" json:"address,omitempty"`
	Copyright          *string   `db:"copyright" json:"copyright,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

type HospitalInfo struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Greeting   *string   `db:"greeting" json:"greeting,omitempty"`
	History    *string   `db:"history" json:"history,omitempty"`
	Directions *string   `db:"directions" json:"directions,omitempty"`
	ImageURL   *string   `db:"image_url" json:"image_url,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type ClinicHours struct {
	ID            uuid.UUID `db:"id" json:"id"`
	WeekdayHours  string    `db:"weekday_hours" json:"weekday_hours"`
	SaturdayHours *string   `db:"saturday_hours" json:"saturday_hours,omitempty"`
	SundayHours   *string   `db:"sunday_hours" json:"sunday_hours,omitempty"`
	LunchHours    *string   `db:"lunch_hours" json:"lunch_hours,omitempty"`
	HolidayNote   *string   `db:"holiday_note" json:"holiday_note,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
