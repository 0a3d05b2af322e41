package siteinfo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hcms/hcms/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

func conn(ctx context.Context, pool *pgxpool.Pool) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return pool
}

// Each singleton table carries a `one` column fixed to 1 with a unique
// constraint, so upserts conflict on it and the row count never exceeds one.

// -- Contact info --

type contactInfoRepoPG struct{ pool *pgxpool.Pool }

func NewContactInfoRepoPG(pool *pgxpool.Pool) ContactInfoRepository {
	return &contactInfoRepoPG{pool: pool}
}

func (r *contactInfoRepoPG) Get(ctx context.Context) (*ContactInfo, error) {
	var in ContactInfo
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT id, phone, fax, email, address, map_url, parking_info, created_at, updated_at
		FROM contact_info LIMIT 1`).
		Scan(&in.ID, &in.Phone, &in.Fax, &in.Email, &in.Address,
			&in.MapURL, &in.ParkingInfo, &in.CreatedAt, &in.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *contactInfoRepoPG) Upsert(ctx context.Context, in *ContactInfo) error {
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO contact_info (id, phone, fax, email, address, map_url, parking_info)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (one) DO UPDATE SET
			phone=EXCLUDED.phone, fax=EXCLUDED.fax, email=EXCLUDED.email,
			address=EXCLUDED.address, map_url=EXCLUDED.map_url,
			parking_info=EXCLUDED.parking_info, updated_at=NOW()
		RETURNING id, created_at, updated_at`,
		uuid.New(), in.Phone, in.Fax, in.Email, in.Address, in.MapURL, in.ParkingInfo).
		Scan(&in.ID, &in.CreatedAt, &in.UpdatedAt)
}

// -- Footer info --

type footerInfoRepoPG struct{ pool *pgxpool.Pool }

func NewFooterInfoRepoPG(pool *pgxpool.Pool) FooterInfoRepository {
	return &footerInfoRepoPG{pool: pool}
}

func (r *footerInfoRepoPG) Get(ctx context.Context) (*FooterInfo, error) {
	var in FooterInfo
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT id, hospital_name, representative_name, business_number, phone, address, copyright, created_at, updated_at
		FROM footer_info LIMIT 1`).
		Scan(&in.ID, &in.HospitalName, &in.RepresentativeName, &in.BusinessNumber,
			&in.Phone, &in.Address, &in.Copyright, &in.CreatedAt, &in.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *footerInfoRepoPG) Upsert(ctx context.Context, in *FooterInfo) error {
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO footer_info (id, hospital_name, representative_name, business_number, phone, address, copyright)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (one) DO UPDATE SET
			hospital_name=EXCLUDED.hospital_name,
			representative_name=EXCLUDED.representative_name,
			business_number=EXCLUDED.business_number, phone=EXCLUDED.phone,
			address=EXCLUDED.address, copyright=EXCLUDED.copyright, updated_at=NOW()
		RETURNING id, created_at, updated_at`,
		uuid.New(), in.HospitalName, in.RepresentativeName, in.BusinessNumber,
		in.Phone, in.Address, in.Copyright).
		Scan(&in.ID, &in.CreatedAt, &in.UpdatedAt)
}

// -- Hospital info --

type hospitalInfoRepoPG struct{ pool *pgxpool.Pool }

func NewHospitalInfoRepoPG(pool *pgxpool.Pool) HospitalInfoRepository {
	return &hospitalInfoRepoPG{pool: pool}
}

func (r *hospitalInfoRepoPG) Get(ctx context.Context) (*HospitalInfo, error) {
	var in HospitalInfo
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT id, name, greeting, history, directions, image_url, created_at, updated_at
		FROM hospital_info LIMIT 1`).
		Scan(&in.ID, &in.Name, &in.Greeting, &in.History, &in.Directions,
			&in.ImageURL, &in.CreatedAt, &in.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *hospitalInfoRepoPG) Upsert(ctx context.Context, in *HospitalInfo) error {
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO hospital_info (id, name, greeting, history, directions, image_url)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (one) DO UPDATE SET
			name=EXCLUDED.name, greeting=EXCLUDED.greeting,
			history=EXCLUDED.history, directions=EXCLUDED.directions,
			image_url=EXCLUDED.image_url, updated_at=NOW()
		RETURNING id, created_at, updated_at`,
		uuid.New(), in.Name, in.Greeting, in.History, in.Directions, in.ImageURL).
		Scan(&in.ID, &in.CreatedAt, &in.UpdatedAt)
}

// -- Clinic hours --

type clinicHoursRepoPG struct{ pool *pgxpool.Pool }

func NewClinicHoursRepoPG(pool *pgxpool.Pool) ClinicHoursRepository {
	return &clinicHoursRepoPG{pool: pool}
}

func (r *clinicHoursRepoPG) Get(ctx context.Context) (*ClinicHours, error) {
	var in ClinicHours
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT id, weekday_hours, saturday_hours, sunday_hours, lunch_hours, holiday_note, created_at, updated_at
		FROM clinic_hours LIMIT 1`).
		Scan(&in.ID, &in.WeekdayHours, &in.SaturdayHours, &in.SundayHours,
			&in.LunchHours, &in.HolidayNote, &in.CreatedAt, &in.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *clinicHoursRepoPG) Upsert(ctx context.Context, in *ClinicHours) error {
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO clinic_hours (id, weekday_hours, saturday_hours, sunday_hours, lunch_hours, holiday_note)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (one) DO UPDATE SET
			weekday_hours=EXCLUDED.weekday_hours,
			saturday_hours=EXCLUDED.saturday_hours,
			sunday_hours=EXCLUDED.sunday_hours, lunch_hours=EXCLUDED.lunch_hours,
			holiday_note=EXCLUDED.holiday_note, updated_at=NOW()
		RETURNING id, created_at, updated_at`,
		uuid.New(), in.WeekdayHours, in.SaturdayHours, in.SundayHours,
		in.LunchHours, in.HolidayNote).
		Scan(&in.ID, &in.CreatedAt, &in.UpdatedAt)
}
