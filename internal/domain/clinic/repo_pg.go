package clinic

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

// uniqueViolation is the Postgres error code for duplicate keys.
const uniqueViolation = "23505"

func mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateSlug
	}
	return err
}

func mutate(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return mapWriteErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// -- Clinic pages --

type clinicPageRepoPG struct{ pool *pgxpool.Pool }

func NewClinicPageRepoPG(pool *pgxpool.Pool) ClinicPageRepository {
	return &clinicPageRepoPG{pool: pool}
}

const clinicPageCols = `id, slug, title, body, image_url, sort_order, active,
	created_at, updated_at`

func scanClinicPage(row pgx.Row) (*ClinicPage, error) {
	var p ClinicPage
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Body, &p.ImageURL,
		&p.SortOrder, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *clinicPageRepoPG) Create(ctx context.Context, p *ClinicPage) error {
	p.ID = uuid.New()
	err := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO clinic_pages (id, slug, title, body, image_url, sort_order, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at, updated_at`,
		p.ID, p.Slug, p.Title, p.Body, p.ImageURL, p.SortOrder,
		p.Active).Scan(&p.CreatedAt, &p.UpdatedAt)
	return mapWriteErr(err)
}

func (r *clinicPageRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*ClinicPage, error) {
	return scanClinicPage(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+clinicPageCols+` FROM clinic_pages WHERE id = $1`, id))
}

func (r *clinicPageRepoPG) GetBySlug(ctx context.Context, slug string) (*ClinicPage, error) {
	return scanClinicPage(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+clinicPageCols+` FROM clinic_pages WHERE slug = $1`, slug))
}

func (r *clinicPageRepoPG) Update(ctx context.Context, p *ClinicPage) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `
		UPDATE clinic_pages SET slug=$2, title=$3, body=$4, image_url=$5,
			sort_order=$6, active=$7, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Slug, p.Title, p.Body, p.ImageURL, p.SortOrder, p.Active))
}

func (r *clinicPageRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `DELETE FROM clinic_pages WHERE id = $1`, id))
}

func (r *clinicPageRepoPG) List(ctx context.Context, limit, offset int) ([]*ClinicPage, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM clinic_pages`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+clinicPageCols+` FROM clinic_pages ORDER BY sort_order, created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*ClinicPage
	for rows.Next() {
		p, err := scanClinicPage(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}

func (r *clinicPageRepoPG) ListActive(ctx context.Context) ([]*ClinicPage, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+clinicPageCols+` FROM clinic_pages WHERE active ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*ClinicPage
	for rows.Next() {
		p, err := scanClinicPage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

// -- Treatment pages --

type treatmentPageRepoPG struct{ pool *pgxpool.Pool }

func NewTreatmentPageRepoPG(pool *pgxpool.Pool) TreatmentPageRepository {
	return &treatmentPageRepoPG{pool: pool}
}

const treatmentPageCols = `id, slug, title, summary, body, image_url,
	sort_order, active, created_at, updated_at`

func scanTreatmentPage(row pgx.Row) (*TreatmentPage, error) {
	var p TreatmentPage
	err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Summary, &p.Body,
		&p.ImageURL, &p.SortOrder, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *treatmentPageRepoPG) Create(ctx context.Context, p *TreatmentPage) error {
	p.ID = uuid.New()
	err := conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO treatment_pages (id, slug, title, summary, body, image_url, sort_order, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at, updated_at`,
		p.ID, p.Slug, p.Title, p.Summary, p.Body, p.ImageURL,
		p.SortOrder, p.Active).Scan(&p.CreatedAt, &p.UpdatedAt)
	return mapWriteErr(err)
}

func (r *treatmentPageRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*TreatmentPage, error) {
	return scanTreatmentPage(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+treatmentPageCols+` FROM treatment_pages WHERE id = $1`, id))
}

func (r *treatmentPageRepoPG) GetBySlug(ctx context.Context, slug string) (*TreatmentPage, error) {
	return scanTreatmentPage(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+treatmentPageCols+` FROM treatment_pages WHERE slug = $1`, slug))
}

func (r *treatmentPageRepoPG) Update(ctx context.Context, p *TreatmentPage) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `
		UPDATE treatment_pages SET slug=$2, title=$3, summary=$4, body=$5,
			image_url=$6, sort_order=$7, active=$8, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Slug, p.Title, p.Summary, p.Body, p.ImageURL,
		p.SortOrder, p.Active))
}

func (r *treatmentPageRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `DELETE FROM treatment_pages WHERE id = $1`, id))
}

func (r *treatmentPageRepoPG) List(ctx context.Context, limit, offset int) ([]*TreatmentPage, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM treatment_pages`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+treatmentPageCols+` FROM treatment_pages ORDER BY sort_order, created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*TreatmentPage
	for rows.Next() {
		p, err := scanTreatmentPage(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}

func (r *treatmentPageRepoPG) ListActive(ctx context.Context) ([]*TreatmentPage, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+treatmentPageCols+` FROM treatment_pages WHERE active ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*TreatmentPage
	for rows.Next() {
		p, err := scanTreatmentPage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

// -- Services --

type serviceItemRepoPG struct{ pool *pgxpool.Pool }

func NewServiceItemRepoPG(pool *pgxpool.Pool) ServiceItemRepository {
	return &serviceItemRepoPG{pool: pool}
}

const serviceItemCols = `id, name, description, image_url, sort_order, active,
	created_at, updated_at`

func scanServiceItem(row pgx.Row) (*ServiceItem, error) {
	var s ServiceItem
	err := row.Scan(&s.ID, &s.Name, &s.Description, &s.ImageURL,
		&s.SortOrder, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &s, err
}

func (r *serviceItemRepoPG) Create(ctx context.Context, s *ServiceItem) error {
	s.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO services (id, name, description, image_url, sort_order, active)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at, updated_at`,
		s.ID, s.Name, s.Description, s.ImageURL, s.SortOrder,
		s.Active).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *serviceItemRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*ServiceItem, error) {
	return scanServiceItem(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+serviceItemCols+` FROM services WHERE id = $1`, id))
}

func (r *serviceItemRepoPG) Update(ctx context.Context, s *ServiceItem) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `
		UPDATE services SET name=$2, description=$3, image_url=$4,
			sort_order=$5, active=$6, updated_at=NOW()
		WHERE id = $1`,
		s.ID, s.Name, s.Description, s.ImageURL, s.SortOrder, s.Active))
}

func (r *serviceItemRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `DELETE FROM services WHERE id = $1`, id))
}

func (r *serviceItemRepoPG) List(ctx context.Context, limit, offset int) ([]*ServiceItem, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM services`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+serviceItemCols+` FROM services ORDER BY sort_order, created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*ServiceItem
	for rows.Next() {
		s, err := scanServiceItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, nil
}

func (r *serviceItemRepoPG) ListActive(ctx context.Context) ([]*ServiceItem, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+serviceItemCols+` FROM services WHERE active ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*ServiceItem
	for rows.Next() {
		s, err := scanServiceItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, nil
}

// -- Equipment --

type equipmentRepoPG struct{ pool *pgxpool.Pool }

func NewEquipmentRepoPG(pool *pgxpool.Pool) EquipmentRepository {
	return &equipmentRepoPG{pool: pool}
}

const equipmentCols = `id, name, purpose, image_url, sort_order, active,
	created_at, updated_at`

func scanEquipment(row pgx.Row) (*Equipment, error) {
	var e Equipment
	err := row.Scan(&e.ID, &e.Name, &e.Purpose, &e.ImageURL,
		&e.SortOrder, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &e, err
}

func (r *equipmentRepoPG) Create(ctx context.Context, e *Equipment) error {
	e.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO equipment (id, name, purpose, image_url, sort_order, active)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING created_at, updated_at`,
		e.ID, e.Name, e.Purpose, e.ImageURL, e.SortOrder,
		e.Active).Scan(&e.CreatedAt, &e.UpdatedAt)
}

func (r *equipmentRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Equipment, error) {
	return scanEquipment(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+equipmentCols+` FROM equipment WHERE id = $1`, id))
}

func (r *equipmentRepoPG) Update(ctx context.Context, e *Equipment) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `
		UPDATE equipment SET name=$2, purpose=$3, image_url=$4,
			sort_order=$5, active=$6, updated_at=NOW()
		WHERE id = $1`,
		e.ID, e.Name, e.Purpose, e.ImageURL, e.SortOrder, e.Active))
}

func (r *equipmentRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id))
}

func (r *equipmentRepoPG) List(ctx context.Context, limit, offset int) ([]*Equipment, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM equipment`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+equipmentCols+` FROM equipment ORDER BY sort_order, created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, e)
	}
	return items, total, nil
}

func (r *equipmentRepoPG) ListActive(ctx context.Context) ([]*Equipment, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+equipmentCols+` FROM equipment WHERE active ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, nil
}
