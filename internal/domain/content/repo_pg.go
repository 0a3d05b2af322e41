package content

import (
	"context"
	"errors"
	"fmt"
	"time"

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

func mutate(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// -- Hero slides --

type heroSlideRepoPG struct{ pool *pgxpool.Pool }

func NewHeroSlideRepoPG(pool *pgxpool.Pool) HeroSlideRepository {
	return &heroSlideRepoPG{pool: pool}
}

const heroSlideCols = `id, image_url, title, description, button_text, button_link,
	sort_order, active, created_at, updated_at`

func scanHeroSlide(row pgx.Row) (*HeroSlide, error) {
	var s HeroSlide
	err := row.Scan(&s.ID, &s.ImageURL, &s.Title, &s.Description,
		&s.ButtonText, &s.ButtonLink, &s.SortOrder, &s.Active,
		&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &s, err
}

func (r *heroSlideRepoPG) Create(ctx context.Context, s *HeroSlide) error {
	s.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO hero_slides (id, image_url, title, description, button_text, button_link, sort_order, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at, updated_at`,
		s.ID, s.ImageURL, s.Title, s.Description, s.ButtonText,
		s.ButtonLink, s.SortOrder, s.Active).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *heroSlideRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*HeroSlide, error) {
	return scanHeroSlide(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+heroSlideCols+` FROM hero_slides WHERE id = $1`, id))
}

func (r *heroSlideRepoPG) Update(ctx context.Context, s *HeroSlide) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `
		UPDATE hero_slides SET image_url=$2, title=$3, description=$4,
			button_text=$5, button_link=$6, sort_order=$7, active=$8, updated_at=NOW()
		WHERE id = $1`,
		s.ID, s.ImageURL, s.Title, s.Description, s.ButtonText,
		s.ButtonLink, s.SortOrder, s.Active))
}

func (r *heroSlideRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `DELETE FROM hero_slides WHERE id = $1`, id))
}

func (r *heroSlideRepoPG) List(ctx context.Context, limit, offset int) ([]*HeroSlide, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM hero_slides`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+heroSlideCols+` FROM hero_slides ORDER BY sort_order, created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*HeroSlide
	for rows.Next() {
		s, err := scanHeroSlide(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, s)
	}
	return items, total, nil
}

func (r *heroSlideRepoPG) ListActive(ctx context.Context) ([]*HeroSlide, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+heroSlideCols+` FROM hero_slides WHERE active ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*HeroSlide
	for rows.Next() {
		s, err := scanHeroSlide(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, nil
}

// -- Popups --

type popupRepoPG struct{ pool *pgxpool.Pool }

func NewPopupRepoPG(pool *pgxpool.Pool) PopupRepository {
	return &popupRepoPG{pool: pool}
}

const popupCols = `id, title, content, image_url, show_do_not_show,
	start_date, end_date, active, created_at, updated_at`

func scanPopup(row pgx.Row) (*Popup, error) {
	var p Popup
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.ImageURL,
		&p.ShowDoNotShow, &p.StartDate, &p.EndDate, &p.Active,
		&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *popupRepoPG) Create(ctx context.Context, p *Popup) error {
	p.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO popups (id, title, content, image_url, show_do_not_show, start_date, end_date, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at, updated_at`,
		p.ID, p.Title, p.Content, p.ImageURL, p.ShowDoNotShow,
		p.StartDate, p.EndDate, p.Active).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *popupRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Popup, error) {
	return scanPopup(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+popupCols+` FROM popups WHERE id = $1`, id))
}

func (r *popupRepoPG) Update(ctx context.Context, p *Popup) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `
		UPDATE popups SET title=$2, content=$3, image_url=$4, show_do_not_show=$5,
			start_date=$6, end_date=$7, active=$8, updated_at=NOW()
		WHERE id = $1`,
		p.ID, p.Title, p.Content, p.ImageURL, p.ShowDoNotShow,
		p.StartDate, p.EndDate, p.Active))
}

func (r *popupRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `DELETE FROM popups WHERE id = $1`, id))
}

func (r *popupRepoPG) List(ctx context.Context, limit, offset int) ([]*Popup, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM popups`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+popupCols+` FROM popups ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Popup
	for rows.Next() {
		p, err := scanPopup(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}

func (r *popupRepoPG) ListVisible(ctx context.Context, at time.Time) ([]*Popup, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT `+popupCols+` FROM popups
		WHERE active
		  AND (start_date IS NULL OR start_date <= $1)
		  AND (end_date IS NULL OR end_date >= $1)
		ORDER BY created_at DESC`, at)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Popup
	for rows.Next() {
		p, err := scanPopup(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, nil
}

// -- Notices --

type noticeRepoPG struct{ pool *pgxpool.Pool }

func NewNoticeRepoPG(pool *pgxpool.Pool) NoticeRepository {
	return &noticeRepoPG{pool: pool}
}

const noticeCols = `id, title, content, category, pinned, view_count,
	active, created_at, updated_at`

func scanNotice(row pgx.Row) (*Notice, error) {
	var n Notice
	err := row.Scan(&n.ID, &n.Title, &n.Content, &n.Category, &n.Pinned,
		&n.ViewCount, &n.Active, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &n, err
}

func (r *noticeRepoPG) Create(ctx context.Context, n *Notice) error {
	n.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO notices (id, title, content, category, pinned, active)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING view_count, created_at, updated_at`,
		n.ID, n.Title, n.Content, n.Category, n.Pinned,
		n.Active).Scan(&n.ViewCount, &n.CreatedAt, &n.UpdatedAt)
}

func (r *noticeRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Notice, error) {
	return scanNotice(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+noticeCols+` FROM notices WHERE id = $1`, id))
}

func (r *noticeRepoPG) Update(ctx context.Context, n *Notice) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `
		UPDATE notices SET title=$2, content=$3, category=$4, pinned=$5,
			active=$6, updated_at=NOW()
		WHERE id = $1`,
		n.ID, n.Title, n.Content, n.Category, n.Pinned, n.Active))
}

func (r *noticeRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `DELETE FROM notices WHERE id = $1`, id))
}

func (r *noticeRepoPG) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Notice, int, error) {
	query := `SELECT ` + noticeCols + ` FROM notices WHERE 1=1`
	countQuery := `SELECT COUNT(*) FROM notices WHERE 1=1`
	var args []interface{}
	idx := 1

	if p, ok := params["q"]; ok {
		clause := fmt.Sprintf(` AND (title ILIKE '%%' || $%d || '%%' OR content ILIKE '%%' || $%d || '%%')`, idx, idx)
		query += clause
		countQuery += clause
		args = append(args, p)
		idx++
	}
	if p, ok := params["category"]; ok {
		query += fmt.Sprintf(` AND category = $%d`, idx)
		countQuery += fmt.Sprintf(` AND category = $%d`, idx)
		args = append(args, p)
		idx++
	}
	if params["active"] == "true" {
		query += ` AND active`
		countQuery += ` AND active`
	}

	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY pinned DESC, created_at DESC LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Notice
	for rows.Next() {
		n, err := scanNotice(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, n)
	}
	return items, total, nil
}

func (r *noticeRepoPG) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return mutate(conn(ctx, r.pool).Exec(ctx,
		`UPDATE notices SET view_count = view_count + 1 WHERE id = $1`, id))
}

// -- Info cards --

type infoCardRepoPG struct{ pool *pgxpool.Pool }

func NewInfoCardRepoPG(pool *pgxpool.Pool) InfoCardRepository {
	return &infoCardRepoPG{pool: pool}
}

const infoCardCols = `id, title, body, icon, link_url, sort_order, active,
	created_at, updated_at`

func scanInfoCard(row pgx.Row) (*InfoCard, error) {
	var ic InfoCard
	err := row.Scan(&ic.ID, &ic.Title, &ic.Body, &ic.Icon, &ic.LinkURL,
		&ic.SortOrder, &ic.Active, &ic.CreatedAt, &ic.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &ic, err
}

func (r *infoCardRepoPG) Create(ctx context.Context, ic *InfoCard) error {
	ic.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO info_cards (id, title, body, icon, link_url, sort_order, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at, updated_at`,
		ic.ID, ic.Title, ic.Body, ic.Icon, ic.LinkURL, ic.SortOrder,
		ic.Active).Scan(&ic.CreatedAt, &ic.UpdatedAt)
}

func (r *infoCardRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*InfoCard, error) {
	return scanInfoCard(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+infoCardCols+` FROM info_cards WHERE id = $1`, id))
}

func (r *infoCardRepoPG) Update(ctx context.Context, ic *InfoCard) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `
		UPDATE info_cards SET title=$2, body=$3, icon=$4, link_url=$5,
			sort_order=$6, active=$7, updated_at=NOW()
		WHERE id = $1`,
		ic.ID, ic.Title, ic.Body, ic.Icon, ic.LinkURL, ic.SortOrder, ic.Active))
}

func (r *infoCardRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `DELETE FROM info_cards WHERE id = $1`, id))
}

func (r *infoCardRepoPG) List(ctx context.Context, limit, offset int) ([]*InfoCard, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM info_cards`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+infoCardCols+` FROM info_cards ORDER BY sort_order, created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*InfoCard
	for rows.Next() {
		ic, err := scanInfoCard(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, ic)
	}
	return items, total, nil
}

func (r *infoCardRepoPG) ListActive(ctx context.Context) ([]*InfoCard, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+infoCardCols+` FROM info_cards WHERE active ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*InfoCard
	for rows.Next() {
		ic, err := scanInfoCard(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, ic)
	}
	return items, nil
}

// -- Health info --

type healthInfoRepoPG struct{ pool *pgxpool.Pool }

func NewHealthInfoRepoPG(pool *pgxpool.Pool) HealthInfoRepository {
	return &healthInfoRepoPG{pool: pool}
}

const healthInfoCols = `id, title, summary, body, image_url, source,
	sort_order, active, created_at, updated_at`

func scanHealthInfo(row pgx.Row) (*HealthInfo, error) {
	var hi HealthInfo
	err := row.Scan(&hi.ID, &hi.Title, &hi.Summary, &hi.Body, &hi.ImageURL,
		&hi.Source, &hi.SortOrder, &hi.Active, &hi.CreatedAt, &hi.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &hi, err
}

func (r *healthInfoRepoPG) Create(ctx context.Context, hi *HealthInfo) error {
	hi.ID = uuid.New()
	return conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO health_info (id, title, summary, body, image_url, source, sort_order, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at, updated_at`,
		hi.ID, hi.Title, hi.Summary, hi.Body, hi.ImageURL, hi.Source,
		hi.SortOrder, hi.Active).Scan(&hi.CreatedAt, &hi.UpdatedAt)
}

func (r *healthInfoRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*HealthInfo, error) {
	return scanHealthInfo(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+healthInfoCols+` FROM health_info WHERE id = $1`, id))
}

func (r *healthInfoRepoPG) Update(ctx context.Context, hi *HealthInfo) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `
		UPDATE health_info SET title=$2, summary=$3, body=$4, image_url=$5,
			source=$6, sort_order=$7, active=$8, updated_at=NOW()
		WHERE id = $1`,
		hi.ID, hi.Title, hi.Summary, hi.Body, hi.ImageURL, hi.Source,
		hi.SortOrder, hi.Active))
}

func (r *healthInfoRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	return mutate(conn(ctx, r.pool).Exec(ctx, `DELETE FROM health_info WHERE id = $1`, id))
}

func (r *healthInfoRepoPG) List(ctx context.Context, limit, offset int) ([]*HealthInfo, int, error) {
	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM health_info`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+healthInfoCols+` FROM health_info ORDER BY sort_order, created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*HealthInfo
	for rows.Next() {
		hi, err := scanHealthInfo(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, hi)
	}
	return items, total, nil
}

func (r *healthInfoRepoPG) ListActive(ctx context.Context) ([]*HealthInfo, error) {
	rows, err := conn(ctx, r.pool).Query(ctx,
		`SELECT `+healthInfoCols+` FROM health_info WHERE active ORDER BY sort_order, created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*HealthInfo
	for rows.Next() {
		hi, err := scanHealthInfo(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, hi)
	}
	return items, nil
}
