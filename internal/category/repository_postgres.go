package category

import (
	"context"
	"database/sql"
	"errors"
)

// PostgresRepository implements Repository using Postgres.
type PostgresRepository struct {
	db *sql.DB
}

const (
	categoryColumns           = `id, category, "CategoryEN", "CategoryFR", "CategoryJP", "CategoryZH"`
	getCategoryByIDQuery      = `SELECT ` + categoryColumns + ` FROM category WHERE id = $1`
	getCategoryByLabelQuery   = `SELECT ` + categoryColumns + ` FROM category WHERE category = $1 ORDER BY id LIMIT 1`
	getCategoryByPatternQuery = `SELECT ` + categoryColumns + ` FROM category WHERE category ~* $1 ORDER BY id LIMIT 1`
	listCategoriesQuery       = `SELECT ` + categoryColumns + ` FROM category ORDER BY id LIMIT $1`
	countCategoriesQuery      = `SELECT COUNT(*) FROM category`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int) (Record, error) {
	return r.findOne(ctx, getCategoryByIDQuery, id)
}

func (r *PostgresRepository) FindByLabel(ctx context.Context, label string) (Record, error) {
	rec, err := r.findOne(ctx, getCategoryByLabelQuery, label)
	if !errors.Is(err, ErrNotFound) {
		return rec, err
	}
	return r.findOne(ctx, getCategoryByPatternQuery, anchoredPattern(label))
}

// List returns category rows ordered by id. A non-positive limit returns
// every row (LIMIT NULL).
func (r *PostgresRepository) List(ctx context.Context, limit int) ([]Record, error) {
	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := r.db.QueryContext(ctx, listCategoriesQuery, lim)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			continue
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, countCategoriesQuery).Scan(&n)
	return n, err
}

func (r *PostgresRepository) findOne(ctx context.Context, query string, arg any) (Record, error) {
	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(scanner rowScanner) (Record, error) {
	var (
		rec            Record
		category       sql.NullString
		en, fr, jp, zh sql.NullString
	)
	if err := scanner.Scan(&rec.ID, &category, &en, &fr, &jp, &zh); err != nil {
		return Record{}, err
	}
	rec.Category = category.String
	rec.EN = nullable(en)
	rec.FR = nullable(fr)
	rec.JP = nullable(jp)
	rec.ZH = nullable(zh)
	return rec, nil
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
