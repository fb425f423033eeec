package product

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
)

// PostgresRepository reads products from the `product` table (integer ids)
// and the legacy `products` import table, which stores ids as text.
type PostgresRepository struct {
	db *sql.DB
}

const (
	getProductByIDQuery = `
		SELECT product_id, product_code, brand, subcategory_id, subcategory
		FROM product
		WHERE product_id = $1
	`
	getLegacyProductByIDQuery = `
		SELECT "productID", "productCode", brand, "subcategoryID", subcategory
		FROM products
		WHERE "productID" = $1
	`
	countProductsQuery       = `SELECT COUNT(*) FROM product`
	countLegacyProductsQuery = `SELECT COUNT(*) FROM products`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// FindByID queries the table matching the key's representation: numeric keys
// hit `product`, text keys hit the legacy `products` table.
func (r *PostgresRepository) FindByID(ctx context.Context, key Key) (Product, error) {
	if key.IsText() {
		return r.getByIDLegacy(ctx, key.Text())
	}
	id, _ := key.Numeric()
	row := r.db.QueryRowContext(ctx, getProductByIDQuery, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

// Count returns the number of products in both tables. A missing legacy
// table counts as empty.
func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, countProductsQuery).Scan(&n); err != nil {
		return 0, err
	}
	var legacy int64
	if err := r.db.QueryRowContext(ctx, countLegacyProductsQuery).Scan(&legacy); err != nil {
		return n, nil
	}
	return n + legacy, nil
}

// ---- legacy helpers -------------------------------------------------------

func (r *PostgresRepository) getByIDLegacy(ctx context.Context, id string) (Product, error) {
	row := r.db.QueryRowContext(ctx, getLegacyProductByIDQuery, id)
	p, err := scanProductLegacy(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var (
		code          sql.NullString
		brand         sql.NullString
		subcategoryID sql.NullInt64
		subcategory   sql.NullString
	)
	if err := scanner.Scan(&p.ID, &code, &brand, &subcategoryID, &subcategory); err != nil {
		return Product{}, err
	}
	p.Code = code.String
	p.Brand = brand.String
	p.SubcategoryID = int(subcategoryID.Int64)
	p.Subcategory = subcategory.String
	return p, nil
}

// scanProductLegacy converts the all-text legacy row. Ids that do not parse
// as integers leave the numeric fields zero.
func scanProductLegacy(scanner rowScanner) (Product, error) {
	var (
		id            string
		code          sql.NullString
		brand         sql.NullString
		subcategoryID sql.NullString
		subcategory   sql.NullString
	)
	if err := scanner.Scan(&id, &code, &brand, &subcategoryID, &subcategory); err != nil {
		return Product{}, err
	}
	p := Product{
		Code:        code.String,
		Brand:       brand.String,
		Subcategory: subcategory.String,
	}
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		p.ID = n
	}
	if subcategoryID.Valid {
		if n, err := strconv.Atoi(subcategoryID.String); err == nil {
			p.SubcategoryID = n
		}
	}
	return p, nil
}
