package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

var ErrMissingDSN = errors.New("DATABASE_URL is not set")

// Open connects to PostgreSQL through the pgx stdlib driver and verifies the
// connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS product (
		product_id BIGINT PRIMARY KEY,
		product_code TEXT,
		brand TEXT,
		subcategory_id INT,
		subcategory TEXT
	)`,
	// legacy import, ids and subcategory ids stored as text
	`CREATE TABLE IF NOT EXISTS products (
		"productID" TEXT PRIMARY KEY,
		"productCode" TEXT,
		brand TEXT,
		"subcategoryID" TEXT,
		subcategory TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS category (
		id INT PRIMARY KEY,
		category TEXT NOT NULL,
		"CategoryEN" TEXT,
		"CategoryFR" TEXT,
		"CategoryJP" TEXT,
		"CategoryZH" TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS category_label_idx ON category (category)`,
}

// EnsureSchema creates the catalog tables when they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	log.Info("catalog schema ensured", zap.Int("statements", len(schema)))
	return nil
}
