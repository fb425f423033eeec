package product

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"go.uber.org/zap"
)

var ErrNoProductID = errors.New("no product id in url")

// trailingID matches the digit run that ends a product page path.
var trailingID = regexp.MustCompile(`/(\d+)$`)

// ResolveError describes why a URL did not resolve to a product. Its message
// is the one reported back to callers.
type ResolveError struct {
	URL string
	ID  string
	Err error
}

func (e *ResolveError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNoProductID):
		return "Could not extract product ID from URL: " + e.URL
	case errors.Is(e.Err, ErrNotFound):
		return fmt.Sprintf("Product ID %s not found in database", e.ID)
	default:
		return fmt.Sprintf("Database error for product %s: %v", e.ID, e.Err)
	}
}

func (e *ResolveError) Unwrap() error { return e.Err }

// ExtractID returns the trailing numeric id of a product URL.
func ExtractID(rawURL string) (string, bool) {
	m := trailingID.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Resolver maps product page URLs to catalog records.
type Resolver struct {
	repo Repository
	log  *zap.Logger
}

func NewResolver(repo Repository, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{repo: repo, log: log}
}

// Resolve extracts the product id from rawURL and looks it up. Errors are
// always *ResolveError.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (Product, error) {
	id, ok := ExtractID(rawURL)
	if !ok {
		return Product{}, &ResolveError{URL: rawURL, Err: ErrNoProductID}
	}
	p, err := r.Lookup(ctx, id)
	if err != nil {
		return Product{}, &ResolveError{URL: rawURL, ID: id, Err: err}
	}
	return p, nil
}

// Lookup tries id as stored text first and then as an integer. A store error
// on one representation does not stop the other from being tried.
func (r *Resolver) Lookup(ctx context.Context, id string) (Product, error) {
	keys := []Key{TextKey(id)}
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		keys = append(keys, NumericKey(n))
	}

	var lastErr error
	for _, key := range keys {
		p, err := r.repo.FindByID(ctx, key)
		if err == nil {
			return p, nil
		}
		if errors.Is(err, ErrNotFound) {
			continue
		}
		r.log.Warn("product lookup failed",
			zap.String("product_id", id),
			zap.Bool("text_key", key.IsText()),
			zap.Error(err),
		)
		lastErr = err
	}
	if lastErr != nil {
		return Product{}, lastErr
	}
	return Product{}, ErrNotFound
}
