package product

import (
	"context"
	"errors"
	"strconv"
	"sync"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Repository is the read-only view of the product store.
type Repository interface {
	// FindByID looks the key up in exactly its own representation.
	FindByID(ctx context.Context, key Key) (Product, error)
	Count(ctx context.Context) (int64, error)
}

// InMemoryRepository is a simple in-memory implementation useful for tests and
// local runs. Products seeded with AddLegacy are only reachable by text key,
// mirroring catalogs that stored the identifier as a string.
type InMemoryRepository struct {
	mu      sync.RWMutex
	numeric map[int64]Product
	text    map[string]Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{
		numeric: make(map[int64]Product, len(seed)),
		text:    make(map[string]Product),
	}
	for _, p := range seed {
		r.numeric[p.ID] = p
	}
	return r
}

// AddLegacy stores p under the string form of its id.
func (r *InMemoryRepository) AddLegacy(p Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.text[strconv.FormatInt(p.ID, 10)] = p
}

func (r *InMemoryRepository) FindByID(_ context.Context, key Key) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if key.IsText() {
		if p, ok := r.text[key.Text()]; ok {
			return p, nil
		}
		return Product{}, ErrNotFound
	}
	n, _ := key.Numeric()
	if p, ok := r.numeric[n]; ok {
		return p, nil
	}
	return Product{}, ErrNotFound
}

func (r *InMemoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.numeric) + len(r.text)), nil
}
