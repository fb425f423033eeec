package category

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("category not found")

// Repository provides read access to category records.
type Repository interface {
	FindByID(ctx context.Context, id int) (Record, error)
	// FindByLabel matches the canonical category text exactly, then
	// case-insensitively against the whole value. Never a substring match.
	FindByLabel(ctx context.Context, label string) (Record, error)
	List(ctx context.Context, limit int) ([]Record, error)
	Count(ctx context.Context) (int64, error)
}

// anchoredPattern is the whole-value, case-insensitive pattern for label.
func anchoredPattern(label string) string {
	return "^" + regexp.QuoteMeta(label) + "$"
}

// InMemoryRepository keeps category records in memory.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records []Record
}

func NewInMemoryRepository(seed []Record) *InMemoryRepository {
	records := make([]Record, len(seed))
	copy(records, seed)
	return &InMemoryRepository{records: records}
}

func (r *InMemoryRepository) FindByID(_ context.Context, id int) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return Record{}, ErrNotFound
}

func (r *InMemoryRepository) FindByLabel(_ context.Context, label string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.Category == label {
			return rec, nil
		}
	}
	re, err := regexp.Compile("(?i)" + anchoredPattern(label))
	if err != nil {
		return Record{}, err
	}
	for _, rec := range r.records {
		if re.MatchString(rec.Category) {
			return rec, nil
		}
	}
	return Record{}, ErrNotFound
}

func (r *InMemoryRepository) List(_ context.Context, limit int) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.records)), nil
}
