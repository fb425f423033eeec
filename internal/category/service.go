package category

import "context"

// Service provides business logic for categories.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns up to `limit` category records. Store failures yield an empty
// slice so the listing endpoint stays resilient.
func (s *Service) List(ctx context.Context, limit int) []Record {
	items, err := s.repo.List(ctx, limit)
	if err != nil {
		return []Record{}
	}
	return items
}
