package category

import (
	"context"
	"errors"

	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/language"
	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/product"
	"go.uber.org/zap"
)

// UnknownCategory is rendered when neither the catalog nor the product carry
// any category text.
const UnknownCategory = "Unknown Category"

// Translator resolves the display category of a product per language.
type Translator struct {
	repo Repository
	log  *zap.Logger
}

func NewTranslator(repo Repository, log *zap.Logger) *Translator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Translator{repo: repo, log: log}
}

// recordLookup is one route to the product's category record.
type recordLookup struct {
	name string
	find func(ctx context.Context, p product.Product) (Record, error)
}

func (t *Translator) lookups() []recordLookup {
	return []recordLookup{
		{name: "id", find: func(ctx context.Context, p product.Product) (Record, error) {
			if p.SubcategoryID <= 0 {
				return Record{}, ErrNotFound
			}
			return t.repo.FindByID(ctx, p.SubcategoryID)
		}},
		{name: "label", find: func(ctx context.Context, p product.Product) (Record, error) {
			if p.Subcategory == "" {
				return Record{}, ErrNotFound
			}
			return t.repo.FindByLabel(ctx, p.Subcategory)
		}},
	}
}

// Translate never fails. Priority: the record's label for code, the record's
// English label, the product's raw subcategory, UnknownCategory.
func (t *Translator) Translate(ctx context.Context, p product.Product, code language.Code) string {
	if rec, ok := t.findRecord(ctx, p); ok {
		if v, ok := rec.Label(code); ok {
			return v
		}
		if v, ok := rec.Label(language.EN); ok {
			t.log.Debug("category label missing, using english",
				zap.Int("category_id", rec.ID), zap.String("lang", string(code)))
			return v
		}
	}
	if p.Subcategory != "" {
		t.log.Debug("no category label, using product subcategory",
			zap.Int64("product_id", p.ID), zap.String("lang", string(code)))
		return p.Subcategory
	}
	t.log.Warn("no category text for product", zap.Int64("product_id", p.ID))
	return UnknownCategory
}

// findRecord returns the first record any lookup reaches. Store errors count
// as a miss for that route.
func (t *Translator) findRecord(ctx context.Context, p product.Product) (Record, bool) {
	for _, l := range t.lookups() {
		rec, err := l.find(ctx, p)
		if err == nil {
			return rec, true
		}
		if !errors.Is(err, ErrNotFound) {
			t.log.Warn("category lookup failed",
				zap.String("route", l.name), zap.Int64("product_id", p.ID), zap.Error(err))
		}
	}
	return Record{}, false
}
