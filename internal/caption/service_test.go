package caption

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/category"
	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/language"
	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/product"
)

func str(s string) *string { return &s }

type countingPinger struct {
	calls int
	err   error
}

func (p *countingPinger) Ping(context.Context) error {
	p.calls++
	return p.err
}

func newTestService(t *testing.T, pinger Pinger) *Service {
	t.Helper()
	products := product.NewInMemoryRepository([]product.Product{
		{ID: 1001, Brand: "Acme", SubcategoryID: 5},
		{ID: 1002, Brand: "Kijun", SubcategoryID: 214, Subcategory: "TANK TOPS"},
	})
	categories := category.NewInMemoryRepository([]category.Record{
		{ID: 5, Category: "T-SHIRTS", EN: str("T-Shirts"), FR: str("T-Shirts"), JP: str("Tシャツ"), ZH: str("T恤")},
		{ID: 214, Category: "TANK TOPS", EN: str("Tank Tops"), ZH: str("背心")},
	})
	return NewService(
		product.NewResolver(products, nil),
		category.NewTranslator(categories, nil),
		language.NewRewriter(nil),
		pinger,
		nil,
	)
}

func TestGenerate_SingleProductScenario(t *testing.T) {
	svc := newTestService(t, nil)

	res, err := svc.Generate(context.Background(), []string{"https://example.com/en-us/product/1001"}, "model_wears", "")
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Empty(t, res.Errors)
	assert.Equal(t, "Model wears [Acme T-Shirts](https://example.com/en-us/product/1001).", res.Captions[language.EN])
	assert.Equal(t, "Le mannequin porte [T-Shirts Acme](https://example.com/fr/produit/1001).", res.Captions[language.FR])
	assert.Equal(t, "モデル着用：[Acme Tシャツ](https://example.com/ja/product/1001)。", res.Captions[language.JP])
	assert.Equal(t, "模特穿着：[Acme T恤](https://example.com/zh/product/1001)。", res.Captions[language.ZH])
}

func TestGenerate_TwoProductsChinese(t *testing.T) {
	svc := newTestService(t, nil)

	res, err := svc.Generate(context.Background(), []string{
		"https://example.com/en-us/product/1001",
		"https://example.com/en-ca/men/product/1002",
	}, "featured", "")
	require.NoError(t, err)

	assert.Equal(t, "图中精选单品：[Acme T恤](https://example.com/zh/product/1001)、[Kijun 背心](https://example.com/zh/men/product/1002)。", res.Captions[language.ZH])
	// no french label for 214: english label wins over the raw subcategory
	assert.Contains(t, res.Captions[language.FR], "[Tank Tops Kijun](https://example.com/fr/hommes/produit/1002)")
	assert.Contains(t, res.Captions[language.EN], ", and [Kijun Tank Tops]")
}

func TestGenerate_PartialFailure(t *testing.T) {
	svc := newTestService(t, nil)

	res, err := svc.Generate(context.Background(), []string{
		"https://example.com/en-us/product/1001",
		"https://example.com/en-us/product/4040",
	}, "featured", "")
	require.NoError(t, err)

	assert.True(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Product ID 4040 not found in database", res.Errors[0])
	assert.Equal(t, "Featured In This Image: [Acme T-Shirts](https://example.com/en-us/product/1001).", res.Captions[language.EN])
}

func TestGenerate_NothingResolves(t *testing.T) {
	svc := newTestService(t, nil)

	res, err := svc.Generate(context.Background(), []string{
		"https://example.com/en-us/product/abc",
		"https://example.com/en-us/product/4040",
	}, "featured", "")
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, []string{
		"Could not extract product ID from URL: https://example.com/en-us/product/abc",
		"Product ID 4040 not found in database",
	}, res.Errors)
	require.Len(t, res.Captions, len(language.All))
	for _, code := range language.All {
		assert.Equal(t, "", res.Captions[code])
	}
}

func TestGenerate_EmptyURLsIsClientErrorBeforeCatalog(t *testing.T) {
	pinger := &countingPinger{}
	svc := newTestService(t, pinger)

	_, err := svc.Generate(context.Background(), nil, "featured", "")
	assert.ErrorIs(t, err, ErrNoURLs)
	assert.Equal(t, 0, pinger.calls)
}

func TestGenerate_UnknownTemplate(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.Generate(context.Background(), []string{"https://example.com/en-us/product/1001"}, "banner", "")
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestGenerate_CatalogUnavailable(t *testing.T) {
	pinger := &countingPinger{err: errors.New("dial tcp: connection refused")}
	svc := newTestService(t, pinger)

	_, err := svc.Generate(context.Background(), []string{"https://example.com/en-us/product/1001"}, "featured", "")
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.Equal(t, 1, pinger.calls)
}

func TestGenerate_TalentName(t *testing.T) {
	svc := newTestService(t, nil)

	res, err := svc.Generate(context.Background(), []string{"https://example.com/en-us/product/1001"}, "top_talent", "Bella")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(res.Captions[language.EN], "Top Image: Bella wears ["))
	assert.True(t, strings.HasPrefix(res.Captions[language.FR], "Image Du Haut: Bella porte ["))
	assert.True(t, strings.HasPrefix(res.Captions[language.JP], "上の画像：Bella着用：["))
	assert.True(t, strings.HasPrefix(res.Captions[language.ZH], "上图：Bella穿着：["))
}

// panickyTranslator blows up for one language.
type panickyTranslator struct {
	CategoryTranslator
	broken language.Code
}

func (p panickyTranslator) Translate(ctx context.Context, prod product.Product, code language.Code) string {
	if code == p.broken {
		panic("label table corrupted")
	}
	return p.CategoryTranslator.Translate(ctx, prod, code)
}

func TestGenerate_LanguageFailureIsIsolated(t *testing.T) {
	products := product.NewInMemoryRepository([]product.Product{{ID: 1001, Brand: "Acme", SubcategoryID: 5}})
	categories := category.NewInMemoryRepository([]category.Record{{ID: 5, Category: "T-SHIRTS", EN: str("T-Shirts")}})
	svc := NewService(
		product.NewResolver(products, nil),
		panickyTranslator{CategoryTranslator: category.NewTranslator(categories, nil), broken: language.JP},
		language.NewRewriter(nil),
		nil,
		nil,
	)

	res, err := svc.Generate(context.Background(), []string{"https://example.com/en-us/product/1001"}, "featured", "")
	require.NoError(t, err)

	assert.True(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.True(t, strings.HasPrefix(res.Errors[0], "Error generating jp caption:"), res.Errors[0])
	assert.Equal(t, "", res.Captions[language.JP])
	assert.NotEmpty(t, res.Captions[language.EN])
	assert.NotEmpty(t, res.Captions[language.FR])
	assert.NotEmpty(t, res.Captions[language.ZH])
}
