package caption

import (
	"context"
	"errors"
	"fmt"

	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/language"
	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/product"
	"go.uber.org/zap"
)

var (
	ErrNoURLs             = errors.New("no URLs provided")
	ErrUnknownTemplate    = errors.New("unknown template type")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

// Result is the multi-language caption output of one request.
type Result struct {
	Captions map[language.Code]string `json:"captions"`
	Errors   []string                 `json:"errors"`
	Success  bool                     `json:"success"`
}

type ProductResolver interface {
	Resolve(ctx context.Context, rawURL string) (product.Product, error)
}

type CategoryTranslator interface {
	Translate(ctx context.Context, p product.Product, code language.Code) string
}

type URLRewriter interface {
	Rewrite(rawURL string, code language.Code) string
}

// Pinger reports whether the catalog store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Service builds captions for a batch of product URLs in every supported
// language.
type Service struct {
	resolver   ProductResolver
	translator CategoryTranslator
	rewriter   URLRewriter
	catalog    Pinger
	log        *zap.Logger
}

func NewService(resolver ProductResolver, translator CategoryTranslator, rewriter URLRewriter, catalog Pinger, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		resolver:   resolver,
		translator: translator,
		rewriter:   rewriter,
		catalog:    catalog,
		log:        log,
	}
}

// Generate resolves urls in order and renders one caption per language.
// Unresolvable URLs and failing languages are reported in Result.Errors; only
// invalid input and an unreachable catalog return an error.
func (s *Service) Generate(ctx context.Context, urls []string, templateType, talentName string) (Result, error) {
	if len(urls) == 0 {
		return Result{}, ErrNoURLs
	}
	tt, ok := ParseTemplateType(templateType)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownTemplate, templateType)
	}
	if s.catalog != nil {
		if err := s.catalog.Ping(ctx); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		}
	}

	res := Result{
		Captions: make(map[language.Code]string, len(language.All)),
		Errors:   []string{},
	}
	for _, code := range language.All {
		res.Captions[code] = ""
	}

	views := make([]View, 0, len(urls))
	for _, u := range urls {
		p, err := s.resolver.Resolve(ctx, u)
		if err != nil {
			res.Errors = append(res.Errors, err.Error())
			continue
		}
		v := View{
			Product:    p,
			URLs:       make(map[language.Code]string, len(language.All)),
			Categories: make(map[language.Code]string, len(language.All)),
		}
		for _, code := range language.All {
			v.URLs[code] = s.rewriter.Rewrite(u, code)
		}
		views = append(views, v)
	}
	res.Success = len(views) > 0

	if res.Success {
		for _, code := range language.All {
			caption, err := s.render(ctx, views, tt, talentName, code)
			if err != nil {
				s.log.Error("caption formatting failed", zap.String("lang", string(code)), zap.Error(err))
				res.Errors = append(res.Errors, fmt.Sprintf("Error generating %s caption: %v", code, err))
				continue
			}
			res.Captions[code] = caption
		}
	}

	s.log.Info("captions generated",
		zap.Int("urls", len(urls)),
		zap.Int("products", len(views)),
		zap.String("template", string(tt)),
		zap.Int("errors", len(res.Errors)),
	)
	return res, nil
}

// render produces one language's caption. Panics are turned into errors so a
// broken language cannot take the others down.
func (s *Service) render(ctx context.Context, views []View, tt TemplateType, talentName string, code language.Code) (caption string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	lead, ok := Lead(tt, code, talentName)
	if !ok {
		return "", fmt.Errorf("no %s template for %s", code, tt)
	}
	for i := range views {
		views[i].Categories[code] = s.translator.Translate(ctx, views[i].Product, code)
	}
	return Format(views, lead, code)
}
