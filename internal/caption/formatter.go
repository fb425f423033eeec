package caption

import (
	"fmt"
	"strings"

	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/language"
	"github.com/yunjiexue/ssense-editorial-caption-generator/internal/product"
)

// View is a product enriched for one request: its storefront URL and display
// category per language.
type View struct {
	Product    product.Product
	URLs       map[language.Code]string
	Categories map[language.Code]string
}

// Format renders the caption for code from an already talent-substituted
// lead-in. Every view must carry a URL and a category for code.
func Format(views []View, lead string, code language.Code) (string, error) {
	if len(views) == 0 {
		return "", nil
	}
	rule, ok := language.RuleFor(code)
	if !ok {
		return "", fmt.Errorf("unsupported language %q", code)
	}

	fragments := make([]string, 0, len(views))
	for _, v := range views {
		f, err := fragment(v, code, rule)
		if err != nil {
			return "", err
		}
		fragments = append(fragments, f)
	}

	if rule.Logographic {
		return lead + strings.Join(fragments, rule.Separator) + rule.Terminator, nil
	}

	n := len(fragments)
	if n == 1 {
		return lead + " " + fragments[0] + rule.Terminator, nil
	}
	var b strings.Builder
	b.WriteString(lead)
	b.WriteString(" ")
	for _, f := range fragments[:n-1] {
		b.WriteString(f)
		b.WriteString(rule.Separator)
		b.WriteString(" ")
	}
	b.WriteString(rule.Conjunction)
	b.WriteString(" ")
	b.WriteString(fragments[n-1])
	b.WriteString(rule.Terminator)
	return b.String(), nil
}

func fragment(v View, code language.Code, rule language.Rule) (string, error) {
	url, ok := v.URLs[code]
	if !ok || url == "" {
		return "", fmt.Errorf("no %s url for product %d", code, v.Product.ID)
	}
	cat, ok := v.Categories[code]
	if !ok {
		return "", fmt.Errorf("no %s category for product %d", code, v.Product.ID)
	}

	first, second := v.Product.Brand, cat
	if rule.CategoryFirst {
		first, second = cat, v.Product.Brand
	}
	return fmt.Sprintf("[%s %s](%s)", first, second, url), nil
}
