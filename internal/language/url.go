package language

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// englishLocaleSegment matches a full /en-us/ or /en-ca/ path segment.
var englishLocaleSegment = regexp.MustCompile(`/en-(?:us|ca)/`)

// Rewriter turns English storefront URLs into their localized equivalents.
type Rewriter struct {
	log *zap.Logger
}

func NewRewriter(log *zap.Logger) *Rewriter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Rewriter{log: log}
}

// Rewrite returns the storefront URL of rawURL for code. English, unsupported
// languages and URLs without an English locale segment come back unchanged.
func (r *Rewriter) Rewrite(rawURL string, code Code) string {
	if code == EN {
		return rawURL
	}
	rule, ok := RuleFor(code)
	if !ok {
		r.log.Warn("unsupported language for url rewrite", zap.String("lang", string(code)), zap.String("url", rawURL))
		return rawURL
	}

	loc := englishLocaleSegment.FindStringIndex(rawURL)
	if loc == nil {
		r.log.Debug("no locale segment in url, leaving unchanged", zap.String("lang", string(code)), zap.String("url", rawURL))
		return rawURL
	}
	out := rawURL[:loc[0]] + "/" + rule.LocaleToken + "/" + rawURL[loc[1]:]

	for _, s := range rule.PathSubstitutions {
		out = strings.ReplaceAll(out, s.From, s.To)
	}
	return out
}
