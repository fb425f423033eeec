// Package language holds the per-language rule table used to build captions
// and localized storefront URLs.
package language

import "strings"

// Code identifies a supported caption language.
type Code string

const (
	EN Code = "en"
	FR Code = "fr"
	JP Code = "jp"
	ZH Code = "zh"
)

// All lists the supported languages in caption output order.
var All = []Code{EN, FR, JP, ZH}

// Substitution is a literal path rewrite.
type Substitution struct {
	From string
	To   string
}

// Rule describes how one language renders a caption and its storefront URLs.
type Rule struct {
	// LocaleToken replaces the English locale segment of a product URL.
	// Empty for English.
	LocaleToken string
	// PathSubstitutions run in order after the locale token swap.
	PathSubstitutions []Substitution
	// CategoryFirst renders "[category brand]" instead of "[brand category]".
	CategoryFirst bool
	// Logographic languages join fragments with Separator directly after the
	// lead-in and never use a conjunction.
	Logographic bool
	Conjunction string
	Separator   string
	Terminator  string
	// TalentPlaceholder is the token in this language's talent templates
	// replaced by the supplied talent name.
	TalentPlaceholder string
}

var rules = map[Code]Rule{
	EN: {
		Conjunction:       "and",
		Separator:         ",",
		Terminator:        ".",
		TalentPlaceholder: "[Talent name]",
	},
	FR: {
		LocaleToken: "fr",
		PathSubstitutions: []Substitution{
			{From: "/product/", To: "/produit/"},
			{From: "/women/", To: "/femmes/"},
			{From: "/men/", To: "/hommes/"},
		},
		CategoryFirst:     true,
		Conjunction:       "et",
		Separator:         ",",
		Terminator:        ".",
		TalentPlaceholder: "[Nom du talent]",
	},
	JP: {
		LocaleToken:       "ja",
		Logographic:       true,
		Separator:         "、",
		Terminator:        "。",
		TalentPlaceholder: "[タレント名]",
	},
	ZH: {
		LocaleToken:       "zh",
		Logographic:       true,
		Separator:         "、",
		Terminator:        "。",
		TalentPlaceholder: "[艺人姓名]",
	},
}

// RuleFor returns the rule for code.
func RuleFor(code Code) (Rule, bool) {
	r, ok := rules[code]
	return r, ok
}

// Parse maps a language string such as "FR" to its Code.
func Parse(s string) (Code, bool) {
	c := Code(strings.ToLower(strings.TrimSpace(s)))
	_, ok := rules[c]
	return c, ok
}

// Supported reports whether code has a rule.
func (c Code) Supported() bool {
	_, ok := rules[c]
	return ok
}
