package category

import "github.com/yunjiexue/ssense-editorial-caption-generator/internal/language"

// Record is a category row with its per-language labels. Any label may be
// absent; JSON tags keep the field names of the catalog store.
type Record struct {
	ID       int     `json:"id"`
	Category string  `json:"category"`
	EN       *string `json:"CategoryEN,omitempty"`
	FR       *string `json:"CategoryFR,omitempty"`
	JP       *string `json:"CategoryJP,omitempty"`
	ZH       *string `json:"CategoryZH,omitempty"`
}

// Label returns the non-empty label stored for code.
func (r Record) Label(code language.Code) (string, bool) {
	var v *string
	switch code {
	case language.EN:
		v = r.EN
	case language.FR:
		v = r.FR
	case language.JP:
		v = r.JP
	case language.ZH:
		v = r.ZH
	}
	if v == nil || *v == "" {
		return "", false
	}
	return *v, true
}
