package product

import "strconv"

// Product is a catalog record as read from the product store.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Product struct {
	ID            int64  `json:"productId"`
	Code          string `json:"productCode,omitempty"`
	Brand         string `json:"brand"`
	SubcategoryID int    `json:"subcategoryId"`
	Subcategory   string `json:"subcategory"`
}

// Key is a product identifier in one of the two representations the catalog
// has stored it as over time: a numeric-looking string or an integer.
type Key struct {
	text    string
	numeric int64
	isText  bool
}

func TextKey(s string) Key   { return Key{text: s, isText: true} }
func NumericKey(n int64) Key { return Key{numeric: n} }

func (k Key) IsText() bool   { return k.isText }
func (k Key) String() string { return k.Text() }

// Text returns the key in its string form.
func (k Key) Text() string {
	if k.isText {
		return k.text
	}
	return strconv.FormatInt(k.numeric, 10)
}

// Numeric returns the key as an integer, reporting false when a text key is
// not a valid int64.
func (k Key) Numeric() (int64, bool) {
	if !k.isText {
		return k.numeric, true
	}
	n, err := strconv.ParseInt(k.text, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Value returns the key in its own representation, for stores that keep the
// type of the identifier (string or int64).
func (k Key) Value() any {
	if k.isText {
		return k.text
	}
	return k.numeric
}
