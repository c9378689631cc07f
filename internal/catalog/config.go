package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SortMode is the menu ordering picked by the visitor.
type SortMode string

const (
	SortFeatured  SortMode = "featured"
	SortNameAsc   SortMode = "name-asc"
	SortNameDesc  SortMode = "name-desc"
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
)

// SortModes lists the modes in the order the sort picker offers them.
var SortModes = []SortMode{SortFeatured, SortNameAsc, SortNameDesc, SortPriceAsc, SortPriceDesc}

// ParseSortMode falls back to featured for anything it does not know.
func ParseSortMode(s string) SortMode {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range SortModes {
		if string(m) == s {
			return m
		}
	}
	return SortFeatured
}

// Price bounds outside these limits are treated as unset. A bound like
// 1e2000000000 parses cheaply but every comparison or rendering expands it.
const (
	maxPriceDigits   = 12
	minPriceExponent = -6
	maxPriceExponent = 6
)

// ParsePrice reads a price bound. Empty, non-numeric or out-of-range input
// means unset.
func ParsePrice(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	if exp := d.Exponent(); exp < minPriceExponent || exp > maxPriceExponent {
		return nil
	}
	if d.NumDigits() > maxPriceDigits {
		return nil
	}
	return &d
}

// Config is the visitor's current view of the menu.
// The zero value is the default view: all categories, featured first.
type Config struct {
	Categories Selection
	Search     string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Sort       SortMode
}

// SortOrDefault treats an empty mode as featured.
func (c Config) SortOrDefault() SortMode {
	if c.Sort == "" {
		return SortFeatured
	}
	return c.Sort
}

// IsDefault reports whether c would encode to no query parameters.
func (c Config) IsDefault() bool {
	return c.Categories.IsAll() &&
		c.Search == "" &&
		c.MinPrice == nil &&
		c.MaxPrice == nil &&
		c.SortOrDefault() == SortFeatured
}

// Equal compares bounds numerically, so 5 and 5.00 are the same bound.
func (c Config) Equal(o Config) bool {
	return c.Categories.Equal(o.Categories) &&
		c.Search == o.Search &&
		equalBound(c.MinPrice, o.MinPrice) &&
		equalBound(c.MaxPrice, o.MaxPrice) &&
		c.SortOrDefault() == o.SortOrDefault()
}

func equalBound(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
