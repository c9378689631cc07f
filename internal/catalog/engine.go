package catalog

import (
	"slices"
	"strings"

	"beaticafe/internal/domain/model"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Predicate decides whether a product stays on the menu.
type Predicate func(model.Product) bool

// CategoryPredicate passes everything when sel is "all".
func CategoryPredicate(sel Selection) Predicate {
	return func(p model.Product) bool { return sel.Matches(p.Category) }
}

// SearchPredicate matches term case-insensitively against name or description.
func SearchPredicate(term string) Predicate {
	if term == "" {
		return func(model.Product) bool { return true }
	}
	fold := cases.Fold()
	needle := fold.String(term)
	return func(p model.Product) bool {
		return strings.Contains(fold.String(p.Name), needle) ||
			strings.Contains(fold.String(p.Description), needle)
	}
}

// PricePredicate applies whichever bounds are set; both ends are inclusive.
func PricePredicate(lo, hi *decimal.Decimal) Predicate {
	return func(p model.Product) bool {
		if lo != nil && p.Price.LessThan(*lo) {
			return false
		}
		if hi != nil && p.Price.GreaterThan(*hi) {
			return false
		}
		return true
	}
}

// Filter keeps the products passing every predicate, in input order.
func Filter(products []model.Product, preds ...Predicate) []model.Product {
	out := make([]model.Product, 0, len(products))
next:
	for _, p := range products {
		for _, pred := range preds {
			if !pred(p) {
				continue next
			}
		}
		out = append(out, p)
	}
	return out
}

// Apply returns the visible menu for cfg. products is never modified.
func Apply(products []model.Product, cfg Config) []model.Product {
	out := Filter(products,
		CategoryPredicate(cfg.Categories),
		SearchPredicate(cfg.Search),
		PricePredicate(cfg.MinPrice, cfg.MaxPrice),
	)
	Sort(out, cfg.SortOrDefault())
	return out
}

// Sort orders products in place. It is stable for every mode.
func Sort(products []model.Product, mode SortMode) {
	switch mode {
	case SortNameAsc, SortNameDesc:
		// a Collator is not safe for concurrent use
		col := collate.New(language.English)
		slices.SortStableFunc(products, func(a, b model.Product) int {
			if mode == SortNameDesc {
				a, b = b, a
			}
			return col.CompareString(a.Name, b.Name)
		})
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return a.Price.Cmp(b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return b.Price.Cmp(a.Price)
		})
	default:
		slices.SortStableFunc(products, func(a, b model.Product) int {
			return featuredRank(a) - featuredRank(b)
		})
	}
}

func featuredRank(p model.Product) int {
	if p.Featured {
		return 0
	}
	return 1
}

// Featured returns the featured products in catalog order.
func Featured(products []model.Product) []model.Product {
	return Filter(products, func(p model.Product) bool { return p.Featured })
}

// Facet is one entry of the category picker.
type Facet struct {
	Value    string
	Count    int
	Selected bool
	// Query is the encoded view after clicking this entry.
	Query string
}

// Facets counts each category under the current search and price filter and
// precomputes the view each click would lead to. The "all" entry comes first.
func Facets(products []model.Product, cfg Config) []Facet {
	base := Filter(products,
		SearchPredicate(cfg.Search),
		PricePredicate(cfg.MinPrice, cfg.MaxPrice),
	)

	counts := make(map[model.Category]int, len(model.Categories))
	for _, p := range base {
		counts[p.Category]++
	}

	facets := make([]Facet, 0, len(model.Categories)+1)

	next := cfg
	next.Categories = cfg.Categories.Toggle(All)
	facets = append(facets, Facet{
		Value:    All,
		Count:    len(base),
		Selected: cfg.Categories.IsAll(),
		Query:    Query(next),
	})

	for _, c := range model.Categories {
		next := cfg
		next.Categories = cfg.Categories.Toggle(string(c))
		facets = append(facets, Facet{
			Value:    string(c),
			Count:    counts[c],
			Selected: cfg.Categories.Has(c),
			Query:    Query(next),
		})
	}
	return facets
}

// PriceRange is the cheapest and dearest price among products.
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// PriceRanges reports the price span of every category that has products.
func PriceRanges(products []model.Product) map[model.Category]PriceRange {
	out := make(map[model.Category]PriceRange)
	for _, p := range products {
		r, ok := out[p.Category]
		if !ok {
			out[p.Category] = PriceRange{Min: p.Price, Max: p.Price}
			continue
		}
		if p.Price.LessThan(r.Min) {
			r.Min = p.Price
		}
		if p.Price.GreaterThan(r.Max) {
			r.Max = p.Price
		}
		out[p.Category] = r
	}
	return out
}
