package catalog

import (
	"net/url"
	"strings"
)

// Query parameter names shared with the website's /menu links.
const (
	ParamCategory = "category"
	ParamSort     = "sort"
	ParamSearch   = "search"
	ParamMinPrice = "minPrice"
	ParamMaxPrice = "maxPrice"
)

// Encode mirrors cfg into query parameters. Defaults are left out, so the
// default view encodes to no parameters at all.
func Encode(cfg Config) url.Values {
	v := url.Values{}
	if !cfg.Categories.IsAll() {
		v.Set(ParamCategory, cfg.Categories.String())
	}
	if s := cfg.SortOrDefault(); s != SortFeatured {
		v.Set(ParamSort, string(s))
	}
	if cfg.Search != "" {
		v.Set(ParamSearch, cfg.Search)
	}
	if cfg.MinPrice != nil {
		v.Set(ParamMinPrice, cfg.MinPrice.String())
	}
	if cfg.MaxPrice != nil {
		v.Set(ParamMaxPrice, cfg.MaxPrice.String())
	}
	return v
}

// Decode reads a view back from query parameters. It never fails: unknown
// categories are ignored, unknown sort modes become featured and
// non-numeric prices are unset.
func Decode(v url.Values) Config {
	cfg := Config{Sort: ParseSortMode(v.Get(ParamSort))}
	if raw := v.Get(ParamCategory); raw != "" {
		cfg.Categories = NewSelection(strings.Split(raw, ",")...)
	}
	cfg.Search = v.Get(ParamSearch)
	cfg.MinPrice = ParsePrice(v.Get(ParamMinPrice))
	cfg.MaxPrice = ParsePrice(v.Get(ParamMaxPrice))
	return cfg
}

// Query is Encode rendered as a query string ("" for the default view).
func Query(cfg Config) string {
	return Encode(cfg).Encode()
}

// ParseQuery decodes a raw query string, tolerating a leading "?".
func ParseQuery(raw string) Config {
	// on a malformed pair url.ParseQuery still returns the pairs it could read
	v, _ := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	return Decode(v)
}
