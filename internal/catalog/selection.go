package catalog

import (
	"slices"
	"strings"

	"beaticafe/internal/domain/model"
)

// All is the sentinel shown for "no category filter".
const All = "all"

// Selection is the set of chosen categories in the order they were picked.
// The empty selection is the "all" sentinel; there is no other encoding of it.
type Selection struct {
	cats []model.Category
}

// NewSelection builds a selection from raw tokens.
// Unknown tokens are dropped and an "all" token anywhere wins.
func NewSelection(tokens ...string) Selection {
	var s Selection
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == All {
			return Selection{}
		}
		c, ok := model.ParseCategory(t)
		if !ok || s.Has(c) {
			continue
		}
		s.cats = append(s.cats, c)
	}
	return s
}

func (s Selection) IsAll() bool { return len(s.cats) == 0 }

func (s Selection) Has(c model.Category) bool {
	return slices.Contains(s.cats, c)
}

// Matches reports whether a product of category c passes the filter.
func (s Selection) Matches(c model.Category) bool {
	return s.IsAll() || s.Has(c)
}

// Categories returns a copy of the explicit selection (nil for all).
func (s Selection) Categories() []model.Category {
	return slices.Clone(s.cats)
}

// Values renders the selection the way the UI shows it.
func (s Selection) Values() []string {
	if s.IsAll() {
		return []string{All}
	}
	out := make([]string, len(s.cats))
	for i, c := range s.cats {
		out[i] = string(c)
	}
	return out
}

// Toggle returns the selection after clicking token:
//   - "all" clears every category;
//   - a category picked while on "all" becomes the only one;
//   - a picked category is removed, and removing the last one falls back to "all";
//   - anything else is appended.
//
// Unknown tokens leave the selection unchanged.
func (s Selection) Toggle(token string) Selection {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == All {
		return Selection{}
	}
	c, ok := model.ParseCategory(token)
	if !ok {
		return s
	}
	if s.IsAll() {
		return Selection{cats: []model.Category{c}}
	}
	if s.Has(c) {
		rest := slices.DeleteFunc(slices.Clone(s.cats), func(x model.Category) bool { return x == c })
		return Selection{cats: rest}
	}
	return Selection{cats: append(slices.Clone(s.cats), c)}
}

func (s Selection) Equal(o Selection) bool {
	return slices.Equal(s.cats, o.cats)
}

func (s Selection) String() string {
	return strings.Join(s.Values(), ",")
}
