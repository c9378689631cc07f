package catalog

import (
	"slices"
	"sync"

	"beaticafe/internal/domain/model"
	"beaticafe/internal/observe"
)

// Change is what subscribers of a View receive after each update.
type Change struct {
	Config  Config
	Visible []model.Product
	// Query is the shareable query string of Config.
	Query string
}

// View holds the full menu and the visitor's current Config. Every mutation
// recomputes the visible list and its query string before returning.
type View struct {
	// notifyMu orders delivery; listeners must not mutate the view.
	notifyMu sync.Mutex
	mu       sync.Mutex
	products []model.Product
	cfg      Config
	visible  []model.Product
	query    string

	changes observe.Subject[Change]
}

// NewView starts a view on products with cfg applied.
func NewView(products []model.Product, cfg Config) *View {
	v := &View{products: slices.Clone(products)}
	v.recompute(cfg)
	return v
}

func (v *View) Config() Config {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cfg
}

// Visible returns the current menu. The slice is the caller's to keep.
func (v *View) Visible() []model.Product {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.visible)
}

func (v *View) Query() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

// Facets describes the category picker for the current config.
func (v *View) Facets() []Facet {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Facets(v.products, v.cfg)
}

// Subscribe registers fn for every config change.
func (v *View) Subscribe(fn func(Change)) (unsubscribe func()) {
	return v.changes.Subscribe(fn)
}

func (v *View) ToggleCategory(token string) {
	v.update(func(c *Config) { c.Categories = c.Categories.Toggle(token) })
}

func (v *View) SelectAllCategories() {
	v.update(func(c *Config) { c.Categories = Selection{} })
}

func (v *View) SetSearch(term string) {
	v.update(func(c *Config) { c.Search = term })
}

// SetMinPrice takes the raw text of the bound; garbage clears it.
func (v *View) SetMinPrice(raw string) {
	v.update(func(c *Config) { c.MinPrice = ParsePrice(raw) })
}

func (v *View) SetMaxPrice(raw string) {
	v.update(func(c *Config) { c.MaxPrice = ParsePrice(raw) })
}

func (v *View) SetSort(raw string) {
	v.update(func(c *Config) { c.Sort = ParseSortMode(raw) })
}

// Reset goes back to the default view ("clear all filters").
func (v *View) Reset() {
	v.update(func(c *Config) { *c = Config{} })
}

// Replace swaps in a whole config, e.g. one decoded from a link.
func (v *View) Replace(cfg Config) {
	v.update(func(c *Config) { *c = cfg })
}

func (v *View) update(mutate func(*Config)) {
	v.notifyMu.Lock()
	defer v.notifyMu.Unlock()

	v.mu.Lock()
	next := v.cfg
	mutate(&next)
	if next.Equal(v.cfg) {
		v.mu.Unlock()
		return
	}
	v.recompute(next)
	ch := Change{Config: v.cfg, Visible: slices.Clone(v.visible), Query: v.query}
	v.mu.Unlock()

	v.changes.Notify(ch)
}

// recompute must be called with mu held (or before v is shared).
func (v *View) recompute(cfg Config) {
	if cfg.Sort == "" {
		cfg.Sort = SortFeatured
	}
	v.cfg = cfg
	v.visible = Apply(v.products, cfg)
	v.query = Query(cfg)
}
