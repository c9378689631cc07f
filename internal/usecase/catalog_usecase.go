package usecase

import (
	"context"
	"net/http"
	"net/url"

	"beaticafe/internal/catalog"
	"beaticafe/internal/domain/model"
	repo "beaticafe/internal/repository"

	"github.com/go-faster/errors"
)

// ProductDTO is a product as the website renders it.
type ProductDTO struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       string         `json:"price"`
	Category    model.Category `json:"category"`
	Image       string         `json:"image"`
	Featured    bool           `json:"featured"`
}

func toProductDTO(p model.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Category:    p.Category,
		Image:       p.Image,
		Featured:    p.Featured,
	}
}

func toProductDTOs(ps []model.Product) []ProductDTO {
	out := make([]ProductDTO, len(ps))
	for i, p := range ps {
		out[i] = toProductDTO(p)
	}
	return out
}

// MenuConfigDTO is the normalized filter the menu was computed with.
type MenuConfigDTO struct {
	Categories []string `json:"categories"`
	Search     string   `json:"search"`
	MinPrice   *string  `json:"min_price"`
	MaxPrice   *string  `json:"max_price"`
	Sort       string   `json:"sort"`
}

type FacetDTO struct {
	Value    string `json:"value"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected"`
	Query    string `json:"query"`
}

// MenuOutput is GET /menu.
type MenuOutput struct {
	Items  []ProductDTO  `json:"items"`
	Total  int           `json:"total"`
	Config MenuConfigDTO `json:"config"`
	// Query is the canonical query string of Config ("" for defaults).
	Query  string     `json:"query"`
	Facets []FacetDTO `json:"facets"`
}

// CategoryCard is one tile of the category grid.
type CategoryCard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

var categoryCopy = map[string][2]string{
	string(model.CategoryCoffee): {"Coffee", "Explore our premium coffee selection"},
	string(model.CategoryTea):    {"Tea", "Refresh with our tea collection"},
	string(model.CategoryPastry): {"Pastries", "Freshly baked pastries and desserts"},
	string(model.CategoryFood):   {"Food & Snacks", "Delicious meals and savory snacks"},
	catalog.All:                  {"All Items", "Browse our complete menu"},
}

// CatalogUsecase serves the menu. Products are read once, at construction,
// and never change afterwards.
type CatalogUsecase struct {
	products []model.Product
	byID     map[string]model.Product
}

// NewCatalogUsecase loads the whole catalog from productRepo.
func NewCatalogUsecase(ctx context.Context, productRepo repo.ProductRepository) (*CatalogUsecase, error) {
	products, err := productRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog")
	}
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &CatalogUsecase{products: products, byID: byID}, nil
}

// Products returns the immutable catalog. Callers must not modify it.
func (u *CatalogUsecase) Products() []model.Product {
	return u.products
}

// Menu applies the filter encoded in query. It never fails: bad values
// fall back to their defaults.
func (u *CatalogUsecase) Menu(query url.Values) MenuOutput {
	cfg := catalog.Decode(query)
	items := catalog.Apply(u.products, cfg)

	facets := catalog.Facets(u.products, cfg)
	fdto := make([]FacetDTO, len(facets))
	for i, f := range facets {
		fdto[i] = FacetDTO(f)
	}

	return MenuOutput{
		Items:  toProductDTOs(items),
		Total:  len(items),
		Config: toMenuConfigDTO(cfg),
		Query:  catalog.Query(cfg),
		Facets: fdto,
	}
}

func toMenuConfigDTO(cfg catalog.Config) MenuConfigDTO {
	out := MenuConfigDTO{
		Categories: cfg.Categories.Values(),
		Search:     cfg.Search,
		Sort:       string(cfg.SortOrDefault()),
	}
	if cfg.MinPrice != nil {
		s := cfg.MinPrice.String()
		out.MinPrice = &s
	}
	if cfg.MaxPrice != nil {
		s := cfg.MaxPrice.String()
		out.MaxPrice = &s
	}
	return out
}

func (u *CatalogUsecase) Featured() []ProductDTO {
	return toProductDTOs(catalog.Featured(u.products))
}

// Find is the raw product for internal callers (the cart).
func (u *CatalogUsecase) Find(id string) (model.Product, bool) {
	p, ok := u.byID[id]
	return p, ok
}

func (u *CatalogUsecase) GetProduct(id string) (ProductDTO, error) {
	p, ok := u.byID[id]
	if !ok {
		return ProductDTO{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return toProductDTO(p), nil
}

// Categories lists the grid tiles, "all" last.
func (u *CatalogUsecase) Categories() []CategoryCard {
	counts := map[model.Category]int{}
	for _, p := range u.products {
		counts[p.Category]++
	}
	out := make([]CategoryCard, 0, len(model.Categories)+1)
	for _, c := range model.Categories {
		cp := categoryCopy[string(c)]
		out = append(out, CategoryCard{ID: string(c), Name: cp[0], Description: cp[1], Count: counts[c]})
	}
	cp := categoryCopy[catalog.All]
	out = append(out, CategoryCard{ID: catalog.All, Name: cp[0], Description: cp[1], Count: len(u.products)})
	return out
}
