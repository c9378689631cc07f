// Package catalogdata ships the cafe's menu and static content inside the
// binary. Both are read once at startup.
package catalogdata

import (
	"bytes"
	_ "embed"
	"io"

	"beaticafe/internal/domain/model"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed data/products.yaml
	productsYAML []byte

	//go:embed data/cafe.yaml
	cafeYAML []byte
)

// productDoc is the on-disk shape; price is text so no precision is lost.
type productDoc struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Category    string `yaml:"category"`
	Image       string `yaml:"image"`
	Featured    bool   `yaml:"featured"`
}

type productsFile struct {
	Products []productDoc `yaml:"products"`
}

// Products decodes the embedded menu.
func Products() ([]model.Product, error) {
	return DecodeProducts(bytes.NewReader(productsYAML))
}

// Cafe decodes the embedded cafe content.
func Cafe() (model.Cafe, error) {
	var c model.Cafe
	dec := yaml.NewDecoder(bytes.NewReader(cafeYAML))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return model.Cafe{}, errors.Wrap(err, "decode cafe.yaml")
	}
	return c, nil
}

// DecodeProducts reads a products document. Position follows document order.
// IDs must be unique, prices non-negative and categories known.
func DecodeProducts(r io.Reader) ([]model.Product, error) {
	var f productsFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}

	seen := make(map[string]bool, len(f.Products))
	out := make([]model.Product, 0, len(f.Products))
	for i, d := range f.Products {
		if d.ID == "" {
			return nil, errors.Errorf("product #%d: missing id", i+1)
		}
		if seen[d.ID] {
			return nil, errors.Errorf("product %q: duplicate id", d.ID)
		}
		seen[d.ID] = true

		price, err := decimal.NewFromString(d.Price)
		if err != nil {
			return nil, errors.Wrapf(err, "product %q: price", d.ID)
		}
		if price.IsNegative() {
			return nil, errors.Errorf("product %q: negative price %s", d.ID, d.Price)
		}
		cat, ok := model.ParseCategory(d.Category)
		if !ok {
			return nil, errors.Errorf("product %q: unknown category %q", d.ID, d.Category)
		}

		out = append(out, model.Product{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Price:       price,
			Category:    cat,
			Image:       d.Image,
			Featured:    d.Featured,
			Position:    i,
		})
	}
	return out, nil
}
