package catalogdata

import (
	"strings"
	"testing"

	"beaticafe/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts_Embedded(t *testing.T) {
	products, err := Products()
	require.NoError(t, err)
	require.NotEmpty(t, products)

	perCategory := map[model.Category]int{}
	featured := 0
	for i, p := range products {
		assert.Equal(t, i, p.Position)
		assert.NotEmpty(t, p.Name, p.ID)
		assert.False(t, p.Price.IsNegative(), p.ID)
		perCategory[p.Category]++
		if p.Featured {
			featured++
		}
	}
	for _, c := range model.Categories {
		assert.Positive(t, perCategory[c], "no products in %s", c)
	}
	assert.Positive(t, featured)
	assert.Equal(t, "3.5", products[0].Price.String())
}

func TestCafe_Embedded(t *testing.T) {
	c, err := Cafe()
	require.NoError(t, err)

	assert.Equal(t, "Beati Cafe", c.Info.Name)
	assert.Equal(t, "hello@beaticafe.com", c.Info.Email)
	assert.InDelta(t, 37.7749, c.Info.Location.Lat, 1e-9)
	assert.Len(t, c.Team, 3)
	assert.NotEmpty(t, c.FAQ)
	assert.NotEmpty(t, c.Dietary.GlutenFree)
}

func TestDecodeProducts_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"duplicate id", "products:\n- {id: a, price: '1', category: tea}\n- {id: a, price: '2', category: tea}\n", "duplicate id"},
		{"bad price", "products:\n- {id: a, price: cheap, category: tea}\n", "price"},
		{"negative price", "products:\n- {id: a, price: '-1', category: tea}\n", "negative price"},
		{"unknown category", "products:\n- {id: a, price: '1', category: smoothie}\n", "unknown category"},
		{"missing id", "products:\n- {price: '1', category: tea}\n", "missing id"},
		{"unknown field", "products:\n- {id: a, price: '1', category: tea, stock: 3}\n", "stock"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeProducts(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
