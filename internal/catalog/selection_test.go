package catalog

import (
	"testing"

	"beaticafe/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestSelection_ToggleWalkthrough(t *testing.T) {
	var s Selection
	assert.Equal(t, []string{"all"}, s.Values())

	s = s.Toggle("coffee")
	assert.Equal(t, []string{"coffee"}, s.Values())

	s = s.Toggle("tea")
	assert.Equal(t, []string{"coffee", "tea"}, s.Values())

	s = s.Toggle("all")
	assert.Equal(t, []string{"all"}, s.Values())

	s = s.Toggle("pastry")
	assert.Equal(t, []string{"pastry"}, s.Values())
}

func TestSelection_Toggle(t *testing.T) {
	tests := []struct {
		name  string
		start []string
		token string
		want  []string
	}{
		{"remove one of two", []string{"coffee", "tea"}, "coffee", []string{"tea"}},
		{"remove last falls back to all", []string{"food"}, "food", []string{"all"}},
		{"unknown token is ignored", []string{"tea"}, "smoothies", []string{"tea"}},
		{"unknown token on all", nil, "smoothies", []string{"all"}},
		{"token is case-insensitive", nil, " Coffee ", []string{"coffee"}},
		{"all while on all", nil, "all", []string{"all"}},
		{"append keeps pick order", []string{"food", "coffee"}, "tea", []string{"food", "coffee", "tea"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSelection(tt.start...).Toggle(tt.token)
			assert.Equal(t, tt.want, got.Values())
		})
	}
}

func TestSelection_ToggleDoesNotAlias(t *testing.T) {
	base := NewSelection("coffee", "tea", "food")

	_ = base.Toggle("tea")
	_ = base.Toggle("pastry")

	assert.Equal(t, []string{"coffee", "tea", "food"}, base.Values())
}

func TestNewSelection(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{"empty is all", nil, []string{"all"}},
		{"all wins in a mixed list", []string{"coffee", "all", "tea"}, []string{"all"}},
		{"duplicates collapse", []string{"tea", "tea", "coffee"}, []string{"tea", "coffee"}},
		{"unknown dropped", []string{"bogus", "pastry", ""}, []string{"pastry"}},
		{"only unknown is all", []string{"bogus"}, []string{"all"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewSelection(tt.tokens...).Values())
		})
	}
}

func TestSelection_Matches(t *testing.T) {
	all := Selection{}
	for _, c := range model.Categories {
		assert.True(t, all.Matches(c))
	}

	s := NewSelection("tea", "pastry")
	assert.True(t, s.Matches(model.CategoryTea))
	assert.True(t, s.Matches(model.CategoryPastry))
	assert.False(t, s.Matches(model.CategoryCoffee))
	assert.Equal(t, "tea,pastry", s.String())
	assert.Equal(t, []model.Category{model.CategoryTea, model.CategoryPastry}, s.Categories())
}
