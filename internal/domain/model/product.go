package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is one of the fixed menu sections.
type Category string

const (
	CategoryCoffee Category = "coffee"
	CategoryTea    Category = "tea"
	CategoryPastry Category = "pastry"
	CategoryFood   Category = "food"
)

// Categories lists the closed category set in menu order.
var Categories = []Category{CategoryCoffee, CategoryTea, CategoryPastry, CategoryFood}

// ParseCategory reports whether s names a known category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Product is immutable reference data: loaded once, never modified.
// Position keeps the catalog insertion order, which breaks sort ties.
type Product struct {
	ID          string          `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Category    Category        `gorm:"type:varchar(20);not null;index" json:"category"`
	Image       string          `gorm:"type:text" json:"image"`
	Featured    bool            `gorm:"not null;default:false" json:"featured"`
	Position    int             `gorm:"not null;index" json:"-"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime" json:"-"`
}
