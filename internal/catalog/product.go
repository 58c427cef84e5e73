package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one storefront catalog record. Products are immutable after
// load; the catalog is seeded at process start and never mutated.
type Product struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CategorySlug string          `json:"category_slug"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image"`
	Description  string          `json:"description"`
	Colors       []Color         `json:"colors,omitempty"`
	Details      string          `json:"details,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	Featured     bool            `json:"featured"`
}

// Color is an optional product variant.
type Color struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category pairs the stable slug used for filtering with the display label.
type Category struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

// Categories is the fixed category set, in display order.
var Categories = []Category{
	{Slug: "health-wellness", Label: "Health & Wellness"},
	{Slug: "beauty-personal-care", Label: "Beauty & Personal Care"},
	{Slug: "electronics-gadgets", Label: "Electronics & Gadgets"},
	{Slug: "home-living", Label: "Home & Living"},
}

// Catalog is an ordered, read-only product list.
type Catalog []Product

// FindByID returns the product with the given id, if present.
func (c Catalog) FindByID(id int) (Product, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
