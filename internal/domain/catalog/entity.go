// internal/domain/catalog/entity.go
package catalog

import "time"

// Product represents one catalog record loaded from product.json
type Product struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	OldPrice    *float64 `json:"oldPrice"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Style       string   `json:"style"`
	InStock     bool     `json:"inStock"`
	Discount    *int     `json:"discount"`
	Description string   `json:"description"`
}

// HasDiscount reports whether the product carries an old price to strike through
func (p *Product) HasDiscount() bool {
	return p.OldPrice != nil && p.Discount != nil
}

// Review represents a single customer review
type Review struct {
	Rating float64 `json:"rating"`
	Name   string  `json:"name"`
	Text   string  `json:"text"`
	Date   string  `json:"date"`
}

// FormattedDate returns the review date in long form, e.g. "August 14, 2023".
// An unparseable date is returned as-is.
func (r *Review) FormattedDate() string {
	d, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return r.Date
	}
	return d.Format("January 2, 2006")
}

// ProductReviews groups the reviews belonging to one product
type ProductReviews struct {
	ProductID int      `json:"productId"`
	Reviews   []Review `json:"reviews"`
}

// ReviewsFile mirrors reviews.json: a global list for the home page
// feedback slider plus per-product review lists
type ReviewsFile struct {
	Global   []Review         `json:"global"`
	Products []ProductReviews `json:"products"`
}

// FilterOptions holds the distinct filter values derived from the catalog
type FilterOptions struct {
	Categories []string
	Colors     []string
	Sizes      []string
	Styles     []string
	MaxPrice   float64
}
