// internal/domain/cart/entity.go
package cart

import (
	"math"
	"strconv"
)

// Item represents one cart line. Identity for deduplication is the triple
// (ID, Size, Color); adding a matching item increments Quantity instead of
// appending. Quantity stays >= 1; decrementing to zero deletes the line.
type Item struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	OriginalName string  `json:"originalName"` // untranslated, kept for re-translation
	Price        float64 `json:"price"`
	Image        string  `json:"image"`
	Size         string  `json:"size"`
	Color        string  `json:"color"`
	Quantity     int     `json:"quantity"`
}

// Matches reports whether the line has the given identity triple
func (i *Item) Matches(id int, size, color string) bool {
	return i.ID == id && i.Size == size && i.Color == color
}

// Totals represents calculated cart totals. Derived on every render, never
// stored.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
}

// Round2 rounds a monetary amount to two decimals, half-up at the cent
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// BadgeLabel formats the cart-count indicator, capping the display at 99+
func BadgeLabel(count int) string {
	if count > 99 {
		return "99+"
	}
	return strconv.Itoa(count)
}
