// internal/domain/catalog/filter.go
package catalog

import (
	"sort"
	"strings"
)

// Sort keys accepted by ApplySort. "popular" keeps catalog order, which is
// assumed pre-sorted by popularity.
const (
	SortPopular    = "popular"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
	SortNameAsc    = "name-asc"
)

// FilterState holds the shop listing filter controls. It is ephemeral:
// never persisted, reset to defaults by Reset.
type FilterState struct {
	Query       string
	Category    string
	PriceMin    float64
	PriceMax    float64
	Colors      map[string]bool
	Sizes       map[string]bool
	Styles      map[string]bool
	InStockOnly bool
	Sort        string
	Page        int
	PerPage     int
}

// NewFilterState returns the default filter state for a catalog whose price
// range tops out at maxPrice.
func NewFilterState(maxPrice float64, perPage int) FilterState {
	return FilterState{
		PriceMin: 0,
		PriceMax: maxPrice,
		Colors:   make(map[string]bool),
		Sizes:    make(map[string]bool),
		Styles:   make(map[string]bool),
		Sort:     SortPopular,
		Page:     1,
		PerPage:  perPage,
	}
}

// Reset clears all filter selections, keeping the price ceiling and page size
func (s *FilterState) Reset() {
	maxPrice := s.PriceMax
	perPage := s.PerPage
	*s = NewFilterState(maxPrice, perPage)
}

// PageResult is one rendered page of the filtered catalog
type PageResult struct {
	Items      []Product
	Total      int
	Page       int
	TotalPages int
}

// ApplyFilters returns the subsequence of items matching all active
// predicates. Predicates with an empty selection set are vacuously true.
func ApplyFilters(items []Product, state FilterState) []Product {
	filtered := make([]Product, 0, len(items))

	for _, p := range items {
		if state.Category != "" && p.Category != state.Category {
			continue
		}
		if p.Price < state.PriceMin {
			continue
		}
		if state.PriceMax > 0 && p.Price > state.PriceMax {
			continue
		}
		if state.InStockOnly && !p.InStock {
			continue
		}
		if len(state.Colors) > 0 && !intersects(p.Colors, state.Colors) {
			continue
		}
		if len(state.Sizes) > 0 && !intersects(p.Sizes, state.Sizes) {
			continue
		}
		if len(state.Styles) > 0 && !state.Styles[p.Style] {
			continue
		}
		if state.Query != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(state.Query)) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

// ApplySort returns a stably sorted copy of items. Unknown keys and
// "popular" keep catalog order.
func ApplySort(items []Product, key string) []Product {
	sorted := make([]Product, len(items))
	copy(sorted, items)

	switch key {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case SortRatingDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case SortNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
		})
	}

	return sorted
}

// Paginate slices one page out of the filtered+sorted sequence. A page past
// the end is clamped to the last valid page, never an empty page.
func Paginate(items []Product, page, perPage int) PageResult {
	if perPage < 1 {
		perPage = 1
	}

	total := len(items)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return PageResult{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

// Options derives the distinct filter values and the price ceiling from the
// catalog, preserving first-seen order.
func Options(items []Product) FilterOptions {
	var opts FilterOptions
	seenCat := make(map[string]bool)
	seenColor := make(map[string]bool)
	seenSize := make(map[string]bool)
	seenStyle := make(map[string]bool)

	for _, p := range items {
		if p.Category != "" && !seenCat[p.Category] {
			seenCat[p.Category] = true
			opts.Categories = append(opts.Categories, p.Category)
		}
		for _, c := range p.Colors {
			if c != "" && !seenColor[c] {
				seenColor[c] = true
				opts.Colors = append(opts.Colors, c)
			}
		}
		for _, s := range p.Sizes {
			if s != "" && !seenSize[s] {
				seenSize[s] = true
				opts.Sizes = append(opts.Sizes, s)
			}
		}
		if p.Style != "" && !seenStyle[p.Style] {
			seenStyle[p.Style] = true
			opts.Styles = append(opts.Styles, p.Style)
		}
		if p.Price > opts.MaxPrice {
			opts.MaxPrice = p.Price
		}
	}

	// Slider headroom above the most expensive product
	opts.MaxPrice += 50

	return opts
}

func intersects(values []string, selected map[string]bool) bool {
	for _, v := range values {
		if selected[v] {
			return true
		}
	}
	return false
}
