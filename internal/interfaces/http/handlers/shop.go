// internal/interfaces/http/handlers/shop.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
	"github.com/your-org/storefront-engine/internal/storefront"
)

// ShopHandler handles the shop listing endpoints
type ShopHandler struct {
	registry *storefront.Registry
}

// NewShopHandler creates a new shop handler
func NewShopHandler(registry *storefront.Registry) *ShopHandler {
	return &ShopHandler{registry: registry}
}

// GetShop handles GET /shop. Query parameters present in the request are
// applied as incremental filter mutations; absent parameters leave the
// session's filter state untouched.
func (h *ShopHandler) GetShop(c *gin.Context) {
	sf, ok := resolveStorefront(c, h.registry)
	if !ok {
		return
	}

	sf.UpdateFilters(func(state *catalog.FilterState) {
		applyQueryParams(c, state)
	})

	state := sf.Filter()
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"html": sf.ShopHTML(),
			"page": state.Page,
			"sort": state.Sort,
		},
	})
}

// ClearFilters handles POST /shop/clear
func (h *ShopHandler) ClearFilters(c *gin.Context) {
	sf, ok := resolveStorefront(c, h.registry)
	if !ok {
		return
	}

	sf.ClearFilters()
	c.JSON(http.StatusOK, gin.H{
		"message": "Filters cleared",
		"data":    gin.H{"html": sf.ShopHTML()},
	})
}

// GetFilterOptions handles GET /shop/filters: the distinct filter values
// derived from the catalog, translated for the active locale.
func (h *ShopHandler) GetFilterOptions(c *gin.Context) {
	sf, ok := resolveStorefront(c, h.registry)
	if !ok {
		return
	}

	opts := sf.Catalog.Options()

	categories := make([]gin.H, 0, len(opts.Categories))
	for _, cat := range opts.Categories {
		categories = append(categories, gin.H{"value": cat, "label": sf.I18n.TranslateCategory(cat)})
	}
	sizes := make([]gin.H, 0, len(opts.Sizes))
	for _, s := range opts.Sizes {
		sizes = append(sizes, gin.H{"value": s, "label": sf.I18n.TranslateSize(s)})
	}
	styles := make([]gin.H, 0, len(opts.Styles))
	for _, st := range opts.Styles {
		styles = append(styles, gin.H{"value": st, "label": sf.I18n.TranslateStyle(st)})
	}
	colors := make([]gin.H, 0, len(opts.Colors))
	for _, col := range opts.Colors {
		colors = append(colors, gin.H{"value": col, "label": sf.I18n.TranslateColor(col)})
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"categories": categories,
			"colors":     colors,
			"sizes":      sizes,
			"styles":     styles,
			"max_price":  opts.MaxPrice,
		},
	})
}

// applyQueryParams folds present query parameters into the filter state.
// Any change besides paging resets to page 1, matching the filter controls.
func applyQueryParams(c *gin.Context, state *catalog.FilterState) {
	changed := false

	if q, ok := c.GetQuery("q"); ok {
		state.Query = q
		changed = true
	}
	if category, ok := c.GetQuery("category"); ok {
		// Selecting the active category again deselects it
		if state.Category == category {
			state.Category = ""
		} else {
			state.Category = category
		}
		changed = true
	}
	if raw, ok := c.GetQuery("price_min"); ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			state.PriceMin = v
			changed = true
		}
	}
	if raw, ok := c.GetQuery("price_max"); ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			state.PriceMax = v
			changed = true
		}
	}
	if raw, ok := c.GetQuery("in_stock"); ok {
		state.InStockOnly = raw == "true" || raw == "1"
		changed = true
	}
	if raw, ok := c.GetQuery("colors"); ok {
		state.Colors = toSet(raw)
		changed = true
	}
	if raw, ok := c.GetQuery("sizes"); ok {
		state.Sizes = toSet(raw)
		changed = true
	}
	if raw, ok := c.GetQuery("styles"); ok {
		state.Styles = toSet(raw)
		changed = true
	}
	if sortKey, ok := c.GetQuery("sort"); ok {
		state.Sort = sortKey
		changed = true
	}

	if changed {
		state.Page = 1
	}
	if raw, ok := c.GetQuery("page"); ok {
		if v, err := strconv.Atoi(raw); err == nil {
			state.Page = v
		}
	}
}

func toSet(raw string) map[string]bool {
	set := make(map[string]bool)
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			set[v] = true
		}
	}
	return set
}
