// internal/interfaces/http/handlers/locale.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-engine/internal/storefront"
)

// LocaleHandler handles language preference endpoints
type LocaleHandler struct {
	registry *storefront.Registry
}

// NewLocaleHandler creates a new locale handler
func NewLocaleHandler(registry *storefront.Registry) *LocaleHandler {
	return &LocaleHandler{registry: registry}
}

// SwitchLocaleRequest represents a language switch request
type SwitchLocaleRequest struct {
	Language string `json:"language" binding:"required"`
}

// GetLocale handles GET /locale
func (h *LocaleHandler) GetLocale(c *gin.Context) {
	sf, ok := resolveStorefront(c, h.registry)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"language":    sf.I18n.ActiveLocale(),
			"initialized": sf.I18n.Initialized(),
		},
	})
}

// SwitchLocale handles POST /locale. Switching re-renders every mounted
// page fragment for the session, so the response carries all of them.
func (h *LocaleHandler) SwitchLocale(c *gin.Context) {
	sf, ok := resolveStorefront(c, h.registry)
	if !ok {
		return
	}

	var req SwitchLocaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := sf.SwitchLocale(c.Request.Context(), req.Language); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Failed to switch language",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Language updated",
		"data": gin.H{
			"language": sf.I18n.ActiveLocale(),
			"home":     sf.HomeHTML(),
			"shop":     sf.ShopHTML(),
			"cart":     sf.CartHTML(),
			"product":  sf.ProductHTML(),
		},
	})
}
