// internal/interfaces/http/handlers/home.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-engine/internal/storefront"
)

// HomeHandler serves the landing page fragment
type HomeHandler struct {
	registry *storefront.Registry
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(registry *storefront.Registry) *HomeHandler {
	return &HomeHandler{registry: registry}
}

// GetHome handles GET /home
func (h *HomeHandler) GetHome(c *gin.Context) {
	sf, ok := resolveStorefront(c, h.registry)
	if !ok {
		return
	}

	badge, pulse := sf.CartBadge()
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"html":       sf.HomeHTML(),
			"cart_badge": badge,
			"pulse":      pulse,
		},
	})
}
