// internal/interfaces/http/handlers/handlers.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-engine/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-engine/internal/storefront"
)

// resolveStorefront looks up (or lazily creates) the storefront session for
// the current request. On failure it writes the error response and returns
// false.
func resolveStorefront(c *gin.Context, registry *storefront.Registry) (*storefront.Storefront, bool) {
	sessionID := middleware.GetSessionID(c)

	sf, err := registry.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to initialize storefront session",
		})
		return nil, false
	}

	return sf, true
}
