// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-engine/internal/storefront"
)

// ProductHandler handles product detail endpoints
type ProductHandler struct {
	registry *storefront.Registry
}

// NewProductHandler creates a new product handler
func NewProductHandler(registry *storefront.Registry) *ProductHandler {
	return &ProductHandler{registry: registry}
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	sf, ok := resolveStorefront(c, h.registry)
	if !ok {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	if err := sf.ViewProduct(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"html": sf.ProductHTML(),
		},
	})
}
