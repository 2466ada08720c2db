// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-engine/internal/domain/cart"
	"github.com/your-org/storefront-engine/internal/storefront"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	registry *storefront.Registry
}

// NewCartHandler creates a new cart handler
func NewCartHandler(registry *storefront.Registry) *CartHandler {
	return &CartHandler{registry: registry}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID int    `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Color     string `json:"color" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantityRequest represents a signed quantity delta
type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// PromoRequest represents a promo code submission
type PromoRequest struct {
	Code string `json:"code"`
}

// GetCart handles GET /cart: the rendered cart fragment plus badge state
func (h *CartHandler) GetCart(c *gin.Context) {
	sf, ok := resolveStorefront(c, h.registry)
	if !ok {
		return
	}

	badge, pulse := sf.CartBadge()
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"html":   sf.CartHTML(),
			"badge":  badge,
			"pulse":  pulse,
			"items":  sf.Cart.Items(),
			"totals": sf.Cart.CalculateTotals(),
		},
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sf, ok := resolveStorefront(c, h.registry)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := sf.AddToCart(c.Request.Context(), req.ProductID, req.Size, req.Color, req.Quantity); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	badge, pulse := sf.CartBadge()
	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"data": gin.H{
			"html":  sf.CartHTML(),
			"badge": badge,
			"pulse": pulse,
		},
	})
}

// UpdateQuantity handles PUT /cart/items/:index
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	sf, ok := resolveStorefront(c, h.registry)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item index"})
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := sf.Cart.UpdateQuantity(c.Request.Context(), index, req.Delta); err != nil {
		h.cartError(c, err)
		return
	}

	badge, _ := sf.CartBadge()
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data": gin.H{
			"html":  sf.CartHTML(),
			"badge": badge,
		},
	})
}

// RemoveItem handles DELETE /cart/items/:index
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sf, ok := resolveStorefront(c, h.registry)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item index"})
		return
	}

	if err := sf.Cart.RemoveItem(c.Request.Context(), index); err != nil {
		h.cartError(c, err)
		return
	}

	badge, _ := sf.CartBadge()
	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"data": gin.H{
			"html":  sf.CartHTML(),
			"badge": badge,
		},
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sf, ok := resolveStorefront(c, h.registry)
	if !ok {
		return
	}

	if err := sf.Cart.ClearCart(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"data":    gin.H{"html": sf.CartHTML()},
	})
}

// ApplyPromo handles POST /cart/promo
func (h *CartHandler) ApplyPromo(c *gin.Context) {
	sf, ok := resolveStorefront(c, h.registry)
	if !ok {
		return
	}

	var req PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	message, err := sf.ApplyPromo(req.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Checkout handles POST /cart/checkout (stub: no payment processing)
func (h *CartHandler) Checkout(c *gin.Context) {
	sf, ok := resolveStorefront(c, h.registry)
	if !ok {
		return
	}

	message, err := sf.Checkout()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (h *CartHandler) cartError(c *gin.Context, err error) {
	if errors.Is(err, cart.ErrIndexOutOfRange) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
}
