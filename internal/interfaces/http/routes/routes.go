// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-engine/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-engine/internal/storefront"
)

// SetupHomeRoutes sets up landing page routes
func SetupHomeRoutes(rg *gin.RouterGroup, registry *storefront.Registry) {
	homeHandler := handlers.NewHomeHandler(registry)

	rg.GET("/home", homeHandler.GetHome)
}

// SetupShopRoutes sets up shop listing routes
func SetupShopRoutes(rg *gin.RouterGroup, registry *storefront.Registry) {
	shopHandler := handlers.NewShopHandler(registry)

	shop := rg.Group("/shop")
	{
		shop.GET("", shopHandler.GetShop)
		shop.GET("/filters", shopHandler.GetFilterOptions)
		shop.POST("/clear", shopHandler.ClearFilters)
	}
}

// SetupProductRoutes sets up product detail routes
func SetupProductRoutes(rg *gin.RouterGroup, registry *storefront.Registry) {
	productHandler := handlers.NewProductHandler(registry)

	products := rg.Group("/products")
	{
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up shopping cart routes
func SetupCartRoutes(rg *gin.RouterGroup, registry *storefront.Registry) {
	cartHandler := handlers.NewCartHandler(registry)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:index", cartHandler.UpdateQuantity)
		cart.DELETE("/items/:index", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.ClearCart)
		cart.POST("/promo", cartHandler.ApplyPromo)
		cart.POST("/checkout", cartHandler.Checkout)
	}
}

// SetupLocaleRoutes sets up language preference routes
func SetupLocaleRoutes(rg *gin.RouterGroup, registry *storefront.Registry) {
	localeHandler := handlers.NewLocaleHandler(registry)

	locale := rg.Group("/locale")
	{
		locale.GET("", localeHandler.GetLocale)
		locale.POST("", localeHandler.SwitchLocale)
	}
}
