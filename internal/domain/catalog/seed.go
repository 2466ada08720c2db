// internal/domain/catalog/seed.go
package catalog

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

// SeedProducts is the built-in catalog used when product.json cannot be
// fetched, so the storefront stays browsable.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          1,
			Title:       "T-Shirt with tape details",
			Price:       240,
			Category:    "T-shirts",
			Image:       "assets/images/blacktshirt.png",
			Rating:      4.5,
			Colors:      []string{"black", "white"},
			Sizes:       []string{"Small", "Medium", "Large"},
			Style:       "Casual",
			InStock:     true,
			Description: "This comfortable t-shirt features unique tape details for a modern look.",
		},
		{
			ID:          2,
			Title:       "Skinny Fit Jeans",
			Price:       240,
			OldPrice:    floatPtr(260),
			Category:    "Jeans",
			Image:       "assets/images/blackjeans.png",
			Rating:      3.5,
			Colors:      []string{"blue", "black"},
			Sizes:       []string{"Small", "Medium", "Large"},
			Style:       "Casual",
			InStock:     true,
			Discount:    intPtr(20),
			Description: "Classic skinny fit jeans with comfortable stretch fabric.",
		},
		{
			ID:          3,
			Title:       "Checkered Shirt",
			Price:       180,
			Category:    "Shirts",
			Image:       "assets/images/chekeredshirt.png",
			Rating:      4.5,
			Colors:      []string{"red", "blue"},
			Sizes:       []string{"Small", "Medium", "Large"},
			Style:       "Casual",
			InStock:     true,
			Description: "Stylish checkered shirt perfect for casual occasions.",
		},
		{
			ID:          4,
			Title:       "Sleeve Striped T-shirt",
			Price:       130,
			OldPrice:    floatPtr(160),
			Category:    "T-shirts",
			Image:       "assets/images/stripedtshirt.png",
			Rating:      4.5,
			Colors:      []string{"orange", "black"},
			Sizes:       []string{"Medium", "Large"},
			Style:       "Casual",
			InStock:     true,
			Discount:    intPtr(30),
			Description: "Striped t-shirt with comfortable sleeve design.",
		},
	}
}
