// internal/domain/i18n/entity.go
package i18n

// UIDictionary maps locale → nested key tree → string, mirroring
// translation.json. Values at the leaves are strings; interior nodes are
// objects addressed by dotted key paths ("cart.subtotal").
type UIDictionary map[string]map[string]interface{}

// LocaleProductDictionary holds the product-field and attribute-value
// translations for one locale, mirroring producttranslation.json.
type LocaleProductDictionary struct {
	Products   map[string]map[string]string `json:"products"`
	Categories map[string]string            `json:"categories"`
	Styles     map[string]string            `json:"styles"`
	Colors     map[string]string            `json:"colors"`
	Sizes      map[string]string            `json:"sizes"`
}

// ProductDictionary maps locale → product translations
type ProductDictionary map[string]LocaleProductDictionary

// Source tags how a translation lookup was satisfied
type Source int

const (
	// SourceResolved means the key was found in the active locale's dictionary
	SourceResolved Source = iota
	// SourceFallback means a default/original text was substituted
	SourceFallback
	// SourceMissing means nothing was found and the key itself is the text
	SourceMissing
)

// Resolution is the outcome of a UI string lookup. Text is always usable
// for display; Source lets callers distinguish "found" from "degraded".
type Resolution struct {
	Text   string
	Source Source
}

// LocaleChange is the payload broadcast when the active locale switches
type LocaleChange struct {
	Language string `json:"language"`
}

// fallbackUIDictionary keeps the storefront navigable when translation.json
// cannot be fetched.
func fallbackUIDictionary() UIDictionary {
	return UIDictionary{
		"en": {
			"header": map[string]interface{}{"shop": "Shop"},
			"home":   map[string]interface{}{"hero_title": "Find clothes that matches your style"},
		},
		"uk": {
			"header": map[string]interface{}{"shop": "Магазин"},
			"home":   map[string]interface{}{"hero_title": "Знайдіть одяг який відповідає вашому стилю"},
		},
	}
}
