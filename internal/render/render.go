// internal/render/render.go
package render

import (
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"

	"github.com/your-org/storefront-engine/internal/domain/cart"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
	"github.com/your-org/storefront-engine/internal/domain/i18n"
)

// Engine projects store state into HTML fragments for one session. Every
// render re-resolves translations against the session's translation store
// so the output tracks the active locale; translated strings are never
// cached across renders.
type Engine struct {
	tpl  *template.Template
	i18n *i18n.Store
}

// NewEngine parses the fragment templates against a session's translation
// store.
func NewEngine(translator *i18n.Store) (*Engine, error) {
	e := &Engine{i18n: translator}

	tpl, err := template.New("fragments").Funcs(template.FuncMap{
		"t":      translator.Translate,
		"price":  formatPrice,
		"money":  formatMoney,
		"rating": formatRating,
		"stars":  starIcons,
	}).Parse(fragmentTemplates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fragment templates: %w", err)
	}

	e.tpl = tpl
	return e, nil
}

type cartItemView struct {
	Index    int
	ID       int
	Name     string
	Image    string
	Size     string
	Color    string
	Price    float64
	Quantity int
}

type cartView struct {
	Empty  bool
	Items  []cartItemView
	Totals cart.Totals
}

// CartPage renders the cart fragment: line items with translated names and
// variants, or the empty-cart state, plus the totals block.
func (e *Engine) CartPage(items []cart.Item, totals cart.Totals) (string, error) {
	view := cartView{Empty: len(items) == 0, Totals: totals}

	for i, item := range items {
		name := item.OriginalName
		if translated, ok := e.i18n.TranslateProductField(item.ID, "title"); ok {
			name = translated
		}
		view.Items = append(view.Items, cartItemView{
			Index:    i,
			ID:       item.ID,
			Name:     name,
			Image:    item.Image,
			Size:     e.i18n.TranslateSize(item.Size),
			Color:    e.i18n.TranslateColor(item.Color),
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	return e.execute("cart", view)
}

type productCardView struct {
	ID       int
	Title    string
	Image    string
	Rating   float64
	Price    float64
	OldPrice *float64
	Discount int
}

type shopView struct {
	Cards      []productCardView
	Total      int
	Page       int
	TotalPages int
}

// ShopGrid renders one page of the filtered catalog as product cards
func (e *Engine) ShopGrid(page catalog.PageResult) (string, error) {
	view := shopView{
		Total:      page.Total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	}
	for _, p := range page.Items {
		view.Cards = append(view.Cards, e.cardView(p))
	}
	return e.execute("shop", view)
}

type attributeView struct {
	Value string
	Label string
	Hex   string
}

type reviewView struct {
	Rating float64
	Name   string
	Text   string
	Date   string
}

type productView struct {
	ID          int
	Title       string
	Image       string
	Rating      float64
	Price       float64
	OldPrice    *float64
	Discount    int
	Description string
	Colors      []attributeView
	Sizes       []attributeView
	Reviews     []reviewView
}

// ProductDetail renders the product page fragment with translated title,
// description, attribute selectors and the product's reviews.
func (e *Engine) ProductDetail(p *catalog.Product, reviews []catalog.Review) (string, error) {
	view := productView{
		ID:          p.ID,
		Title:       e.productField(p.ID, "title", p.Title),
		Image:       p.Image,
		Rating:      p.Rating,
		Price:       p.Price,
		OldPrice:    p.OldPrice,
		Description: e.productField(p.ID, "description", p.Description),
	}
	if p.Discount != nil {
		view.Discount = *p.Discount
	}

	for _, c := range p.Colors {
		view.Colors = append(view.Colors, attributeView{
			Value: c,
			Label: e.i18n.TranslateColor(c),
			Hex:   colorHex(c),
		})
	}
	for _, s := range p.Sizes {
		view.Sizes = append(view.Sizes, attributeView{
			Value: s,
			Label: e.i18n.TranslateSize(s),
		})
	}
	for _, r := range reviews {
		view.Reviews = append(view.Reviews, reviewView{
			Rating: r.Rating,
			Name:   r.Name,
			Text:   r.Text,
			Date:   r.FormattedDate(),
		})
	}

	return e.execute("product", view)
}

type homeView struct {
	NewArrivals []productCardView
	TopSelling  []productCardView
	Feedback    []reviewView
}

// Home renders the landing page fragment: hero, new arrivals, top selling
// and the feedback slider.
func (e *Engine) Home(newArrivals, topSelling []catalog.Product, feedback []catalog.Review) (string, error) {
	var view homeView
	for _, p := range newArrivals {
		view.NewArrivals = append(view.NewArrivals, e.cardView(p))
	}
	for _, p := range topSelling {
		view.TopSelling = append(view.TopSelling, e.cardView(p))
	}
	for _, r := range feedback {
		view.Feedback = append(view.Feedback, reviewView{
			Rating: r.Rating,
			Name:   r.Name,
			Text:   r.Text,
			Date:   r.FormattedDate(),
		})
	}
	return e.execute("home", view)
}

func (e *Engine) cardView(p catalog.Product) productCardView {
	card := productCardView{
		ID:       p.ID,
		Title:    e.productField(p.ID, "title", p.Title),
		Image:    p.Image,
		Rating:   p.Rating,
		Price:    p.Price,
		OldPrice: p.OldPrice,
	}
	if p.Discount != nil {
		card.Discount = *p.Discount
	}
	return card
}

// productField resolves a translated product field, falling back to the
// original value
func (e *Engine) productField(productID int, field, original string) string {
	if translated, ok := e.i18n.TranslateProductField(productID, field); ok {
		return translated
	}
	return original
}

func (e *Engine) execute(name string, data interface{}) (string, error) {
	var sb strings.Builder
	if err := e.tpl.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s fragment: %w", name, err)
	}
	return sb.String(), nil
}

// formatPrice renders a card price without forced decimals, e.g. "$240"
func formatPrice(v interface{}) string {
	switch p := v.(type) {
	case float64:
		return "$" + strconv.FormatFloat(p, 'f', -1, 64)
	case *float64:
		if p == nil {
			return ""
		}
		return "$" + strconv.FormatFloat(*p, 'f', -1, 64)
	default:
		return fmt.Sprintf("$%v", v)
	}
}

// formatMoney renders a totals amount with two decimals, e.g. "$35.00"
func formatMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// starIcons renders the font-awesome star markup for a 0-5 rating
func starIcons(rating float64) template.HTML {
	full := int(math.Floor(rating))
	half := math.Mod(rating, 1) >= 0.5

	var sb strings.Builder
	for i := 0; i < full; i++ {
		sb.WriteString(`<i class="fa-solid fa-star"></i>`)
	}
	if half {
		sb.WriteString(`<i class="fa-solid fa-star-half-stroke"></i>`)
	}
	return template.HTML(sb.String())
}

// colorHex maps catalog color names to swatch colors
func colorHex(color string) string {
	colors := map[string]string{
		"white":  "#ffffff",
		"black":  "#000000",
		"blue":   "#1e40af",
		"red":    "#dc2626",
		"orange": "#f97316",
		"pink":   "#ec4899",
		"green":  "#22c55e",
		"brown":  "#92400e",
	}
	if hex, ok := colors[strings.ToLower(color)]; ok {
		return hex
	}
	return "#999"
}
