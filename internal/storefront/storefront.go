// internal/storefront/storefront.go
package storefront

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-engine/internal/config"
	"github.com/your-org/storefront-engine/internal/domain/cart"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
	"github.com/your-org/storefront-engine/internal/domain/i18n"
	"github.com/your-org/storefront-engine/internal/infrastructure/storage"
	"github.com/your-org/storefront-engine/internal/render"
)

// page is one mounted page fragment. It owns its locale-change
// subscription and caches its last rendered HTML; re-rendering replaces
// the cache.
type page struct {
	mu   sync.RWMutex
	html string
}

func (p *page) set(html string) {
	p.mu.Lock()
	p.html = html
	p.mu.Unlock()
}

func (p *page) get() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.html
}

// Storefront wires one session's stores, renderers and the language
// coordinator together. The stores are dependency-injected, never ambient:
// the cart and the locale selection belong to this session, while the
// catalog and translation dictionaries are shared immutable state.
type Storefront struct {
	sessionID string
	config    *config.Config
	logger    *logrus.Logger

	Cart    *cart.Store
	I18n    *i18n.Store
	Catalog *catalog.Service

	engine *render.Engine

	mu     sync.Mutex
	filter catalog.FilterState
	pulse  bool

	home      page
	shop      page
	cartPage  page
	product   page
	productID int

	cancels []func()
}

// New creates a storefront session. The persisted cart and locale choice
// are restored from the key-value store; each page renders its initial
// fragment and registers its own locale-change listener.
func New(ctx context.Context, sessionID string, kv storage.Store, cat *catalog.Service, dicts *i18n.Dictionaries, cfg *config.Config, logger *logrus.Logger) (*Storefront, error) {
	translator := i18n.NewStore(
		ctx, dicts, kv,
		fmt.Sprintf("session:%s:preferredLanguage", sessionID),
		cfg.Store.DefaultLocale,
		cfg.Store.SessionTTL,
	)

	engine, err := render.NewEngine(translator)
	if err != nil {
		return nil, err
	}

	s := &Storefront{
		sessionID: sessionID,
		config:    cfg,
		logger:    logger,
		Cart:      cart.NewStore(ctx, kv, fmt.Sprintf("session:%s:cart", sessionID), cfg),
		I18n:      translator,
		Catalog:   cat,
		engine:    engine,
		filter:    catalog.NewFilterState(cat.Options().MaxPrice, cfg.Store.PageSize),
	}

	s.Cart.SetRenderHook(s.renderCart)
	s.Cart.SetPulseHook(s.markPulse)

	// Each page owns its own subscription; there is no central render
	// scheduler.
	coord := translator.Coordinator()
	s.cancels = append(s.cancels,
		coord.Subscribe(func(i18n.LocaleChange) { s.renderHome() }),
		coord.Subscribe(func(i18n.LocaleChange) { s.renderShop() }),
		coord.Subscribe(func(i18n.LocaleChange) { s.renderCart() }),
		coord.Subscribe(func(i18n.LocaleChange) { s.renderProduct() }),
	)

	s.renderHome()
	s.renderShop()
	s.renderCart()

	return s, nil
}

// Close tears the session down, deregistering all page listeners
func (s *Storefront) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
	s.cancels = nil
	s.Cart.SetRenderHook(nil)
	s.Cart.SetPulseHook(nil)
}

// SessionID returns the session identifier
func (s *Storefront) SessionID() string {
	return s.sessionID
}

// HomeHTML returns the current home page fragment
func (s *Storefront) HomeHTML() string { return s.home.get() }

// ShopHTML returns the current shop grid fragment
func (s *Storefront) ShopHTML() string { return s.shop.get() }

// CartHTML returns the current cart fragment
func (s *Storefront) CartHTML() string { return s.cartPage.get() }

// ProductHTML returns the current product detail fragment
func (s *Storefront) ProductHTML() string { return s.product.get() }

// CartBadge returns the cart-count indicator label and whether the pulse
// affordance fired since the last call.
func (s *Storefront) CartBadge() (label string, pulse bool) {
	s.mu.Lock()
	pulse = s.pulse
	s.pulse = false
	s.mu.Unlock()
	return cart.BadgeLabel(s.Cart.ItemCount()), pulse
}

// SwitchLocale activates a locale for this session and re-renders every
// mounted page through the broadcast.
func (s *Storefront) SwitchLocale(ctx context.Context, locale string) error {
	if !s.config.IsLocaleSupported(locale) {
		return fmt.Errorf("unsupported locale %q", locale)
	}
	return s.I18n.SwitchLocale(ctx, locale)
}

// UpdateFilters applies an incremental filter mutation and re-renders the
// shop grid.
func (s *Storefront) UpdateFilters(mutate func(*catalog.FilterState)) {
	s.mu.Lock()
	mutate(&s.filter)
	s.mu.Unlock()
	s.renderShop()
}

// ClearFilters resets the filter state to defaults and re-renders
func (s *Storefront) ClearFilters() {
	s.mu.Lock()
	s.filter.Reset()
	s.mu.Unlock()
	s.renderShop()
}

// Filter returns a snapshot of the current filter state
func (s *Storefront) Filter() catalog.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// ViewProduct mounts the product detail page for one catalog record
func (s *Storefront) ViewProduct(id int) error {
	if _, ok := s.Catalog.Product(id); !ok {
		return fmt.Errorf("product %d not found", id)
	}

	s.mu.Lock()
	s.productID = id
	s.mu.Unlock()

	s.renderProduct()
	return nil
}

// AddToCart adds a catalog product to the session cart
func (s *Storefront) AddToCart(ctx context.Context, productID int, size, color string, quantity int) error {
	product, ok := s.Catalog.Product(productID)
	if !ok {
		return fmt.Errorf("product %d not found", productID)
	}
	return s.Cart.AddItem(ctx, product, size, color, quantity)
}

// ApplyPromo validates a promo code. An empty code is invalid input; any
// other code is accepted (checkout is a stub).
func (s *Storefront) ApplyPromo(code string) (string, error) {
	if code == "" {
		return "", fmt.Errorf("please enter a promo code")
	}
	return fmt.Sprintf("Promo code %q applied!", code), nil
}

// Checkout is the checkout stub: it rejects an empty cart and otherwise
// acknowledges.
func (s *Storefront) Checkout() (string, error) {
	if s.Cart.ItemCount() == 0 {
		return "", fmt.Errorf("%s. Add some items before checkout.", s.I18n.Translate("cart_dynamic.empty_cart"))
	}
	return "Proceeding to checkout...", nil
}

func (s *Storefront) markPulse() {
	s.mu.Lock()
	s.pulse = true
	s.mu.Unlock()
}

func (s *Storefront) renderHome() {
	html, err := s.engine.Home(s.Catalog.NewArrivals(), s.Catalog.TopSelling(), s.Catalog.GlobalReviews())
	if err != nil {
		s.logger.WithError(err).Error("home render failed")
		return
	}
	s.home.set(html)
}

func (s *Storefront) renderShop() {
	s.mu.Lock()
	state := s.filter
	s.mu.Unlock()

	filtered := catalog.ApplyFilters(s.Catalog.Products(), state)
	sorted := catalog.ApplySort(filtered, state.Sort)
	result := catalog.Paginate(sorted, state.Page, state.PerPage)

	// Keep the clamped page so subsequent filter changes start from a
	// valid position.
	s.mu.Lock()
	s.filter.Page = result.Page
	s.mu.Unlock()

	html, err := s.engine.ShopGrid(result)
	if err != nil {
		s.logger.WithError(err).Error("shop render failed")
		return
	}
	s.shop.set(html)
}

func (s *Storefront) renderCart() {
	html, err := s.engine.CartPage(s.Cart.Items(), s.Cart.CalculateTotals())
	if err != nil {
		s.logger.WithError(err).Error("cart render failed")
		return
	}
	s.cartPage.set(html)
}

func (s *Storefront) renderProduct() {
	s.mu.Lock()
	id := s.productID
	s.mu.Unlock()

	if id == 0 {
		return
	}

	product, ok := s.Catalog.Product(id)
	if !ok {
		return
	}

	html, err := s.engine.ProductDetail(product, s.Catalog.ReviewsFor(id))
	if err != nil {
		s.logger.WithError(err).Error("product render failed")
		return
	}
	s.product.set(html)
}
