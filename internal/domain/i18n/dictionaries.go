// internal/domain/i18n/dictionaries.go
package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-engine/internal/config"
	"golang.org/x/sync/errgroup"
)

// Dictionaries holds the UI-string and product-field translation tables.
// Both are loaded once per process and are read-only afterwards; only the
// active locale selector (owned by Store) is mutable within a session.
type Dictionaries struct {
	config *config.Config
	client *http.Client
	logger *logrus.Logger

	mu       sync.RWMutex
	ui       UIDictionary
	products ProductDictionary

	readyOnce sync.Once
	ready     chan struct{}
}

// NewDictionaries creates an unloaded dictionary set
func NewDictionaries(cfg *config.Config, logger *logrus.Logger) *Dictionaries {
	return &Dictionaries{
		config:   cfg,
		client:   &http.Client{Timeout: cfg.Catalog.FetchTimeout},
		logger:   logger,
		ui:       UIDictionary{},
		products: ProductDictionary{},
		ready:    make(chan struct{}),
	}
}

// Load fetches the UI dictionary and the product dictionary concurrently
// and awaits both. A UI fetch failure substitutes the built-in minimal
// fallback; a product fetch failure substitutes empty per-locale mappings.
// The readiness signal fires in every case: consumers awaiting Ready always
// proceed, at worst with degraded text.
func (d *Dictionaries) Load(ctx context.Context) error {
	ui := UIDictionary{}
	products := ProductDictionary{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := d.loadJSON(gctx, d.config.Catalog.TranslationsURL, &ui); err != nil {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			d.logger.WithError(err).Warn("UI translations fetch failed, using built-in fallback")
			ui = fallbackUIDictionary()
		}
		return nil
	})

	g.Go(func() error {
		if err := d.loadJSON(gctx, d.config.Catalog.ProductTranslationsURL, &products); err != nil {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			d.logger.WithError(err).Warn("product translations fetch failed, originals will be shown")
			products = ProductDictionary{}
			for _, locale := range d.config.Store.SupportedLocales {
				products[locale] = LocaleProductDictionary{}
			}
		}
		return nil
	})

	err := g.Wait()

	d.mu.Lock()
	d.ui = ui
	d.products = products
	d.mu.Unlock()

	d.readyOnce.Do(func() { close(d.ready) })

	if err != nil {
		return fmt.Errorf("translation load aborted: %w", err)
	}

	d.logger.WithField("locales", len(ui)).Info("translations loaded")
	return nil
}

// Ready returns a channel closed once Load has completed (with real or
// fallback data). It replaces polling an initialization flag.
func (d *Dictionaries) Ready() <-chan struct{} {
	return d.ready
}

// Initialized reports whether Load has completed
func (d *Dictionaries) Initialized() bool {
	select {
	case <-d.ready:
		return true
	default:
		return false
	}
}

// lookupUI resolves a dotted key path against one locale's UI dictionary
func (d *Dictionaries) lookupUI(locale, key string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	tree, ok := d.ui[locale]
	if !ok {
		return "", false
	}

	var current interface{} = map[string]interface{}(tree)
	for _, segment := range strings.Split(key, ".") {
		node, ok := current.(map[string]interface{})
		if !ok {
			return "", false
		}
		current, ok = node[segment]
		if !ok {
			return "", false
		}
	}

	text, ok := current.(string)
	return text, ok
}

// productField resolves one product's translated field for a locale
func (d *Dictionaries) productField(locale string, productID int, field string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	localeDict, ok := d.products[locale]
	if !ok || localeDict.Products == nil {
		return "", false
	}

	fields, ok := localeDict.Products[strconv.Itoa(productID)]
	if !ok {
		return "", false
	}

	text, ok := fields[field]
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

// attribute resolves a category/style/color/size value translation
func (d *Dictionaries) attribute(locale, kind, value string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	localeDict, ok := d.products[locale]
	if !ok {
		return "", false
	}

	var table map[string]string
	switch kind {
	case "categories":
		table = localeDict.Categories
	case "styles":
		table = localeDict.Styles
	case "colors":
		table = localeDict.Colors
	case "sizes":
		table = localeDict.Sizes
	}

	text, ok := table[value]
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

// loadJSON resolves a data source into dest. Sources with an http(s) scheme
// are fetched over the network; anything else is treated as a file path.
func (d *Dictionaries) loadJSON(ctx context.Context, source string, dest interface{}) error {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		data, err := os.ReadFile(source)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", source, err)
		}
		if err := json.Unmarshal(data, dest); err != nil {
			return fmt.Errorf("failed to decode %s: %w", source, err)
		}
		return nil
	}

	url := source
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", url, err)
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", url, err)
	}

	return nil
}
