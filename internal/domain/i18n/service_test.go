// internal/domain/i18n/service_test.go
package i18n

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-engine/internal/config"
	"github.com/your-org/storefront-engine/internal/infrastructure/storage/memory"
)

const uiJSON = `{
	"en": {
		"header": {"shop": "Shop"},
		"cart": {"subtotal": "Subtotal", "en_only": "English only"}
	},
	"uk": {
		"header": {"shop": "Магазин"},
		"cart": {"subtotal": "Проміжний підсумок"}
	}
}`

const productJSON = `{
	"uk": {
		"products": {"1": {"title": "Футболка", "description": "Опис"}},
		"categories": {"T-shirts": "Футболки"},
		"colors": {"black": "чорний"},
		"sizes": {"Medium": "M"}
	}
}`

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func serveJSON(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func loadedDictionaries(t *testing.T) *Dictionaries {
	t.Helper()
	ui := serveJSON(t, uiJSON)
	products := serveJSON(t, productJSON)

	cfg := &config.Config{
		Catalog: config.CatalogConfig{
			TranslationsURL:        ui.URL,
			ProductTranslationsURL: products.URL,
			FetchTimeout:           2 * time.Second,
		},
		Store: config.StoreConfig{SupportedLocales: []string{"en", "uk"}},
	}

	dicts := NewDictionaries(cfg, testLogger())
	require.NoError(t, dicts.Load(context.Background()))
	return dicts
}

func newTestStore(t *testing.T, dicts *Dictionaries) *Store {
	t.Helper()
	return NewStore(context.Background(), dicts, memory.NewStore(), "session:test:preferredLanguage", "en", time.Hour)
}

func TestResolve(t *testing.T) {
	dicts := loadedDictionaries(t)
	store := newTestStore(t, dicts)

	t.Run("resolved key in the active locale", func(t *testing.T) {
		res := store.Resolve("header.shop")
		assert.Equal(t, "Shop", res.Text)
		assert.Equal(t, SourceResolved, res.Source)
	})

	t.Run("missing key resolves to itself", func(t *testing.T) {
		res := store.Resolve("header.bogus")
		assert.Equal(t, "header.bogus", res.Text)
		assert.Equal(t, SourceMissing, res.Source)

		assert.Equal(t, "nope.nope.nope", store.Translate("nope.nope.nope"))
	})

	t.Run("non-leaf key is missing", func(t *testing.T) {
		res := store.Resolve("header")
		assert.Equal(t, SourceMissing, res.Source)
	})

	t.Run("key absent from the active locale falls back to the default", func(t *testing.T) {
		require.NoError(t, store.SwitchLocale(context.Background(), "uk"))

		res := store.Resolve("cart.en_only")
		assert.Equal(t, "English only", res.Text)
		assert.Equal(t, SourceFallback, res.Source)

		res = store.Resolve("cart.subtotal")
		assert.Equal(t, "Проміжний підсумок", res.Text)
		assert.Equal(t, SourceResolved, res.Source)
	})
}

func TestTranslateProductField(t *testing.T) {
	dicts := loadedDictionaries(t)
	store := newTestStore(t, dicts)

	t.Run("untranslated locale yields no result", func(t *testing.T) {
		_, ok := store.TranslateProductField(1, "title")
		assert.False(t, ok, "en has no product dictionary")
	})

	t.Run("translated locale resolves fields", func(t *testing.T) {
		require.NoError(t, store.SwitchLocale(context.Background(), "uk"))

		title, ok := store.TranslateProductField(1, "title")
		require.True(t, ok)
		assert.Equal(t, "Футболка", title)

		_, ok = store.TranslateProductField(1, "subtitle")
		assert.False(t, ok, "unknown field")

		_, ok = store.TranslateProductField(99, "title")
		assert.False(t, ok, "unknown product")
	})
}

func TestAttributeTranslations(t *testing.T) {
	dicts := loadedDictionaries(t)
	store := newTestStore(t, dicts)
	require.NoError(t, store.SwitchLocale(context.Background(), "uk"))

	assert.Equal(t, "Футболки", store.TranslateCategory("T-shirts"))
	assert.Equal(t, "чорний", store.TranslateColor("black"))
	assert.Equal(t, "M", store.TranslateSize("Medium"))

	t.Run("unmapped values pass through", func(t *testing.T) {
		assert.Equal(t, "Hats", store.TranslateCategory("Hats"))
		assert.Equal(t, "Grunge", store.TranslateStyle("Grunge"))
	})
}

func TestSwitchLocale(t *testing.T) {
	ctx := context.Background()
	dicts := loadedDictionaries(t)

	t.Run("persists the choice and broadcasts", func(t *testing.T) {
		kv := memory.NewStore()
		store := NewStore(ctx, dicts, kv, "session:a:preferredLanguage", "en", time.Hour)

		var notified []string
		store.Coordinator().Subscribe(func(change LocaleChange) {
			notified = append(notified, change.Language)
		})

		require.NoError(t, store.SwitchLocale(ctx, "uk"))
		assert.Equal(t, "uk", store.ActiveLocale())
		assert.Equal(t, []string{"uk"}, notified)

		stored, err := kv.Get(ctx, "session:a:preferredLanguage")
		require.NoError(t, err)
		assert.Equal(t, "uk", stored)
	})

	t.Run("switching to the active locale is a no-op", func(t *testing.T) {
		kv := memory.NewStore()
		store := NewStore(ctx, dicts, kv, "session:b:preferredLanguage", "en", time.Hour)

		var broadcasts int
		store.Coordinator().Subscribe(func(LocaleChange) { broadcasts++ })

		require.NoError(t, store.SwitchLocale(ctx, "en"))
		assert.Zero(t, broadcasts)

		_, err := kv.Get(ctx, "session:b:preferredLanguage")
		assert.Error(t, err, "nothing persisted")
	})

	t.Run("persisted choice is restored on construction", func(t *testing.T) {
		kv := memory.NewStore()
		store := NewStore(ctx, dicts, kv, "session:c:preferredLanguage", "en", time.Hour)
		require.NoError(t, store.SwitchLocale(ctx, "uk"))

		restored := NewStore(ctx, dicts, kv, "session:c:preferredLanguage", "en", time.Hour)
		assert.Equal(t, "uk", restored.ActiveLocale())
	})
}
