// internal/domain/i18n/service.go
package i18n

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/your-org/storefront-engine/internal/infrastructure/storage"
)

// Store is the per-session translation store: the shared read-only
// dictionaries plus this session's active locale. The locale choice is
// persisted to the key-value store and survives page loads.
type Store struct {
	dicts       *Dictionaries
	kv          storage.Store
	key         string
	ttl         time.Duration
	fallback    string
	coordinator *Coordinator

	mu     sync.RWMutex
	locale string
}

// NewStore creates a translation store for one session. The persisted
// locale choice is restored when present; a missing or malformed value
// falls back to defaultLocale.
func NewStore(ctx context.Context, dicts *Dictionaries, kv storage.Store, key, defaultLocale string, ttl time.Duration) *Store {
	s := &Store{
		dicts:       dicts,
		kv:          kv,
		key:         key,
		ttl:         ttl,
		fallback:    defaultLocale,
		coordinator: NewCoordinator(),
		locale:      defaultLocale,
	}

	if stored, err := kv.Get(ctx, key); err == nil && stored != "" {
		s.locale = stored
	}

	return s
}

// Coordinator returns the locale-change notification hub for this session
func (s *Store) Coordinator() *Coordinator {
	return s.coordinator
}

// ActiveLocale returns the currently selected locale
func (s *Store) ActiveLocale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// Initialized reports whether the dictionaries have finished loading.
// Lookups before initialization deterministically return default text.
func (s *Store) Initialized() bool {
	return s.dicts.Initialized()
}

// Ready returns the dictionary readiness signal
func (s *Store) Ready() <-chan struct{} {
	return s.dicts.Ready()
}

// Resolve looks up a dotted UI key and tags how it was satisfied. A key
// absent from the active locale is retried against the default locale. The
// returned text is always displayable: the key itself when nothing matched.
func (s *Store) Resolve(key string) Resolution {
	active := s.ActiveLocale()
	if text, ok := s.dicts.lookupUI(active, key); ok {
		return Resolution{Text: text, Source: SourceResolved}
	}
	if active != s.fallback {
		if text, ok := s.dicts.lookupUI(s.fallback, key); ok {
			return Resolution{Text: text, Source: SourceFallback}
		}
	}
	return Resolution{Text: key, Source: SourceMissing}
}

// Translate resolves a dotted UI key, returning the key itself when any
// path segment is missing so callers can use the result directly.
func (s *Store) Translate(key string) string {
	return s.Resolve(key).Text
}

// TranslateProductField returns a product's translated field. The second
// return is false when unresolved; falling back to the original product
// field is the caller's decision.
func (s *Store) TranslateProductField(productID int, field string) (string, bool) {
	return s.dicts.productField(s.ActiveLocale(), productID, field)
}

// TranslateCategory returns the translated category name, or the input itself
func (s *Store) TranslateCategory(category string) string {
	if text, ok := s.dicts.attribute(s.ActiveLocale(), "categories", category); ok {
		return text
	}
	return category
}

// TranslateStyle returns the translated style name, or the input itself
func (s *Store) TranslateStyle(style string) string {
	if text, ok := s.dicts.attribute(s.ActiveLocale(), "styles", style); ok {
		return text
	}
	return style
}

// TranslateColor returns the translated color name, or the input itself
func (s *Store) TranslateColor(color string) string {
	if text, ok := s.dicts.attribute(s.ActiveLocale(), "colors", color); ok {
		return text
	}
	return color
}

// TranslateSize returns the translated size label, or the input itself
func (s *Store) TranslateSize(size string) string {
	if text, ok := s.dicts.attribute(s.ActiveLocale(), "sizes", size); ok {
		return text
	}
	return size
}

// SwitchLocale activates a new locale, persists the choice and broadcasts
// a locale-changed notification. Switching to the already-active locale is
// a no-op: no persistence, no notification.
func (s *Store) SwitchLocale(ctx context.Context, locale string) error {
	s.mu.Lock()
	if s.locale == locale {
		s.mu.Unlock()
		return nil
	}
	s.locale = locale
	s.mu.Unlock()

	if err := s.kv.Set(ctx, s.key, locale, s.ttl); err != nil {
		return fmt.Errorf("failed to persist locale choice: %w", err)
	}

	s.coordinator.Broadcast(LocaleChange{Language: locale})
	return nil
}
