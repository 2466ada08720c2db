// internal/storefront/registry.go
package storefront

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-engine/internal/config"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
	"github.com/your-org/storefront-engine/internal/domain/i18n"
	"github.com/your-org/storefront-engine/internal/infrastructure/storage"
)

// Registry keeps the live storefront session instances, one per browser
// session. Sessions are created lazily on first contact; persisted state
// (cart, locale) is restored at that point.
type Registry struct {
	kv      storage.Store
	catalog *catalog.Service
	dicts   *i18n.Dictionaries
	config  *config.Config
	logger  *logrus.Logger

	mu       sync.Mutex
	sessions map[string]*Storefront
}

// NewRegistry creates an empty session registry
func NewRegistry(kv storage.Store, cat *catalog.Service, dicts *i18n.Dictionaries, cfg *config.Config, logger *logrus.Logger) *Registry {
	return &Registry{
		kv:       kv,
		catalog:  cat,
		dicts:    dicts,
		config:   cfg,
		logger:   logger,
		sessions: make(map[string]*Storefront),
	}
}

// Get returns the storefront for a session, creating it on first use
func (r *Registry) Get(ctx context.Context, sessionID string) (*Storefront, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[sessionID]; ok {
		return s, nil
	}

	s, err := New(ctx, sessionID, r.kv, r.catalog, r.dicts, r.config, r.logger)
	if err != nil {
		return nil, err
	}

	r.sessions[sessionID] = s
	r.logger.WithField("session_id", sessionID).Debug("storefront session created")
	return s, nil
}

// Remove tears down and forgets a session
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	s, ok := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	r.mu.Unlock()

	if ok {
		s.Close()
	}
}

// Len reports the number of live sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
