// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-engine/internal/config"
	"golang.org/x/sync/errgroup"
)

// Service loads and serves the product catalog and review data. Both are
// fetched once per process and read-only afterwards; a fetch failure never
// blocks the storefront (seed catalog / empty reviews instead).
type Service struct {
	config *config.Config
	client *http.Client
	logger *logrus.Logger

	mu       sync.RWMutex
	products []Product
	reviews  ReviewsFile
	loaded   bool
}

// NewService creates a new catalog service
func NewService(cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		client: &http.Client{Timeout: cfg.Catalog.FetchTimeout},
		logger: logger,
	}
}

// Load fetches the product catalog and the reviews file concurrently and
// awaits both. Catalog failure falls back to the built-in seed products;
// reviews failure degrades to an empty review set.
func (s *Service) Load(ctx context.Context) error {
	var products []Product
	var reviews ReviewsFile

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.loadJSON(gctx, s.config.Catalog.ProductsURL, &products); err != nil {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			s.logger.WithError(err).Warn("catalog fetch failed, using seed products")
			products = SeedProducts()
		}
		return nil
	})

	g.Go(func() error {
		if err := s.loadJSON(gctx, s.config.Catalog.ReviewsURL, &reviews); err != nil {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			s.logger.WithError(err).Warn("reviews fetch failed, continuing without reviews")
			reviews = ReviewsFile{}
		}
		return nil
	})

	// Both goroutines degrade on fetch failure; Wait only errors when the
	// caller's context was cancelled.
	if err := g.Wait(); err != nil {
		return fmt.Errorf("catalog load aborted: %w", err)
	}

	s.mu.Lock()
	s.products = products
	s.reviews = reviews
	s.loaded = true
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"products": len(products),
		"reviewed": len(reviews.Products),
	}).Info("catalog loaded")

	return nil
}

// Products returns the full catalog in popularity order
func (s *Service) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// Product finds a catalog record by id
func (s *Service) Product(id int) (*Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, true
		}
	}
	return nil, false
}

// ReviewsFor returns the reviews for one product, empty when none exist
func (s *Service) ReviewsFor(productID int) []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, pr := range s.reviews.Products {
		if pr.ProductID == productID {
			return pr.Reviews
		}
	}
	return nil
}

// GlobalReviews returns the storefront-wide reviews for the home page slider
func (s *Service) GlobalReviews() []Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reviews.Global
}

// Options derives filter metadata from the loaded catalog
func (s *Service) Options() FilterOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Options(s.products)
}

// NewArrivals returns the home page new-arrivals strip (first four records)
func (s *Service) NewArrivals() []Product {
	return s.slice(0, 4)
}

// TopSelling returns the home page top-selling strip (next four records)
func (s *Service) TopSelling() []Product {
	return s.slice(4, 8)
}

func (s *Service) slice(start, end int) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if start > len(s.products) {
		start = len(s.products)
	}
	if end > len(s.products) {
		end = len(s.products)
	}
	return s.products[start:end]
}

// loadJSON resolves a data source into dest. Sources with an http(s) scheme
// are fetched over the network; anything else is treated as a file path.
func (s *Service) loadJSON(ctx context.Context, source string, dest interface{}) error {
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

	resp, err := s.client.Do(req)
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
