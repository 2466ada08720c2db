// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/your-org/storefront-engine/internal/config"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
	"github.com/your-org/storefront-engine/internal/infrastructure/storage"
)

// ErrIndexOutOfRange is returned for positional operations past the current
// item count. The original silently spliced out of range; failing loudly is
// a deliberate deviation.
var ErrIndexOutOfRange = errors.New("cart: item index out of range")

// Store maintains one session's ordered cart lines. Every mutation is
// write-through: the full item slice is persisted to the key-value store
// before the call returns, then the re-render hook fires if the cart page
// is mounted.
type Store struct {
	kv           storage.Store
	key          string
	ttl          time.Duration
	discountRate float64
	deliveryFee  float64

	mu    sync.Mutex
	items []Item

	onChange func() // cart page re-render, set while mounted
	onPulse  func() // cart-count badge pulse affordance
}

// NewStore creates a cart store bound to one persistence key and loads any
// previously persisted items. A missing or malformed stored value is
// treated as an empty cart.
func NewStore(ctx context.Context, kv storage.Store, key string, cfg *config.Config) *Store {
	s := &Store{
		kv:           kv,
		key:          key,
		ttl:          cfg.Store.SessionTTL,
		discountRate: cfg.Store.DiscountRate,
		deliveryFee:  cfg.Store.DeliveryFee,
	}

	if stored, err := kv.Get(ctx, key); err == nil {
		var items []Item
		if err := json.Unmarshal([]byte(stored), &items); err == nil {
			s.items = items
		}
	}

	return s
}

// SetRenderHook attaches the cart page re-render callback. Pass nil on
// teardown.
func (s *Store) SetRenderHook(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// SetPulseHook attaches the cart-count pulse callback
func (s *Store) SetPulseHook(fn func()) {
	s.mu.Lock()
	s.onPulse = fn
	s.mu.Unlock()
}

// Items returns a copy of the current ordered lines
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// ItemCount returns the sum of quantities across all lines
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// AddItem adds a product choice to the cart. A line matching
// (product id, size, color) has its quantity incremented by quantity;
// otherwise a new line captures the product's current title, price and
// image. Persists and pulses the cart-count badges.
func (s *Store) AddItem(ctx context.Context, product *catalog.Product, size, color string, quantity int) error {
	s.mu.Lock()

	found := false
	for i := range s.items {
		if s.items[i].Matches(product.ID, size, color) {
			s.items[i].Quantity += quantity
			found = true
			break
		}
	}

	if !found {
		s.items = append(s.items, Item{
			ID:           product.ID,
			Name:         product.Title,
			OriginalName: product.Title,
			Price:        product.Price,
			Image:        product.Image,
			Size:         size,
			Color:        color,
			Quantity:     quantity,
		})
	}

	if err := s.persistLocked(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	onChange, onPulse := s.onChange, s.onPulse
	s.mu.Unlock()

	if onPulse != nil {
		onPulse()
	}
	if onChange != nil {
		onChange()
	}
	return nil
}

// RemoveItem deletes the line at the given positional index
func (s *Store) RemoveItem(ctx context.Context, index int) error {
	s.mu.Lock()

	if index < 0 || index >= len(s.items) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(s.items))
	}
	s.removeLocked(index)

	if err := s.persistLocked(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange()
	}
	return nil
}

// UpdateQuantity applies a signed delta to the line at index. A resulting
// quantity of zero or less removes the line. Mutation, removal and persist
// happen under one lock hold so concurrent callers never observe a line
// with a non-positive quantity.
func (s *Store) UpdateQuantity(ctx context.Context, index, delta int) error {
	s.mu.Lock()

	if index < 0 || index >= len(s.items) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(s.items))
	}

	s.items[index].Quantity += delta
	if s.items[index].Quantity <= 0 {
		s.removeLocked(index)
	}

	if err := s.persistLocked(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange()
	}
	return nil
}

// ClearCart empties the collection and persists
func (s *Store) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	s.items = nil

	if err := s.persistLocked(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	onChange := s.onChange
	s.mu.Unlock()

	if onChange != nil {
		onChange()
	}
	return nil
}

// CalculateTotals derives the totals block from the current items. Pure:
// no side effects, identical results for identical state.
func (s *Store) CalculateTotals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calculateTotals(s.items, s.discountRate, s.deliveryFee)
}

func calculateTotals(items []Item, discountRate, deliveryFee float64) Totals {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	discount := subtotal * discountRate
	total := subtotal - discount + deliveryFee

	return Totals{
		Subtotal:    Round2(subtotal),
		Discount:    Round2(discount),
		DeliveryFee: deliveryFee,
		Total:       Round2(total),
	}
}

// removeLocked splices out the line at index. Caller holds the lock and has
// validated the index.
func (s *Store) removeLocked(index int) {
	s.items = append(s.items[:index], s.items[index+1:]...)
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(data), s.ttl); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}
