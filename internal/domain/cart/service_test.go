// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-engine/internal/config"
	"github.com/your-org/storefront-engine/internal/domain/catalog"
	"github.com/your-org/storefront-engine/internal/infrastructure/storage/memory"
)

func testConfig() *config.Config {
	return &config.Config{
		Store: config.StoreConfig{
			DiscountRate: 0.20,
			DeliveryFee:  15,
			SessionTTL:   time.Hour,
		},
	}
}

func testProduct(id int, title string, price float64) *catalog.Product {
	return &catalog.Product{
		ID:    id,
		Title: title,
		Price: price,
		Image: "/img.png",
	}
}

func TestAddItem_Deduplication(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, memory.NewStore(), "session:test:cart", testConfig())

	p := testProduct(1, "T-Shirt", 240)

	t.Run("same identity triple increments quantity", func(t *testing.T) {
		require.NoError(t, store.AddItem(ctx, p, "Medium", "black", 1))
		require.NoError(t, store.AddItem(ctx, p, "Medium", "black", 2))

		items := store.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
	})

	t.Run("different size appends a new line", func(t *testing.T) {
		require.NoError(t, store.AddItem(ctx, p, "Large", "black", 1))

		items := store.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "Large", items[1].Size)
		assert.Equal(t, 1, items[1].Quantity)
	})

	t.Run("different color appends a new line", func(t *testing.T) {
		require.NoError(t, store.AddItem(ctx, p, "Medium", "white", 1))

		items := store.Items()
		require.Len(t, items, 3)
		assert.Equal(t, "white", items[2].Color)
	})

	t.Run("item count sums quantities", func(t *testing.T) {
		assert.Equal(t, 5, store.ItemCount())
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	newStore := func(t *testing.T) *Store {
		store := NewStore(ctx, memory.NewStore(), "session:test:cart", testConfig())
		require.NoError(t, store.AddItem(ctx, testProduct(1, "T-Shirt", 240), "Medium", "black", 2))
		return store
	}

	t.Run("positive delta increments", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.UpdateQuantity(ctx, 0, 1))
		assert.Equal(t, 3, store.Items()[0].Quantity)
	})

	t.Run("negative delta decrements", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.UpdateQuantity(ctx, 0, -1))
		assert.Equal(t, 1, store.Items()[0].Quantity)
	})

	t.Run("decrement to zero removes the line", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.UpdateQuantity(ctx, 0, -2))
		assert.Empty(t, store.Items())
	})

	t.Run("decrement below zero removes the line", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.UpdateQuantity(ctx, 0, -5))
		assert.Empty(t, store.Items())
	})

	t.Run("out of range index fails", func(t *testing.T) {
		store := newStore(t)
		err := store.UpdateQuantity(ctx, 5, 1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		err = store.UpdateQuantity(ctx, -1, 1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}

// Depleting a line removes it atomically: readers interleaved with the
// decrement must never see a quantity at or below zero.
func TestUpdateQuantity_AtomicRemoval(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, memory.NewStore(), "session:test:cart", testConfig())

	stop := make(chan struct{})
	done := make(chan struct{})
	var violations int32
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
			}
			for _, item := range store.Items() {
				if item.Quantity <= 0 {
					atomic.AddInt32(&violations, 1)
				}
			}
		}
	}()

	for i := 0; i < 200; i++ {
		require.NoError(t, store.AddItem(ctx, testProduct(1, "T-Shirt", 240), "Medium", "black", 2))
		require.NoError(t, store.UpdateQuantity(ctx, 0, -1))
		require.NoError(t, store.UpdateQuantity(ctx, 0, -1))
		require.Empty(t, store.Items())
	}

	close(stop)
	<-done
	assert.Zero(t, atomic.LoadInt32(&violations))
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, memory.NewStore(), "session:test:cart", testConfig())

	require.NoError(t, store.AddItem(ctx, testProduct(1, "T-Shirt", 240), "Medium", "black", 1))
	require.NoError(t, store.AddItem(ctx, testProduct(2, "Jeans", 180), "Large", "blue", 1))

	t.Run("removes by position keeping order", func(t *testing.T) {
		require.NoError(t, store.RemoveItem(ctx, 0))

		items := store.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].ID)
	})

	t.Run("out of range index fails", func(t *testing.T) {
		err := store.RemoveItem(ctx, 1)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, memory.NewStore(), "session:test:cart", testConfig())

	require.NoError(t, store.AddItem(ctx, testProduct(1, "T-Shirt", 240), "Medium", "black", 3))
	require.NoError(t, store.ClearCart(ctx))

	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.ItemCount())
}

func TestCalculateTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart still carries the delivery fee", func(t *testing.T) {
		store := NewStore(ctx, memory.NewStore(), "session:test:cart", testConfig())

		totals := store.CalculateTotals()
		assert.Equal(t, 0.0, totals.Subtotal)
		assert.Equal(t, 0.0, totals.Discount)
		assert.Equal(t, 15.0, totals.DeliveryFee)
		assert.Equal(t, 15.0, totals.Total)
	})

	t.Run("subtotal, discount and total", func(t *testing.T) {
		store := NewStore(ctx, memory.NewStore(), "session:test:cart", testConfig())
		require.NoError(t, store.AddItem(ctx, testProduct(1, "T-Shirt", 240), "Medium", "black", 2))
		require.NoError(t, store.AddItem(ctx, testProduct(2, "Jeans", 130), "Large", "blue", 1))

		totals := store.CalculateTotals()
		assert.Equal(t, 610.0, totals.Subtotal)
		assert.Equal(t, 122.0, totals.Discount)
		assert.Equal(t, 15.0, totals.DeliveryFee)
		assert.Equal(t, 503.0, totals.Total)
	})

	t.Run("small mixed cart", func(t *testing.T) {
		store := NewStore(ctx, memory.NewStore(), "session:test:cart", testConfig())
		require.NoError(t, store.AddItem(ctx, testProduct(1, "Cap", 10), "One Size", "black", 2))
		require.NoError(t, store.AddItem(ctx, testProduct(2, "Socks", 5), "One Size", "white", 1))

		totals := store.CalculateTotals()
		assert.Equal(t, 25.0, totals.Subtotal)
		assert.Equal(t, 5.0, totals.Discount)
		assert.Equal(t, 35.0, totals.Total)
	})

	t.Run("rounds half-up at the cent", func(t *testing.T) {
		store := NewStore(ctx, memory.NewStore(), "session:test:cart", testConfig())
		require.NoError(t, store.AddItem(ctx, testProduct(1, "Socks", 33.33), "One Size", "white", 1))

		totals := store.CalculateTotals()
		assert.Equal(t, 33.33, totals.Subtotal)
		assert.Equal(t, 6.67, totals.Discount) // 6.666 rounds up
		assert.Equal(t, 41.66, totals.Total)   // 33.33 - 6.666 + 15 = 41.664
	})

	t.Run("is pure", func(t *testing.T) {
		store := NewStore(ctx, memory.NewStore(), "session:test:cart", testConfig())
		require.NoError(t, store.AddItem(ctx, testProduct(1, "T-Shirt", 240), "Medium", "black", 1))

		first := store.CalculateTotals()
		second := store.CalculateTotals()
		assert.Equal(t, first, second)
	})
}

func TestPersistence(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	cfg := testConfig()

	t.Run("items survive a new store on the same key", func(t *testing.T) {
		store := NewStore(ctx, kv, "session:abc:cart", cfg)
		require.NoError(t, store.AddItem(ctx, testProduct(1, "T-Shirt", 240), "Medium", "black", 2))

		restored := NewStore(ctx, kv, "session:abc:cart", cfg)
		items := restored.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "T-Shirt", items[0].Name)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("sessions are isolated by key", func(t *testing.T) {
		other := NewStore(ctx, kv, "session:xyz:cart", cfg)
		assert.Empty(t, other.Items())
	})

	t.Run("malformed stored value yields an empty cart", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, "session:bad:cart", "{not json", time.Hour))

		store := NewStore(ctx, kv, "session:bad:cart", cfg)
		assert.Empty(t, store.Items())
	})
}

func TestHooks(t *testing.T) {
	ctx := context.Background()
	store := NewStore(ctx, memory.NewStore(), "session:test:cart", testConfig())

	var renders, pulses int
	store.SetRenderHook(func() { renders++ })
	store.SetPulseHook(func() { pulses++ })

	require.NoError(t, store.AddItem(ctx, testProduct(1, "T-Shirt", 240), "Medium", "black", 1))
	assert.Equal(t, 1, renders)
	assert.Equal(t, 1, pulses)

	require.NoError(t, store.UpdateQuantity(ctx, 0, 1))
	assert.Equal(t, 2, renders)
	assert.Equal(t, 1, pulses, "only adds pulse the badge")

	store.SetRenderHook(nil)
	require.NoError(t, store.ClearCart(ctx))
	assert.Equal(t, 2, renders, "detached hook no longer fires")
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 6.67, Round2(6.666))
	assert.Equal(t, 6.66, Round2(6.664))
	assert.Equal(t, 41.66, Round2(41.664))
	assert.Equal(t, 100.0, Round2(99.999))
}

func TestBadgeLabel(t *testing.T) {
	assert.Equal(t, "0", BadgeLabel(0))
	assert.Equal(t, "42", BadgeLabel(42))
	assert.Equal(t, "99", BadgeLabel(99))
	assert.Equal(t, "99+", BadgeLabel(100))
	assert.Equal(t, "99+", BadgeLabel(250))
}
