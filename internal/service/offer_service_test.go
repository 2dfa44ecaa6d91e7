package service

import (
	"context"
	"testing"
	"time"

	"atelier-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays a fixed sequence of draws.
type scriptedRand struct {
	draws []int
	pos   int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.draws[r.pos%len(r.draws)]
	r.pos++
	return v % n
}

func newOfferService(t *testing.T, rng Rand) *OfferService {
	t.Helper()
	return NewOfferService(newTestCatalog(t), nil, rng, 60, 10800, 12, 50)
}

func TestDiscountForDuration(t *testing.T) {
	os := newOfferService(t, &scriptedRand{draws: []int{0}})

	assert.Equal(t, 50, os.DiscountForDuration(60))
	assert.Equal(t, 12, os.DiscountForDuration(10800))

	// Monotone non-increasing across the whole domain.
	prev := 51
	for d := 60; d <= 10800; d += 60 {
		got := os.DiscountForDuration(d)
		assert.LessOrEqual(t, got, prev, "duration %d", d)
		assert.GreaterOrEqual(t, got, 12)
		assert.LessOrEqual(t, got, 50)
		prev = got
	}
}

func TestCreateOffer(t *testing.T) {
	// First draw picks product index 0, second draws duration offset 0.
	rng := &scriptedRand{draws: []int{0, 0}}
	os := newOfferService(t, rng)

	offer, err := os.Create(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "p1", offer.Product.ID)
	assert.Equal(t, 60, offer.TotalSeconds)
	assert.Equal(t, 60, offer.RemainingSeconds)
	assert.Equal(t, 50, offer.DiscountPercent)
	assert.Equal(t, models.OfferStatusActive, offer.Status)
}

func TestOfferCountdown(t *testing.T) {
	rng := &scriptedRand{draws: []int{0, 3}} // duration 63s
	os := newOfferService(t, rng)
	ctx := context.Background()

	offer, err := os.Create(ctx)
	require.NoError(t, err)
	require.Equal(t, 63, offer.TotalSeconds)

	for i := 0; i < 60; i++ {
		require.NoError(t, os.Tick(ctx, offer.ID))
	}
	got, err := os.Get(offer.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.RemainingSeconds)

	purchasable, err := os.IsPurchasable(offer.ID)
	require.NoError(t, err)
	assert.True(t, purchasable)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.Tick(ctx, offer.ID))
	}
	got, err = os.Get(offer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.RemainingSeconds)
	assert.Equal(t, models.OfferStatusExpired, got.Status)

	// Further ticks are no-ops.
	require.NoError(t, os.Tick(ctx, offer.ID))
	got, err = os.Get(offer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.RemainingSeconds)

	purchasable, err = os.IsPurchasable(offer.ID)
	require.NoError(t, err)
	assert.False(t, purchasable)
}

func TestAdvanceCoalescedTicks(t *testing.T) {
	rng := &scriptedRand{draws: []int{0, 40}} // duration 100s
	os := newOfferService(t, rng)
	ctx := context.Background()

	offer, err := os.Create(ctx)
	require.NoError(t, err)
	require.Equal(t, 100, offer.TotalSeconds)

	require.NoError(t, os.Advance(ctx, offer.ID, 30))
	got, err := os.Get(offer.ID)
	require.NoError(t, err)
	assert.Equal(t, 70, got.RemainingSeconds)

	// Overshooting floors at zero and expires exactly once.
	require.NoError(t, os.Advance(ctx, offer.ID, 500))
	got, err = os.Get(offer.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.RemainingSeconds)
	assert.Equal(t, models.OfferStatusExpired, got.Status)
}

func TestCurrentPrice(t *testing.T) {
	// Duration 60 gives a 50% discount on p1 (price 48000).
	os := newOfferService(t, &scriptedRand{draws: []int{0, 0}})
	offer, err := os.Create(context.Background())
	require.NoError(t, err)

	price, err := os.CurrentPrice(offer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(24000), price)

	// Duration 10800 gives the 12% floor discount.
	os = newOfferService(t, &scriptedRand{draws: []int{0, 10740}})
	offer, err = os.Create(context.Background())
	require.NoError(t, err)
	require.Equal(t, 10800, offer.TotalSeconds)

	price, err = os.CurrentPrice(offer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42240), price)
}

func TestPurchase(t *testing.T) {
	rng := &scriptedRand{draws: []int{0, 1}} // duration 61s
	os := newOfferService(t, rng)
	ctx := context.Background()

	offer, err := os.Create(ctx)
	require.NoError(t, err)

	bought, price, err := os.Purchase(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, offer.ID, bought.ID)
	assert.Equal(t, int64(24000), price)

	// Run the offer out, then purchases are rejected.
	require.NoError(t, os.Advance(ctx, offer.ID, offer.TotalSeconds))
	_, _, err = os.Purchase(ctx, offer.ID)
	assert.ErrorIs(t, err, models.ErrExpiredOffer)

	_, _, err = os.Purchase(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCountdownStopsOnCancel(t *testing.T) {
	rng := &scriptedRand{draws: []int{0, 3540}} // duration 3600s
	os := newOfferService(t, rng)

	ctx, cancel := context.WithCancel(context.Background())
	os.Start(ctx)

	offer, err := os.Create(context.Background())
	require.NoError(t, err)

	os.mu.Lock()
	_, running := os.stops[offer.ID]
	os.mu.Unlock()
	require.True(t, running)

	cancel()

	// The countdown goroutine exits and removes its stop entry.
	assert.Eventually(t, func() bool {
		os.mu.Lock()
		defer os.mu.Unlock()
		_, running := os.stops[offer.ID]
		return !running
	}, 2*time.Second, 10*time.Millisecond)

	got, err := os.Get(offer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OfferStatusActive, got.Status)
	rem := got.RemainingSeconds

	// No ticker survives the cancellation.
	assert.Never(t, func() bool {
		cur, err := os.Get(offer.ID)
		return err == nil && cur.RemainingSeconds < rem
	}, 1200*time.Millisecond, 100*time.Millisecond)
}

func TestStopCountdownIsIdempotent(t *testing.T) {
	os := newOfferService(t, &scriptedRand{draws: []int{0, 0}})
	offer, err := os.Create(context.Background())
	require.NoError(t, err)

	os.StopCountdown(offer.ID)
	os.StopCountdown(offer.ID)
	os.Shutdown()
}
