package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Both engines draw from the one production source; concurrent offer
// creations and plays must not corrupt it or each other.
func TestSharedRandAcrossEngines(t *testing.T) {
	catalog := newTestCatalog(t)
	rng := NewRand()
	offers := NewOfferService(catalog, nil, rng, 60, 10800, 12, 50)
	rewards := NewRewardService(catalog, nil, rng, 10000, 1500)
	session := rewards.CreateSession()
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 200)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := offers.Create(ctx)
			errs <- err
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := rewards.PlayWheel(ctx, session.ID)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}
