package crawl_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/ecotab"
	"github.com/fwojciec/ecotab/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements ecotab.HostLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ ecotab.HostLimiter = crawl.NewHostLimiter(1)
	})

	t.Run("first request is immediate", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewHostLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "roots.ornl.gov")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("paces requests to the same host", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewHostLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "roots.ornl.gov"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "roots.ornl.gov")

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("hosts are limited independently", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewHostLimiter(10)
		require.NoError(t, limiter.Wait(context.Background(), "roots.ornl.gov"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "www.try-db.org")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewHostLimiter(1)
		require.NoError(t, limiter.Wait(context.Background(), "roots.ornl.gov"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "roots.ornl.gov"))
	})

	t.Run("concurrent waiters all complete", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewHostLimiter(100)

		var wg sync.WaitGroup
		var completed atomic.Int32
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Wait(context.Background(), "roots.ornl.gov") == nil {
					completed.Add(1)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(5), completed.Load())
	})
}
