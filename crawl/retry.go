package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ecotab"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry calls fetch once plus once per entry in delays, sleeping
// for the delay before each retry. EINVALID and ENOTFOUND errors are
// returned at once. A nil logger disables retry logging.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		body, err := fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !retryable(err) || attempt == len(delays) {
			break
		}
		if logger != nil {
			logger.Debug("retry", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
	return "", lastErr
}

func retryable(err error) bool {
	switch ecotab.ErrorCode(err) {
	case ecotab.EINVALID, ecotab.ENOTFOUND:
		return false
	}
	return true
}
