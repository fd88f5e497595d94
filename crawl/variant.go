// Package crawl fetches catalog pages, trying pagination variants of a page
// until one lists every record.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/ecotab"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel variant fetches in FetchAll.
const DefaultConcurrency = 4

// Page is one successfully fetched variant.
type Page struct {
	URL     string
	Content string

	// Range is the pagination banner of the page; HasRange reports whether
	// one was found.
	Range    ecotab.DisplayRange
	HasRange bool
}

func newPage(url, content string) Page {
	r, ok := ecotab.ParseDisplayRange(content)
	return Page{URL: url, Content: content, Range: r, HasRange: ok}
}

// VariantFetcher fetches the URL variants of a catalog page.
type VariantFetcher struct {
	Fetcher ecotab.Fetcher

	// Limiter, when set, paces requests per host.
	Limiter ecotab.HostLimiter

	// Concurrency bounds FetchAll. Zero uses DefaultConcurrency.
	Concurrency int

	// RetryDelays are the backoff delays for a failing variant. Nil
	// disables retries.
	RetryDelays []time.Duration

	Logger *slog.Logger
}

// FetchBest fetches urls in order and returns the first page whose display
// range is complete. Without a complete page it returns the last page that
// carries a display range, else the first page fetched successfully.
// Failing variants are skipped. Returns EUNAVAILABLE if every fetch fails.
func (v *VariantFetcher) FetchBest(ctx context.Context, urls []string) (Page, error) {
	var best *Page
	for _, u := range urls {
		content, err := v.fetch(ctx, u)
		if err != nil {
			if ctx.Err() != nil {
				return Page{}, ctx.Err()
			}
			v.log("variant failed", "url", u, "err", err)
			continue
		}
		page := newPage(u, content)
		switch {
		case page.HasRange && page.Range.Complete():
			return page, nil
		case page.HasRange, best == nil:
			best = &page
		}
	}
	if best == nil {
		return Page{}, ecotab.Errorf(ecotab.EUNAVAILABLE, "all %d page variants failed", len(urls))
	}
	return *best, nil
}

// FetchAll fetches every url concurrently and returns the successful pages
// in url order. Returns EUNAVAILABLE if every fetch fails.
func (v *VariantFetcher) FetchAll(ctx context.Context, urls []string) ([]Page, error) {
	concurrency := v.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	pages := make([]*Page, len(urls))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, u := range urls {
		g.Go(func() error {
			content, err := v.fetch(gctx, u)
			if err != nil {
				v.log("variant failed", "url", u, "err", err)
				return nil
			}
			page := newPage(u, content)
			pages[i] = &page
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []Page
	for _, p := range pages {
		if p != nil {
			out = append(out, *p)
		}
	}
	if len(out) == 0 {
		return nil, ecotab.Errorf(ecotab.EUNAVAILABLE, "all %d page variants failed", len(urls))
	}
	return out, nil
}

func (v *VariantFetcher) fetch(ctx context.Context, rawURL string) (string, error) {
	if v.Limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", ecotab.Errorf(ecotab.EINVALID, "invalid URL %q: %v", rawURL, err)
		}
		if err := v.Limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}
	return FetchWithRetry(ctx, rawURL, v.Fetcher.Fetch, v.Logger, v.RetryDelays)
}

func (v *VariantFetcher) log(msg string, args ...any) {
	if v.Logger != nil {
		v.Logger.Debug(msg, args...)
	}
}
