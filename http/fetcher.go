package http

import (
	"context"
	"io"
	"net/http"

	"github.com/fwojciec/ecotab"
	"golang.org/x/net/html/charset"
)

// Ensure Fetcher implements ecotab.Fetcher at compile time.
var _ ecotab.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves catalog pages with plain GET requests. Bodies are
// decoded to UTF-8 using the declared or sniffed charset.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	o := newOptions(opts)
	return &Fetcher{
		client:    o.client(),
		userAgent: o.userAgent,
	}
}

// Fetch retrieves the content at url.
// Returns ENOTFOUND for 404 and 410, EINVALID for other client errors and
// EUNAVAILABLE for everything else that is not 200.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html, text/plain")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ecotab.Errorf(statusCode(resp.StatusCode), "HTTP %d for %s", resp.StatusCode, url)
	}

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
