package ecotab

import "context"

// Fetcher retrieves page payloads from URLs.
type Fetcher interface {
	// Fetch performs a single GET request and returns the decoded body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// HostLimiter paces requests per host.
type HostLimiter interface {
	// Wait blocks until a request to host is allowed or ctx is done.
	Wait(ctx context.Context, host string) error
}
