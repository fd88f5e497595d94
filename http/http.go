// Package http provides HTTP clients for catalog pages and the ESS-DIVE
// dataset API.
package http

import (
	"crypto/tls"
	"net/http"
	"time"

	"github.com/fwojciec/ecotab"
)

// DefaultFetchTimeout is the default timeout for catalog page requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent is sent with every request unless overridden. Some
// catalog hosts reject requests without a browser user agent.
const DefaultUserAgent = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:77.0) Gecko/20100101 Firefox/77.0"

// options holds the settings shared by Fetcher and EssdiveClient.
type options struct {
	timeout   time.Duration
	userAgent string
	insecure  bool
	baseURL   string
	token     string
}

// Option configures a Fetcher or an EssdiveClient.
type Option func(*options)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		o.userAgent = ua
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify(insecure bool) Option {
	return func(o *options) {
		o.insecure = insecure
	}
}

// WithBaseURL sets the ESS-DIVE API base URL.
// Defaults to DefaultEssdiveBaseURL. Ignored by Fetcher.
func WithBaseURL(u string) Option {
	return func(o *options) {
		o.baseURL = u
	}
}

// WithToken sets the ESS-DIVE bearer token. Ignored by Fetcher.
func WithToken(token string) Option {
	return func(o *options) {
		o.token = token
	}
}

func newOptions(opts []Option) options {
	o := options{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		baseURL:   DefaultEssdiveBaseURL,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) client() *http.Client {
	c := &http.Client{Timeout: o.timeout}
	if o.insecure {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		c.Transport = transport
	}
	return c
}

// statusCode maps a non-200 HTTP status to an error code. Client errors
// other than timeouts and throttling are definitive and must not be retried.
func statusCode(status int) string {
	switch {
	case status == http.StatusNotFound, status == http.StatusGone:
		return ecotab.ENOTFOUND
	case status == http.StatusRequestTimeout, status == http.StatusTooManyRequests:
		return ecotab.EUNAVAILABLE
	case status >= 400 && status < 500:
		return ecotab.EINVALID
	default:
		return ecotab.EUNAVAILABLE
	}
}
