package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fwojciec/ecotab"
)

// DefaultEssdiveBaseURL is the public ESS-DIVE dataset API.
const DefaultEssdiveBaseURL = "https://api.ess-dive.lbl.gov/"

// DefaultPageSize is the number of packages requested per search page.
const DefaultPageSize = 25

var _ ecotab.PackageService = (*EssdiveClient)(nil)

// EssdiveClient reads the ESS-DIVE dataset API. Responses are returned as
// decoded JSON documents.
type EssdiveClient struct {
	client    *http.Client
	baseURL   string
	token     string
	userAgent string
}

// NewEssdiveClient creates a new client.
func NewEssdiveClient(opts ...Option) *EssdiveClient {
	o := newOptions(opts)
	base := o.baseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &EssdiveClient{
		client:    o.client(),
		baseURL:   base,
		token:     o.token,
		userAgent: o.userAgent,
	}
}

// SearchPackages lists packages matching q.
func (c *EssdiveClient) SearchPackages(ctx context.Context, q ecotab.PackageQuery) (map[string]any, error) {
	if q.PageSize < 0 {
		return nil, ecotab.Errorf(ecotab.EINVALID, "page size must be >= 0")
	}
	if q.RowStart < 0 {
		return nil, ecotab.Errorf(ecotab.EINVALID, "row start must be >= 0")
	}

	params := url.Values{}
	params.Set("isPublic", strconv.FormatBool(!q.IncludePrivate))
	params.Set("page_size", strconv.Itoa(q.PageSize))
	params.Set("row_start", strconv.Itoa(q.RowStart))
	if q.Text != "" {
		params.Set("text", q.Text)
	}
	if q.ProviderName != "" {
		params.Set("providerName", q.ProviderName)
	}
	for k, v := range q.Extra {
		params.Set(k, v)
	}

	return c.get(ctx, "packages", params)
}

// GetPackage retrieves one package by ID.
// Returns ENOTFOUND if the package does not exist.
func (c *EssdiveClient) GetPackage(ctx context.Context, id string, includePrivate bool) (map[string]any, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ecotab.Errorf(ecotab.EINVALID, "package ID required")
	}
	params := url.Values{}
	params.Set("isPublic", strconv.FormatBool(!includePrivate))
	return c.get(ctx, "packages/"+url.PathEscape(id), params)
}

// RequestURL returns the request URL for path and params, for debugging.
func (c *EssdiveClient) RequestURL(path string, params url.Values) string {
	u := c.baseURL + strings.TrimPrefix(path, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *EssdiveClient) get(ctx context.Context, path string, params url.Values) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.RequestURL(path, params), nil)
	if err != nil {
		return nil, ecotab.Errorf(ecotab.EINVALID, "invalid ESS-DIVE request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, ecotab.Errorf(ecotab.EUNAVAILABLE, "ESS-DIVE API request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ecotab.Errorf(ecotab.EUNAVAILABLE, "read ESS-DIVE response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, ecotab.Errorf(statusCode(resp.StatusCode), "ESS-DIVE API error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, ecotab.Errorf(ecotab.EUNAVAILABLE, "ESS-DIVE API returned non-JSON response")
	}
	return doc, nil
}
