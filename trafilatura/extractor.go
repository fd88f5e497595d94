// Package trafilatura isolates the main content of catalog pages so that
// keyword searches skip menus and footers.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/ecotab"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

var _ ecotab.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura. Tables are kept since they carry the
// catalog data.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main content of rawHTML.
// Returns EINVALID for empty input.
func (e *Extractor) Extract(rawHTML string) (*ecotab.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, ecotab.Errorf(ecotab.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return nil, ecotab.Errorf(ecotab.EINVALID, "no main content found: %v", err)
	}

	out := &ecotab.ExtractResult{Title: result.Metadata.Title}
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		out.ContentHTML = buf.String()
	}
	return out, nil
}
