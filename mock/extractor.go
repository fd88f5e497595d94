package mock

import "github.com/fwojciec/ecotab"

var _ ecotab.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ecotab.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*ecotab.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*ecotab.ExtractResult, error) {
	return e.ExtractFn(html)
}
