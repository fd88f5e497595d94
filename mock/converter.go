package mock

import "github.com/fwojciec/ecotab"

var _ ecotab.Converter = (*Converter)(nil)

// Converter is a mock implementation of ecotab.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
