package mock

import "github.com/fwojciec/ecotab"

var (
	_ ecotab.TableTokenizer = (*TableTokenizer)(nil)
	_ ecotab.TextExtractor  = (*TextExtractor)(nil)
)

// TableTokenizer is a mock implementation of ecotab.TableTokenizer.
type TableTokenizer struct {
	TablesFn func(markup string) []ecotab.Table
}

func (t *TableTokenizer) Tables(markup string) []ecotab.Table {
	return t.TablesFn(markup)
}

// TextExtractor is a mock implementation of ecotab.TextExtractor.
type TextExtractor struct {
	LinesFn func(markup string) []string
}

func (e *TextExtractor) Lines(markup string) []string {
	return e.LinesFn(markup)
}
