// Package html extracts tables from markup using the golang.org/x/net/html
// tokenizer.
package html

import (
	"strings"

	"github.com/fwojciec/ecotab"
	"golang.org/x/net/html"
)

// Ensure Tokenizer implements ecotab.TableTokenizer at compile time.
var _ ecotab.TableTokenizer = (*Tokenizer)(nil)

// Tokenizer builds tables by scanning tags sequentially. It does not build a
// DOM and performs no nesting validation: a <table> start tag abandons any
// table already in progress, so nested tables are not supported.
type Tokenizer struct{}

// NewTokenizer returns a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tables returns every table in markup that has at least one non-empty row.
func (t *Tokenizer) Tables(markup string) []ecotab.Table {
	b := &tableBuilder{}
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// End of input: any unfinished row or table is discarded.
			return b.tables
		case html.StartTagToken:
			name, _ := z.TagName()
			// Only script and style hold raw text. Markup inside noscript,
			// iframe, textarea, title and the like is still tokenized.
			if tag := string(name); tag != "script" && tag != "style" {
				z.NextIsNotRawText()
			}
			b.start(string(name))
		case html.EndTagToken:
			name, _ := z.TagName()
			b.end(string(name))
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			b.start(string(name))
			b.end(string(name))
		case html.TextToken:
			b.text(string(z.Text()))
		}
	}
}

// tableBuilder holds the call-local accumulators for one Tables call.
type tableBuilder struct {
	inTable bool
	inCell  bool
	row     ecotab.Row
	table   ecotab.Table
	tables  []ecotab.Table
}

func (b *tableBuilder) start(tag string) {
	switch tag {
	case "table":
		b.inTable = true
		b.inCell = false
		b.table = nil
		b.row = nil
	case "td", "th":
		if b.inTable {
			b.inCell = true
			b.row = append(b.row, "")
		}
	}
}

func (b *tableBuilder) end(tag string) {
	switch tag {
	case "tr":
		if len(b.row) > 0 {
			for i, cell := range b.row {
				b.row[i] = strings.TrimSpace(cell)
			}
			b.table = append(b.table, b.row)
		}
		b.row = nil
	case "td", "th":
		b.inCell = false
	case "table":
		if !b.inTable {
			return
		}
		if len(b.table) > 0 {
			b.tables = append(b.tables, b.table)
		}
		b.table = nil
		b.row = nil
		b.inTable = false
		b.inCell = false
	}
}

func (b *tableBuilder) text(s string) {
	if b.inCell && len(b.row) > 0 {
		b.row[len(b.row)-1] += s
	}
}
