// Package goquery converts catalog markup to plain text lines using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ecotab"
)

// Ensure TextExtractor implements ecotab.TextExtractor at compile time.
var _ ecotab.TextExtractor = (*TextExtractor)(nil)

// TextExtractor renders markup as visible text lines. Script and style
// content is dropped, character references are decoded and the line
// structure of the source is kept.
type TextExtractor struct{}

// NewTextExtractor returns a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Lines returns the trimmed text lines of markup, blank lines included.
// Input that cannot be parsed is treated as plain text.
func (e *TextExtractor) Lines(markup string) []string {
	text := markup
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err == nil {
		doc.Find("script, style").Remove()
		text = doc.Text()
	}

	lines := ecotab.SplitLines(text)
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
