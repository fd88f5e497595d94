package ecotab

import (
	"regexp"
	"strings"
)

var (
	doiRe           = regexp.MustCompile(`https?://doi\.org/[^\s\p{Z}]+`)
	trailingPunctRe = regexp.MustCompile(`[\s\p{Z}.,;]+$`)
)

// FindDOI returns the first DOI URL embedded in text, or "" when there is none.
func FindDOI(text string) string {
	return doiRe.FindString(text)
}

// SplitCitation separates a DOI URL from free-text citation.
//
// When knownDOI is empty the citation is searched for an
// https?://doi.org/ URL. The DOI loses trailing whitespace, periods, commas
// and semicolons; every occurrence of it is then removed from the citation,
// and only after that removal is the citation trimmed of the same trailing
// punctuation. An empty returned DOI means none was found.
func SplitCitation(citation, knownDOI string) (string, string) {
	doi := knownDOI
	if doi == "" {
		doi = FindDOI(citation)
	}
	doi = trimTrailingPunct(doi)
	if doi != "" {
		citation = strings.TrimSpace(strings.ReplaceAll(citation, doi, ""))
	}
	return trimTrailingPunct(citation), doi
}

func trimTrailingPunct(s string) string {
	return strings.TrimSpace(trailingPunctRe.ReplaceAllString(s, ""))
}
