package ecotab

import (
	"regexp"
	"strconv"
)

var displayRangeRe = regexp.MustCompile(`Displaying\s+(\d+)\s*-\s*(\d+)\s+of\s+(\d+)`)

// DisplayRange is the position reported by a pagination banner such as
// "Displaying 1 - 50 of 1200".
type DisplayRange struct {
	First int `json:"first"`
	Last  int `json:"last"`
	Total int `json:"total"`
}

// Complete reports whether the page shows the final item.
func (r DisplayRange) Complete() bool {
	return r.Last >= r.Total
}

// ParseDisplayRange finds the first pagination banner in text.
func ParseDisplayRange(text string) (DisplayRange, bool) {
	m := displayRangeRe.FindStringSubmatch(text)
	if m == nil {
		return DisplayRange{}, false
	}
	first, err1 := strconv.Atoi(m[1])
	last, err2 := strconv.Atoi(m[2])
	total, err3 := strconv.Atoi(m[3])
	if err1 != nil || err2 != nil || err3 != nil {
		return DisplayRange{}, false
	}
	return DisplayRange{First: first, Last: last, Total: total}, true
}

// pageVariantQueries are the query strings tried to coax a paginated listing
// into a single page.
var pageVariantQueries = []string{
	"page=all",
	"show=all",
	"display=all",
	"limit=2000",
	"per_page=2000",
	"items=2000",
	"pageSize=2000",
	"size=2000",
	"offset=0&limit=2000",
	"start=0&length=2000",
}

// PageVariants returns baseURL followed by its single-page query variants,
// in the order they should be tried.
func PageVariants(baseURL string) []string {
	urls := make([]string, 0, len(pageVariantQueries)+1)
	urls = append(urls, baseURL)
	for _, q := range pageVariantQueries {
		urls = append(urls, baseURL+"?"+q)
	}
	return urls
}
