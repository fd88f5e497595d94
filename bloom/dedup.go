package bloom

import (
	"strings"

	"github.com/fwojciec/ecotab"
)

// DedupFalsePositiveRate is the false positive rate used when
// de-duplicating records. A false positive drops a unique record, so it is
// kept far below the default of a URL frontier.
const DedupFalsePositiveRate = 1e-6

// DataSourceKey returns the identity of a data source: its DOI without the
// resolver prefix, lower-cased, or else its normalized citation text.
func DataSourceKey(r ecotab.DataSourceRecord) string {
	if r.DOI != nil && strings.TrimSpace(*r.DOI) != "" {
		doi := strings.ToLower(strings.TrimSpace(*r.DOI))
		for _, prefix := range []string{"https://doi.org/", "http://doi.org/"} {
			doi = strings.TrimPrefix(doi, prefix)
		}
		return "doi:" + doi
	}
	if citation := ecotab.NormalizeHeader(r.Citation); citation != "" {
		return "citation:" + citation
	}
	return ""
}

// DedupDataSources drops records whose key was already seen, keeping the
// first occurrence and the input order. Records without a key are kept.
//
// The dedup is probabilistic: a Bloom filter false positive drops a unique
// record. At DedupFalsePositiveRate that is about one record per million
// distinct keys.
func DedupDataSources(records []ecotab.DataSourceRecord) []ecotab.DataSourceRecord {
	seen := NewFilter(uint(len(records)), DedupFalsePositiveRate)
	out := make([]ecotab.DataSourceRecord, 0, len(records))
	for _, r := range records {
		key := DataSourceKey(r)
		if key != "" && seen.TestAndAdd(key) {
			continue
		}
		out = append(out, r)
	}
	return out
}
