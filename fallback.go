package ecotab

import (
	"regexp"
	"strings"
)

// TextExtractor converts markup into plain text lines for the fallback
// line parsers.
type TextExtractor interface {
	// Lines returns the visible text of markup split into trimmed lines.
	// Blank lines are kept.
	Lines(markup string) []string
}

// Separators include Unicode spaces such as NBSP. Counts and years are
// ASCII digits only, matching what ParseInt accepts.
var (
	nameCountRe = regexp.MustCompile(`^(.+?)[\s\p{Z}]+(\d+)$`)
	yearLineRe  = regexp.MustCompile(`^\d{4}$`)
)

// SplitLines splits raw text on any line ending (\n, \r\n or \r).
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// ParseNameCountLines extracts "<name> <count>" pairs, one per line. Lines
// that look like a column header (starting with "name" and mentioning
// "observ") are skipped.
func ParseNameCountLines(lines []string) []SpeciesRecord {
	var records []SpeciesRecord
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "name") && strings.Contains(lower, "observ") {
			continue
		}
		m := nameCountRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		records = append(records, SpeciesRecord{
			Name:         strings.TrimSpace(m[1]),
			Observations: ParseInt(m[2]),
		})
	}
	return records
}

// citationScan is the state threaded through ParseCitationLines.
type citationScan struct {
	year    *int
	records []DataSourceRecord
}

func (s citationScan) step(line string) citationScan {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
	case yearLineRe.MatchString(line):
		s.year = ParseInt(line)
	case strings.HasPrefix(strings.ToLower(line), "displaying"):
	case !strings.Contains(line, "http"):
	default:
		citation, doi := SplitCitation(line, "")
		s.records = append(s.records, DataSourceRecord{
			Year:     s.year,
			Citation: citation,
			DOI:      StringPtr(doi),
		})
	}
	return s
}

// ParseCitationLines extracts citations from year-grouped listings. A line
// holding only a four digit year sets the year for every following citation
// until the next year line. Only lines containing "http" are treated as
// citations; pagination banners ("Displaying ...") are skipped.
func ParseCitationLines(lines []string) []DataSourceRecord {
	var scan citationScan
	for _, line := range lines {
		scan = scan.step(line)
	}
	return scan.records
}

// ParseNameLines returns every non-blank line, trimmed.
func ParseNameLines(lines []string) []string {
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names
}
