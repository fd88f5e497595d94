package ecotab

import "strings"

// Row is an ordered sequence of cell texts.
type Row []string

// Table is an ordered sequence of rows extracted from one markup table
// element, in document order. The first row is the header.
type Table []Row

// Header returns the first row of the table, or nil for an empty table.
func (t Table) Header() Row {
	if len(t) == 0 {
		return nil
	}
	return t[0]
}

// Body returns the data rows that follow the header.
func (t Table) Body() []Row {
	if len(t) < 2 {
		return nil
	}
	return t[1:]
}

// TableTokenizer extracts tables from markup.
type TableTokenizer interface {
	// Tables returns all top-level tables found in markup, in document order.
	// Malformed markup degrades extraction; it is never reported as an error.
	Tables(markup string) []Table
}

// NormalizeHeader maps header cell text to a canonical comparable form:
// lower-cased, surrounding whitespace trimmed and inner whitespace runs
// collapsed to a single space.
func NormalizeHeader(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// NormalizeRow returns the normalized form of every cell in row.
func NormalizeRow(row Row) Row {
	out := make(Row, len(row))
	for i, cell := range row {
		out[i] = NormalizeHeader(cell)
	}
	return out
}

// SelectTable returns the first table whose normalized header contains
// every token in required. Required tokens must already be normalized.
// The boolean is false when no table qualifies, which is distinct from a
// qualifying table without data rows.
func SelectTable(tables []Table, required []string) (Table, bool) {
	for _, table := range tables {
		if len(table) == 0 {
			continue
		}
		header := make(map[string]struct{}, len(table[0]))
		for _, cell := range table[0] {
			header[NormalizeHeader(cell)] = struct{}{}
		}
		if containsAll(header, required) {
			return table, true
		}
	}
	return nil, false
}

func containsAll(set map[string]struct{}, tokens []string) bool {
	for _, token := range tokens {
		if _, ok := set[token]; !ok {
			return false
		}
	}
	return true
}

// SelectPreferredTable picks a table for pages without a fixed header set.
// Tables with fewer than two rows are skipped. The first table whose header
// satisfies preferred wins regardless of position; otherwise the first
// table with at least two rows is returned. A nil preferred selects the
// first table with at least two rows.
func SelectPreferredTable(tables []Table, preferred func(header Row) bool) (Table, bool) {
	var best Table
	for _, table := range tables {
		if len(table) < 2 {
			continue
		}
		if preferred != nil && preferred(table[0]) {
			return table, true
		}
		if best == nil {
			best = table
		}
	}
	return best, best != nil
}

// HeaderContains returns a predicate reporting whether any header cell,
// lower-cased, contains substr.
func HeaderContains(substr string) func(Row) bool {
	substr = strings.ToLower(substr)
	return func(header Row) bool {
		for _, cell := range header {
			if strings.Contains(strings.ToLower(cell), substr) {
				return true
			}
		}
		return false
	}
}

// RowMap builds a header label to cell value lookup for one data row.
// Columns missing from a short row map to the empty string. Labels are used
// as given; callers normalize the header first when they want normalized
// lookups. When a label repeats, the last column wins.
func RowMap(header, row Row) map[string]string {
	m := make(map[string]string, len(header))
	for i, label := range header {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		m[label] = value
	}
	return m
}

// RowMaps maps every non-empty row to a label lookup keyed by header and
// drops rows whose values are all blank.
func RowMaps(header Row, rows []Row) []map[string]string {
	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		record := RowMap(header, row)
		if isBlank(record) {
			continue
		}
		records = append(records, record)
	}
	return records
}

func isBlank(record map[string]string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
