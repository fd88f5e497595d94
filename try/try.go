// Package try maps TRY plant trait database pages and text dumps to records.
package try

import (
	"strings"

	"github.com/fwojciec/ecotab"
)

// Parser maps TRY HTML pages to records.
type Parser struct {
	Tables ecotab.TableTokenizer
}

// NewParser returns a Parser using the given tokenizer.
func NewParser(tables ecotab.TableTokenizer) *Parser {
	return &Parser{Tables: tables}
}

// Traits maps the trait list table. Columns are looked up by their exact
// header text (TraitID, Trait, ObsNum, ObsGRNum, PubNum, AccSpecNum); rows
// with fewer than two cells are skipped.
func (p *Parser) Traits(page string) []ecotab.TryTraitRecord {
	table, ok := ecotab.SelectPreferredTable(p.Tables.Tables(page), nil)
	if !ok {
		return nil
	}

	header := trimRow(table.Header())
	records := make([]ecotab.TryTraitRecord, 0, len(table)-1)
	for _, row := range table.Body() {
		if len(row) < 2 {
			continue
		}
		m := ecotab.RowMap(header, row)
		records = append(records, ecotab.TryTraitRecord{
			TraitID:    ecotab.ParseInt(m["TraitID"]),
			Trait:      strings.TrimSpace(m["Trait"]),
			ObsNum:     ecotab.ParseInt(m["ObsNum"]),
			ObsGRNum:   ecotab.ParseInt(m["ObsGRNum"]),
			PubNum:     ecotab.ParseInt(m["PubNum"]),
			AccSpecNum: ecotab.ParseInt(m["AccSpecNum"]),
		})
	}
	return records
}

// Datasets maps the dataset list table to label lookups keyed by the raw
// header text. A table with a header cell mentioning "dataset" is preferred
// over earlier tables. Rows whose values are all blank are dropped. The
// header is returned so callers can keep the column order.
func (p *Parser) Datasets(page string) (ecotab.Row, []map[string]string) {
	table, ok := ecotab.SelectPreferredTable(p.Tables.Tables(page), ecotab.HeaderContains("dataset"))
	if !ok {
		return nil, nil
	}
	header := trimRow(table.Header())
	return header, ecotab.RowMaps(header, table.Body())
}

func trimRow(row ecotab.Row) ecotab.Row {
	out := make(ecotab.Row, len(row))
	for i, cell := range row {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}
