// Package fred maps Fine-Root Ecology Database (FRED) pages to records.
//
// Pages are matched against a required header set; when no table matches,
// species and data source pages fall back to line-oriented parsing of the
// page text.
package fred

import (
	"strings"

	"github.com/fwojciec/ecotab"
)

// Header sets identifying FRED tables. Tokens are in normalized form.
var (
	traitHeaders       = []string{"trait category", "trait type", "traits", "column id", "total observations"}
	speciesHeaders     = []string{"scientific name", "observations"}
	speciesNameHeaders = []string{"name", "observations"}
	sourceHeaders      = []string{"year", "citation"}
)

// Parser maps FRED pages to records.
type Parser struct {
	Tables ecotab.TableTokenizer
	Text   ecotab.TextExtractor
}

// NewParser returns a Parser using the given tokenizer and text extractor.
func NewParser(tables ecotab.TableTokenizer, text ecotab.TextExtractor) *Parser {
	return &Parser{Tables: tables, Text: text}
}

// Traits maps the trait inventory table. Pages without the table, or with a
// header-only table, yield no records.
func (p *Parser) Traits(page string) []ecotab.TraitRecord {
	table, ok := ecotab.SelectTable(p.Tables.Tables(page), traitHeaders)
	if !ok || len(table) < 2 {
		return nil
	}

	header := ecotab.NormalizeRow(table.Header())
	records := make([]ecotab.TraitRecord, 0, len(table)-1)
	for _, row := range table.Body() {
		if len(row) == 0 {
			continue
		}
		m := ecotab.RowMap(header, row)
		records = append(records, ecotab.TraitRecord{
			TraitCategory:             m["trait category"],
			TraitType:                 m["trait type"],
			Trait:                     m["traits"],
			ColumnID:                  m["column id"],
			Description:               m["description"],
			SingleSpeciesObservations: ecotab.ParseInt(m["single-species observations"]),
			MultiSpeciesObservations:  ecotab.ParseInt(m["multi-species observations"]),
			TotalObservations:         ecotab.ParseInt(m["total observations"]),
		})
	}
	return records
}

// Species maps the plant species table, falling back to "<name> <count>"
// lines when the page has no species table with data rows.
func (p *Parser) Species(page string) []ecotab.SpeciesRecord {
	tables := p.Tables.Tables(page)
	table, ok := ecotab.SelectTable(tables, speciesHeaders)
	if !ok {
		table, ok = ecotab.SelectTable(tables, speciesNameHeaders)
	}
	if !ok || len(table) < 2 {
		return ecotab.ParseNameCountLines(p.Text.Lines(page))
	}

	header := ecotab.NormalizeRow(table.Header())
	records := make([]ecotab.SpeciesRecord, 0, len(table)-1)
	for _, row := range table.Body() {
		if len(row) == 0 {
			continue
		}
		m := ecotab.RowMap(header, row)
		name := firstNonEmpty(m["scientific name"], m["name"], row[0])
		records = append(records, ecotab.SpeciesRecord{
			Name:         name,
			Observations: ecotab.ParseInt(m["observations"]),
		})
	}
	return records
}

// DataSources maps the data source table, splitting DOIs out of citations.
// A "DOI" column, when present, is used only for rows whose citation does
// not embed a DOI URL. Without a table the page text is parsed as
// year-grouped citation lines.
func (p *Parser) DataSources(page string) []ecotab.DataSourceRecord {
	table, ok := ecotab.SelectTable(p.Tables.Tables(page), sourceHeaders)
	if !ok || len(table) < 2 {
		return ecotab.ParseCitationLines(p.Text.Lines(page))
	}

	header := ecotab.NormalizeRow(table.Header())
	records := make([]ecotab.DataSourceRecord, 0, len(table)-1)
	for _, row := range table.Body() {
		if len(row) == 0 {
			continue
		}
		m := ecotab.RowMap(header, row)
		citation, doi := splitRowCitation(m["citation"], m["doi"])
		records = append(records, ecotab.DataSourceRecord{
			Year:     ecotab.ParseInt(m["year"]),
			Citation: citation,
			DOI:      ecotab.StringPtr(doi),
		})
	}
	return records
}

func splitRowCitation(citation, doiColumn string) (string, string) {
	if doi := ecotab.FindDOI(citation); doi != "" {
		return ecotab.SplitCitation(citation, doi)
	}
	return ecotab.SplitCitation(citation, strings.TrimSpace(doiColumn))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
