package try

import (
	"strings"

	"github.com/fwojciec/ecotab"
)

// entryFields dispatches known fact sheet labels to DatasetEntry fields.
// Labels are matched exactly.
var entryFields = map[string]func(e *ecotab.DatasetEntry, value string){
	"Title":                     func(e *ecotab.DatasetEntry, v string) { e.Title = v },
	"TRY File Archive ID":       func(e *ecotab.DatasetEntry, v string) { e.TryFileArchiveID = &v },
	"Rights of use":             func(e *ecotab.DatasetEntry, v string) { e.RightsOfUse = &v },
	"Publication Date":          func(e *ecotab.DatasetEntry, v string) { e.PublicationDate = &v },
	"Version":                   func(e *ecotab.DatasetEntry, v string) { e.Version = &v },
	"Author":                    func(e *ecotab.DatasetEntry, v string) { e.Author = &v },
	"Contributors":              func(e *ecotab.DatasetEntry, v string) { e.Contributors = &v },
	"Reference to publication":  func(e *ecotab.DatasetEntry, v string) { e.ReferencePublication = &v },
	"Reference to data package": func(e *ecotab.DatasetEntry, v string) { e.ReferenceDataPackage = &v },
	"DOI":                       func(e *ecotab.DatasetEntry, v string) { e.DOI = &v },
	"Format":                    func(e *ecotab.DatasetEntry, v string) { e.Format = &v },
	"File name":                 func(e *ecotab.DatasetEntry, v string) { e.FileName = &v },
	"Description":               func(e *ecotab.DatasetEntry, v string) { e.Description = &v },
	"Geolocation":               func(e *ecotab.DatasetEntry, v string) { e.Geolocation = &v },
	"Temporal coverage":         func(e *ecotab.DatasetEntry, v string) { e.TemporalCoverage = &v },
	"Taxonomic coverage":        func(e *ecotab.DatasetEntry, v string) { e.TaxonomicCoverage = &v },
	"Field list":                func(e *ecotab.DatasetEntry, v string) { e.FieldList = splitFieldList(v) },
}

// DatasetEntries returns one entry per fact sheet table, in document order.
// A fact sheet is a table of at least two rows whose first cell contains
// "Title". Each two-cell row is a "label: value" pair; labels outside the
// known set are kept in ExtraFields.
func (p *Parser) DatasetEntries(page string) []ecotab.DatasetEntry {
	var entries []ecotab.DatasetEntry
	for _, table := range p.Tables.Tables(page) {
		if !isFactSheet(table) {
			continue
		}
		entries = append(entries, newEntry(table))
	}
	return entries
}

func isFactSheet(table ecotab.Table) bool {
	if len(table) < 2 || len(table[0]) == 0 {
		return false
	}
	return strings.Contains(strings.TrimSpace(table[0][0]), "Title")
}

func newEntry(table ecotab.Table) ecotab.DatasetEntry {
	entry := ecotab.DatasetEntry{
		FieldList:   []string{},
		ExtraFields: map[string]string{},
	}
	for label, value := range factSheetFields(table) {
		if set, ok := entryFields[label]; ok {
			set(&entry, value)
			continue
		}
		entry.ExtraFields[label] = value
	}
	return entry
}

// factSheetFields collects the label/value pairs of a fact sheet. Trailing
// colons are stripped from labels; a repeated label keeps its last value.
func factSheetFields(table ecotab.Table) map[string]string {
	fields := make(map[string]string, len(table))
	for _, row := range table {
		if len(row) < 2 {
			continue
		}
		label := strings.TrimSpace(row[0])
		if strings.HasSuffix(label, ":") {
			label = strings.TrimSpace(strings.TrimSuffix(label, ":"))
		}
		if label == "" {
			continue
		}
		fields[label] = strings.TrimSpace(row[1])
	}
	return fields
}

func splitFieldList(s string) []string {
	items := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
