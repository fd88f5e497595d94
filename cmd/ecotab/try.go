package main

import (
	"github.com/fwojciec/ecotab"
	"github.com/fwojciec/ecotab/try"
)

// Run executes the try traits command.
func (c *TryTraitsCmd) Run(deps *Dependencies) error {
	page, err := loadPage(deps, c.PageOptions, ecotab.CatalogTRY, ecotab.PageTraits)
	if err != nil {
		return fail(deps, err)
	}
	records := deps.TRY.Traits(page)
	if err := writeRecords(deps, c.OutputOptions, records, len(records)); err != nil {
		return fail(deps, err)
	}
	return nil
}

// Run executes the try species command.
func (c *TrySpeciesCmd) Run(deps *Dependencies) error {
	text, err := loadPage(deps, c.PageOptions, ecotab.CatalogTRY, ecotab.PageSpecies)
	if err != nil {
		return fail(deps, err)
	}
	records, err := try.ParseSpeciesText(text)
	if err != nil {
		return fail(deps, err)
	}
	if err := writeRecords(deps, c.OutputOptions, records, len(records)); err != nil {
		return fail(deps, err)
	}
	return nil
}

// Run executes the try species-list command. The list is read from the same
// download as the species table, one name per line.
func (c *TrySpeciesListCmd) Run(deps *Dependencies) error {
	text, err := loadPage(deps, c.PageOptions, ecotab.CatalogTRY, ecotab.PageSpecies)
	if err != nil {
		return fail(deps, err)
	}
	names := try.ParseSpeciesList(text)
	records := make([]map[string]string, len(names))
	for i, name := range names {
		records[i] = map[string]string{"species": name}
	}
	if err := writeRecords(deps, c.OutputOptions, records, len(records)); err != nil {
		return fail(deps, err)
	}
	return nil
}

// Run executes the try datasets command.
func (c *TryDatasetsCmd) Run(deps *Dependencies) error {
	page, err := loadPage(deps, c.PageOptions, ecotab.CatalogTRY, ecotab.PageDatasets)
	if err != nil {
		return fail(deps, err)
	}
	_, records := deps.TRY.Datasets(page)
	if err := writeRecords(deps, c.OutputOptions, records, len(records)); err != nil {
		return fail(deps, err)
	}
	return nil
}

// Run executes the try entries command.
func (c *TryEntriesCmd) Run(deps *Dependencies) error {
	page, err := loadPage(deps, c.PageOptions, ecotab.CatalogTRY, ecotab.PageDatasets)
	if err != nil {
		return fail(deps, err)
	}
	entries := deps.TRY.DatasetEntries(page)
	if err := writeRecords(deps, c.OutputOptions, entries, len(entries)); err != nil {
		return fail(deps, err)
	}
	return nil
}
