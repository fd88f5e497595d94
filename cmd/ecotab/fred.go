package main

import (
	"github.com/fwojciec/ecotab"
	"github.com/fwojciec/ecotab/bloom"
)

// Run executes the fred traits command.
func (c *FredTraitsCmd) Run(deps *Dependencies) error {
	page, err := loadPage(deps, c.PageOptions, ecotab.CatalogFRED, ecotab.PageTraits)
	if err != nil {
		return fail(deps, err)
	}
	records := deps.FRED.Traits(page)
	if err := writeRecords(deps, c.OutputOptions, records, len(records)); err != nil {
		return fail(deps, err)
	}
	return nil
}

// Run executes the fred species command.
func (c *FredSpeciesCmd) Run(deps *Dependencies) error {
	page, err := loadPage(deps, c.PageOptions, ecotab.CatalogFRED, ecotab.PageSpecies)
	if err != nil {
		return fail(deps, err)
	}
	records := deps.FRED.Species(page)
	if err := writeRecords(deps, c.OutputOptions, records, len(records)); err != nil {
		return fail(deps, err)
	}
	return nil
}

// Run executes the fred sources command. A fetched page is taken from the
// best URL variant; with --merge every variant is parsed and duplicate
// citations are dropped.
func (c *FredSourcesCmd) Run(deps *Dependencies) error {
	records, err := c.records(deps)
	if err != nil {
		return fail(deps, err)
	}
	if err := writeRecords(deps, c.OutputOptions, records, len(records)); err != nil {
		return fail(deps, err)
	}
	return nil
}

func (c *FredSourcesCmd) records(deps *Dependencies) ([]ecotab.DataSourceRecord, error) {
	if c.Input != "" || c.Snapshot != "" {
		page, err := loadPage(deps, c.PageOptions, ecotab.CatalogFRED, ecotab.PageSources)
		if err != nil {
			return nil, err
		}
		return deps.FRED.DataSources(page), nil
	}

	src, err := ecotab.FindSource(ecotab.CatalogFRED, ecotab.PageSources)
	if err != nil {
		return nil, err
	}
	urls := ecotab.PageVariants(src.URL)

	if !c.Merge {
		page, err := deps.Variants.FetchBest(deps.Ctx, urls)
		if err != nil {
			return nil, err
		}
		if c.Save {
			src.URL = page.URL
			if err := saveSnapshot(deps, src, page.Content); err != nil {
				return nil, err
			}
		}
		return deps.FRED.DataSources(page.Content), nil
	}

	pages, err := deps.Variants.FetchAll(deps.Ctx, urls)
	if err != nil {
		return nil, err
	}
	var records []ecotab.DataSourceRecord
	for _, p := range pages {
		records = append(records, deps.FRED.DataSources(p.Content)...)
	}
	if c.Save {
		src.URL = pages[0].URL
		if err := saveSnapshot(deps, src, pages[0].Content); err != nil {
			return nil, err
		}
	}
	return bloom.DedupDataSources(records), nil
}
