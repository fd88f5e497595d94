package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/ecotab"
	"github.com/fwojciec/ecotab/fs"
)

// loadPage returns the content of a catalog page, read from --input, from a
// stored snapshot, or fetched from the catalog.
func loadPage(deps *Dependencies, opts PageOptions, catalog ecotab.Catalog, page string) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	switch {
	case opts.Input != "":
		data, err := os.ReadFile(opts.Input)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", opts.Input, err)
		}
		return string(data), nil
	case opts.Snapshot != "":
		return snapshotContent(deps, opts.Snapshot, catalog, page)
	}

	src, err := ecotab.FindSource(catalog, page)
	if err != nil {
		return "", err
	}
	content, err := deps.Fetcher.Fetch(deps.Ctx, src.URL)
	if err != nil {
		return "", err
	}
	if opts.Save {
		if err := saveSnapshot(deps, src, content); err != nil {
			return "", err
		}
	}
	return content, nil
}

func (o PageOptions) validate() error {
	if o.Input != "" && o.Snapshot != "" {
		return ecotab.Errorf(ecotab.EINVALID, "use either --input or --snapshot, not both")
	}
	if o.Save && (o.Input != "" || o.Snapshot != "") {
		return ecotab.Errorf(ecotab.EINVALID, "--save only applies to fetched pages")
	}
	return nil
}

func snapshotContent(deps *Dependencies, id string, catalog ecotab.Catalog, page string) (string, error) {
	snap, err := deps.Snapshots.FindSnapshotByID(deps.Ctx, id)
	if err != nil {
		return "", err
	}
	if snap.Catalog != catalog || snap.Page != page {
		return "", ecotab.Errorf(ecotab.EINVALID, "snapshot %s holds the %s %s page", id, snap.Catalog, snap.Page)
	}
	return snap.Content, nil
}

func saveSnapshot(deps *Dependencies, src ecotab.Source, content string) error {
	snap := &ecotab.Snapshot{
		Catalog:   src.Catalog,
		Page:      src.Page,
		SourceURL: src.URL,
		Content:   content,
	}
	if err := deps.Snapshots.CreateSnapshot(deps.Ctx, snap); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stderr, "Saved snapshot %s\n", snap.ID)
	return nil
}

// writeRecords prints records to stdout, or exports them to --output.
func writeRecords(deps *Dependencies, opts OutputOptions, records any, count int) error {
	format := fs.Format(opts.Format)
	if opts.Output == "" {
		if format == fs.FormatAuto || format == "" {
			format = fs.FormatJSON
		}
		return fs.Write(deps.Stdout, records, format)
	}

	if err := deps.Exporter.Export(records, opts.Output, format); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Wrote %d records to %s\n", count, opts.Output)
	return nil
}

// fail reports err on stderr the way every command does and returns it.
func fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", ecotab.ErrorMessage(err))
	return err
}
