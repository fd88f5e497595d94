package main

import (
	"fmt"

	"github.com/fwojciec/ecotab"
)

// Run executes the snapshots list command.
func (c *SnapshotsListCmd) Run(deps *Dependencies) error {
	filter := ecotab.SnapshotFilter{Limit: c.Limit}
	if c.Catalog != "" {
		catalog := ecotab.Catalog(c.Catalog)
		filter.Catalog = &catalog
	}
	if c.Page != "" {
		filter.Page = &c.Page
	}

	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, filter)
	if err != nil {
		return fail(deps, err)
	}

	if len(snaps) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use --save when fetching a page to store one.")
		return nil
	}

	for _, s := range snaps {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %d bytes\n",
			s.ID, s.FetchedAt.Format("2006-01-02 15:04:05"), s.Catalog, s.Page, len(s.Content))
	}
	return nil
}

// Run executes the snapshots delete command.
func (c *SnapshotsDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return ecotab.Errorf(ecotab.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Snapshots.DeleteSnapshot(deps.Ctx, c.ID); err != nil {
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Deleted snapshot %s\n", c.ID)
	return nil
}
