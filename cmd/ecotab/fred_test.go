package main_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/ecotab"
	main "github.com/fwojciec/ecotab/cmd/ecotab"
	"github.com/fwojciec/ecotab/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const traitsPage = `
<table>
  <tr><th>Trait Category</th><th>Trait Type</th><th>Traits</th><th>Column ID</th><th>Total observations</th></tr>
  <tr><td>Chemistry</td><td>Root</td><td>Calcium content</td><td>Ca_root</td><td>60</td></tr>
</table>`

const sourcesPage = `
<p>Displaying 1 - 2 of 2</p>
<table>
  <tr><th>Year</th><th>Citation</th><th>DOI</th></tr>
  <tr><td>2018</td><td>Smith J. Roots. https://doi.org/10.1/A</td><td></td></tr>
  <tr><td>2020</td><td>Lee K. Fungi.</td><td></td></tr>
</table>`

func TestFredTraitsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("fetches the trait inventory and prints JSON", func(t *testing.T) {
		t.Parallel()

		var fetched string
		deps, stdout, stderr := newDeps(&mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				fetched = url
				return traitsPage, nil
			},
		})

		err := (&main.FredTraitsCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "https://roots.ornl.gov/data-inventory", fetched)
		assert.Empty(t, stderr.String())

		var records []map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &records))
		require.Len(t, records, 1)
		assert.Equal(t, "Ca_root", records[0]["column_id"])
		assert.Equal(t, float64(60), records[0]["total_observations"])
		assert.Nil(t, records[0]["single_species_observations"])
	})

	t.Run("stores the fetched page when saving", func(t *testing.T) {
		t.Parallel()

		var saved *ecotab.Snapshot
		deps, _, stderr := newDeps(&mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return traitsPage, nil },
		})
		deps.Snapshots = &mock.SnapshotService{
			CreateSnapshotFn: func(_ context.Context, snap *ecotab.Snapshot) error {
				snap.ID = "snap-1"
				saved = snap
				return nil
			},
		}

		cmd := &main.FredTraitsCmd{PageOptions: main.PageOptions{Save: true}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, ecotab.CatalogFRED, saved.Catalog)
		assert.Equal(t, ecotab.PageTraits, saved.Page)
		assert.Equal(t, traitsPage, saved.Content)
		assert.Contains(t, stderr.String(), "Saved snapshot snap-1")
	})

	t.Run("reports fetch failures", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(&mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", ecotab.Errorf(ecotab.EUNAVAILABLE, "HTTP 503 for https://roots.ornl.gov/data-inventory")
			},
		})

		err := (&main.FredTraitsCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, ecotab.EUNAVAILABLE, ecotab.ErrorCode(err))
		assert.Equal(t, "error: HTTP 503 for https://roots.ornl.gov/data-inventory\n", stderr.String())
		assert.Empty(t, stdout.String())
	})

	t.Run("exports to a file by extension", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(&mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) { return traitsPage, nil },
		})
		out := filepath.Join(t.TempDir(), "traits.csv")

		cmd := &main.FredTraitsCmd{OutputOptions: main.OutputOptions{Output: out, Format: "auto"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Wrote 1 records to "+out)
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "column_id")
		assert.Contains(t, lines[1], "Ca_root")
	})
}

func TestFredSpeciesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("parses a stored snapshot", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(nil)
		deps.Snapshots = &mock.SnapshotService{
			FindSnapshotByIDFn: func(_ context.Context, id string) (*ecotab.Snapshot, error) {
				assert.Equal(t, "snap-1", id)
				return &ecotab.Snapshot{
					ID:      id,
					Catalog: ecotab.CatalogFRED,
					Page:    ecotab.PageSpecies,
					Content: "Aa achalensis 12\n",
				}, nil
			},
		}

		cmd := &main.FredSpeciesCmd{PageOptions: main.PageOptions{Snapshot: "snap-1"}}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.JSONEq(t, `[{"name": "Aa achalensis", "observations": 12}]`, stdout.String())
	})

	t.Run("rejects a snapshot of another page", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(nil)
		deps.Snapshots = &mock.SnapshotService{
			FindSnapshotByIDFn: func(_ context.Context, id string) (*ecotab.Snapshot, error) {
				return &ecotab.Snapshot{ID: id, Catalog: ecotab.CatalogTRY, Page: ecotab.PageSpecies}, nil
			},
		}

		cmd := &main.FredSpeciesCmd{PageOptions: main.PageOptions{Snapshot: "snap-1"}}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, ecotab.EINVALID, ecotab.ErrorCode(err))
		assert.Contains(t, stderr.String(), "snapshot snap-1 holds the try species page")
	})

	t.Run("rejects input together with snapshot", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(nil)

		cmd := &main.FredSpeciesCmd{PageOptions: main.PageOptions{Input: "page.html", Snapshot: "snap-1"}}
		err := cmd.Run(deps)

		assert.Equal(t, ecotab.EINVALID, ecotab.ErrorCode(err))
	})
}

func TestFredSourcesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("stops at the first complete variant", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var fetched []string
		deps, stdout, _ := newDeps(&mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				mu.Lock()
				defer mu.Unlock()
				fetched = append(fetched, url)
				return sourcesPage, nil
			},
		})

		err := (&main.FredSourcesCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://roots.ornl.gov/data-sources"}, fetched)

		var records []ecotab.DataSourceRecord
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &records))
		require.Len(t, records, 2)
		assert.Equal(t, "Smith J. Roots", records[0].Citation)
		assert.Equal(t, "https://doi.org/10.1/A", *records[0].DOI)
	})

	t.Run("merges every variant without duplicates", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(&mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				if strings.Contains(url, "length=") {
					return "", errors.New("connection reset")
				}
				return sourcesPage, nil
			},
		})

		err := (&main.FredSourcesCmd{Merge: true}).Run(deps)

		require.NoError(t, err)
		var records []ecotab.DataSourceRecord
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &records))
		assert.Len(t, records, 2)
	})

	t.Run("fails when every variant fails", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(&mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", errors.New("connection refused")
			},
		})

		err := (&main.FredSourcesCmd{}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, ecotab.EUNAVAILABLE, ecotab.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: all 11 page variants failed")
	})
}
