package ecotab_test

import (
	"testing"

	"github.com/fwojciec/ecotab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	t.Parallel()

	t.Run("lower-cases and collapses whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "total observations", ecotab.NormalizeHeader("  Total \n\t Observations "))
	})

	t.Run("maps empty string to empty string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", ecotab.NormalizeHeader(""))
		assert.Equal(t, "", ecotab.NormalizeHeader(" \t\n"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{"Trait Category", "  Column ID ", "Single-species   Observations", "x"}
		for _, in := range inputs {
			once := ecotab.NormalizeHeader(in)
			assert.Equal(t, once, ecotab.NormalizeHeader(once), "input %q", in)
		}
	})
}

func TestSelectTable(t *testing.T) {
	t.Parallel()

	sidebar := ecotab.Table{
		{"Links"},
		{"Home"},
	}
	species := ecotab.Table{
		{"Scientific  Name", "Observations"},
		{"Abies alba", "12"},
	}

	t.Run("returns first table whose header is a superset", func(t *testing.T) {
		t.Parallel()

		table, ok := ecotab.SelectTable([]ecotab.Table{sidebar, species}, []string{"scientific name", "observations"})

		require.True(t, ok)
		assert.Equal(t, species, table)
	})

	t.Run("ignores extra header cells", func(t *testing.T) {
		t.Parallel()

		wide := ecotab.Table{{"Year", "Citation", "DOI", "Notes"}}

		table, ok := ecotab.SelectTable([]ecotab.Table{wide}, []string{"year", "citation"})

		require.True(t, ok)
		assert.Equal(t, wide, table)
	})

	t.Run("reports not found even when a table exists", func(t *testing.T) {
		t.Parallel()

		table, ok := ecotab.SelectTable([]ecotab.Table{sidebar}, []string{"year", "citation"})

		assert.False(t, ok)
		assert.Nil(t, table)
	})

	t.Run("first match wins in document order", func(t *testing.T) {
		t.Parallel()

		other := ecotab.Table{{"Name", "Observations"}, {"Picea abies", "4"}}

		table, ok := ecotab.SelectTable([]ecotab.Table{other, species}, []string{"observations"})

		require.True(t, ok)
		assert.Equal(t, other, table)
	})
}

func TestSelectPreferredTable(t *testing.T) {
	t.Parallel()

	headerOnly := ecotab.Table{{"Dataset"}}
	menu := ecotab.Table{{"Menu", "Link"}, {"Home", "/"}}
	datasets := ecotab.Table{{"DatasetID", "Dataset", "Description"}, {"1", "Example", "Example dataset"}}

	t.Run("preferred table wins over earlier tables", func(t *testing.T) {
		t.Parallel()

		table, ok := ecotab.SelectPreferredTable([]ecotab.Table{menu, datasets}, ecotab.HeaderContains("dataset"))

		require.True(t, ok)
		assert.Equal(t, datasets, table)
	})

	t.Run("falls back to first table with two rows", func(t *testing.T) {
		t.Parallel()

		table, ok := ecotab.SelectPreferredTable([]ecotab.Table{headerOnly, menu}, ecotab.HeaderContains("dataset"))

		require.True(t, ok)
		assert.Equal(t, menu, table)
	})

	t.Run("nil preference selects first table with two rows", func(t *testing.T) {
		t.Parallel()

		table, ok := ecotab.SelectPreferredTable([]ecotab.Table{headerOnly, menu, datasets}, nil)

		require.True(t, ok)
		assert.Equal(t, menu, table)
	})

	t.Run("skips single-row tables even when preferred", func(t *testing.T) {
		t.Parallel()

		_, ok := ecotab.SelectPreferredTable([]ecotab.Table{headerOnly}, ecotab.HeaderContains("dataset"))

		assert.False(t, ok)
	})
}

func TestRowMap(t *testing.T) {
	t.Parallel()

	t.Run("short rows map missing columns to empty string", func(t *testing.T) {
		t.Parallel()

		m := ecotab.RowMap(ecotab.Row{"TraitID", "Trait", "ObsNum"}, ecotab.Row{"2957", "Bark calcium"})

		assert.Equal(t, map[string]string{"TraitID": "2957", "Trait": "Bark calcium", "ObsNum": ""}, m)
	})

	t.Run("extra cells beyond the header are ignored", func(t *testing.T) {
		t.Parallel()

		m := ecotab.RowMap(ecotab.Row{"A"}, ecotab.Row{"1", "2"})

		assert.Equal(t, map[string]string{"A": "1"}, m)
	})
}

func TestRowMaps(t *testing.T) {
	t.Parallel()

	header := ecotab.Row{"DatasetID", "Dataset"}
	rows := []ecotab.Row{
		{"1", "Example"},
		{" ", ""},
		{"2"},
	}

	records := ecotab.RowMaps(header, rows)

	require.Len(t, records, 2)
	assert.Equal(t, "Example", records[0]["Dataset"])
	assert.Equal(t, "2", records[1]["DatasetID"])
	assert.Equal(t, "", records[1]["Dataset"])
}

func TestTable_HeaderAndBody(t *testing.T) {
	t.Parallel()

	table := ecotab.Table{{"h"}, {"a"}, {"b"}}

	assert.Equal(t, ecotab.Row{"h"}, table.Header())
	assert.Equal(t, []ecotab.Row{{"a"}, {"b"}}, table.Body())
	assert.Nil(t, ecotab.Table{}.Header())
	assert.Nil(t, ecotab.Table{{"h"}}.Body())
}
