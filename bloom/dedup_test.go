package bloom_test

import (
	"testing"

	"github.com/fwojciec/ecotab"
	"github.com/fwojciec/ecotab/bloom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataSourceKey(t *testing.T) {
	t.Parallel()

	t.Run("uses the DOI without resolver prefix", func(t *testing.T) {
		t.Parallel()

		doi := "https://doi.org/10.1000/ABC"

		assert.Equal(t, "doi:10.1000/abc", bloom.DataSourceKey(ecotab.DataSourceRecord{Citation: "x", DOI: &doi}))
	})

	t.Run("falls back to normalized citation", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "citation:smith j. roots", bloom.DataSourceKey(ecotab.DataSourceRecord{Citation: " Smith  J. Roots"}))
	})

	t.Run("empty record has no key", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, bloom.DataSourceKey(ecotab.DataSourceRecord{}))
	})
}

func TestDedupDataSources(t *testing.T) {
	t.Parallel()

	bare := "10.1/a"
	resolver := "https://doi.org/10.1/a"
	other := "https://doi.org/10.1/b"

	records := []ecotab.DataSourceRecord{
		{Citation: "Smith J. Roots", DOI: &resolver},
		{Citation: "Lee K. Fungi", DOI: &other},
		{Citation: "Smith J. Roots (duplicate listing)", DOI: &bare},
		{Citation: "Doe A. Soil"},
		{Citation: "doe a.  soil"},
		{},
		{},
	}

	out := bloom.DedupDataSources(records)

	require.Len(t, out, 5)
	assert.Equal(t, "Smith J. Roots", out[0].Citation)
	assert.Equal(t, "Lee K. Fungi", out[1].Citation)
	assert.Equal(t, "Doe A. Soil", out[2].Citation)
	assert.Empty(t, out[3].Citation)
	assert.Empty(t, out[4].Citation)
}

func TestDedupDataSources_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, bloom.DedupDataSources(nil))
}
