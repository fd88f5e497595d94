package ecotab_test

import (
	"testing"

	"github.com/fwojciec/ecotab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts complete snapshot", func(t *testing.T) {
		t.Parallel()

		snap := &ecotab.Snapshot{Catalog: ecotab.CatalogFRED, Page: ecotab.PageTraits, SourceURL: "https://roots.ornl.gov/data-inventory"}

		assert.NoError(t, snap.Validate())
	})

	t.Run("requires catalog, page and URL", func(t *testing.T) {
		t.Parallel()

		for _, snap := range []*ecotab.Snapshot{
			{Page: "traits", SourceURL: "u"},
			{Catalog: ecotab.CatalogTRY, SourceURL: "u"},
			{Catalog: ecotab.CatalogTRY, Page: "traits"},
		} {
			err := snap.Validate()
			require.Error(t, err)
			assert.Equal(t, ecotab.EINVALID, ecotab.ErrorCode(err))
		}
	})
}

func TestFindSource(t *testing.T) {
	t.Parallel()

	t.Run("finds known page", func(t *testing.T) {
		t.Parallel()

		src, err := ecotab.FindSource(ecotab.CatalogTRY, ecotab.PageTraits)

		require.NoError(t, err)
		assert.Equal(t, "https://www.try-db.org/TryWeb/Prop023.php", src.URL)
	})

	t.Run("returns ENOTFOUND for unknown page", func(t *testing.T) {
		t.Parallel()

		_, err := ecotab.FindSource(ecotab.CatalogFRED, ecotab.PageDatasets)

		assert.Equal(t, ecotab.ENOTFOUND, ecotab.ErrorCode(err))
	})
}
