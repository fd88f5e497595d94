package ecotab_test

import (
	"testing"

	"github.com/fwojciec/ecotab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b", "", "c"}, ecotab.SplitLines("a\r\nb\n\rc\n"))
	assert.Empty(t, ecotab.SplitLines(""))
}

func TestParseNameCountLines(t *testing.T) {
	t.Parallel()

	t.Run("parses name and trailing count", func(t *testing.T) {
		t.Parallel()

		records := ecotab.ParseNameCountLines(ecotab.SplitLines("Aa achalensis 12\nAa argyrolepis 4\n"))

		require.Len(t, records, 2)
		assert.Equal(t, "Aa achalensis", records[0].Name)
		assert.Equal(t, 12, *records[0].Observations)
		assert.Equal(t, "Aa argyrolepis", records[1].Name)
		assert.Equal(t, 4, *records[1].Observations)
	})

	t.Run("accepts a non-breaking space before the count", func(t *testing.T) {
		t.Parallel()

		records := ecotab.ParseNameCountLines([]string{"Abies alba\u00a012", "Picea\u2009abies\u00a0\u00a03"})

		require.Len(t, records, 2)
		assert.Equal(t, "Abies alba", records[0].Name)
		assert.Equal(t, 12, *records[0].Observations)
		assert.Equal(t, "Picea\u2009abies", records[1].Name)
		assert.Equal(t, 3, *records[1].Observations)
	})

	t.Run("skips header lines, blanks and lines without a count", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"Name Observations 2",
			"",
			"  ",
			"Plant species",
			"  Picea abies   7  ",
		}

		records := ecotab.ParseNameCountLines(lines)

		require.Len(t, records, 1)
		assert.Equal(t, "Picea abies", records[0].Name)
		assert.Equal(t, 7, *records[0].Observations)
	})
}

func TestParseCitationLines(t *testing.T) {
	t.Parallel()

	t.Run("carries the year across citations", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"Displaying 1 - 2 of 2",
			"2019",
			"Smith J. Roots. https://doi.org/10.1/a.",
			"Some heading",
			"Doe A. Soil. https://example.org/soil",
			"2021",
			"Lee K. Fungi. https://doi.org/10.1/b",
		}

		records := ecotab.ParseCitationLines(lines)

		require.Len(t, records, 3)
		assert.Equal(t, 2019, *records[0].Year)
		assert.Equal(t, "Smith J. Roots", records[0].Citation)
		assert.Equal(t, "https://doi.org/10.1/a", *records[0].DOI)

		assert.Equal(t, 2019, *records[1].Year)
		assert.Equal(t, "Doe A. Soil. https://example.org/soil", records[1].Citation)
		assert.Nil(t, records[1].DOI)

		assert.Equal(t, 2021, *records[2].Year)
	})

	t.Run("year is absent before any year line", func(t *testing.T) {
		t.Parallel()

		records := ecotab.ParseCitationLines([]string{"Smith J. Roots. https://doi.org/10.1/a"})

		require.Len(t, records, 1)
		assert.Nil(t, records[0].Year)
	})

	t.Run("skips pagination banners that contain links", func(t *testing.T) {
		t.Parallel()

		records := ecotab.ParseCitationLines([]string{"displaying 1 - 50 of 900 http://x"})

		assert.Empty(t, records)
	})
}

func TestParseNameLines(t *testing.T) {
	t.Parallel()

	names := ecotab.ParseNameLines(ecotab.SplitLines("\nAa achalensis\n\nAa argyrolepis\n"))

	assert.Equal(t, []string{"Aa achalensis", "Aa argyrolepis"}, names)
}

func TestParseDisplayRange(t *testing.T) {
	t.Parallel()

	t.Run("parses banner", func(t *testing.T) {
		t.Parallel()

		r, ok := ecotab.ParseDisplayRange("<p>Displaying 1 - 50 of 1200</p>")

		require.True(t, ok)
		assert.Equal(t, ecotab.DisplayRange{First: 1, Last: 50, Total: 1200}, r)
		assert.False(t, r.Complete())
	})

	t.Run("complete when last reaches total", func(t *testing.T) {
		t.Parallel()

		r, ok := ecotab.ParseDisplayRange("Displaying 1-1200 of 1200")

		require.True(t, ok)
		assert.True(t, r.Complete())
	})

	t.Run("reports missing banner", func(t *testing.T) {
		t.Parallel()

		_, ok := ecotab.ParseDisplayRange("no banner")

		assert.False(t, ok)
	})
}

func TestPageVariants(t *testing.T) {
	t.Parallel()

	urls := ecotab.PageVariants("https://roots.ornl.gov/data-sources")

	require.Len(t, urls, 11)
	assert.Equal(t, "https://roots.ornl.gov/data-sources", urls[0])
	assert.Equal(t, "https://roots.ornl.gov/data-sources?page=all", urls[1])
	assert.Equal(t, "https://roots.ornl.gov/data-sources?start=0&length=2000", urls[10])
}
