package htmltomarkdown_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/ecotab"
	"github.com/fwojciec/ecotab/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("renders a catalog table with one row per line", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Scientific name</th><th>Observations</th></tr></thead>
<tbody><tr><td>Abies alba</td><td>12</td></tr><tr><td>Picea abies</td><td>4</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "---")
		lines := ecotab.GrepLines(md, regexp.MustCompile(`Abies alba`))
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], "|")
		assert.Contains(t, lines[0], "12")
	})

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Data sources</h1><h3>2018</h3><p>Smith J. Roots.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Data sources")
		assert.Contains(t, md, "### 2018")
		assert.Contains(t, md, "Smith J. Roots.")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="https://doi.org/10.1/a">the paper</a>.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[the paper](https://doi.org/10.1/a)")
	})

	t.Run("resolves relative links against the domain", func(t *testing.T) {
		t.Parallel()

		html := `<p><a href="/data-sources">Sources</a></p>`

		md, err := htmltomarkdown.NewConverter(htmltomarkdown.WithDomain("https://roots.ornl.gov")).Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "(https://roots.ornl.gov/data-sources)")
	})

	t.Run("converts bold and italic", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong>Abies</strong> <em>alba</em></p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**Abies**")
		assert.Contains(t, md, "*alba*")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  ")

		require.Error(t, err)
		assert.Equal(t, ecotab.EINVALID, ecotab.ErrorCode(err))
	})
}
