package ecotab

// Catalog identifies a published data catalog.
type Catalog string

// Supported catalogs.
const (
	CatalogFRED Catalog = "fred"
	CatalogTRY  Catalog = "try"
)

// Page names within the catalogs.
const (
	PageTraits   = "traits"
	PageSpecies  = "species"
	PageSources  = "sources"
	PageDatasets = "datasets"
)

// Source locates one catalog page.
type Source struct {
	Catalog Catalog `json:"catalog"`
	Page    string  `json:"page"`
	URL     string  `json:"url"`
}

// Sources lists the known catalog pages.
var Sources = []Source{
	{Catalog: CatalogFRED, Page: PageTraits, URL: "https://roots.ornl.gov/data-inventory"},
	{Catalog: CatalogFRED, Page: PageSpecies, URL: "https://roots.ornl.gov/plant-species"},
	{Catalog: CatalogFRED, Page: PageSources, URL: "https://roots.ornl.gov/data-sources"},
	{Catalog: CatalogTRY, Page: PageDatasets, URL: "https://www.try-db.org/TryWeb/Data.php"},
	{Catalog: CatalogTRY, Page: PageTraits, URL: "https://www.try-db.org/TryWeb/Prop023.php"},
	{Catalog: CatalogTRY, Page: PageSpecies, URL: "https://www.try-db.org/dnld/TryAccSpecies.txt"},
}

// FindSource returns the source for a catalog page.
// Returns ENOTFOUND if the catalog has no such page.
func FindSource(catalog Catalog, page string) (Source, error) {
	for _, s := range Sources {
		if s.Catalog == catalog && s.Page == page {
			return s, nil
		}
	}
	return Source{}, Errorf(ENOTFOUND, "unknown %s page %q", catalog, page)
}
