package ecotab

// TraitRecord is one row of the FRED trait inventory.
type TraitRecord struct {
	TraitCategory             string `json:"trait_category"`
	TraitType                 string `json:"trait_type"`
	Trait                     string `json:"trait"`
	ColumnID                  string `json:"column_id"`
	Description               string `json:"description"`
	SingleSpeciesObservations *int   `json:"single_species_observations"`
	MultiSpeciesObservations  *int   `json:"multi_species_observations"`
	TotalObservations         *int   `json:"total_observations"`
}

// SpeciesRecord is one FRED plant species with its observation count.
type SpeciesRecord struct {
	Name         string `json:"name"`
	Observations *int   `json:"observations"`
}

// DataSourceRecord is one FRED data source citation.
type DataSourceRecord struct {
	Year     *int    `json:"year"`
	Citation string  `json:"citation"`
	DOI      *string `json:"doi"`
}

// TryTraitRecord is one row of the TRY trait list.
type TryTraitRecord struct {
	TraitID    *int   `json:"trait_id"`
	Trait      string `json:"trait"`
	ObsNum     *int   `json:"obs_num"`
	ObsGRNum   *int   `json:"obs_gr_num"`
	PubNum     *int   `json:"pub_num"`
	AccSpecNum *int   `json:"acc_spec_num"`
}

// TrySpeciesRecord is one row of the TRY accepted species dump.
type TrySpeciesRecord struct {
	AccSpeciesID   *int   `json:"acc_species_id"`
	AccSpeciesName string `json:"acc_species_name"`
	ObsNum         *int   `json:"obs_num"`
	ObsGRNum       *int   `json:"obs_gr_num"`
	MeasNum        *int   `json:"meas_num"`
	MeasGRNum      *int   `json:"meas_gr_num"`
	TraitNum       *int   `json:"trait_num"`
	PubNum         *int   `json:"pub_num"`
	AccSpecNum     *int   `json:"acc_spec_num"`
}

// DatasetEntry is one TRY dataset fact sheet.
//
// Labels the parser does not recognize are kept in ExtraFields so that no
// information present in a fact sheet is dropped.
type DatasetEntry struct {
	Title                string            `json:"title"`
	TryFileArchiveID     *string           `json:"try_file_archive_id"`
	RightsOfUse          *string           `json:"rights_of_use"`
	PublicationDate      *string           `json:"publication_date"`
	Version              *string           `json:"version"`
	Author               *string           `json:"author"`
	Contributors         *string           `json:"contributors"`
	ReferencePublication *string           `json:"reference_publication"`
	ReferenceDataPackage *string           `json:"reference_data_package"`
	DOI                  *string           `json:"doi"`
	Format               *string           `json:"format"`
	FileName             *string           `json:"file_name"`
	Description          *string           `json:"description"`
	Geolocation          *string           `json:"geolocation"`
	TemporalCoverage     *string           `json:"temporal_coverage"`
	TaxonomicCoverage    *string           `json:"taxonomic_coverage"`
	FieldList            []string          `json:"field_list"`
	ExtraFields          map[string]string `json:"extra_fields"`
}
