package try

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/ecotab"
)

// ParseSpeciesTSV reads the tab-delimited accepted species dump. The first
// line names the columns; columns missing from a row read as empty.
func ParseSpeciesTSV(r io.Reader) ([]ecotab.TrySpeciesRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, ecotab.Errorf(ecotab.EINVALID, "read species header: %v", err)
	}

	var records []ecotab.TrySpeciesRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ecotab.Errorf(ecotab.EINVALID, "read species row: %v", err)
		}
		records = append(records, speciesRecord(ecotab.RowMap(header, row)))
	}
	return records, nil
}

// ParseSpeciesText is ParseSpeciesTSV over an in-memory dump.
func ParseSpeciesText(text string) ([]ecotab.TrySpeciesRecord, error) {
	return ParseSpeciesTSV(strings.NewReader(text))
}

// ParseSpeciesList returns one species name per non-blank line.
func ParseSpeciesList(text string) []string {
	return ecotab.ParseNameLines(ecotab.SplitLines(text))
}

func speciesRecord(m map[string]string) ecotab.TrySpeciesRecord {
	return ecotab.TrySpeciesRecord{
		AccSpeciesID:   ecotab.ParseInt(m["AccSpeciesID"]),
		AccSpeciesName: strings.TrimSpace(m["AccSpeciesName"]),
		ObsNum:         ecotab.ParseInt(m["ObsNum"]),
		ObsGRNum:       ecotab.ParseInt(m["ObsGRNum"]),
		MeasNum:        ecotab.ParseInt(m["MeasNum"]),
		MeasGRNum:      ecotab.ParseInt(m["MeasGRNum"]),
		TraitNum:       ecotab.ParseInt(m["TraitNum"]),
		PubNum:         ecotab.ParseInt(m["PubNum"]),
		AccSpecNum:     ecotab.ParseInt(m["AccSpecNum"]),
	}
}
