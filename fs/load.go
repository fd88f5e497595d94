package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/ecotab"
)

// LoadRecords reads generic records from path. JSON input may be an array
// of objects or an object whose "result" member holds that array, as
// returned by the ESS-DIVE search API. Delimited input uses its first row
// as the header.
func LoadRecords(path string, hint Format) ([]map[string]any, error) {
	format, _, err := DetectFormat(path, hint)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ecotab.Errorf(ecotab.ENOTFOUND, "file not found: %s", path)
	}
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatCSV:
		return ReadDelimited(bytes.NewReader(data), ',')
	case FormatTSV:
		return ReadDelimited(bytes.NewReader(data), '\t')
	default:
		return ReadJSON(bytes.NewReader(data))
	}
}

// ReadJSON decodes records from r. Any other JSON shape yields no records.
func ReadJSON(r io.Reader) ([]map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, ecotab.Errorf(ecotab.EINVALID, "invalid JSON: %v", err)
	}

	if obj, ok := doc.(map[string]any); ok {
		doc = obj["result"]
	}
	items, ok := doc.([]any)
	if !ok {
		return []map[string]any{}, nil
	}
	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			records = append(records, m)
		}
	}
	return records, nil
}

// ReadDelimited reads records from delimited text. Blank lines are
// skipped; missing cells read as "".
func ReadDelimited(r io.Reader, comma rune) ([]map[string]any, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []map[string]any{}, nil
	}
	if err != nil {
		return nil, ecotab.Errorf(ecotab.EINVALID, "read header: %v", err)
	}

	records := []map[string]any{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, ecotab.Errorf(ecotab.EINVALID, "read row: %v", err)
		}
		record := make(map[string]any, len(header))
		for label, value := range ecotab.RowMap(header, row) {
			record[label] = value
		}
		records = append(records, record)
	}
	return records, nil
}
