// Package fs exports records to and loads records from local files.
package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/fwojciec/ecotab"
)

// Format is a record file format.
type Format string

// Supported formats. FormatAuto picks one from the file extension.
const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
)

// DetectFormat resolves hint against path. Any hint other than auto (or
// empty) is used as is. Otherwise the extension decides; ok is false when
// the extension is not recognized and JSON was chosen by default.
func DetectFormat(path string, hint Format) (format Format, ok bool, err error) {
	switch Format(strings.ToLower(string(hint))) {
	case "", FormatAuto:
	case FormatJSON:
		return FormatJSON, true, nil
	case FormatCSV:
		return FormatCSV, true, nil
	case FormatTSV:
		return FormatTSV, true, nil
	default:
		return "", false, ecotab.Errorf(ecotab.EINVALID, "unsupported format %q", hint)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true, nil
	case ".csv":
		return FormatCSV, true, nil
	case ".tsv":
		return FormatTSV, true, nil
	default:
		return FormatJSON, false, nil
	}
}

// Exporter writes record sets to files.
type Exporter struct {
	Logger *slog.Logger
}

// NewExporter creates a new Exporter.
func NewExporter(logger *slog.Logger) *Exporter {
	return &Exporter{Logger: logger}
}

// Export writes records (a slice of records or maps) to path in format.
// The file is replaced atomically: content goes to a temporary file in the
// same directory which is renamed over path once complete.
func (e *Exporter) Export(records any, path string, hint Format) error {
	format, ok, err := DetectFormat(path, hint)
	if err != nil {
		return err
	}
	if !ok && e.Logger != nil {
		e.Logger.Warn("unknown file extension, defaulting to JSON", "path", path, "ext", filepath.Ext(path))
	}

	var buf bytes.Buffer
	if err := Write(&buf, records, format); err != nil {
		return err
	}
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return err
	}

	if e.Logger != nil {
		e.Logger.Info("exported records", "path", path, "format", format, "count", recordCount(records))
	}
	return nil
}

// Write encodes records to w in format.
func Write(w io.Writer, records any, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, records)
	case FormatCSV:
		return WriteDelimited(w, records, ',')
	case FormatTSV:
		return WriteDelimited(w, records, '\t')
	default:
		return ecotab.Errorf(ecotab.EINVALID, "unsupported format %q", format)
	}
}

// WriteJSON writes v as JSON indented by two spaces. A nil slice is
// written as an empty array.
func WriteJSON(w io.Writer, v any) error {
	if rv := reflect.ValueOf(v); v == nil || (rv.Kind() == reflect.Slice && rv.IsNil()) {
		v = []any{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// WriteDelimited writes records as delimited text with a header row. Each
// record is flattened (see Flatten); the columns are the sorted union of
// all flattened keys and missing cells are empty. No records produce no
// output at all.
func WriteDelimited(w io.Writer, records any, comma rune) error {
	maps, err := ToMaps(records)
	if err != nil {
		return err
	}
	if len(maps) == 0 {
		return nil
	}

	flat := make([]map[string]string, len(maps))
	columns := map[string]struct{}{}
	for i, m := range maps {
		flat[i] = Flatten(m)
		for k := range flat[i] {
			columns[k] = struct{}{}
		}
	}
	header := make([]string, 0, len(columns))
	for k := range columns {
		header = append(header, k)
	}
	sort.Strings(header)

	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, len(header))
	for _, m := range flat {
		for i, k := range header {
			row[i] = m[k]
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToMaps converts records to generic maps through their JSON encoding, so
// keys follow the records' JSON field names. Numbers are kept as
// json.Number to preserve integer formatting.
func ToMaps(records any) ([]map[string]any, error) {
	if maps, ok := records.([]map[string]any); ok {
		return maps, nil
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var maps []map[string]any
	if err := dec.Decode(&maps); err != nil {
		return nil, ecotab.Errorf(ecotab.EINVALID, "records must be a list of objects: %v", err)
	}
	return maps, nil
}

// Flatten turns a nested record into a single level of text cells. Nested
// objects are flattened with "_" joined keys. Lists of scalars are joined
// with "|". A list of objects becomes a <key>_count column, plus a
// <key>_ids column when every object has an "id". Null becomes "".
func Flatten(record map[string]any) map[string]string {
	out := map[string]string{}
	flattenInto(out, "", record)
	return out
}

func flattenInto(out map[string]string, prefix string, record map[string]any) {
	for k, v := range record {
		key := k
		if prefix != "" {
			key = prefix + "_" + k
		}
		switch v := v.(type) {
		case map[string]any:
			flattenInto(out, key, v)
		case []any:
			flattenList(out, key, v)
		default:
			out[key] = scalarText(v)
		}
	}
}

func flattenList(out map[string]string, key string, items []any) {
	if len(items) > 0 {
		if _, ok := items[0].(map[string]any); ok {
			out[key+"_count"] = fmt.Sprint(len(items))
			ids := make([]string, 0, len(items))
			for _, item := range items {
				obj, ok := item.(map[string]any)
				if !ok {
					return
				}
				id, ok := obj["id"]
				if !ok {
					return
				}
				ids = append(ids, scalarText(id))
			}
			out[key+"_ids"] = strings.Join(ids, "|")
			return
		}
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = scalarText(item)
	}
	out[key] = strings.Join(parts, "|")
}

func scalarText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case map[string]any, []any:
		data, _ := json.Marshal(v)
		return string(data)
	default:
		return fmt.Sprint(v)
	}
}

func recordCount(records any) int {
	rv := reflect.ValueOf(records)
	if rv.Kind() == reflect.Slice {
		return rv.Len()
	}
	return 0
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
