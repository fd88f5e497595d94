package ecotab

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultFilterFields are the record fields FilterRecords searches when
// none are given.
var DefaultFilterFields = []string{"title", "description", "field_list"}

// GrepLines returns the lines of content that match re, in order.
func GrepLines(content string, re *regexp.Regexp) []string {
	var matches []string
	for _, line := range SplitLines(content) {
		if re.MatchString(line) {
			matches = append(matches, line)
		}
	}
	return matches
}

// FilterRecords keeps the records whose selected fields match re. The
// fields of a record are rendered as text and joined with newlines: lists
// are joined with ", ", objects are JSON encoded and missing fields are
// empty.
func FilterRecords(records []map[string]any, re *regexp.Regexp, fields []string) []map[string]any {
	if len(fields) == 0 {
		fields = DefaultFilterFields
	}
	filtered := make([]map[string]any, 0)
	for _, record := range records {
		values := make([]string, 0, len(fields))
		for _, field := range fields {
			values = append(values, fieldText(record[field]))
		}
		if re.MatchString(strings.Join(values, "\n")) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func fieldText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fieldText(item)
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(v, ", ")
	case map[string]any, map[string]string:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}

// ParseFields splits a comma separated field list, dropping blanks.
func ParseFields(s string) []string {
	var fields []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
