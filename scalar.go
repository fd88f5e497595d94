package ecotab

import (
	"strconv"
	"strings"
)

// ParseInt coerces text to an integer on a best-effort basis. It returns nil
// for blank input and for anything that is not a base-10 integer literal
// after trimming. It never fails.
func ParseInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// ParseIntPtr is like ParseInt but accepts a possibly missing value.
func ParseIntPtr(s *string) *int {
	if s == nil {
		return nil
	}
	return ParseInt(*s)
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
