package validation

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Violations maps a form field to a violation code.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Error lists the violations as field=code pairs in field order.
func (v Violations) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+"="+v[f])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// OptionalFloat parses a finite float, returning def when the value is blank.
func OptionalFloat(field, value string, def float64, v Violations) float64 {
	s := strings.TrimSpace(value)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		v[field] = "not_a_number"
		return def
	}
	return f
}

// OptionalInt parses a base-10 integer, returning def when the value is blank.
func OptionalInt(field, value string, def int, v Violations) int {
	s := strings.TrimSpace(value)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		v[field] = "not_an_integer"
		return def
	}
	return n
}

// OptionalID parses an unsigned identifier; blank yields nil.
func OptionalID(field, value string, v Violations) *uint {
	s := strings.TrimSpace(value)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		v[field] = "invalid_id"
		return nil
	}
	id := uint(n)
	return &id
}

// OptionalString trims value and returns nil when it is blank.
func OptionalString(value string) *string {
	s := strings.TrimSpace(value)
	if s == "" {
		return nil
	}
	return &s
}
