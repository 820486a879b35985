package crud

import (
	"math"
	"strconv"
	"strings"
)

// Blank reports whether a form value is empty once surrounding spaces are removed.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// OptionalString maps a blank value to nil.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// OptionalFloat parses s with locale-independent rules. Blank or unparseable
// input becomes nil.
func OptionalFloat(s string) *float64 {
	f, ok := parseFloat(s)
	if !ok {
		return nil
	}
	return &f
}

// RequiredFloat parses a mandatory numeric field.
func RequiredFloat(field, label, s string) (float64, error) {
	f, ok := parseFloat(s)
	if !ok {
		return 0, &ValidationError{Field: field, Message: label + " must be a number"}
	}
	return f, nil
}

// RequiredID parses a mandatory reference to another entity.
func RequiredID(field, label, s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 0)
	if err != nil || id == 0 {
		return 0, &ValidationError{Field: field, Message: "Please select a " + label}
	}
	return uint(id), nil
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
