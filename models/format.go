package models

import "strconv"

// FormatFloat renders a number the way it is shown in lists and forms: shortest
// representation, no exponent.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func floatText(f *float64) string {
	if f == nil {
		return ""
	}
	return FormatFloat(*f)
}

func stringText(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
