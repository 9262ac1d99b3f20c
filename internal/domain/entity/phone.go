package entity

import "regexp"

// uzPhonePattern accepts a 9-digit Uzbek mobile subscriber number starting with 9,
// optionally prefixed with +998, 998 or 0.
var uzPhonePattern = regexp.MustCompile(`^(\+998|998|0)?9\d{8}$`)

// IsValidPhone reports whether s is a phone number the marketplace accepts.
func IsValidPhone(s string) bool {
	return uzPhonePattern.MatchString(s)
}
