// Package inputval holds small, readable validators for visitor input.
package inputval

import "regexp"

// emailRE accepts local@domain.tld: no whitespace, no second '@', and at
// least one dot after the '@'. It is a guardrail, not an RFC validator.
var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValidEmail reports whether s looks like a routable email address.
func IsValidEmail(s string) bool {
	return emailRE.MatchString(s)
}

// Required reports whether every value is non-empty.
func Required(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return false
		}
	}
	return true
}
