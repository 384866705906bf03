package validation

import "regexp"

// emailPattern accepts local@domain.tld with alphanumeric local and domain
// parts and an alphabetic TLD. No subdomains, no '+', '-' or '_' characters.
// Anchored at both ends so nothing may precede or follow the match.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9]+@[a-zA-Z0-9]+\.[a-zA-Z]+$`)

// ValidEmail reports whether a candidate string is a well-formed email
// address under the service's deliberately strict format.
func ValidEmail(candidate string) bool {
	return emailPattern.MatchString(candidate)
}
