// Package validation provides the pure format and strength predicates
// applied to sign-up input. Each predicate is a total function over its
// candidate string with no side effects, so the service layer can apply
// them directly without depending on transport-level validation.
package validation

// ValidPassword reports whether a candidate password satisfies the
// account password policy:
//
//   - length between 8 and 12 characters inclusive
//   - exactly one ASCII uppercase letter (not "at least one")
//   - exactly two ASCII decimal digits
//
// An empty candidate always fails the length rule.
func ValidPassword(candidate string) bool {
	if len(candidate) < 8 || len(candidate) > 12 {
		return false
	}
	var upper, digits int
	for _, r := range candidate {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= '0' && r <= '9':
			digits++
		}
	}
	return upper == 1 && digits == 2
}
