package sanitizer

import "regexp"

// emailShapeRE checks for a basic local@domain.tld shape: at least one
// non-whitespace/non-@ character, an @, at least one non-whitespace/non-@
// character, a dot, and at least one non-whitespace character.
var emailShapeRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.\S+$`)

// NormalizeEmail trims surrounding whitespace and lowercases an email
// address. It does not validate; invalid input is returned normalized.
func NormalizeEmail(email string) string {
	return TrimToLower(email)
}

// IsEmail reports whether s has a plausible email shape. This is a shape
// check, not RFC validation: it is intentionally permissive and accepts
// some technically invalid addresses rather than rejecting anything a
// human would consider obviously valid.
func IsEmail(s string) bool {
	return emailShapeRE.MatchString(s)
}
