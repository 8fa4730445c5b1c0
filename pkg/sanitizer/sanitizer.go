// Package sanitizer makes untrusted form input safe to hold in memory,
// embed in an email body, and display.
package sanitizer

import (
	"html"
	"strings"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimToLower removes leading and trailing whitespace and converts to lowercase.
func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MaxLength truncates a string to the specified maximum length in runes.
// Truncation is silent; oversized input is not an error condition.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}

// EscapeHTML escapes the five HTML-significant characters (&, <, >, ", ')
// with their entity equivalents. Every field interpolated into an HTML mail
// body must pass through this.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}
