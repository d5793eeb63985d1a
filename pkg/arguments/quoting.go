package arguments

import (
	"slices"
	"strings"
	"unicode"
)

// NeedsQuoting reports whether value must be wrapped in double quotes to
// survive as a single token. Empty values, values containing whitespace and
// values containing any of the special runes need quoting.
func NeedsQuoting(value string, special ...rune) bool {
	if value == "" {
		return true
	}
	for _, r := range value {
		if unicode.IsSpace(r) || slices.Contains(special, r) {
			return true
		}
	}
	return false
}

// IsDoubleQuoted reports whether value is already wrapped in double quotes.
func IsDoubleQuoted(value string) bool {
	return len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"'
}

// DoubleQuote wraps value in double quotes, escaping embedded quotes with a
// backslash. Backslashes themselves are left alone, so a value ending in a
// backslash yields `"...\"`.
func DoubleQuote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `\"`) + `"`
}

// DoubleQuoteIfNeeded quotes value when NeedsQuoting says so. Values that are
// already double-quoted pass through unchanged.
func DoubleQuoteIfNeeded(value string, special ...rune) string {
	if IsDoubleQuoted(value) || !NeedsQuoting(value, special...) {
		return value
	}
	return DoubleQuote(value)
}
