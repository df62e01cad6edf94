package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier for loose property-name comparison:
// lower case, with '_', '-' and spaces removed.
//
//   - "CustomerID" -> "customerid"
//   - "customer_id" -> "customerid"
//   - "Customer-Id" -> "customerid"
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// SameIdent reports whether a and b normalize to the same identifier.
func SameIdent(a, b string) bool {
	return NormalizeIdent(a) == NormalizeIdent(b)
}

// IsIdent reports whether s looks like a property name: a letter or '_'
// followed by letters, digits or '_'.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
