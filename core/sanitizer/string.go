package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace from the string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CollapseWhitespace reduces internal whitespace runs to a single space,
// keeping names like "A.  K.   Sharma" tidy for backend submission.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePhone reduces a phone number to its bare 10-digit form when
// possible. Country prefixes (+91, 91, 0) and separators are stripped;
// anything else is returned digits-only for the validator to reject.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		return digits[2:]
	case len(digits) == 11 && strings.HasPrefix(digits, "0"):
		return digits[1:]
	default:
		return digits
	}
}

// NormalizePAN uppercases and trims a PAN, the form the bureau expects.
func NormalizePAN(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeIFSC uppercases and trims an IFSC code.
func NormalizeIFSC(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizePincode trims a postal PIN code.
func NormalizePincode(s string) string {
	return strings.TrimSpace(s)
}
