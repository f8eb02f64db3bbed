package textutil

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Sanitization policy names accepted in configuration.
const (
	PolicyReserved = "reserved"
	PolicyLegacy   = "legacy"
)

// Sanitizer maps a raw tag value to a filesystem-safe path component.
type Sanitizer func(string) string

// ForPolicy returns the sanitizer for a configured policy name.
func ForPolicy(policy string) (Sanitizer, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", PolicyReserved:
		return SanitizeReserved, nil
	case PolicyLegacy:
		return SanitizeLegacy, nil
	default:
		return nil, fmt.Errorf("sanitize policy: unsupported value %q", policy)
	}
}

// reservedReplacer replaces the characters reserved on Windows and Unix
// filesystems with underscores.
var reservedReplacer = strings.NewReplacer(
	"<", "_",
	">", "_",
	":", "_",
	"\"", "_",
	"/", "_",
	"\\", "_",
	"|", "_",
	"?", "_",
	"*", "_",
)

// SanitizeReserved replaces every filesystem-reserved character with an
// underscore. Tag text is NFC-normalized first so visually identical values
// produce the same directory name.
func SanitizeReserved(raw string) string {
	return reservedReplacer.Replace(norm.NFC.String(raw))
}

// SanitizeLegacy reproduces the aggressive historical policy: lowercase,
// spaces and slashes become underscores, and every remaining rune that is not
// a letter, digit, or one of ".-_()[]" becomes a period.
func SanitizeLegacy(raw string) string {
	value := strings.ToLower(norm.NFC.String(raw))
	value = strings.ReplaceAll(value, " ", "_")
	value = strings.ReplaceAll(value, "/", "_")

	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_' || r == '(' || r == ')' || r == '[' || r == ']':
			b.WriteRune(r)
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// SanitizeToken converts a string to a lowercase filesystem-safe token.
// Letters are lowercased, digits and hyphens/underscores are kept, everything
// else becomes an underscore. Returns "unknown" for empty input.
func SanitizeToken(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "_-")
	if out == "" {
		return "unknown"
	}
	return out
}
