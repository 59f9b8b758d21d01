// Package namekey is the shared normalization for sponsor and hero names.
// Both the import reconciler and the banner registry key records by the
// normalized form, so the rules live in one place.
package namekey

import "strings"

// Normalize converts a free-text name into its comparison key:
// whitespace is trimmed and collapsed, trailing punctuation is dropped,
// and the result is upper-cased. The CMS export writes literal "nan" for
// blank cells; those normalize to the empty key. An empty key never
// matches another record.
func Normalize(name string) string {
	fields := strings.Fields(name)
	key := strings.ToUpper(strings.Join(fields, " "))
	key = strings.TrimRight(key, ".,")
	key = strings.TrimSpace(key)
	if key == "NAN" {
		return ""
	}
	return key
}

// StripParenthetical cuts a payer name at the first opening parenthesis.
// Payment exports carry annotations like "Bob Lee (for wife's banner)".
func StripParenthetical(name string) string {
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}
