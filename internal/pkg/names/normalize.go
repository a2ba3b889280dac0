// Package names contains optional preprocessing for person names.
package names

import "golang.org/x/text/unicode/norm"

// Normalize returns s in Unicode NFC form, so that decomposed input such as
// "e" + U+0301 renders the same as the precomposed "é".
func Normalize(s string) string {
	return norm.NFC.String(s)
}
