// Package strs collects small string helpers: accent removal, slugs, case
// conversion, truncation and masking.
//
// Text processing that depends on Unicode rules goes through golang.org/x/text,
// so RemoveAccents and ToTitle behave correctly outside ASCII. All lengths are
// counted in runes.
//
//	strs.Slug("Crème Brûlée & Co.")                     // "creme-brulee-co"
//	strs.Slug("Hello", strs.WithSuffix(6))               // "hello-x7g3k2"
//	strs.Truncate("Hello, World", 8, "...")              // "Hello..."
//	strs.Mask("4111111111111111", 4, '*')                // "************1111"
package strs
