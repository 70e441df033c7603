// Package guid adds helpers around github.com/google/uuid: nil checks, lenient
// parsing, time-ordered generation and a compact 22 character encoding for URLs.
package guid
