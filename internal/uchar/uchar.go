// Package uchar converts between Go strings and the UTF-16 code unit
// slices ICU's C API traffics in.
package uchar

import "unicode/utf16"

// Encode converts a UTF-8 string to UTF-16 code units. Malformed bytes
// become U+FFFD, matching what a lenient converter would produce.
func Encode(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// Decode converts UTF-16 code units back to a string.
func Decode(u []uint16) string {
	return string(utf16.Decode(u))
}
