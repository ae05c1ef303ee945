// Package ucase implements the Unicode default case conversion algorithm
// over UTF-8 text: simple one-to-one mappings, full mappings with
// multi-codepoint expansions and the Final_Sigma context rule, and
// word-boundary-driven titlecasing.
//
// The conversion entry points follow a size-probe contract: they write at
// most len(dst) bytes and always return the true result length, so a
// caller can pass an empty destination to measure, then call again with
// a buffer of at least that size. The string helpers do the two calls
// internally.
package ucase

import "errors"

// ErrInvalidEncoding is returned when the input is not well-formed UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")

// Kind selects a case mapping.
type Kind int

const (
	Lower Kind = iota
	Title
	Upper
	numKinds
)

func (k Kind) String() string {
	switch k {
	case Lower:
		return "lower"
	case Title:
		return "title"
	case Upper:
		return "upper"
	}
	return "unknown"
}

// MaxCaseExpansion is the maximum number of codepoints a single
// codepoint can map to. See Unicode section 5.18, "Case Mapping".
// Expansion only happens through special mappings.
const MaxCaseExpansion = 3

// Options control conversion behavior. The zero value requests full
// mappings and immediate titlecasing at word boundaries.
type Options struct {
	// Simple disables full (multi-codepoint, conditional) mappings and
	// uses only one-to-one simple mappings. Useful when the result must
	// not change length in codepoints.
	Simple bool

	// Boundaries supplies word boundaries for titlecasing. For a given
	// source it must yield a non-decreasing sequence of byte offsets:
	// 0 first, then each boundary, then len(src) as a repeatable
	// sentinel. Each conversion pass draws a fresh sequence, which keeps
	// the size-probing call and the filling call in agreement. When nil,
	// AlnumBoundaries is used.
	Boundaries BoundarySource

	// AdjustToCased makes titlecasing copy characters unchanged after a
	// word boundary until the first Cased character, which then receives
	// the titlecase mapping.
	AdjustToCased bool

	// SimpleTitle maps the character at a word boundary with the
	// uppercase mapping instead of the titlecase mapping.
	SimpleTitle bool
}

// Convert writes the case-converted form of src into dst, writing at
// most len(dst) bytes, and returns the length of the complete result.
// opts may be nil for defaults.
func Convert(dst []byte, src string, kind Kind, opts *Options) (int, error) {
	if opts == nil {
		opts = &Options{}
	}
	return convert(dst, src, kind, opts)
}

// LowerString returns src converted to lowercase with full mappings.
func LowerString(src string) (string, error) { return convertString(src, Lower) }

// TitleString returns src converted to titlecase with full mappings and
// default (alnum-transition) word boundaries.
func TitleString(src string) (string, error) { return convertString(src, Title) }

// UpperString returns src converted to uppercase with full mappings.
func UpperString(src string) (string, error) { return convertString(src, Upper) }

// Boundary sources are stateful, so each pass gets a fresh Options.
func convertString(src string, kind Kind) (string, error) {
	n, err := convert(nil, src, kind, &Options{})
	if err != nil {
		return "", err
	}
	dst := make([]byte, n)
	if _, err := convert(dst, src, kind, &Options{}); err != nil {
		return "", err
	}
	return string(dst), nil
}

// SimpleLower returns the simple lowercase mapping of r, or r itself if
// there is none.
func SimpleLower(r rune) rune { return simpleMap(r, Lower) }

// SimpleTitle returns the simple titlecase mapping of r, or r itself if
// there is none.
func SimpleTitle(r rune) rune { return simpleMap(r, Title) }

// SimpleUpper returns the simple uppercase mapping of r, or r itself if
// there is none.
func SimpleUpper(r rune) rune { return simpleMap(r, Upper) }

// SpecialMapping returns the special-case codepoint sequence of r for
// the given kind. The returned slice is the table entry itself, not a
// copy; callers must not modify it. ok is false when r has no special
// mapping for the kind.
//
// Conditional mappings (Final_Sigma) are returned without evaluating
// their condition; use Convert for context-aware behavior.
func SpecialMapping(r rune, kind Kind) (seq []rune, ok bool) {
	e := findCaseMap(r)
	if e == nil || e.special == nil {
		return nil, false
	}
	seq = e.special.seq(kind)
	return seq, len(seq) > 0
}
