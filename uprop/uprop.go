// Package uprop answers Unicode character classification queries for the
// builtin collation provider.
//
// Membership tests (Cased, Alphabetic, White_Space, ...) are O(1) reads
// of a three-level bitmap covering the full codepoint space. General
// category lookup is a binary search over a sorted, gap-filled range
// table. ASCII codepoints take a single-branch fast path through dense
// arrays combining category and a property bitmask.
//
// The tables are materialized once, on first use, from the Go runtime's
// Unicode data; at runtime they are read-only and safe for concurrent
// access.
package uprop

import "unicode"

// PropMask selects character properties for CharProperties. The bits
// mirror the classification set exposed to the embedding database.
type PropMask uint32

const (
	PropDigit PropMask = 1 << iota
	PropAlpha
	PropUpper
	PropLower
	PropGraph
	PropPrint
	PropPunct
	PropSpace
)

const propAll = PropDigit | PropAlpha | PropUpper | PropLower |
	PropGraph | PropPrint | PropPunct | PropSpace

// IsAssigned reports whether r is an assigned codepoint (general
// category other than Cn).
func IsAssigned(r rune) bool { return CategoryOf(r) != Cn }

// IsCased reports the Unicode Cased property: Lowercase, Uppercase or
// titlecase letters.
func IsCased(r rune) bool { return tables().cased.Contains(r) }

// IsCaseIgnorable reports the Unicode Case_Ignorable property, used when
// locating casing context such as the Final_Sigma condition.
func IsCaseIgnorable(r rune) bool { return tables().caseIgnorable.Contains(r) }

// IsAlphabetic reports the Unicode Alphabetic property.
func IsAlphabetic(r rune) bool {
	if r < asciiLimit {
		return asciiMask[r]&PropAlpha != 0
	}
	return tables().alphabetic.Contains(r)
}

// IsLower reports the Unicode Lowercase property.
func IsLower(r rune) bool {
	if r < asciiLimit {
		return asciiMask[r]&PropLower != 0
	}
	return tables().lowercase.Contains(r)
}

// IsUpper reports the Unicode Uppercase property.
func IsUpper(r rune) bool {
	if r < asciiLimit {
		return asciiMask[r]&PropUpper != 0
	}
	return tables().uppercase.Contains(r)
}

// IsWhiteSpace reports the Unicode White_Space property.
func IsWhiteSpace(r rune) bool {
	if r < asciiLimit {
		return asciiMask[r]&PropSpace != 0
	}
	return tables().whiteSpace.Contains(r)
}

// IsHexDigit reports the Unicode Hex_Digit property.
func IsHexDigit(r rune) bool { return tables().hexDigit.Contains(r) }

// IsJoinControl reports the Unicode Join_Control property (ZWJ, ZWNJ).
func IsJoinControl(r rune) bool { return tables().joinControl.Contains(r) }

// IsDigit reports whether r is a decimal digit (general category Nd).
func IsDigit(r rune) bool {
	if r < asciiLimit {
		return asciiMask[r]&PropDigit != 0
	}
	return CategoryOf(r) == Nd
}

// IsAlnum reports whether r is alphabetic or a decimal digit. The
// alnum-transition word boundary iterator is driven by this.
func IsAlnum(r rune) bool { return IsAlphabetic(r) || IsDigit(r) }

// IsPunct reports whether r is punctuation or a symbol (categories P*
// and S*), matching the POSIX-style punct class.
func IsPunct(r rune) bool {
	c := CategoryOf(r)
	return c.isGroup('P') || c.isGroup('S')
}

// IsPrint reports whether r occupies a printing position: assigned and
// not a control, surrogate or line/paragraph separator.
func IsPrint(r rune) bool {
	switch CategoryOf(r) {
	case Cn, Cc, Cs, Zl, Zp:
		return false
	}
	return true
}

// IsGraph reports whether r is visible: printable and not white space.
func IsGraph(r rune) bool { return IsPrint(r) && !IsWhiteSpace(r) }

// CharProperties tests r against every property requested in mask and
// returns the bits that hold. Unrequested properties are never computed.
func CharProperties(r rune, mask PropMask) PropMask {
	if r >= 0 && r < asciiLimit {
		return asciiMask[r] & mask
	}

	var result PropMask
	if mask&PropDigit != 0 && IsDigit(r) {
		result |= PropDigit
	}
	if mask&PropAlpha != 0 && IsAlphabetic(r) {
		result |= PropAlpha
	}
	if mask&PropUpper != 0 && IsUpper(r) {
		result |= PropUpper
	}
	if mask&PropLower != 0 && IsLower(r) {
		result |= PropLower
	}
	if mask&PropGraph != 0 && IsGraph(r) {
		result |= PropGraph
	}
	if mask&PropPrint != 0 && IsPrint(r) {
		result |= PropPrint
	}
	if mask&PropPunct != 0 && IsPunct(r) {
		result |= PropPunct
	}
	if mask&PropSpace != 0 && IsWhiteSpace(r) {
		result |= PropSpace
	}
	return result
}

// MaxCodepoint is the largest valid Unicode codepoint.
const MaxCodepoint = unicode.MaxRune
