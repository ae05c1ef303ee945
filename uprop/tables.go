package uprop

import (
	"sync"
	"unicode"
)

// The query structures specified for this package (sorted range table,
// three-level bitmaps, dense ASCII arrays) are materialized once, on
// first use, from the Go runtime's Unicode tables instead of vendoring
// regenerated copies of the same data. The shapes and lookup paths are
// unchanged; only the producer differs. See DESIGN.md.

const asciiLimit = 0x80

var categoryByName = map[string]Category{
	"Lu": Lu, "Ll": Ll, "Lt": Lt, "Lm": Lm, "Lo": Lo,
	"Mn": Mn, "Mc": Mc, "Me": Me,
	"Nd": Nd, "Nl": Nl, "No": No,
	"Pc": Pc, "Pd": Pd, "Ps": Ps, "Pe": Pe, "Pi": Pi, "Pf": Pf, "Po": Po,
	"Sm": Sm, "Sc": Sc, "Sk": Sk, "So": So,
	"Zs": Zs, "Zl": Zl, "Zp": Zp,
	"Cc": Cc, "Cf": Cf, "Cs": Cs, "Co": Co,
}

// Case_Ignorable additions beyond categories Mn, Me, Cf, Lm and Sk:
// codepoints with Word_Break values MidLetter, MidNumLet or Single_Quote.
var caseIgnorableExtra = []rune{
	0x0027, // APOSTROPHE
	0x002E, // FULL STOP
	0x003A, // COLON
	0x00B7, // MIDDLE DOT
	0x02D7, // MODIFIER LETTER MINUS SIGN
	0x0387, // GREEK ANO TELEIA
	0x055F, // ARMENIAN ABBREVIATION MARK
	0x05F4, // HEBREW PUNCTUATION GERSHAYIM
	0x2018, // LEFT SINGLE QUOTATION MARK
	0x2019, // RIGHT SINGLE QUOTATION MARK
	0x2024, // ONE DOT LEADER
	0x2027, // HYPHENATION POINT
	0xFE13, // PRESENTATION FORM FOR VERTICAL COLON
	0xFE52, // SMALL FULL STOP
	0xFE55, // SMALL COLON
	0xFF07, // FULLWIDTH APOSTROPHE
	0xFF0E, // FULLWIDTH FULL STOP
	0xFF1A, // FULLWIDTH COLON
}

type tableSet struct {
	catRanges []catRange

	cased         *Bitmap
	caseIgnorable *Bitmap
	alphabetic    *Bitmap
	lowercase     *Bitmap
	uppercase     *Bitmap
	whiteSpace    *Bitmap
	hexDigit      *Bitmap
	joinControl   *Bitmap
}

var (
	tablesOnce sync.Once
	tableData  *tableSet
)

func tables() *tableSet {
	tablesOnce.Do(func() {
		tableData = buildTables()
	})
	return tableData
}

func addTable(bb *bitmapBuilder, rt *unicode.RangeTable) {
	for _, r := range rt.R16 {
		bb.setRange(rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	for _, r := range rt.R32 {
		bb.setRange(rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
}

func buildBitmap(rts ...*unicode.RangeTable) *bitmapBuilder {
	bb := newBitmapBuilder()
	for _, rt := range rts {
		addTable(bb, rt)
	}
	return bb
}

func buildTables() *tableSet {
	ts := &tableSet{}

	// Dense category sweep, compressed into sorted gap-filled ranges.
	cats := make([]Category, MaxCodepoint+1)
	for name, cat := range categoryByName {
		rt := unicode.Categories[name]
		for _, r := range rt.R16 {
			for cp := rune(r.Lo); cp <= rune(r.Hi); cp += rune(r.Stride) {
				cats[cp] = cat
			}
		}
		for _, r := range rt.R32 {
			for cp := rune(r.Lo); cp <= rune(r.Hi); cp += rune(r.Stride) {
				cats[cp] = cat
			}
		}
	}
	start := rune(0)
	for cp := rune(1); cp <= MaxCodepoint+1; cp++ {
		if cp > MaxCodepoint || cats[cp] != cats[start] {
			ts.catRanges = append(ts.catRanges, catRange{lo: start, hi: cp - 1, cat: cats[start]})
			start = cp
		}
	}

	alpha := buildBitmap(unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm,
		unicode.Lo, unicode.Nl, unicode.Properties["Other_Alphabetic"])
	ts.alphabetic = alpha.build()

	lower := buildBitmap(unicode.Ll, unicode.Properties["Other_Lowercase"])
	upper := buildBitmap(unicode.Lu, unicode.Properties["Other_Uppercase"])

	cased := buildBitmap(unicode.Ll, unicode.Properties["Other_Lowercase"],
		unicode.Lu, unicode.Properties["Other_Uppercase"], unicode.Lt)
	ts.cased = cased.build()
	ts.lowercase = lower.build()
	ts.uppercase = upper.build()

	ci := buildBitmap(unicode.Mn, unicode.Me, unicode.Cf, unicode.Lm, unicode.Sk)
	for _, r := range caseIgnorableExtra {
		ci.set(r)
	}
	ts.caseIgnorable = ci.build()

	ts.whiteSpace = buildBitmap(unicode.White_Space).build()
	ts.hexDigit = buildBitmap(unicode.Hex_Digit).build()
	ts.joinControl = buildBitmap(unicode.Join_Control).build()

	return ts
}

// Dense ASCII fast path: category plus full property mask per codepoint.
var (
	asciiCat  [asciiLimit]Category
	asciiMask [asciiLimit]PropMask
)

func init() {
	for r := rune(0); r < asciiLimit; r++ {
		for name, cat := range categoryByName {
			if unicode.Is(unicode.Categories[name], r) {
				asciiCat[r] = cat
				break
			}
		}

		var mask PropMask
		if r >= '0' && r <= '9' {
			mask |= PropDigit
		}
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			mask |= PropAlpha
		}
		if r >= 'A' && r <= 'Z' {
			mask |= PropUpper
		}
		if r >= 'a' && r <= 'z' {
			mask |= PropLower
		}
		if unicode.IsSpace(r) {
			mask |= PropSpace
		}
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			mask |= PropPunct
		}
		if r >= 0x20 && r != 0x7F {
			mask |= PropPrint
			if mask&PropSpace == 0 {
				mask |= PropGraph
			}
		}
		asciiMask[r] = mask
	}
}
