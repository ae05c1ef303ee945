package ucase

import (
	"sort"
	"sync"
	"unicode"
)

// caseMapEntry is one row of the case-mapping table. The three simple
// mappings are stored resolved: a codepoint with no mapping for a kind
// stores itself, which removes the zero-means-none convention the data
// files use.
type caseMapEntry struct {
	cp      rune
	simple  [numKinds]rune
	special *specialCase
}

// specialCase describes a conditional or multi-codepoint mapping. A nil
// or empty sequence for a kind means the simple mapping applies. At most
// one special record exists per codepoint; this is a deliberate
// simplification versus SpecialCasing.txt, which permits several
// conditional mappings for one codepoint.
type specialCase struct {
	cp    rune
	cond  condition
	lower []rune
	title []rune
	upper []rune
}

type condition uint8

const (
	condNone condition = iota
	condFinalSigma
)

func (sc *specialCase) seq(kind Kind) []rune {
	switch kind {
	case Lower:
		return sc.lower
	case Title:
		return sc.title
	case Upper:
		return sc.upper
	}
	return nil
}

const asciiLimit = 0x80

var (
	caseMapOnce  sync.Once
	caseMap      []caseMapEntry          // sorted by codepoint, cp >= asciiLimit
	asciiCaseMap [asciiLimit]caseMapEntry // dense, O(1)
)

// findCaseMap returns the table entry for r, or nil if r has no case
// mappings at all.
func findCaseMap(r rune) *caseMapEntry {
	caseMapOnce.Do(buildCaseMap)

	if r < 0 {
		return nil
	}
	if r < asciiLimit {
		e := &asciiCaseMap[r]
		if e.cp != r {
			return nil
		}
		return e
	}

	min, max := 0, len(caseMap)-1
	for max >= min {
		mid := (min + max) / 2
		if r > caseMap[mid].cp {
			min = mid + 1
		} else if r < caseMap[mid].cp {
			max = mid - 1
		} else {
			return &caseMap[mid]
		}
	}
	return nil
}

func simpleMap(r rune, kind Kind) rune {
	if e := findCaseMap(r); e != nil {
		return e.simple[kind]
	}
	return r
}

// buildCaseMap materializes the sorted mapping table from the Go
// runtime's case ranges plus the special-casing records, so the data
// version always matches the toolchain's unicode tables.
func buildCaseMap() {
	seen := make(map[rune]bool)
	add := func(r rune) {
		if r < 0 || r > unicode.MaxRune || seen[r] {
			return
		}
		seen[r] = true
	}

	for _, cr := range unicode.CaseRanges {
		for r := cr.Lo; r <= cr.Hi; r++ {
			add(rune(r))
		}
	}
	for i := range specialCases {
		add(specialCases[i].cp)
	}

	specialByCp := make(map[rune]*specialCase, len(specialCases))
	for i := range specialCases {
		specialByCp[specialCases[i].cp] = &specialCases[i]
	}

	entries := make([]caseMapEntry, 0, len(seen))
	for r := range seen {
		entries = append(entries, caseMapEntry{
			cp: r,
			simple: [numKinds]rune{
				Lower: unicode.ToLower(r),
				Title: unicode.ToTitle(r),
				Upper: unicode.ToUpper(r),
			},
			special: specialByCp[r],
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].cp < entries[j].cp })

	split := sort.Search(len(entries), func(i int) bool { return entries[i].cp >= asciiLimit })
	for _, e := range entries[:split] {
		asciiCaseMap[e.cp] = e
	}
	caseMap = entries[split:]
}
