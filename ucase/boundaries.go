package ucase

import (
	"unicode/utf8"

	"github.com/scalecode-solutions/runeseg"

	"github.com/locgo/locgo/uprop"
)

// BoundaryFunc yields successive word-boundary byte offsets for one
// conversion pass: 0 first, then each boundary in non-decreasing order,
// then the input length as a repeatable sentinel.
type BoundaryFunc func() int

// BoundarySource produces a fresh boundary sequence for a source string.
type BoundarySource func(src string) BoundaryFunc

// AlnumBoundaries draws a boundary each time the result of
// uprop.IsAlnum changes, the classic initcap behavior.
func AlnumBoundaries(src string) BoundaryFunc {
	var offset int
	var init, prevAlnum bool
	return func() int {
		for offset < len(src) {
			r, size := utf8.DecodeRuneInString(src[offset:])
			curAlnum := uprop.IsAlnum(r)
			if !init || curAlnum != prevAlnum {
				prev := offset
				init = true
				prevAlnum = curAlnum
				offset += size
				return prev
			}
			offset += size
		}
		return len(src)
	}
}

// WordBoundaries yields UAX #29 word boundaries.
func WordBoundaries(src string) BoundaryFunc {
	var (
		rest   = src
		state  = -1
		offset int
		first  = true
	)
	return func() int {
		if first {
			first = false
			return 0
		}
		for len(rest) > 0 {
			var cluster string
			var bounds int
			cluster, rest, bounds, state = runeseg.StepString(rest, state)
			offset += len(cluster)
			if bounds&runeseg.MaskWord != 0 {
				return offset
			}
		}
		return len(src)
	}
}
