package ucase

import (
	"unicode/utf8"

	"github.com/locgo/locgo/uprop"
)

// Titlecasing runs a two-state machine between word boundaries.
type titleState int

const (
	adjustingFromBoundary titleState = iota
	lowercasingUntilBoundary
)

func convert(dst []byte, src string, kind Kind, o *Options) (int, error) {
	var (
		result   int
		wbnext   BoundaryFunc
		boundary = -1
		state    = adjustingFromBoundary
	)
	if kind == Title {
		source := o.Boundaries
		if source == nil {
			source = AlnumBoundaries
		}
		wbnext = source(src)
		boundary = wbnext()
	}

	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		if r == utf8.RuneError && size == 1 {
			return result, ErrInvalidEncoding
		}

		mapKind := kind
		copyOnly := false
		if kind == Title {
			if i == boundary {
				state = adjustingFromBoundary
				boundary = wbnext()
			}
			switch state {
			case adjustingFromBoundary:
				if o.AdjustToCased && !uprop.IsCased(r) {
					copyOnly = true
				} else {
					mapKind = Title
					if o.SimpleTitle {
						mapKind = Upper
					}
					state = lowercasingUntilBoundary
				}
			case lowercasingUntilBoundary:
				mapKind = Lower
			}
		}

		if copyOnly {
			result = appendRune(dst, result, r)
		} else {
			n, err := mapRune(dst, result, r, mapKind, o, src, i, size)
			if err != nil {
				return result, err
			}
			result = n
		}
		i += size
	}
	return result, nil
}

// mapRune emits the mapping of one character: the special-case sequence
// when full mappings are on, the entry exists and its condition holds,
// otherwise the simple mapping (or the character itself).
func mapRune(dst []byte, at int, r rune, kind Kind, o *Options, src string, i, size int) (int, error) {
	e := findCaseMap(r)
	if e == nil {
		return appendRune(dst, at, r), nil
	}

	if !o.Simple && e.special != nil {
		holds, err := conditionHolds(e.special.cond, src, i, size)
		if err != nil {
			return at, err
		}
		if holds {
			if seq := e.special.seq(kind); len(seq) > 0 {
				for _, cp := range seq {
					at = appendRune(dst, at, cp)
				}
				return at, nil
			}
		}
	}
	return appendRune(dst, at, e.simple[kind]), nil
}

func conditionHolds(cond condition, src string, i, size int) (bool, error) {
	switch cond {
	case condNone:
		return true, nil
	case condFinalSigma:
		return finalSigma(src, i, size)
	}
	return false, nil
}

// finalSigma evaluates the Final_Sigma condition for the character at
// byte offset i: preceded by a Cased character and not followed by one,
// skipping Case_Ignorable characters on both sides. The start and end of
// the string trivially satisfy the "not preceded"/"not followed" sides.
func finalSigma(src string, i, size int) (bool, error) {
	preceded := false
	for j := i; j > 0; {
		r, n := utf8.DecodeLastRuneInString(src[:j])
		if r == utf8.RuneError && n <= 1 {
			return false, ErrInvalidEncoding
		}
		if uprop.IsCaseIgnorable(r) {
			j -= n
			continue
		}
		preceded = uprop.IsCased(r)
		break
	}
	if !preceded {
		return false, nil
	}

	for j := i + size; j < len(src); {
		r, n := utf8.DecodeRuneInString(src[j:])
		if r == utf8.RuneError && n == 1 {
			return false, ErrInvalidEncoding
		}
		if uprop.IsCaseIgnorable(r) {
			j += n
			continue
		}
		return !uprop.IsCased(r), nil
	}
	return true, nil
}

// appendRune encodes r at offset at, writing only the bytes that fit in
// dst, and returns the offset the full result has reached.
func appendRune(dst []byte, at int, r rune) int {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	if at < len(dst) {
		copy(dst[at:], buf[:n])
	}
	return at + n
}
