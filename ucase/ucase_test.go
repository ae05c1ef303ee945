package ucase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStrings(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		in   string
		want string
	}{
		{"LowerASCII", Lower, "Hello, WORLD", "hello, world"},
		{"UpperASCII", Upper, "Hello, world", "HELLO, WORLD"},
		{"LowerLatin", Lower, "ÄÖÜ", "äöü"},
		{"UpperSharpS", Upper, "straße", "STRASSE"},
		{"UpperLigatureFI", Upper, "ﬁle", "FILE"},
		{"UpperLigatureFFI", Upper, "oﬃce", "OFFICE"},
		{"LowerFinalSigma", Lower, "ΑΣ", "ας"},
		{"LowerMedialSigma", Lower, "ΑΣΑ", "ασα"},
		{"LowerInitialSigma", Lower, "ΣΑ", "σα"},
		{"LowerLoneSigma", Lower, "Σ", "σ"},
		{"LowerSigmaAfterIgnorable", Lower, "Α.Σ", "α.ς"},
		{"TitleWords", Title, "hello world", "Hello World"},
		{"TitleHyphen", Title, "hello-world", "Hello-World"},
		{"TitleDigitsJoinWord", Title, "abc1def", "Abc1def"},
		{"TitleLowersRest", Title, "HELLO WORLD", "Hello World"},
		{"Empty", Lower, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			var err error
			switch tt.kind {
			case Lower:
				got, err = LowerString(tt.in)
			case Title:
				got, err = TitleString(tt.in)
			case Upper:
				got, err = UpperString(tt.in)
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertSizeProbe(t *testing.T) {
	const in = "straße ΑΣ"

	n, err := Convert(nil, in, Upper, nil)
	require.NoError(t, err)

	// A too-small destination still reports the full length and writes
	// only what fits.
	small := make([]byte, 3)
	n2, err := Convert(small, in, Upper, nil)
	require.NoError(t, err)
	assert.Equal(t, n, n2)
	assert.Equal(t, []byte("STR"), small)

	dst := make([]byte, n)
	n3, err := Convert(dst, in, Upper, nil)
	require.NoError(t, err)
	assert.Equal(t, n, n3)
	assert.Equal(t, "STRASSE ΑΣ", string(dst))
}

func TestConvertInvalidEncoding(t *testing.T) {
	for _, in := range []string{"\xff", "ab\xc3(", "\x80abc"} {
		_, err := Convert(nil, in, Lower, nil)
		assert.ErrorIs(t, err, ErrInvalidEncoding, "%q", in)
	}
}

func TestConvertSimpleOption(t *testing.T) {
	opts := &Options{Simple: true}

	n, err := Convert(nil, "straße", Upper, opts)
	require.NoError(t, err)
	dst := make([]byte, n)
	_, err = Convert(dst, "straße", Upper, opts)
	require.NoError(t, err)

	// Simple mappings never expand: sharp s stays.
	assert.Equal(t, "STRAßE", string(dst))
}

func TestTitleAdjustToCased(t *testing.T) {
	convert := func(in string, opts *Options) string {
		n, err := Convert(nil, in, Title, opts)
		require.NoError(t, err)
		dst := make([]byte, n)
		_, err = Convert(dst, in, Title, &Options{
			Boundaries:    opts.Boundaries,
			AdjustToCased: opts.AdjustToCased,
			SimpleTitle:   opts.SimpleTitle,
		})
		require.NoError(t, err)
		return string(dst)
	}

	// Digits lead the word: without adjustment the digit takes the
	// (identity) title mapping and the letters lowercase.
	assert.Equal(t, "123abc", convert("123ABC", &Options{}))
	assert.Equal(t, "123Abc", convert("123ABC", &Options{AdjustToCased: true}))
}

func TestBoundarySources(t *testing.T) {
	t.Run("AlnumSplitsAtApostrophe", func(t *testing.T) {
		got, err := TitleString("don't stop")
		require.NoError(t, err)
		assert.Equal(t, "Don'T Stop", got)
	})

	t.Run("WordKeepsContraction", func(t *testing.T) {
		opts := &Options{Boundaries: WordBoundaries}
		n, err := Convert(nil, "don't stop", Title, opts)
		require.NoError(t, err)
		dst := make([]byte, n)
		_, err = Convert(dst, "don't stop", Title, &Options{Boundaries: WordBoundaries})
		require.NoError(t, err)
		assert.Equal(t, "Don't Stop", string(dst))
	})

	t.Run("AlnumSequence", func(t *testing.T) {
		next := AlnumBoundaries("ab--cd")
		var got []int
		for i := 0; i < 5; i++ {
			got = append(got, next())
		}
		// 0, alnum→punct, punct→alnum, then the length sentinel repeats.
		assert.Equal(t, []int{0, 2, 4, 6, 6}, got)
	})

	t.Run("WordSequence", func(t *testing.T) {
		next := WordBoundaries("ab cd")
		assert.Equal(t, 0, next())
		first := next()
		assert.Greater(t, first, 0)
		assert.LessOrEqual(t, first, 5)
		// Must reach the sentinel and then hold it.
		for i := 0; i < 10; i++ {
			if next() == 5 {
				break
			}
		}
		assert.Equal(t, 5, next())
	})
}

func TestSimpleMappings(t *testing.T) {
	assert.Equal(t, 'a', SimpleLower('A'))
	assert.Equal(t, 'A', SimpleUpper('a'))
	assert.Equal(t, 'Ǆ', SimpleUpper('ǆ'))
	assert.Equal(t, 'ǅ', SimpleTitle('ǆ'))
	assert.Equal(t, 'ω', SimpleLower('Ω'))

	// No mapping: identity.
	assert.Equal(t, '1', SimpleLower('1'))
	assert.Equal(t, '中', SimpleUpper('中'))
}

func TestSpecialMapping(t *testing.T) {
	seq, ok := SpecialMapping('ß', Upper)
	require.True(t, ok)
	assert.Equal(t, []rune{'S', 'S'}, seq)

	seq, ok = SpecialMapping('ß', Title)
	require.True(t, ok)
	assert.Equal(t, []rune{'S', 's'}, seq)

	// Conditional mapping is reported without evaluating the condition.
	seq, ok = SpecialMapping('Σ', Lower)
	require.True(t, ok)
	assert.Equal(t, []rune{'ς'}, seq)

	// Expansion never exceeds the documented maximum.
	seq, ok = SpecialMapping('ﬃ', Upper)
	require.True(t, ok)
	require.LessOrEqual(t, len(seq), MaxCaseExpansion)
	assert.Equal(t, []rune{'F', 'F', 'I'}, seq)

	_, ok = SpecialMapping('a', Upper)
	assert.False(t, ok)
}

func TestConvertRoundTrip(t *testing.T) {
	lower := "the quick brown fox jumps over the lazy dog 0123456789"
	upper := "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG 0123456789"

	up, err := UpperString(lower)
	require.NoError(t, err)
	assert.Equal(t, upper, up)
	got, err := LowerString(up)
	require.NoError(t, err)
	assert.Equal(t, lower, got)

	down, err := LowerString(upper)
	require.NoError(t, err)
	assert.Equal(t, lower, down)
	got, err = UpperString(down)
	require.NoError(t, err)
	assert.Equal(t, upper, got)
}
