package ucase

// Special-case records, derived from Unicode SpecialCasing.txt: the
// unconditional multi-codepoint mappings plus the Final_Sigma rule.
// Language-specific rules (tr, az, lt) are out of scope. Sequences equal
// to the simple mapping are omitted; at most one record per codepoint.

var specialCases = []specialCase{
	{cp: 0x00DF, // LATIN SMALL LETTER SHARP S
		title: []rune{0x0053, 0x0073},
		upper: []rune{0x0053, 0x0053}},
	{cp: 0x0130, // LATIN CAPITAL LETTER I WITH DOT ABOVE
		lower: []rune{0x0069, 0x0307}},
	{cp: 0x0149, // LATIN SMALL LETTER N PRECEDED BY APOSTROPHE
		title: []rune{0x02BC, 0x004E},
		upper: []rune{0x02BC, 0x004E}},
	{cp: 0x01F0, // LATIN SMALL LETTER J WITH CARON
		title: []rune{0x004A, 0x030C},
		upper: []rune{0x004A, 0x030C}},
	{cp: 0x0390, // GREEK SMALL LETTER IOTA WITH DIALYTIKA AND TONOS
		title: []rune{0x0399, 0x0308, 0x0301},
		upper: []rune{0x0399, 0x0308, 0x0301}},
	{cp: 0x03A3, // GREEK CAPITAL LETTER SIGMA
		cond:  condFinalSigma,
		lower: []rune{0x03C2}},
	{cp: 0x03B0, // GREEK SMALL LETTER UPSILON WITH DIALYTIKA AND TONOS
		title: []rune{0x03A5, 0x0308, 0x0301},
		upper: []rune{0x03A5, 0x0308, 0x0301}},
	{cp: 0x0587, // ARMENIAN SMALL LIGATURE ECH YIWN
		title: []rune{0x0535, 0x0582},
		upper: []rune{0x0535, 0x0552}},
	{cp: 0x1E96, // LATIN SMALL LETTER H WITH LINE BELOW
		title: []rune{0x0048, 0x0331},
		upper: []rune{0x0048, 0x0331}},
	{cp: 0x1E97, // LATIN SMALL LETTER T WITH DIAERESIS
		title: []rune{0x0054, 0x0308},
		upper: []rune{0x0054, 0x0308}},
	{cp: 0x1E98, // LATIN SMALL LETTER W WITH RING ABOVE
		title: []rune{0x0057, 0x030A},
		upper: []rune{0x0057, 0x030A}},
	{cp: 0x1E99, // LATIN SMALL LETTER Y WITH RING ABOVE
		title: []rune{0x0059, 0x030A},
		upper: []rune{0x0059, 0x030A}},
	{cp: 0x1E9A, // LATIN SMALL LETTER A WITH RIGHT HALF RING
		title: []rune{0x0041, 0x02BE},
		upper: []rune{0x0041, 0x02BE}},
	{cp: 0x1F50, // GREEK SMALL LETTER UPSILON WITH PSILI
		title: []rune{0x03A5, 0x0313},
		upper: []rune{0x03A5, 0x0313}},
	{cp: 0x1F52, // GREEK SMALL LETTER UPSILON WITH PSILI AND VARIA
		title: []rune{0x03A5, 0x0313, 0x0300},
		upper: []rune{0x03A5, 0x0313, 0x0300}},
	{cp: 0x1F54, // GREEK SMALL LETTER UPSILON WITH PSILI AND OXIA
		title: []rune{0x03A5, 0x0313, 0x0301},
		upper: []rune{0x03A5, 0x0313, 0x0301}},
	{cp: 0x1F56, // GREEK SMALL LETTER UPSILON WITH PSILI AND PERISPOMENI
		title: []rune{0x03A5, 0x0313, 0x0342},
		upper: []rune{0x03A5, 0x0313, 0x0342}},

	// Polytonic Greek with prosgegrammeni/ypogegrammeni, irregular rows.
	{cp: 0x1FB2, title: []rune{0x1FBA, 0x0345}, upper: []rune{0x1FBA, 0x0399}},
	{cp: 0x1FB3, upper: []rune{0x0391, 0x0399}},
	{cp: 0x1FB4, title: []rune{0x0386, 0x0345}, upper: []rune{0x0386, 0x0399}},
	{cp: 0x1FB6, title: []rune{0x0391, 0x0342}, upper: []rune{0x0391, 0x0342}},
	{cp: 0x1FB7, title: []rune{0x0391, 0x0342, 0x0345}, upper: []rune{0x0391, 0x0342, 0x0399}},
	{cp: 0x1FBC, upper: []rune{0x0391, 0x0399}},
	{cp: 0x1FC2, title: []rune{0x1FCA, 0x0345}, upper: []rune{0x1FCA, 0x0399}},
	{cp: 0x1FC3, upper: []rune{0x0397, 0x0399}},
	{cp: 0x1FC4, title: []rune{0x0389, 0x0345}, upper: []rune{0x0389, 0x0399}},
	{cp: 0x1FC6, title: []rune{0x0397, 0x0342}, upper: []rune{0x0397, 0x0342}},
	{cp: 0x1FC7, title: []rune{0x0397, 0x0342, 0x0345}, upper: []rune{0x0397, 0x0342, 0x0399}},
	{cp: 0x1FCC, upper: []rune{0x0397, 0x0399}},
	{cp: 0x1FD2, title: []rune{0x0399, 0x0308, 0x0300}, upper: []rune{0x0399, 0x0308, 0x0300}},
	{cp: 0x1FD3, title: []rune{0x0399, 0x0308, 0x0301}, upper: []rune{0x0399, 0x0308, 0x0301}},
	{cp: 0x1FD6, title: []rune{0x0399, 0x0342}, upper: []rune{0x0399, 0x0342}},
	{cp: 0x1FD7, title: []rune{0x0399, 0x0308, 0x0342}, upper: []rune{0x0399, 0x0308, 0x0342}},
	{cp: 0x1FE2, title: []rune{0x03A5, 0x0308, 0x0300}, upper: []rune{0x03A5, 0x0308, 0x0300}},
	{cp: 0x1FE3, title: []rune{0x03A5, 0x0308, 0x0301}, upper: []rune{0x03A5, 0x0308, 0x0301}},
	{cp: 0x1FE4, title: []rune{0x03A1, 0x0313}, upper: []rune{0x03A1, 0x0313}},
	{cp: 0x1FE6, title: []rune{0x03A5, 0x0342}, upper: []rune{0x03A5, 0x0342}},
	{cp: 0x1FE7, title: []rune{0x03A5, 0x0308, 0x0342}, upper: []rune{0x03A5, 0x0308, 0x0342}},
	{cp: 0x1FF2, title: []rune{0x1FFA, 0x0345}, upper: []rune{0x1FFA, 0x0399}},
	{cp: 0x1FF3, upper: []rune{0x03A9, 0x0399}},
	{cp: 0x1FF4, title: []rune{0x038F, 0x0345}, upper: []rune{0x038F, 0x0399}},
	{cp: 0x1FF6, title: []rune{0x03A9, 0x0342}, upper: []rune{0x03A9, 0x0342}},
	{cp: 0x1FF7, title: []rune{0x03A9, 0x0342, 0x0345}, upper: []rune{0x03A9, 0x0342, 0x0399}},
	{cp: 0x1FFC, upper: []rune{0x03A9, 0x0399}},

	// Latin and Armenian ligatures.
	{cp: 0xFB00, title: []rune{0x0046, 0x0066}, upper: []rune{0x0046, 0x0046}},
	{cp: 0xFB01, title: []rune{0x0046, 0x0069}, upper: []rune{0x0046, 0x0049}},
	{cp: 0xFB02, title: []rune{0x0046, 0x006C}, upper: []rune{0x0046, 0x004C}},
	{cp: 0xFB03, title: []rune{0x0046, 0x0066, 0x0069}, upper: []rune{0x0046, 0x0046, 0x0049}},
	{cp: 0xFB04, title: []rune{0x0046, 0x0066, 0x006C}, upper: []rune{0x0046, 0x0046, 0x004C}},
	{cp: 0xFB05, title: []rune{0x0053, 0x0074}, upper: []rune{0x0053, 0x0054}},
	{cp: 0xFB06, title: []rune{0x0053, 0x0074}, upper: []rune{0x0053, 0x0054}},
	{cp: 0xFB13, title: []rune{0x0544, 0x0576}, upper: []rune{0x0544, 0x0546}},
	{cp: 0xFB14, title: []rune{0x0544, 0x0565}, upper: []rune{0x0544, 0x0535}},
	{cp: 0xFB15, title: []rune{0x0544, 0x056B}, upper: []rune{0x0544, 0x053B}},
	{cp: 0xFB16, title: []rune{0x054E, 0x0576}, upper: []rune{0x054E, 0x0546}},
	{cp: 0xFB17, title: []rune{0x0544, 0x056D}, upper: []rune{0x0544, 0x053D}},
}

func init() {
	// The iota-subscript blocks 1F80-1F87, 1F90-1F97 and 1FA0-1FA7 (and
	// their titlecase counterparts at +8) uppercase regularly to the
	// matching capital plus a following iota.
	for _, base := range []struct{ small, capital rune }{
		{0x1F80, 0x1F08},
		{0x1F90, 0x1F28},
		{0x1FA0, 0x1F68},
	} {
		for i := rune(0); i < 8; i++ {
			upper := []rune{base.capital + i, 0x0399}
			specialCases = append(specialCases,
				specialCase{cp: base.small + i, upper: upper},
				specialCase{cp: base.small + 8 + i, upper: upper})
		}
	}
}
