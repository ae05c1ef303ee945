package uprop

// Category is a Unicode general category.
type Category uint8

const (
	Cn Category = iota // Unassigned
	Lu                 // Uppercase_Letter
	Ll                 // Lowercase_Letter
	Lt                 // Titlecase_Letter
	Lm                 // Modifier_Letter
	Lo                 // Other_Letter
	Mn                 // Nonspacing_Mark
	Mc                 // Spacing_Mark
	Me                 // Enclosing_Mark
	Nd                 // Decimal_Number
	Nl                 // Letter_Number
	No                 // Other_Number
	Pc                 // Connector_Punctuation
	Pd                 // Dash_Punctuation
	Ps                 // Open_Punctuation
	Pe                 // Close_Punctuation
	Pi                 // Initial_Punctuation
	Pf                 // Final_Punctuation
	Po                 // Other_Punctuation
	Sm                 // Math_Symbol
	Sc                 // Currency_Symbol
	Sk                 // Modifier_Symbol
	So                 // Other_Symbol
	Zs                 // Space_Separator
	Zl                 // Line_Separator
	Zp                 // Paragraph_Separator
	Cc                 // Control
	Cf                 // Format
	Cs                 // Surrogate
	Co                 // Private_Use
	numCategories
)

var categoryNames = [numCategories]string{
	Cn: "Cn", Lu: "Lu", Ll: "Ll", Lt: "Lt", Lm: "Lm", Lo: "Lo",
	Mn: "Mn", Mc: "Mc", Me: "Me", Nd: "Nd", Nl: "Nl", No: "No",
	Pc: "Pc", Pd: "Pd", Ps: "Ps", Pe: "Pe", Pi: "Pi", Pf: "Pf",
	Po: "Po", Sm: "Sm", Sc: "Sc", Sk: "Sk", So: "So", Zs: "Zs",
	Zl: "Zl", Zp: "Zp", Cc: "Cc", Cf: "Cf", Cs: "Cs", Co: "Co",
}

func (c Category) String() string {
	if c >= numCategories {
		return "??"
	}
	return categoryNames[c]
}

// isGroup reports whether the category belongs to the major class named
// by its first letter ('L', 'M', 'N', 'P', 'S', 'Z' or 'C').
func (c Category) isGroup(group byte) bool {
	if c >= numCategories {
		return false
	}
	return categoryNames[c][0] == group
}

// catRange maps the codepoints in [lo, hi] to a single general category.
// The table is sorted ascending, non-overlapping and gap-free: every
// codepoint from 0 through MaxCodepoint is covered, with unassigned gaps
// carrying Cn.
type catRange struct {
	lo, hi rune
	cat    Category
}

// CategoryOf returns the general category of r. Unassigned and invalid
// codepoints report Cn.
func CategoryOf(r rune) Category {
	if r < 0 || r > MaxCodepoint {
		return Cn
	}
	if r < asciiLimit {
		return asciiCat[r]
	}

	ranges := tables().catRanges
	min, max := 0, len(ranges)-1
	for max >= min {
		mid := (min + max) / 2
		if r > ranges[mid].hi {
			min = mid + 1
		} else if r < ranges[mid].lo {
			max = mid - 1
		} else {
			return ranges[mid].cat
		}
	}
	return Cn
}
