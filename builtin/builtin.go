// Package builtin implements the dependency-free collation provider. It
// backs case conversion and classification with the ucase and uprop
// engines and orders text by codepoint, which for UTF-8 is plain byte
// order. Its behavior depends only on the compiled-in Unicode tables,
// never on the environment, which makes it the always-available
// last-resort entry in the provider registry.
package builtin

import (
	"fmt"
	"strings"

	"github.com/locgo/locgo/core"
	"github.com/locgo/locgo/ucase"
	"github.com/locgo/locgo/uprop"
)

// Name is the descriptive file name the provider reports, since no
// shared object backs it.
const Name = "builtin"

// Options configure the builtin provider.
type Options struct {
	// UAX29Titlecasing draws title-case word boundaries per UAX #29
	// instead of the default alphanumeric-transition rule.
	UAX29Titlecasing bool
}

// Library is the builtin provider. It satisfies core.Library.
type Library struct {
	version    core.Version
	boundaries ucase.BoundarySource
}

// New constructs the builtin provider. It fails only if the compiled-in
// Unicode version cannot be determined, which callers should treat as a
// fatal startup condition.
func New(optFns ...func(o *Options)) (*Library, error) {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}

	v, err := core.ParseVersion(majorMinor(UnicodeVersion))
	if err != nil {
		return nil, fmt.Errorf("builtin: bad unicode version %q: %w", UnicodeVersion, err)
	}

	lib := &Library{version: v, boundaries: ucase.AlnumBoundaries}
	if opts.UAX29Titlecasing {
		lib.boundaries = ucase.WordBoundaries
	}
	return lib, nil
}

// Version reports the major.minor of the compiled-in Unicode tables.
func (l *Library) Version() core.Version { return l.version }

// UnicodeVersion reports the full Unicode data version.
func (l *Library) UnicodeVersion() string { return UnicodeVersion }

// CLDRVersion reports absence; the builtin provider carries no CLDR data.
func (l *Library) CLDRVersion() (string, bool) { return "", false }

// FileNames reports the fixed builtin name for both components.
func (l *Library) FileNames() (string, string) { return Name, Name }

// Locales returns the locales with distinguished builtin behavior.
// Any other well-formed locale is accepted by OpenCollator with the
// same codepoint ordering.
func (l *Library) Locales() []string {
	return []string{"C", "C.UTF-8", "POSIX", "und"}
}

// OpenCollator opens a codepoint-order collator. The locale must be a
// well-formed locale identifier; ordering does not depend on it.
func (l *Library) OpenCollator(locale string) (core.Collator, error) {
	if err := checkLocale(locale); err != nil {
		return nil, err
	}
	return &collator{version: CollatorVersion}, nil
}

// ToLower converts s to lowercase using full case mappings.
func (l *Library) ToLower(locale, s string) (string, error) {
	if err := checkLocale(locale); err != nil {
		return "", err
	}
	return l.convert(s, ucase.Lower)
}

// ToUpper converts s to uppercase using full case mappings.
func (l *Library) ToUpper(locale, s string) (string, error) {
	if err := checkLocale(locale); err != nil {
		return "", err
	}
	return l.convert(s, ucase.Upper)
}

// ToTitle converts s to titlecase using full case mappings and the
// provider's word-boundary rule.
func (l *Library) ToTitle(locale, s string) (string, error) {
	if err := checkLocale(locale); err != nil {
		return "", err
	}
	return l.convert(s, ucase.Title)
}

func (l *Library) convert(s string, kind ucase.Kind) (string, error) {
	opts := &ucase.Options{Boundaries: l.boundaries}
	n, err := ucase.Convert(nil, s, kind, opts)
	if err != nil {
		return "", err
	}
	dst := make([]byte, n)
	if _, err := ucase.Convert(dst, s, kind, opts); err != nil {
		return "", err
	}
	return string(dst), nil
}

// CharProperties answers the classification mask query for a codepoint.
func (l *Library) CharProperties(r rune, mask uprop.PropMask) uprop.PropMask {
	return uprop.CharProperties(r, mask)
}

// CharIsCased reports whether a single byte can participate in casing:
// an ASCII letter, or any byte of a multibyte character.
func (l *Library) CharIsCased(ch byte) bool {
	return ch >= 0x80 ||
		(ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

// WcToLower returns the simple lowercase mapping of r.
func (l *Library) WcToLower(r rune) rune { return ucase.SimpleLower(r) }

// WcToUpper returns the simple uppercase mapping of r.
func (l *Library) WcToUpper(r rune) rune { return ucase.SimpleUpper(r) }

func checkLocale(locale string) error {
	for i := 0; i < len(locale); i++ {
		c := locale[i]
		if c <= 0x20 || c >= 0x7F {
			return fmt.Errorf("builtin: invalid locale name %q", locale)
		}
	}
	return nil
}

func majorMinor(v string) string {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) < 2 {
		return v
	}
	return parts[0] + "." + parts[1]
}
