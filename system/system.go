// Package system implements the collation provider backed by the Go
// runtime's own locale machinery (golang.org/x/text). It fills the role
// a system C library fills for a native database: always present,
// versioned with the runtime rather than with any loadable library, and
// useful as a peer of the dynamically loaded providers.
package system

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/locgo/locgo/core"
)

// Name is the descriptive file name the provider reports for both
// components.
const Name = "go-text"

// Library is the Go-runtime provider. It satisfies core.Library.
type Library struct {
	version core.Version
}

// New constructs the system provider.
func New() (*Library, error) {
	v, err := core.ParseVersion(majorMinor(unicode.Version))
	if err != nil {
		return nil, fmt.Errorf("system: bad unicode version %q: %w", unicode.Version, err)
	}
	return &Library{version: v}, nil
}

func (l *Library) Version() core.Version { return l.version }

// UnicodeVersion reports the Unicode version family of the runtime the
// provider was built with; the x/text tables track the same toolchain.
func (l *Library) UnicodeVersion() string { return unicode.Version }

func (l *Library) CLDRVersion() (string, bool) { return "", false }

func (l *Library) FileNames() (string, string) { return Name, Name }

// Locales enumerates the locales for which x/text carries collation
// tailorings.
func (l *Library) Locales() []string {
	tags := collate.Supported()
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.String()
	}
	return names
}

// LanguageTag canonicalizes a locale name to a BCP 47 tag.
func (l *Library) LanguageTag(locale string) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", err
	}
	return tag.String(), nil
}

// OpenCollator opens an x/text collator for the locale.
func (l *Library) OpenCollator(locale string) (core.Collator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("system: invalid locale %q: %w", locale, err)
	}
	return &collator{
		coll:    collate.New(tag),
		version: collatorVersion(tag),
	}, nil
}

func (l *Library) ToLower(locale, s string) (string, error) { return caseConvert(locale, s, cases.Lower) }
func (l *Library) ToUpper(locale, s string) (string, error) { return caseConvert(locale, s, cases.Upper) }
func (l *Library) ToTitle(locale, s string) (string, error) { return caseConvert(locale, s, cases.Title) }

func caseConvert(locale, s string, caser func(t language.Tag, opts ...cases.Option) cases.Caser) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("system: invalid locale %q: %w", locale, err)
	}
	return caser(tag).String(s), nil
}

// collatorVersion is deterministic per locale and runtime family, so a
// stored version keeps matching as long as the tailoring data does.
func collatorVersion(tag language.Tag) string {
	return Name + "-" + unicode.Version + "/" + tag.String()
}

func majorMinor(v string) string {
	parts := strings.SplitN(v, ".", 3)
	if len(parts) < 2 {
		return v
	}
	return parts[0] + "." + parts[1]
}
