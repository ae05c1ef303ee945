// Package testutil provides synthetic collation providers for tests:
// fully configurable in-memory libraries with open/close accounting, so
// selection and lifecycle behavior can be exercised without any native
// ICU installation.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/locgo/locgo/core"
	"github.com/locgo/locgo/icu"
)

// FakeLibrary is an in-memory core.Library. The zero value is not
// usable; construct with NewFakeLibrary and adjust fields before
// handing it to a registry.
type FakeLibrary struct {
	Ver        core.Version
	Unicode    string
	CLDR       string
	HasCLDR    bool
	I18n       string
	UC         string
	LocaleList []string

	// CollVersion is the collator version reported for every locale,
	// unless overridden per locale in CollVersions.
	CollVersion  string
	CollVersions map[string]string
	UCA          string

	// FailLocales lists locales OpenCollator refuses.
	FailLocales map[string]bool

	Opens  atomic.Int64
	Closes atomic.Int64
}

// NewFakeLibrary builds a fake reporting the given version and collator
// version string.
func NewFakeLibrary(major, minor int, collVersion string) *FakeLibrary {
	return &FakeLibrary{
		Ver:         core.Version{Major: major, Minor: minor},
		Unicode:     "16.0",
		I18n:        fmt.Sprintf("fake-i18n.%d", major),
		UC:          fmt.Sprintf("fake-uc.%d", major),
		LocaleList:  []string{"en", "de", "sv"},
		CollVersion: collVersion,
		UCA:         "16.0",
	}
}

func (l *FakeLibrary) Version() core.Version { return l.Ver }

func (l *FakeLibrary) UnicodeVersion() string { return l.Unicode }

func (l *FakeLibrary) CLDRVersion() (string, bool) { return l.CLDR, l.HasCLDR }

func (l *FakeLibrary) FileNames() (string, string) { return l.I18n, l.UC }

func (l *FakeLibrary) Locales() []string { return l.LocaleList }

func (l *FakeLibrary) OpenCollator(locale string) (core.Collator, error) {
	if l.FailLocales[locale] {
		return nil, fmt.Errorf("fake: locale %q not available", locale)
	}
	version := l.CollVersion
	if v, ok := l.CollVersions[locale]; ok {
		version = v
	}
	l.Opens.Add(1)
	return &FakeCollator{lib: l, version: version, uca: l.UCA}, nil
}

func (l *FakeLibrary) ToLower(_, s string) (string, error) { return strings.ToLower(s), nil }
func (l *FakeLibrary) ToUpper(_, s string) (string, error) { return strings.ToUpper(s), nil }
func (l *FakeLibrary) ToTitle(_, s string) (string, error) { return strings.ToTitle(s), nil }

// Balanced reports whether every opened collator has been closed
// exactly once.
func (l *FakeLibrary) Balanced() bool { return l.Opens.Load() == l.Closes.Load() }

// FakeCollator orders by codepoint and counts its Close calls on the
// owning library.
type FakeCollator struct {
	lib     *FakeLibrary
	version string
	uca     string
	closed  atomic.Bool
}

func (c *FakeCollator) Version() string { return c.version }

func (c *FakeCollator) UCAVersion() (string, bool) { return c.uca, c.uca != "" }

func (c *FakeCollator) Compare(a, b string) (int, error) {
	if c.closed.Load() {
		return 0, fmt.Errorf("fake: compare on closed collator")
	}
	return strings.Compare(a, b), nil
}

func (c *FakeCollator) SortKey(s string) ([]byte, error) {
	return append([]byte(s), 0), nil
}

func (c *FakeCollator) SortKeyParts(s string) (core.KeyIter, error) {
	key, _ := c.SortKey(s)
	return &sliceKeyIter{key: key}, nil
}

func (c *FakeCollator) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return fmt.Errorf("fake: collator closed twice")
	}
	c.lib.Closes.Add(1)
	return nil
}

// sliceKeyIter chunks a precomputed key, ending like the native
// iterator does: a chunk shorter than dst is the last one.
type sliceKeyIter struct {
	key []byte
	off int
}

func (it *sliceKeyIter) Next(dst []byte) (int, bool, error) {
	n := copy(dst, it.key[it.off:])
	it.off += n
	return n, n < len(dst), nil
}

// Opener maps majors to libraries, reporting every other major as not
// installed. Use it with WithLibraryOpener to populate a registry with
// fakes.
func Opener(libs map[int]core.Library) func(major int) (core.Library, error) {
	return func(major int) (core.Library, error) {
		lib, ok := libs[major]
		if !ok {
			return nil, fmt.Errorf("fake major %d: %w", major, icu.ErrNotInstalled)
		}
		return lib, nil
	}
}
