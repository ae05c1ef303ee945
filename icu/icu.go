// Package icu binds a specific major version of the ICU shared
// libraries at runtime, without cgo. Each Open loads libicui18n and
// libicuuc for one major version and resolves the full set of entry
// points the collation layer needs; several versions can be open in the
// same process side by side. Handles are never closed once a Library is
// returned, so collators and sort key iterators stay valid for the life
// of the process.
package icu

import (
	"bytes"
	"fmt"

	"github.com/locgo/locgo/core"
	"github.com/locgo/locgo/internal/dl"
	"github.com/locgo/locgo/internal/uchar"
)

const (
	versionInfoLen   = 4
	versionStringCap = 20
)

// Library is one loaded ICU major version. It satisfies core.Library
// and core.LocaleNamer.
type Library struct {
	version  core.Version
	i18nName string
	ucName   string
	fn       rawFuncs
}

// Open loads the ICU shared objects for the given major version. With a
// non-empty dir the files are taken from that directory, otherwise the
// system loader's search path applies. An absent installation is
// reported as ErrNotInstalled; any other failure means the files exist
// but could not be used.
//
// The reported Version comes from the loaded code itself and may differ
// from major when a mislabeled file is found first on the search path.
func Open(major int, dir string) (*Library, error) {
	i18nName, ucName := LibraryNames(dir, major)
	if dir != "" && !dl.Exists(i18nName) {
		return nil, fmt.Errorf("%s: %w", i18nName, ErrNotInstalled)
	}

	h1, err := dlOpen(i18nName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", i18nName, ErrNotInstalled)
	}
	h2, err := dlOpen(ucName)
	if err != nil {
		_ = dlClose(h1)
		return nil, fmt.Errorf("icu: loaded %s but not %s: %v", i18nName, ucName, err)
	}

	lib := &Library{i18nName: i18nName, ucName: ucName}
	if err := lib.bind(h1, h2, major); err != nil {
		_ = dlClose(h1)
		_ = dlClose(h2)
		return nil, err
	}

	info := make([]byte, versionInfoLen)
	lib.fn.getVersion(info)
	lib.version = core.Version{Major: int(info[0]), Minor: int(info[1])}
	return lib, nil
}

// Version reports the version the loaded library says it is, which is
// authoritative over the file name it was loaded from.
func (l *Library) Version() core.Version { return l.version }

// FileNames reports the file names the two components were loaded from.
func (l *Library) FileNames() (string, string) { return l.i18nName, l.ucName }

// UnicodeVersion reports the Unicode data version the library carries.
func (l *Library) UnicodeVersion() string {
	info := make([]byte, versionInfoLen)
	l.fn.getUnicodeVersion(info)
	return l.versionString(info)
}

// CLDRVersion reports the CLDR data version, when the library can tell.
func (l *Library) CLDRVersion() (string, bool) {
	info := make([]byte, versionInfoLen)
	status := []int32{0}
	l.fn.getCLDRVersion(info, status)
	if status[0] > uZeroError {
		return "", false
	}
	return l.versionString(info), true
}

// Locales enumerates the locales the library has data for.
func (l *Library) Locales() []string {
	n := l.fn.countAvailable()
	names := make([]string, 0, n)
	for i := int32(0); i < n; i++ {
		names = append(names, l.fn.getAvailable(i))
	}
	return names
}

// OpenCollator opens a collator for the locale. ICU warnings, such as
// falling back to the root locale, are not errors.
func (l *Library) OpenCollator(locale string) (core.Collator, error) {
	status := []int32{0}
	h := l.fn.openCollator(locale, status)
	if err := l.statusErr("ucol_open", status[0]); err != nil {
		return nil, err
	}
	return &Collator{lib: l, coll: h}, nil
}

// ToLower converts s to lowercase under the locale's casing rules.
func (l *Library) ToLower(locale, s string) (string, error) {
	return l.caseMap("u_strToLower", l.fn.strToLower, locale, s)
}

// ToUpper converts s to uppercase under the locale's casing rules.
func (l *Library) ToUpper(locale, s string) (string, error) {
	return l.caseMap("u_strToUpper", l.fn.strToUpper, locale, s)
}

// ToTitle converts s to titlecase using the library's default word
// break iterator for the locale.
func (l *Library) ToTitle(locale, s string) (string, error) {
	fn := func(dst []uint16, dstCap int32, src []uint16, srcLen int32, loc string, status []int32) int32 {
		return l.fn.strToTitle(dst, dstCap, src, srcLen, 0, loc, status)
	}
	return l.caseMap("u_strToTitle", fn, locale, s)
}

// caseMap runs the preflight-then-fill calling convention shared by the
// u_strTo* functions.
func (l *Library) caseMap(op string, fn func(dst []uint16, dstCap int32, src []uint16, srcLen int32, locale string, status []int32) int32, locale, s string) (string, error) {
	src := uchar.Encode(s)
	status := []int32{0}
	n := fn(nil, 0, src, int32(len(src)), locale, status)
	if status[0] > uZeroError && status[0] != uBufferOverflowError {
		return "", l.statusErr(op, status[0])
	}
	if n <= 0 {
		return "", nil
	}
	dst := make([]uint16, n)
	status[0] = 0
	fn(dst, n, src, int32(len(src)), locale, status)
	if err := l.statusErr(op, status[0]); err != nil {
		return "", err
	}
	return uchar.Decode(dst), nil
}

// LanguageTag canonicalizes a locale name to a strict BCP 47 tag.
func (l *Library) LanguageTag(locale string) (string, error) {
	buf := make([]byte, 160)
	for {
		status := []int32{0}
		n := l.fn.toLanguageTag(locale, buf, int32(len(buf)), 1, status)
		if status[0] == uBufferOverflowError {
			buf = make([]byte, n+1)
			continue
		}
		if err := l.statusErr("uloc_toLanguageTag", status[0]); err != nil {
			return "", err
		}
		return string(buf[:n]), nil
	}
}

// DisplayName renders locale for human display in inLocale.
func (l *Library) DisplayName(locale, inLocale string) (string, error) {
	buf := make([]uint16, 160)
	for {
		status := []int32{0}
		n := l.fn.getDisplayName(locale, inLocale, buf, int32(len(buf)), status)
		if status[0] == uBufferOverflowError {
			buf = make([]uint16, n+1)
			continue
		}
		if err := l.statusErr("uloc_getDisplayName", status[0]); err != nil {
			return "", err
		}
		return uchar.Decode(buf[:n]), nil
	}
}

// versionString renders a 4-byte UVersionInfo as dotted decimal.
func (l *Library) versionString(info []byte) string {
	buf := make([]byte, versionStringCap)
	l.fn.versionToString(info, buf)
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}
