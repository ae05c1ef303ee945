package icu

import (
	"fmt"

	"github.com/ebitengine/purego"

	"github.com/locgo/locgo/internal/dl"
)

// Seams over the loader and trampoline generator, swapped in tests.
var (
	dlOpen       = dl.Open
	dlSym        = dl.Sym
	dlClose      = dl.Close
	registerFunc = purego.RegisterFunc
)

// rawFuncs holds the bound ICU entry points. Status out-parameters are
// passed as one-element []int32, version records as 4-byte []byte, so
// the trampolines see pointers to Go-owned memory.
type rawFuncs struct {
	getVersion        func(info []byte)
	getUnicodeVersion func(info []byte)
	getCLDRVersion    func(info []byte, status []int32)
	versionToString   func(info []byte, dst []byte)
	errorName         func(code int32) string

	openCollator    func(locale string, status []int32) uintptr
	closeCollator   func(coll uintptr)
	collVersion     func(coll uintptr, info []byte)
	collUCAVersion  func(coll uintptr, info []byte)
	setAttribute    func(coll uintptr, attr, value int32, status []int32)
	strcoll         func(coll uintptr, a []uint16, alen int32, b []uint16, blen int32) int32
	strcollUTF8     func(coll uintptr, a string, alen int32, b string, blen int32, status []int32) int32
	getSortKey      func(coll uintptr, src []uint16, srcLen int32, dst []byte, dstCap int32) int32
	nextSortKeyPart func(coll uintptr, iter []byte, state []uint32, dst []byte, count int32, status []int32) int32
	iterSetUTF8     func(iter []byte, s []byte, length int32)

	strToUpper func(dst []uint16, dstCap int32, src []uint16, srcLen int32, locale string, status []int32) int32
	strToLower func(dst []uint16, dstCap int32, src []uint16, srcLen int32, locale string, status []int32) int32
	strToTitle func(dst []uint16, dstCap int32, src []uint16, srcLen int32, titleIter uintptr, locale string, status []int32) int32

	openConverter  func(name string, status []int32) uintptr
	closeConverter func(conv uintptr)
	fromUChars     func(conv uintptr, dst []byte, dstCap int32, src []uint16, srcLen int32, status []int32) int32
	toUChars       func(conv uintptr, dst []uint16, dstCap int32, src []byte, srcLen int32, status []int32) int32

	toLanguageTag  func(locale string, dst []byte, dstCap int32, strict int32, status []int32) int32
	getDisplayName func(locale, inLocale string, dst []uint16, dstCap int32, status []int32) int32
	countAvailable func() int32
	getAvailable   func(n int32) string
}

// SymbolError reports a required entry point missing from both shared
// objects. Binding is all-or-nothing, so one of these means the version
// is unusable.
type SymbolError struct {
	Symbol string
	I18n   string
	UC     string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("icu: symbol %q not found in %s or %s", e.Symbol, e.I18n, e.UC)
}

// lookup resolves name against both handles, preferring the
// major-suffixed form ICU exports by default over the plain one.
func lookup(handles []uintptr, name string, major int) uintptr {
	suffixed := fmt.Sprintf("%s_%d", name, major)
	for _, candidate := range []string{suffixed, name} {
		for _, h := range handles {
			if addr, err := dlSym(h, candidate); err == nil && addr != 0 {
				return addr
			}
		}
	}
	return 0
}

// bind resolves every required symbol before generating any trampoline,
// so a partially exported build leaves the Library untouched.
func (l *Library) bind(i18n, uc uintptr, major int) error {
	handles := []uintptr{i18n, uc}
	syms := []struct {
		name string
		fn   any
	}{
		{"u_getVersion", &l.fn.getVersion},
		{"u_getUnicodeVersion", &l.fn.getUnicodeVersion},
		{"ulocdata_getCLDRVersion", &l.fn.getCLDRVersion},
		{"u_versionToString", &l.fn.versionToString},
		{"u_errorName", &l.fn.errorName},
		{"ucol_open", &l.fn.openCollator},
		{"ucol_close", &l.fn.closeCollator},
		{"ucol_getVersion", &l.fn.collVersion},
		{"ucol_getUCAVersion", &l.fn.collUCAVersion},
		{"ucol_setAttribute", &l.fn.setAttribute},
		{"ucol_strcoll", &l.fn.strcoll},
		{"ucol_strcollUTF8", &l.fn.strcollUTF8},
		{"ucol_getSortKey", &l.fn.getSortKey},
		{"ucol_nextSortKeyPart", &l.fn.nextSortKeyPart},
		{"uiter_setUTF8", &l.fn.iterSetUTF8},
		{"u_strToUpper", &l.fn.strToUpper},
		{"u_strToLower", &l.fn.strToLower},
		{"u_strToTitle", &l.fn.strToTitle},
		{"ucnv_open", &l.fn.openConverter},
		{"ucnv_close", &l.fn.closeConverter},
		{"ucnv_fromUChars", &l.fn.fromUChars},
		{"ucnv_toUChars", &l.fn.toUChars},
		{"uloc_toLanguageTag", &l.fn.toLanguageTag},
		{"uloc_getDisplayName", &l.fn.getDisplayName},
		{"uloc_countAvailable", &l.fn.countAvailable},
		{"uloc_getAvailable", &l.fn.getAvailable},
	}

	addrs := make([]uintptr, len(syms))
	for i, s := range syms {
		addr := lookup(handles, s.name, major)
		if addr == 0 {
			return &SymbolError{Symbol: s.name, I18n: l.i18nName, UC: l.ucName}
		}
		addrs[i] = addr
	}
	for i, s := range syms {
		registerFunc(s.fn, addrs[i])
	}
	return nil
}
