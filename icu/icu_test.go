package icu

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubSeams(t *testing.T) {
	t.Helper()
	origOpen, origSym, origClose, origReg := dlOpen, dlSym, dlClose, registerFunc
	t.Cleanup(func() {
		dlOpen, dlSym, dlClose, registerFunc = origOpen, origSym, origClose, origReg
	})
}

func TestLibraryNames(t *testing.T) {
	i18n, uc := LibraryNames("", 67)
	assert.Contains(t, i18n, "67")
	assert.Contains(t, uc, "67")
	assert.NotEqual(t, i18n, uc)

	di18n, duc := LibraryNames("/opt/icu", 67)
	assert.Contains(t, di18n, "/opt/icu")
	assert.Contains(t, duc, "/opt/icu")
	assert.True(t, strings.HasSuffix(di18n, i18n))
	assert.True(t, strings.HasSuffix(duc, uc))
}

func TestLookup(t *testing.T) {
	stubSeams(t)
	dlSym = func(h uintptr, name string) (uintptr, error) {
		switch name {
		case "foo_67":
			return 0x100, nil
		case "foo":
			return 0x200, nil
		case "bar":
			return 0x300, nil
		}
		return 0, errors.New("symbol not found")
	}

	handles := []uintptr{1, 2}

	// The version-suffixed export wins over the plain one.
	assert.Equal(t, uintptr(0x100), lookup(handles, "foo", 67))

	// Fallback to the plain name for builds without renaming.
	assert.Equal(t, uintptr(0x300), lookup(handles, "bar", 67))

	assert.Equal(t, uintptr(0), lookup(handles, "baz", 67))
}

func TestBindAllOrNothing(t *testing.T) {
	stubSeams(t)

	var registered int
	registerFunc = func(fptr any, addr uintptr) { registered++ }

	t.Run("MissingSymbolAbortsBeforeBinding", func(t *testing.T) {
		registered = 0
		dlSym = func(h uintptr, name string) (uintptr, error) {
			if strings.HasPrefix(name, "ucol_nextSortKeyPart") {
				return 0, errors.New("symbol not found")
			}
			return 0x1000, nil
		}

		lib := &Library{i18nName: "i18n.so", ucName: "uc.so"}
		err := lib.bind(1, 2, 67)

		var symErr *SymbolError
		require.ErrorAs(t, err, &symErr)
		assert.Equal(t, "ucol_nextSortKeyPart", symErr.Symbol)
		assert.Equal(t, "i18n.so", symErr.I18n)
		assert.Zero(t, registered, "no trampoline may be generated on failure")
	})

	t.Run("CompleteExportBindsEverything", func(t *testing.T) {
		registered = 0
		dlSym = func(h uintptr, name string) (uintptr, error) { return 0x1000, nil }

		lib := &Library{}
		require.NoError(t, lib.bind(1, 2, 67))
		assert.Greater(t, registered, 20)
	})
}

func TestOpen(t *testing.T) {
	stubSeams(t)

	t.Run("NotInstalled", func(t *testing.T) {
		dlOpen = func(path string) (uintptr, error) { return 0, errors.New("no such file") }

		_, err := Open(99, "")
		assert.ErrorIs(t, err, ErrNotInstalled)
	})

	t.Run("CompanionMissingClosesFirstHandle", func(t *testing.T) {
		var closed []uintptr
		dlOpen = func(path string) (uintptr, error) {
			if strings.Contains(path, "uc") {
				return 0, errors.New("no such file")
			}
			return 7, nil
		}
		dlClose = func(h uintptr) error {
			closed = append(closed, h)
			return nil
		}

		_, err := Open(67, "")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotInstalled)
		assert.Equal(t, []uintptr{7}, closed)
	})

	t.Run("SelfReportedVersionWins", func(t *testing.T) {
		dlOpen = func(path string) (uintptr, error) { return 7, nil }
		dlSym = func(h uintptr, name string) (uintptr, error) { return 0x1000, nil }
		registerFunc = func(fptr any, addr uintptr) {
			if f, ok := fptr.(*func(info []byte)); ok {
				*f = func(info []byte) {
					info[0] = 66 // a mislabeled file: asked for 67, got 66
					info[1] = 1
				}
			}
		}

		lib, err := Open(67, "")
		require.NoError(t, err)
		assert.Equal(t, 66, lib.Version().Major)
		assert.Equal(t, 1, lib.Version().Minor)
	})
}

func TestStatusErr(t *testing.T) {
	lib := &Library{}
	lib.fn.errorName = func(code int32) string { return fmt.Sprintf("U_ERROR_%d", code) }

	assert.NoError(t, lib.statusErr("op", 0))
	assert.NoError(t, lib.statusErr("op", -124)) // warnings are success

	err := lib.statusErr("ucol_open", 1)
	require.Error(t, err)
	var icuErr *Error
	require.ErrorAs(t, err, &icuErr)
	assert.Equal(t, "ucol_open", icuErr.Op)
	assert.Equal(t, int32(1), icuErr.Code)
	assert.Contains(t, err.Error(), "U_ERROR_1")
}
