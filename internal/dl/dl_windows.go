//go:build windows

package dl

import (
	"os"

	"golang.org/x/sys/windows"
)

func open(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func sym(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func closeHandle(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
