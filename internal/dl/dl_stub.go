//go:build !darwin && !freebsd && !linux && !windows

package dl

import "os"

func open(string) (uintptr, error) { return 0, ErrNotSupported }

func sym(uintptr, string) (uintptr, error) { return 0, ErrNotSupported }

func closeHandle(uintptr) error { return ErrNotSupported }

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
