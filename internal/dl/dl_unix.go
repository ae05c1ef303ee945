//go:build darwin || freebsd || linux

package dl

import (
	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"
)

func open(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
}

func sym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeHandle(handle uintptr) error {
	return purego.Dlclose(handle)
}

func exists(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}
