// Package dl is a thin seam over the platform's dynamic loader. The icu
// package routes every open/lookup/close through here so tests can swap
// in fakes and exercise the binding logic without real shared objects.
package dl

import "errors"

// ErrNotSupported is returned on platforms without dynamic loading.
var ErrNotSupported = errors.New("dynamic library loading not supported on this platform")

// Open loads the shared object at path and returns an opaque handle.
func Open(path string) (uintptr, error) { return open(path) }

// Sym resolves a symbol, returning its address.
func Sym(handle uintptr, name string) (uintptr, error) { return sym(handle, name) }

// Close releases a handle obtained from Open.
func Close(handle uintptr) error { return closeHandle(handle) }

// Exists reports whether path names a readable file, distinguishing an
// absent library (expected, quiet) from one that fails to load.
func Exists(path string) bool { return exists(path) }
