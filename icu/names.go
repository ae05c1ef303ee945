package icu

import "path/filepath"

// LibraryNames returns the platform-specific file names of the two ICU
// shared objects for a major version. An empty dir leaves resolution to
// the system loader's search path.
func LibraryNames(dir string, major int) (i18n, uc string) {
	i18n, uc = libraryNames(major)
	if dir != "" {
		i18n = filepath.Join(dir, i18n)
		uc = filepath.Join(dir, uc)
	}
	return i18n, uc
}
