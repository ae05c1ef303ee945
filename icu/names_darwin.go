//go:build darwin

package icu

import "fmt"

func libraryNames(major int) (string, string) {
	return fmt.Sprintf("libicui18n.%d.dylib", major),
		fmt.Sprintf("libicuuc.%d.dylib", major)
}
