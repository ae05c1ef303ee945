//go:build !darwin && !windows

package icu

import "fmt"

func libraryNames(major int) (string, string) {
	return fmt.Sprintf("libicui18n.so.%d", major),
		fmt.Sprintf("libicuuc.so.%d", major)
}
