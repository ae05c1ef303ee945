//go:build windows

package icu

import "fmt"

func libraryNames(major int) (string, string) {
	return fmt.Sprintf("icuin%d.dll", major),
		fmt.Sprintf("icuuc%d.dll", major)
}
