package locgo_test

import (
	"fmt"
	"log"

	"github.com/locgo/locgo"
	"github.com/locgo/locgo/testutil"
)

// Example demonstrates resolving a collator and comparing text. With no
// ICU installation the builtin codepoint-order provider answers.
func Example() {
	registry, err := locgo.New()
	if err != nil {
		log.Fatal(err)
	}

	lib, ok := registry.Select("en", "")
	if !ok {
		log.Fatal("no provider for locale")
	}

	c, err := lib.OpenCollator("en")
	if err != nil {
		log.Fatal(err)
	}
	defer c.Close()

	cmp, err := c.Compare("apple", "banana")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(cmp < 0)
	// Output: true
}

// Example_versionSearch demonstrates pinning stored data to the collator
// version it was written under. The registry picks whichever library
// still produces that exact version.
func Example_versionSearch() {
	libs := map[int]locgo.Library{
		60: testutil.NewFakeLibrary(60, 2, "153.14"),
		70: testutil.NewFakeLibrary(70, 1, "153.120"),
	}

	registry, err := locgo.New(locgo.WithLibraryOpener(testutil.Opener(libs)))
	if err != nil {
		log.Fatal(err)
	}

	// An index was built under collator version 153.14; only the older
	// library still matches it.
	lib, ok := registry.Select("en", "153.14")
	if !ok {
		log.Fatal("no provider for stored version")
	}
	fmt.Println(lib.Version())
	// Output: 60.2
}

// Example_hooks demonstrates overriding selection for specific locales.
func Example_hooks() {
	pinned := testutil.NewFakeLibrary(67, 1, "153.97")

	registry, err := locgo.New(
		locgo.WithLibraryOpener(testutil.Opener(map[int]locgo.Library{67: pinned})),
		locgo.WithHook(func(locale, version string) locgo.Library {
			if locale == "sv" {
				return pinned
			}
			return nil
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	lib, _ := registry.Select("sv", "")
	fmt.Println(lib.Version())

	lib, _ = registry.Select("en", "")
	i18n, _ := lib.FileNames()
	fmt.Println(i18n)
	// Output:
	// 67.1
	// builtin
}

// Example_caseConversion demonstrates full case mapping through the
// builtin provider.
func Example_caseConversion() {
	registry, err := locgo.New()
	if err != nil {
		log.Fatal(err)
	}

	upper, err := registry.Builtin().ToUpper("und", "straße")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(upper)
	// Output: STRASSE
}
