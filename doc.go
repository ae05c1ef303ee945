// Package locgo provides pluggable collation and locale services for
// embedded databases.
//
// Sort order is persistent state: indexes and partition bounds built
// under one collation definition silently corrupt when the definition
// drifts underneath them. Locgo lets a process keep several versions of
// the ICU libraries loaded side by side, pick the one whose collator
// version matches what was recorded when the data was written, and fall
// back to stable built-in semantics when nothing matches.
//
// # Quick Start
//
//	reg, err := locgo.New(
//	    locgo.WithLibraryPath("/opt/icu"),
//	    locgo.WithDefaultVersion("67"),
//	)
//	if err != nil {
//	    panic(err)
//	}
//
//	lib, ok := reg.Select("en-US", "153.14")
//	if !ok {
//	    lib = reg.Builtin()
//	}
//	coll, err := lib.OpenCollator("en-US")
//	if err != nil {
//	    panic(err)
//	}
//	defer coll.Close()
//	cmp, _ := coll.Compare("straße", "strasse")
//
// # Providers
//
// Three provider families implement the same Library interface:
//
//   - icu: one Library per dynamically loaded ICU major version
//   - builtin: dependency-free codepoint order plus full Unicode casing
//   - system: the Go runtime's own collation tables (x/text)
//
// The builtin provider is always registered and is logically newest in
// version searches, so data written against it keeps resolving to it.
//
// # Selection
//
// Select walks installed hooks, then searches registered libraries
// newest first for an exact collator version match, then tries the
// configured default version, then the builtin fallback. It reports
// ok=false rather than failing, leaving policy to the caller.
package locgo
