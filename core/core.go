// Package core defines the provider contract shared by the locgo registry
// and its backend implementations (icu, builtin, system).
//
// Backends live in their own packages and must not import the root package,
// so the types every side agrees on are collected here.
package core

import "errors"

// ErrUnsupported is returned by providers for operations their backend
// cannot perform (for example incremental sort keys on the builtin
// provider).
var ErrUnsupported = errors.New("operation not supported by this provider")

// Library is one loaded collation provider: a dynamically loaded ICU
// version, the builtin dependency-free provider, or the Go runtime
// ("system") provider.
//
// A Library is immutable once constructed and safe for concurrent use.
// Its dynamically loaded resources, if any, are held for the lifetime of
// the process.
type Library interface {
	// Version reports the provider's self-reported release version.
	Version() Version

	// UnicodeVersion reports the Unicode version the provider's data is
	// derived from, in canonical dotted form.
	UnicodeVersion() string

	// CLDRVersion reports the CLDR data version, if the backend has one.
	CLDRVersion() (string, bool)

	// OpenCollator opens a collator for the given locale. The caller owns
	// the returned collator and must close it exactly once. Collators are
	// not shared across callers.
	OpenCollator(locale string) (Collator, error)

	// Locales enumerates the locales the provider knows about. The list
	// may be empty for backends that accept arbitrary locale strings.
	Locales() []string

	// ToLower, ToUpper and ToTitle perform locale-aware case conversion
	// of UTF-8 text.
	ToLower(locale, s string) (string, error)
	ToUpper(locale, s string) (string, error)
	ToTitle(locale, s string) (string, error)

	// FileNames reports the names of the two shared objects backing the
	// provider (i18n and uc components). Providers not backed by shared
	// objects report a fixed descriptive name for both.
	FileNames() (i18n, uc string)
}

// LocaleNamer is an optional Library capability: conversion of a locale
// identifier to a BCP 47 language tag.
type LocaleNamer interface {
	LanguageTag(locale string) (string, error)
}

// Collator is an opaque, locale-specific ordering object obtained from a
// Library. It must be closed exactly once; Close is safe to call again
// but reports nothing useful after the first call.
type Collator interface {
	// Version reports the collator version in canonical string form. Two
	// collators with equal version strings order text identically.
	Version() string

	// UCAVersion reports the UCA version implemented by the collator, if
	// the backend exposes one.
	UCAVersion() (string, bool)

	// Compare orders a against b, returning a value <0, 0 or >0.
	Compare(a, b string) (int, error)

	// SortKey returns a binary sort key for s. Keys from the same
	// collator compare bytewise in collation order.
	SortKey(s string) ([]byte, error)

	// SortKeyParts returns an incremental sort key extractor for s, for
	// backends that support streaming key generation. Backends that do
	// not return ErrUnsupported.
	SortKeyParts(s string) (KeyIter, error)

	Close() error
}

// KeyIter produces a sort key in caller-sized chunks.
type KeyIter interface {
	// Next fills dst with the next chunk of the sort key and returns the
	// number of bytes written. done is true once the key is exhausted.
	Next(dst []byte) (n int, done bool, err error)
}
