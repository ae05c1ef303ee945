package locgo

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/locgo/locgo/core"
)

// LibraryVersionInfo describes one registered library.
type LibraryVersionInfo struct {
	Version        Version
	UnicodeVersion string
	CLDRVersion    string
	HasCLDRVersion bool
	I18nFile       string
	UCFile         string
}

// CollatorVersionInfo is one library's answer for a locale. OK is false
// when the library cannot open the locale; the version fields are then
// empty.
type CollatorVersionInfo struct {
	LibraryVersion  Version
	CollatorVersion string
	UCAVersion      string
	HasUCAVersion   bool
	OK              bool
}

// LocaleCollatorDetail describes one locale a library has data for.
type LocaleCollatorDetail struct {
	Locale          string
	LanguageTag     string
	CollatorVersion string
	UCAVersion      string
	HasUCAVersion   bool
}

// LibraryVersions describes the registered libraries in search order:
// builtin first when included, then ICU majors newest first.
func (r *Registry) LibraryVersions() []LibraryVersionInfo {
	libs := r.Libraries()
	infos := make([]LibraryVersionInfo, 0, len(libs))
	for _, lib := range libs {
		info := LibraryVersionInfo{
			Version:        lib.Version(),
			UnicodeVersion: lib.UnicodeVersion(),
		}
		info.CLDRVersion, info.HasCLDRVersion = lib.CLDRVersion()
		info.I18nFile, info.UCFile = lib.FileNames()
		infos = append(infos, info)
	}
	return infos
}

// CollatorVersions reports, for every registered library, the collator
// version it would produce for the locale. Libraries are queried
// concurrently; the registry is read-only so the fan-out needs no
// locking. The only error is context cancellation.
func (r *Registry) CollatorVersions(ctx context.Context, locale string) ([]CollatorVersionInfo, error) {
	libs := r.Libraries()
	infos := make([]CollatorVersionInfo, len(libs))

	g, ctx := errgroup.WithContext(ctx)
	for i, lib := range libs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			infos[i] = CollatorVersionInfo{LibraryVersion: lib.Version()}
			detail, err := describeCollator(lib, locale)
			if err != nil {
				return nil
			}
			infos[i].CollatorVersion = detail.CollatorVersion
			infos[i].UCAVersion = detail.UCAVersion
			infos[i].HasUCAVersion = detail.HasUCAVersion
			infos[i].OK = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}

// LibraryCollators enumerates the locales the library registered for an
// ICU major version has data for, the root locale first, each with its
// collator detail. Locales the library reports but cannot open, and
// names outside printable ASCII, are skipped.
func (r *Registry) LibraryCollators(major int) ([]LocaleCollatorDetail, error) {
	lib, ok := r.Library(major)
	if !ok {
		return nil, fmt.Errorf("no library with major version %d is loaded", major)
	}

	locales := append([]string{"root"}, lib.Locales()...)
	details := make([]LocaleCollatorDetail, 0, len(locales))
	for _, locale := range locales {
		if !asciiName(locale) {
			continue
		}
		d := LocaleCollatorDetail{Locale: locale, LanguageTag: locale}
		if namer, ok := lib.(core.LocaleNamer); ok {
			if tag, err := namer.LanguageTag(locale); err == nil {
				d.LanguageTag = tag
			}
		}
		err := withCollator(lib, locale, func(c Collator) error {
			d.CollatorVersion = c.Version()
			d.UCAVersion, d.HasUCAVersion = c.UCAVersion()
			return nil
		})
		if err != nil {
			continue
		}
		details = append(details, d)
	}
	return details, nil
}

func asciiName(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] >= 0x7F {
			return false
		}
	}
	return true
}
