package locgo

import (
	"context"
	"log/slog"
	"time"
)

// CollatorDetail describes a collator opened from one library.
type CollatorDetail struct {
	LibraryVersion  Version
	CollatorVersion string
	UCAVersion      string
	HasUCAVersion   bool
}

// Select resolves the library to use for a locale whose data was
// written under the given collator version. An empty version means any
// provider will do. The zero result (ok == false) is not an error; it
// means no provider satisfied the policy and the caller decides what
// that implies.
func (r *Registry) Select(locale, version string) (Library, bool) {
	lib, _, ok := r.search(locale, version, false)
	return lib, ok
}

// Search resolves like Select but reports the winning collator's
// detail. With logOK true the outcome is logged at the search level,
// plus a rate-limited mismatch diagnostic when a requested version was
// not matched exactly.
func (r *Registry) Search(locale, version string, logOK bool) (CollatorDetail, bool) {
	_, detail, ok := r.search(locale, version, logOK)
	return detail, ok
}

func (r *Registry) search(locale, version string, logOK bool) (Library, CollatorDetail, bool) {
	start := time.Now()

	r.mu.RLock()
	hooks := r.hooks
	includeBuiltin := r.includeBuiltin
	searchByVersion := r.searchByVersion
	defaultVersion := r.defaultVersion
	searchLevel := r.searchLogLevel
	mismatchLevel := r.mismatchLogLevel
	r.mu.RUnlock()

	lib := r.selectLibrary(locale, version, hooks, includeBuiltin, searchByVersion, defaultVersion, searchLevel, logOK)
	if lib == nil {
		r.metrics.RecordSearch(false, time.Since(start))
		return nil, CollatorDetail{}, false
	}

	detail, err := describeCollator(lib, locale)
	if err != nil {
		r.metrics.RecordSearch(false, time.Since(start))
		return nil, CollatorDetail{}, false
	}

	if logOK {
		r.logger.LogSearchResult(searchLevel, locale, version,
			lib.Version().String(), detail.CollatorVersion)
		if version != "" && detail.CollatorVersion != version && r.mismatchLimit.Allow() {
			r.logger.LogVersionMismatch(mismatchLevel,
				"collator for "+locale, version, detail.CollatorVersion)
		}
	}
	r.metrics.RecordSearch(true, time.Since(start))
	return lib, detail, true
}

// selectLibrary applies the selection policy: hooks, exact version
// search newest first, the configured default, then builtin. Rejection
// diagnostics are gated on logOK so a search with logging disabled has
// no side effects.
func (r *Registry) selectLibrary(locale, version string, hooks []SelectionHook, includeBuiltin, searchByVersion bool, defaultVersion Version, searchLevel slog.Level, logOK bool) Library {
	for _, h := range hooks {
		lib := h(locale, version)
		if lib == nil {
			continue
		}
		if opensLocale(lib, locale) {
			return lib
		}
	}

	if searchByVersion && version != "" {
		for _, lib := range r.searchOrder(includeBuiltin) {
			v, err := collatorVersion(lib, locale)
			if err != nil {
				continue
			}
			if v == version {
				return lib
			}
		}
	}

	if defaultVersion.Major != 0 {
		if lib, ok := r.Library(defaultVersion.Major); ok {
			if opensLocale(lib, locale) {
				return lib
			}
			if logOK {
				r.logger.Log(context.Background(), searchLevel, "default library cannot open locale",
					"locale", locale,
					"default_version", defaultVersion.String(),
				)
			}
		}
	}

	if includeBuiltin {
		b := r.Builtin()
		if opensLocale(b, locale) {
			return b
		}
		if logOK {
			r.logger.Log(context.Background(), searchLevel, "builtin provider cannot open locale",
				"locale", locale,
				"builtin_version", b.Version().String(),
			)
		}
	}
	return nil
}

// withCollator opens a collator, runs fn, and releases the collator on
// every path.
func withCollator(lib Library, locale string, fn func(c Collator) error) error {
	c, err := lib.OpenCollator(locale)
	if err != nil {
		return err
	}
	defer c.Close()
	return fn(c)
}

func opensLocale(lib Library, locale string) bool {
	return withCollator(lib, locale, func(Collator) error { return nil }) == nil
}

func collatorVersion(lib Library, locale string) (string, error) {
	var v string
	err := withCollator(lib, locale, func(c Collator) error {
		v = c.Version()
		return nil
	})
	return v, err
}

func describeCollator(lib Library, locale string) (CollatorDetail, error) {
	d := CollatorDetail{LibraryVersion: lib.Version()}
	err := withCollator(lib, locale, func(c Collator) error {
		d.CollatorVersion = c.Version()
		d.UCAVersion, d.HasUCAVersion = c.UCAVersion()
		return nil
	})
	return d, err
}
