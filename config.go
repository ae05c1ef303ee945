package locgo

import (
	"fmt"
	"log/slog"

	"github.com/locgo/locgo/core"
)

// SetDefaultVersion changes the version selection falls back to before
// the builtin provider. The value is "MAJOR" or "MAJOR.MINOR", or empty
// to clear. A rejected value leaves the previous setting in effect.
func (r *Registry) SetDefaultVersion(value string) error {
	if value == "" {
		r.mu.Lock()
		r.defaultVersion = Version{}
		r.defaultRaw = ""
		r.mu.Unlock()
		return nil
	}

	v, err := core.ParseVersion(value)
	if err != nil {
		return &ConfigError{
			Setting: "default_version",
			Value:   value,
			Hint:    "expected MAJOR or MAJOR.MINOR, e.g. \"67\" or \"67.1\"",
			cause:   err,
		}
	}
	if v.Major < r.min || v.Major > r.max {
		return &ConfigError{
			Setting: "default_version",
			Value:   value,
			Hint:    fmt.Sprintf("major version must be between %d and %d", r.min, r.max),
		}
	}
	lib, ok := r.Library(v.Major)
	if !ok {
		return &ConfigError{
			Setting: "default_version",
			Value:   value,
			Hint:    fmt.Sprintf("no library with major version %d is loaded", v.Major),
		}
	}
	if v.Minor >= 0 && lib.Version().Minor != v.Minor {
		return &ConfigError{
			Setting: "default_version",
			Value:   value,
			Hint:    fmt.Sprintf("loaded library reports version %s", lib.Version()),
		}
	}

	r.mu.Lock()
	r.defaultVersion = v
	r.defaultRaw = value
	r.mu.Unlock()
	return nil
}

// DefaultVersion reports the configured default version, empty when
// unset.
func (r *Registry) DefaultVersion() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultRaw
}

// SetIncludeBuiltin changes whether the builtin provider participates
// in version search and fallback.
func (r *Registry) SetIncludeBuiltin(include bool) {
	r.mu.Lock()
	r.includeBuiltin = include
	r.mu.Unlock()
}

// IncludeBuiltin reports the current setting.
func (r *Registry) IncludeBuiltin() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.includeBuiltin
}

// SetSearchByVersion changes whether Select searches for exact collator
// version matches.
func (r *Registry) SetSearchByVersion(search bool) {
	r.mu.Lock()
	r.searchByVersion = search
	r.mu.Unlock()
}

// SearchByVersion reports the current setting.
func (r *Registry) SearchByVersion() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.searchByVersion
}

// SetSearchLogLevel changes the level search outcomes log at.
func (r *Registry) SetSearchLogLevel(level slog.Level) {
	r.mu.Lock()
	r.searchLogLevel = level
	r.mu.Unlock()
}

// SetMismatchLogLevel changes the level version mismatch diagnostics
// log at.
func (r *Registry) SetMismatchLogLevel(level slog.Level) {
	r.mu.Lock()
	r.mismatchLogLevel = level
	r.mu.Unlock()
}
