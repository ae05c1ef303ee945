package locgo

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/time/rate"

	"github.com/locgo/locgo/builtin"
	"github.com/locgo/locgo/core"
	"github.com/locgo/locgo/icu"
	"github.com/locgo/locgo/system"
)

// Version bounds for registry slots. The range a registry actually
// probes is configurable inside these.
const (
	MinSupportedMajor = 50
	MaxSupportedMajor = 100

	DefaultMinMajor = 50
	DefaultMaxMajor = 77
)

// Re-exported contract types, so most callers only import this package.
type (
	Version  = core.Version
	Library  = core.Library
	Collator = core.Collator
	KeyIter  = core.KeyIter
)

// ParseVersion parses "MAJOR" or "MAJOR.MINOR".
func ParseVersion(s string) (Version, error) { return core.ParseVersion(s) }

// SelectionHook proposes a library for a locale and wanted collator
// version, or returns nil to pass. Hooks run before any other
// selection rule; a proposal is accepted iff it can open a collator for
// the locale, regardless of version.
type SelectionHook func(locale, version string) Library

// LibraryOpener loads the provider for one major version. The default
// opener binds the ICU shared objects via icu.Open; tests substitute
// synthetic libraries.
type LibraryOpener func(major int) (Library, error)

// Registry holds every loaded collation provider. Slots are fixed at
// construction and safe for unsynchronized concurrent reads; the
// runtime-settable knobs are mutex-guarded.
type Registry struct {
	logger  *Logger
	metrics MetricsCollector
	min     int
	max     int
	slots   []Library // majors min..max, builtin in the last slot
	system  Library

	mu               sync.RWMutex
	hooks            []SelectionHook
	defaultVersion   Version
	defaultRaw       string
	includeBuiltin   bool
	searchByVersion  bool
	searchLogLevel   slog.Level
	mismatchLogLevel slog.Level

	mismatchLimit *rate.Limiter
}

// New constructs a registry: the builtin provider is registered
// unconditionally, then every major in the configured range is probed
// newest first. A version that is not installed leaves its slot empty;
// only a broken builtin provider fails construction.
func New(optFns ...Option) (*Registry, error) {
	o := applyOptions(optFns)

	if o.minMajor < MinSupportedMajor || o.maxMajor > MaxSupportedMajor || o.minMajor > o.maxMajor {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidVersionRange, o.minMajor, o.maxMajor)
	}

	b, err := builtin.New(func(bo *builtin.Options) {
		bo.UAX29Titlecasing = o.uax29Titlecasing
	})
	if err != nil {
		return nil, fmt.Errorf("builtin provider: %w", err)
	}

	r := &Registry{
		logger:           o.logger,
		metrics:          o.metricsCollector,
		min:              o.minMajor,
		max:              o.maxMajor,
		slots:            make([]Library, o.maxMajor-o.minMajor+2),
		hooks:            o.hooks,
		includeBuiltin:   o.includeBuiltin,
		searchByVersion:  o.searchByVersion,
		searchLogLevel:   o.searchLogLevel,
		mismatchLogLevel: o.mismatchLogLevel,
		mismatchLimit:    rate.NewLimiter(o.mismatchLogRate, o.mismatchLogBurst),
	}
	r.slots[r.builtinSlot()] = b

	if o.systemLibrary {
		s, err := system.New()
		if err != nil {
			return nil, fmt.Errorf("system provider: %w", err)
		}
		r.system = s
	}

	opener := o.opener
	if opener == nil {
		dir := o.libraryPath
		opener = func(major int) (Library, error) { return icu.Open(major, dir) }
	}
	r.load(opener)

	if o.defaultVersion != "" {
		if err := r.SetDefaultVersion(o.defaultVersion); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) builtinSlot() int { return len(r.slots) - 1 }

// Builtin returns the always-registered builtin provider.
func (r *Registry) Builtin() Library { return r.slots[r.builtinSlot()] }

// System returns the Go-runtime provider, when enabled.
func (r *Registry) System() (Library, bool) {
	if r.system == nil {
		return nil, false
	}
	return r.system, true
}

// SystemHook returns a selection hook proposing the system provider for
// every locale it can open. Install it with PrependHook to prefer the
// runtime's tables over version search.
func (r *Registry) SystemHook() SelectionHook {
	return func(string, string) Library { return r.system }
}

// Library returns the provider registered for an ICU major version.
func (r *Registry) Library(major int) (Library, bool) {
	if major < r.min || major > r.max {
		return nil, false
	}
	lib := r.slots[major-r.min]
	if lib == nil {
		return nil, false
	}
	return lib, true
}

// VersionRange reports the probed major version range.
func (r *Registry) VersionRange() (min, max int) { return r.min, r.max }

// Libraries returns the registered providers in search order: builtin
// first when included, then ICU majors newest first.
func (r *Registry) Libraries() []Library {
	r.mu.RLock()
	include := r.includeBuiltin
	r.mu.RUnlock()
	return r.searchOrder(include)
}

func (r *Registry) searchOrder(includeBuiltin bool) []Library {
	libs := make([]Library, 0, len(r.slots))
	if includeBuiltin {
		libs = append(libs, r.slots[r.builtinSlot()])
	}
	for i := r.builtinSlot() - 1; i >= 0; i-- {
		if r.slots[i] != nil {
			libs = append(libs, r.slots[i])
		}
	}
	return libs
}

// PrependHook installs a selection hook ahead of the existing ones, so
// the most recently installed hook runs first.
func (r *Registry) PrependHook(h SelectionHook) {
	if h == nil {
		return
	}
	r.mu.Lock()
	r.hooks = append([]SelectionHook{h}, r.hooks...)
	r.mu.Unlock()
}
