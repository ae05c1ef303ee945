package locgo

import (
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

type options struct {
	libraryPath      string
	minMajor         int
	maxMajor         int
	includeBuiltin   bool
	searchByVersion  bool
	defaultVersion   string
	uax29Titlecasing bool
	systemLibrary    bool
	hooks            []SelectionHook
	opener           LibraryOpener
	logger           *Logger
	metricsCollector MetricsCollector
	searchLogLevel   slog.Level
	mismatchLogLevel slog.Level
	mismatchLogRate  rate.Limit
	mismatchLogBurst int
}

// Option configures Registry construction.
//
// Settings fixed here are immutable for the registry's lifetime; the
// subset with runtime setters (default version, include-builtin,
// search-by-version, log levels) can also be changed later.
type Option func(*options)

// WithLibraryPath configures the directory the loader takes the shared
// objects from. When empty, the system loader's search path applies.
func WithLibraryPath(dir string) Option {
	return func(o *options) {
		o.libraryPath = dir
	}
}

// WithVersionRange configures the inclusive major version range the
// loader probes. Both bounds must lie within [MinSupportedMajor,
// MaxSupportedMajor].
//
// Widening the range costs one dlopen attempt per extra major at
// construction; absent versions are cheap to skip.
func WithVersionRange(min, max int) Option {
	return func(o *options) {
		o.minMajor = min
		o.maxMajor = max
	}
}

// WithIncludeBuiltin configures whether the builtin provider
// participates in version search and fallback. It stays registered and
// reachable through Builtin either way.
func WithIncludeBuiltin(include bool) Option {
	return func(o *options) {
		o.includeBuiltin = include
	}
}

// WithSearchByVersion configures whether Select searches registered
// libraries for an exact collator version match. When disabled, only
// hooks, the default version, and the builtin fallback apply.
func WithSearchByVersion(search bool) Option {
	return func(o *options) {
		o.searchByVersion = search
	}
}

// WithDefaultVersion configures the library version selection falls
// back to before the builtin provider, as "MAJOR" or "MAJOR.MINOR".
// Validation runs after loading; New fails if no matching library was
// registered.
func WithDefaultVersion(version string) Option {
	return func(o *options) {
		o.defaultVersion = version
	}
}

// WithUAX29Titlecasing configures the builtin provider to draw title
// case word boundaries per UAX #29 instead of the default
// alphanumeric-transition rule.
func WithUAX29Titlecasing(enable bool) Option {
	return func(o *options) {
		o.uax29Titlecasing = enable
	}
}

// WithSystemLibrary enables the Go-runtime provider. It does not take
// part in version search; reach it through System, or prefer it for
// selection via SystemHook.
func WithSystemLibrary(enable bool) Option {
	return func(o *options) {
		o.systemLibrary = enable
	}
}

// WithHook installs a selection hook. Hooks run in installation order
// before any other selection rule.
func WithHook(h SelectionHook) Option {
	return func(o *options) {
		if h != nil {
			o.hooks = append(o.hooks, h)
		}
	}
}

// WithLibraryOpener replaces the loader's per-version opener. Intended
// for tests injecting synthetic libraries.
func WithLibraryOpener(opener LibraryOpener) Option {
	return func(o *options) {
		o.opener = opener
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithLogLevels configures the levels used for search outcome logs and
// version mismatch diagnostics.
func WithLogLevels(search, mismatch slog.Level) Option {
	return func(o *options) {
		o.searchLogLevel = search
		o.mismatchLogLevel = mismatch
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// loads and searches. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		minMajor:         DefaultMinMajor,
		maxMajor:         DefaultMaxMajor,
		includeBuiltin:   true,
		searchByVersion:  true,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		searchLogLevel:   slog.LevelDebug,
		mismatchLogLevel: slog.LevelWarn,
		mismatchLogRate:  rate.Every(time.Second),
		mismatchLogBurst: 5,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
