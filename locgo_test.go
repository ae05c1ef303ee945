package locgo

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locgo/locgo/builtin"
	"github.com/locgo/locgo/core"
	"github.com/locgo/locgo/testutil"
)

func newTestRegistry(t *testing.T, libs map[int]core.Library, opts ...Option) *Registry {
	t.Helper()
	all := append([]Option{WithLibraryOpener(testutil.Opener(libs))}, opts...)
	r, err := New(all...)
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	t.Run("RegistersProbedMajors", func(t *testing.T) {
		libA := testutil.NewFakeLibrary(60, 2, "1.0")
		libB := testutil.NewFakeLibrary(70, 1, "2.0")
		r := newTestRegistry(t, map[int]core.Library{60: libA, 70: libB})

		got, ok := r.Library(60)
		require.True(t, ok)
		assert.Same(t, core.Library(libA), got)

		_, ok = r.Library(61)
		assert.False(t, ok)
		_, ok = r.Library(49)
		assert.False(t, ok)

		require.NotNil(t, r.Builtin())
		min, max := r.VersionRange()
		assert.Equal(t, DefaultMinMajor, min)
		assert.Equal(t, DefaultMaxMajor, max)
	})

	t.Run("InvalidRange", func(t *testing.T) {
		_, err := New(WithVersionRange(70, 60))
		assert.ErrorIs(t, err, ErrInvalidVersionRange)

		_, err = New(WithVersionRange(10, 60))
		assert.ErrorIs(t, err, ErrInvalidVersionRange)
	})

	t.Run("SearchOrderIsNewestFirst", func(t *testing.T) {
		r := newTestRegistry(t, map[int]core.Library{
			60: testutil.NewFakeLibrary(60, 0, "1.0"),
			70: testutil.NewFakeLibrary(70, 0, "2.0"),
		})

		libs := r.Libraries()
		require.Len(t, libs, 3)
		assert.Equal(t, builtin.Name, firstFileName(libs[0]))
		assert.Equal(t, 70, libs[1].Version().Major)
		assert.Equal(t, 60, libs[2].Version().Major)
	})

	t.Run("SystemLibrary", func(t *testing.T) {
		r := newTestRegistry(t, nil, WithSystemLibrary(true))
		sys, ok := r.System()
		require.True(t, ok)
		assert.NotNil(t, sys)

		r = newTestRegistry(t, nil)
		_, ok = r.System()
		assert.False(t, ok)
	})

	t.Run("MetricsCollected", func(t *testing.T) {
		mc := &BasicMetricsCollector{}
		r := newTestRegistry(t, map[int]core.Library{
			60: testutil.NewFakeLibrary(60, 0, "1.0"),
		}, WithMetricsCollector(mc))

		_, _ = r.Select("en", "nope")

		stats := mc.GetStats()
		assert.Equal(t, int64(DefaultMaxMajor-DefaultMinMajor+1), stats.LoadAttempts)
		assert.Equal(t, int64(DefaultMaxMajor-DefaultMinMajor), stats.LoadFailures)
		assert.Equal(t, int64(1), stats.SearchCount)
	})
}

func firstFileName(lib Library) string {
	i18n, _ := lib.FileNames()
	return i18n
}

func TestSelect(t *testing.T) {
	libOld := testutil.NewFakeLibrary(60, 2, "1.0")
	libNew := testutil.NewFakeLibrary(70, 1, "2.0")
	libs := map[int]core.Library{60: libOld, 70: libNew}

	t.Run("ExactVersionMatch", func(t *testing.T) {
		r := newTestRegistry(t, libs)

		got, ok := r.Select("en", "1.0")
		require.True(t, ok)
		assert.Equal(t, 60, got.Version().Major)

		got, ok = r.Select("en", "2.0")
		require.True(t, ok)
		assert.Equal(t, 70, got.Version().Major)
	})

	t.Run("NewestWinsOnTie", func(t *testing.T) {
		a := testutil.NewFakeLibrary(60, 0, "same")
		b := testutil.NewFakeLibrary(70, 0, "same")
		r := newTestRegistry(t, map[int]core.Library{60: a, 70: b})

		got, ok := r.Select("en", "same")
		require.True(t, ok)
		assert.Equal(t, 70, got.Version().Major)
	})

	t.Run("BuiltinIsLogicallyNewest", func(t *testing.T) {
		r := newTestRegistry(t, libs)

		got, ok := r.Select("en", builtin.CollatorVersion)
		require.True(t, ok)
		assert.Equal(t, builtin.Name, firstFileName(got))
	})

	t.Run("NoMatchFallsBackToBuiltin", func(t *testing.T) {
		r := newTestRegistry(t, libs)

		got, ok := r.Select("en", "9.9")
		require.True(t, ok)
		assert.Equal(t, builtin.Name, firstFileName(got))
	})

	t.Run("NoMatchWithoutBuiltinIsNotFound", func(t *testing.T) {
		r := newTestRegistry(t, libs, WithIncludeBuiltin(false))

		_, ok := r.Select("en", "9.9")
		assert.False(t, ok)
	})

	t.Run("UnopenableLocaleIsSkipped", func(t *testing.T) {
		closed := testutil.NewFakeLibrary(70, 0, "2.0")
		closed.FailLocales = map[string]bool{"sv": true}
		open := testutil.NewFakeLibrary(60, 0, "2.0")
		r := newTestRegistry(t, map[int]core.Library{60: open, 70: closed})

		got, ok := r.Select("sv", "2.0")
		require.True(t, ok)
		assert.Equal(t, 60, got.Version().Major)
	})

	t.Run("SearchByVersionDisabled", func(t *testing.T) {
		r := newTestRegistry(t, libs, WithSearchByVersion(false))

		got, ok := r.Select("en", "1.0")
		require.True(t, ok)
		assert.Equal(t, builtin.Name, firstFileName(got),
			"version search disabled: fallback applies, not the 1.0 match")
	})

	t.Run("DefaultVersionBeatsBuiltinFallback", func(t *testing.T) {
		r := newTestRegistry(t, libs, WithDefaultVersion("60"))

		// Requested version matches nothing; the default is used even
		// though its collator version differs.
		got, ok := r.Select("en", "9.9")
		require.True(t, ok)
		assert.Equal(t, 60, got.Version().Major)
	})

	t.Run("DefaultVersionUnopenableFallsThrough", func(t *testing.T) {
		failing := testutil.NewFakeLibrary(60, 0, "1.0")
		failing.FailLocales = map[string]bool{"de": true}
		r := newTestRegistry(t, map[int]core.Library{60: failing}, WithDefaultVersion("60"))

		got, ok := r.Select("de", "")
		require.True(t, ok)
		assert.Equal(t, builtin.Name, firstFileName(got))
	})

	t.Run("CollatorsAreReleased", func(t *testing.T) {
		a := testutil.NewFakeLibrary(60, 0, "1.0")
		b := testutil.NewFakeLibrary(70, 0, "2.0")
		r := newTestRegistry(t, map[int]core.Library{60: a, 70: b})

		for _, version := range []string{"1.0", "2.0", "9.9", ""} {
			_, _ = r.Select("en", version)
		}
		assert.True(t, a.Balanced(), "library 60 leaked collators")
		assert.True(t, b.Balanced(), "library 70 leaked collators")
	})
}

func TestSelectionHooks(t *testing.T) {
	libNew := testutil.NewFakeLibrary(70, 1, "2.0")
	libs := map[int]core.Library{70: libNew}

	t.Run("HookWinsRegardlessOfVersion", func(t *testing.T) {
		hooked := testutil.NewFakeLibrary(55, 0, "hooked")
		r := newTestRegistry(t, libs, WithHook(func(locale, version string) Library {
			return hooked
		}))

		got, ok := r.Select("en", "2.0")
		require.True(t, ok)
		assert.Equal(t, 55, got.Version().Major,
			"an accepted hook result bypasses version search")
	})

	t.Run("FailingHookResultIsSkipped", func(t *testing.T) {
		broken := testutil.NewFakeLibrary(55, 0, "hooked")
		broken.FailLocales = map[string]bool{"en": true}
		r := newTestRegistry(t, libs, WithHook(func(locale, version string) Library {
			return broken
		}))

		got, ok := r.Select("en", "2.0")
		require.True(t, ok)
		assert.Equal(t, 70, got.Version().Major)
	})

	t.Run("NilHookResultPasses", func(t *testing.T) {
		r := newTestRegistry(t, libs, WithHook(func(locale, version string) Library {
			return nil
		}))

		got, ok := r.Select("en", "2.0")
		require.True(t, ok)
		assert.Equal(t, 70, got.Version().Major)
	})

	t.Run("PrependHookRunsFirst", func(t *testing.T) {
		first := testutil.NewFakeLibrary(51, 0, "first")
		second := testutil.NewFakeLibrary(52, 0, "second")
		r := newTestRegistry(t, libs, WithHook(func(locale, version string) Library {
			return second
		}))
		r.PrependHook(func(locale, version string) Library { return first })

		got, ok := r.Select("en", "")
		require.True(t, ok)
		assert.Equal(t, 51, got.Version().Major)
	})

	t.Run("SystemHook", func(t *testing.T) {
		r := newTestRegistry(t, libs, WithSystemLibrary(true))
		r.PrependHook(r.SystemHook())

		sys, _ := r.System()
		got, ok := r.Select("en-US", "")
		require.True(t, ok)
		assert.Same(t, sys, got)
	})
}

func TestConfig(t *testing.T) {
	libs := map[int]core.Library{
		60: testutil.NewFakeLibrary(60, 2, "1.0"),
	}

	t.Run("SetDefaultVersion", func(t *testing.T) {
		r := newTestRegistry(t, libs)

		require.NoError(t, r.SetDefaultVersion("60"))
		assert.Equal(t, "60", r.DefaultVersion())

		require.NoError(t, r.SetDefaultVersion("60.2"))
		assert.Equal(t, "60.2", r.DefaultVersion())

		require.NoError(t, r.SetDefaultVersion(""))
		assert.Empty(t, r.DefaultVersion())
	})

	t.Run("RejectionsKeepPreviousValue", func(t *testing.T) {
		r := newTestRegistry(t, libs)
		require.NoError(t, r.SetDefaultVersion("60"))

		var cfgErr *ConfigError
		tests := []struct {
			name  string
			value string
		}{
			{"Garbage", "sixty"},
			{"TooManyParts", "60.2.1"},
			{"OutOfRange", "200"},
			{"NotLoaded", "61"},
			{"MinorMismatch", "60.9"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := r.SetDefaultVersion(tt.value)
				require.ErrorAs(t, err, &cfgErr)
				assert.NotEmpty(t, cfgErr.Hint)
				assert.Equal(t, "60", r.DefaultVersion())
			})
		}
	})

	t.Run("RuntimeToggles", func(t *testing.T) {
		r := newTestRegistry(t, libs)

		assert.True(t, r.IncludeBuiltin())
		r.SetIncludeBuiltin(false)
		assert.False(t, r.IncludeBuiltin())

		assert.True(t, r.SearchByVersion())
		r.SetSearchByVersion(false)
		assert.False(t, r.SearchByVersion())
	})

	t.Run("InvalidDefaultFailsNew", func(t *testing.T) {
		_, err := New(
			WithLibraryOpener(testutil.Opener(libs)),
			WithDefaultVersion("75"),
		)
		var cfgErr *ConfigError
		assert.ErrorAs(t, err, &cfgErr)
	})
}

func TestIntrospection(t *testing.T) {
	libOld := testutil.NewFakeLibrary(60, 2, "1.0")
	libOld.HasCLDR = true
	libOld.CLDR = "44.1"
	libNew := testutil.NewFakeLibrary(70, 1, "2.0")
	libNew.FailLocales = map[string]bool{"xx": true}
	libs := map[int]core.Library{60: libOld, 70: libNew}

	t.Run("LibraryVersions", func(t *testing.T) {
		r := newTestRegistry(t, libs)

		infos := r.LibraryVersions()
		require.Len(t, infos, 3)
		assert.Equal(t, builtin.Name, infos[0].I18nFile)
		assert.Equal(t, 70, infos[1].Version.Major)
		assert.Equal(t, 60, infos[2].Version.Major)
		assert.True(t, infos[2].HasCLDRVersion)
		assert.Equal(t, "44.1", infos[2].CLDRVersion)
		assert.False(t, infos[1].HasCLDRVersion)
	})

	t.Run("LibraryVersionsExcludesBuiltinOnRequest", func(t *testing.T) {
		r := newTestRegistry(t, libs, WithIncludeBuiltin(false))
		infos := r.LibraryVersions()
		require.Len(t, infos, 2)
		assert.Equal(t, 70, infos[0].Version.Major)
	})

	t.Run("CollatorVersions", func(t *testing.T) {
		r := newTestRegistry(t, libs)

		infos, err := r.CollatorVersions(context.Background(), "xx")
		require.NoError(t, err)
		require.Len(t, infos, 3)

		byMajor := map[int]CollatorVersionInfo{}
		for _, info := range infos {
			byMajor[info.LibraryVersion.Major] = info
		}
		assert.True(t, byMajor[60].OK)
		assert.Equal(t, "1.0", byMajor[60].CollatorVersion)
		assert.False(t, byMajor[70].OK, "library 70 cannot open xx")
		assert.Empty(t, byMajor[70].CollatorVersion)
	})

	t.Run("CollatorVersionsCancelled", func(t *testing.T) {
		r := newTestRegistry(t, libs)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := r.CollatorVersions(ctx, "en")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("LibraryCollators", func(t *testing.T) {
		r := newTestRegistry(t, libs)

		details, err := r.LibraryCollators(60)
		require.NoError(t, err)
		require.NotEmpty(t, details)
		assert.Equal(t, "root", details[0].Locale)
		for _, d := range details {
			assert.Equal(t, "1.0", d.CollatorVersion)
		}

		_, err = r.LibraryCollators(65)
		assert.Error(t, err)
	})

	t.Run("SearchDetail", func(t *testing.T) {
		r := newTestRegistry(t, libs)

		detail, ok := r.Search("en", "2.0", false)
		require.True(t, ok)
		assert.Equal(t, 70, detail.LibraryVersion.Major)
		assert.Equal(t, "2.0", detail.CollatorVersion)
		assert.True(t, detail.HasUCAVersion)

		_, ok = r.Search("en", "9.9", false)
		assert.True(t, ok, "builtin fallback still answers")
	})
}

func TestSearchLogging(t *testing.T) {
	capturing := func(t *testing.T, libs map[int]core.Library, opts ...Option) (*Registry, *bytes.Buffer) {
		t.Helper()
		var buf bytes.Buffer
		logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		r := newTestRegistry(t, libs, append(opts, WithLogger(logger))...)
		buf.Reset() // drop construction-time load logs
		return r, &buf
	}

	t.Run("DefaultRejectionOnlyWhenLoggingRequested", func(t *testing.T) {
		failing := testutil.NewFakeLibrary(60, 0, "1.0")
		failing.FailLocales = map[string]bool{"de": true}
		r, buf := capturing(t, map[int]core.Library{60: failing}, WithDefaultVersion("60"))

		_, ok := r.Search("de", "", false)
		require.True(t, ok)
		assert.Empty(t, buf.String())

		_, ok = r.Search("de", "", true)
		require.True(t, ok)
		assert.Contains(t, buf.String(), "default library cannot open locale")
	})

	t.Run("BuiltinRejectionOnlyWhenLoggingRequested", func(t *testing.T) {
		r, buf := capturing(t, nil)

		// The builtin provider rejects locale names with bytes outside
		// printable ASCII, so nothing can answer here.
		_, ok := r.Search("no\x01locale", "", false)
		require.False(t, ok)
		assert.Empty(t, buf.String())

		_, ok = r.Search("no\x01locale", "", true)
		require.False(t, ok)
		assert.Contains(t, buf.String(), "builtin provider cannot open locale")
	})
}
