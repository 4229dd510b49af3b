// FILE: lixenwraith/xrmconfig/resolve_test.go

package xrmconfig

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/lixenwraith/xrmconfig/xrdb"
)

type failingSource struct {
	err error
}

func (s failingSource) Open() (xrdb.Store, error) { return nil, s.err }

type closeFailStore struct {
	*xrdb.Database
}

func (closeFailStore) Close() error { return errors.New("display gone") }

type closeFailSource struct {
	db *xrdb.Database
}

func (s closeFailSource) Open() (xrdb.Store, error) { return closeFailStore{s.db}, nil }

func TestLoadPrecedence(t *testing.T) {
	lines := uint32(5)
	r := New(UintOption("lines", &lines))

	require.NoError(t, r.ApplyResources(xrdb.StringSource("rofi.lines: 10\n")))
	assert.Equal(t, uint32(10), lines)

	require.NoError(t, r.ApplyCmdline([]string{"-lines", "3"}))
	assert.Equal(t, uint32(3), lines)

	t.Run("LoadOrder", func(t *testing.T) {
		lines := uint32(5)
		r := New(UintOption("lines", &lines))
		require.NoError(t, r.Load(xrdb.StringSource("rofi.lines: 10\n"), []string{"-lines", "3"}))
		assert.Equal(t, uint32(3), lines)
	})

	t.Run("ResourceOnly", func(t *testing.T) {
		lines := uint32(5)
		r := New(UintOption("lines", &lines))
		require.NoError(t, r.Load(xrdb.StringSource("rofi.lines: 10\n"), nil))
		assert.Equal(t, uint32(10), lines)
	})
}

func TestLoadUnsetKeepsDefaults(t *testing.T) {
	s := DefaultSettings()
	want := *s
	r := New(BuiltinOptions(s)...)

	require.NoError(t, r.Load(xrdb.StringSource("rofi.unrelated: 1\n"), []string{"-unrelated", "2"}))
	assert.Equal(t, want, *s)
	_, owned := r.Owned("font")
	assert.False(t, owned)
}

func TestLoadStringOwnership(t *testing.T) {
	var log releaseLog
	font := "mono 12"
	r := newRecordingRegistry(&log, StringOption("font", &font))

	require.NoError(t, r.ApplyResources(xrdb.StringSource("rofi.font: mono 10\n")))
	assert.Equal(t, "mono 10", font)
	v, owned := r.Owned("font")
	assert.True(t, owned)
	assert.Equal(t, "mono 10", v)
	assert.Empty(t, log.entries, "the compiled-in default is never released")

	require.NoError(t, r.ApplyCmdline([]string{"-font", "sans 8"}))
	assert.Equal(t, "sans 8", font)
	assert.Equal(t, []string{"font=mono 10"}, log.entries)
	_, owned = r.Owned("font")
	assert.False(t, owned, "command-line strings are not owned")

	require.NoError(t, r.Close())
	assert.Equal(t, []string{"font=mono 10"}, log.entries, "nothing left to release")
}

func TestLoadStringTwice(t *testing.T) {
	var log releaseLog
	var font string
	r := newRecordingRegistry(&log, StringOption("font", &font))

	src := xrdb.StringSource("rofi.font: mono 10\n")
	require.NoError(t, r.ApplyResources(src))
	require.NoError(t, r.ApplyResources(xrdb.StringSource("rofi.font: mono 11\n")))
	assert.Equal(t, "mono 11", font)
	assert.Equal(t, []string{"font=mono 10"}, log.entries)

	require.NoError(t, r.Close())
	assert.Equal(t, []string{"font=mono 10", "font=mono 11"}, log.entries)
}

func TestLoadClassLookup(t *testing.T) {
	var font string
	opts := DefaultOptions()
	opts.NamePrefix = "rofi"
	opts.ClassPrefix = "Rofi"
	r := NewWithOptions(opts, StringOption("font", &font))

	require.NoError(t, r.ApplyResources(xrdb.StringSource("Rofi.font: class font\n")))
	assert.Equal(t, "class font", font)

	require.NoError(t, r.ApplyResources(xrdb.StringSource("Rofi.font: class font\nrofi.font: name font\n")))
	assert.Equal(t, "name font", font, "name bindings beat class bindings")
}

func TestLoadWildcards(t *testing.T) {
	var fg string
	r := New(StringOption("foreground", &fg))
	require.NoError(t, r.ApplyResources(xrdb.StringSource("*foreground: #fff\n")))
	assert.Equal(t, "#fff", fg)
}

func TestLoadAllTypes(t *testing.T) {
	var (
		opacity uint32
		yoffset int32
		sidebar bool
		sep     byte
		term    string
	)
	static := []Option{
		UintOption("opacity", &opacity),
		IntOption("yoffset", &yoffset),
		BoolOption("sidebar-mode", &sidebar),
		CharOption("sep", &sep),
		StringOption("terminal", &term),
	}

	t.Run("Resources", func(t *testing.T) {
		r := New(static...)
		db := "rofi.opacity: 80\nrofi.yoffset: -20\nrofi.sidebar-mode: TRUE\nrofi.sep: \\\\t\nrofi.terminal: urxvt\n"
		require.NoError(t, r.ApplyResources(xrdb.StringSource(db)))
		assert.Equal(t, uint32(80), opacity)
		assert.Equal(t, int32(-20), yoffset)
		assert.True(t, sidebar)
		assert.Equal(t, byte('\t'), sep)
		assert.Equal(t, "urxvt", term)
	})

	t.Run("Cmdline", func(t *testing.T) {
		r := New(static...)
		args := []string{"-opacity", "90", "-yoffset", "7", "-sidebar-mode", "-sep", "|", "-terminal", "xterm"}
		require.NoError(t, r.ApplyCmdline(args))
		assert.Equal(t, uint32(90), opacity)
		assert.Equal(t, int32(7), yoffset)
		assert.True(t, sidebar)
		assert.Equal(t, byte('|'), sep)
		assert.Equal(t, "xterm", term)
	})

	t.Run("ResourceFalse", func(t *testing.T) {
		sidebar = true
		r := New(static...)
		require.NoError(t, r.ApplyResources(xrdb.StringSource("rofi.sidebar-mode: yes\n")))
		assert.False(t, sidebar, "anything but true is false")
	})
}

func TestLoadCmdlineMissingValue(t *testing.T) {
	lines := uint32(5)
	r := New(UintOption("lines", &lines))
	require.NoError(t, r.ApplyCmdline([]string{"-lines"}))
	assert.Equal(t, uint32(5), lines)
}

func TestLoadDynamic(t *testing.T) {
	var log releaseLog
	lines := uint32(5)
	r := newRecordingRegistry(&log, UintOption("lines", &lines))

	var modi string
	var sep byte = '\n'
	require.NoError(t, r.Register(TypeString, "combi-modi", &modi))
	require.NoError(t, r.Register(TypeChar, "sep", &sep))

	t.Run("StaticPassesIgnoreDynamic", func(t *testing.T) {
		require.NoError(t, r.ApplyResources(xrdb.StringSource("rofi.combi-modi: window\n")))
		require.NoError(t, r.ApplyCmdline([]string{"-sep", "|"}))
		assert.Empty(t, modi)
		assert.Equal(t, byte('\n'), sep)
	})

	t.Run("DynamicPasses", func(t *testing.T) {
		require.NoError(t, r.ApplyDynamicResources(xrdb.StringSource("rofi.combi-modi: window\nrofi.lines: 9\n")))
		assert.Equal(t, "window", modi)
		assert.Equal(t, uint32(5), lines, "dynamic passes leave the static table alone")

		require.NoError(t, r.ApplyDynamicCmdline([]string{"-sep", "|"}))
		assert.Equal(t, byte('|'), sep)
	})

	t.Run("Load", func(t *testing.T) {
		require.NoError(t, r.Load(xrdb.StringSource("rofi.combi-modi: drun\nrofi.lines: 9\n"), []string{"-combi-modi", "ssh"}))
		assert.Equal(t, uint32(9), lines)
		assert.Equal(t, "ssh", modi)
		assert.Equal(t, []string{"combi-modi=window", "combi-modi=drun"}, log.entries)
	})
}

func TestLoadAliases(t *testing.T) {
	var fg string
	r := New(StringOption("foreground", &fg), StringOption("fg", &fg))

	require.NoError(t, r.ApplyResources(xrdb.StringSource("rofi.foreground: #111\nrofi.fg: #222\n")))
	assert.Equal(t, "#222", fg, "the later alias is applied last")

	require.NoError(t, r.ApplyCmdline([]string{"-foreground", "#333"}))
	assert.Equal(t, "#333", fg)
}

func TestLoadSkipsUnboundAndUnknown(t *testing.T) {
	var hidden string
	var nilDest *uint32
	r := New(
		Option{typ: OptionType(42), key: "mystery", dest: &hidden},
		Option{typ: TypeUint, key: "lines", dest: nilDest},
	)

	require.NoError(t, r.Load(xrdb.StringSource("rofi.mystery: x\nrofi.lines: 3\n"), []string{"-mystery", "y", "-lines", "4"}))
	assert.Empty(t, hidden)
}

func TestApplyResourcesErrors(t *testing.T) {
	var font string

	t.Run("NoDatabase", func(t *testing.T) {
		r := New(StringOption("font", &font))
		assert.NoError(t, r.ApplyResources(xrdb.StringSource("")))
		assert.NoError(t, r.ApplyResources(xrdb.FileSource{Path: t.TempDir() + "/missing"}))
		assert.NoError(t, r.ApplyResources(failingSource{err: fmt.Errorf("no display: %w", xrdb.ErrNoDatabase)}))
	})

	t.Run("OpenFailure", func(t *testing.T) {
		r := New(StringOption("font", &font))
		cause := errors.New("permission denied")
		err := r.ApplyResources(failingSource{err: cause})
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "failed to open resource database")
	})

	t.Run("CloseFailure", func(t *testing.T) {
		r := New(StringOption("font", &font))
		db, err := xrdb.ParseString("rofi.font: mono 9\n")
		require.NoError(t, err)

		err = r.ApplyResources(closeFailSource{db: db})
		assert.ErrorContains(t, err, "failed to close resource database")
		assert.Equal(t, "mono 9", font, "values are applied before the session closes")
	})

	t.Run("LoadStopsOnError", func(t *testing.T) {
		lines := uint32(5)
		r := New(UintOption("lines", &lines))
		err := r.Load(failingSource{err: errors.New("boom")}, []string{"-lines", "3"})
		assert.Error(t, err)
		assert.Equal(t, uint32(5), lines)
	})
}

func TestLoadLogsPasses(t *testing.T) {
	var buf bytes.Buffer
	lines := uint32(5)
	r := newTestRegistry(&buf, UintOption("lines", &lines))

	require.NoError(t, r.Load(xrdb.StringSource("rofi.lines: 10\n"), []string{"-lines", "3"}))
	out := buf.String()
	assert.Contains(t, out, "Option set from resources")
	assert.Contains(t, out, "Option set from command line")
	assert.Contains(t, out, "source=cmdline")
}

func TestPrecedenceProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		def := rapid.Uint32().Draw(t, "default")
		res := rapid.Uint32().Draw(t, "resource")
		hasRes := rapid.Bool().Draw(t, "hasResource")
		cmd := rapid.Uint32().Draw(t, "cmdline")
		hasCmd := rapid.Bool().Draw(t, "hasCmdline")

		lines := def
		r := New(UintOption("lines", &lines))

		var src xrdb.StringSource
		if hasRes {
			src = xrdb.StringSource("rofi.lines: " + strconv.FormatUint(uint64(res), 10) + "\n")
		}
		var args []string
		if hasCmd {
			args = []string{"-lines", strconv.FormatUint(uint64(cmd), 10)}
		}

		if err := r.Load(src, args); err != nil {
			t.Fatalf("load: %v", err)
		}

		want := def
		if hasRes {
			want = res
		}
		if hasCmd {
			want = cmd
		}
		if lines != want {
			t.Fatalf("lines = %d, want %d", lines, want)
		}
	})
}
