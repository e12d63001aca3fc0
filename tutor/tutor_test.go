package tutor

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipit-keyboard/chordc/errors"
	chordtest "github.com/pipit-keyboard/chordc/internal/testing"
	"github.com/pipit-keyboard/chordc/registry"
	"github.com/pipit-keyboard/chordc/settings"
)

func exportKeyboard(t *testing.T) *Data {
	t.Helper()
	fsys := chordtest.KeyboardFS()
	cfg, err := settings.Load(fsys, chordtest.SettingsPath)
	require.NoError(t, err)
	sub, err := fs.Sub(fsys, "keyboard")
	require.NoError(t, err)
	d, err := registry.Load(cfg, sub)
	require.NoError(t, err)

	data, err := Export(d, cfg)
	require.NoError(t, err)
	return data
}

func TestExport(t *testing.T) {
	data := exportKeyboard(t)

	require.Contains(t, data.Modes, "default")
	require.Contains(t, data.Modes, "gaming")

	assert.Equal(t, Entry{Switches: "X......."}, data.Modes["default"]["a"])
	assert.Equal(t, Entry{Switches: "XX......"}, data.Modes["gaming"]["a"])
	assert.Equal(t, Entry{Switches: "X.X.X...", Anagram: 1}, data.Modes["default"]["word_act_1"])
	assert.Contains(t, data.Modes["gaming"], "switch_to_default")
	assert.NotContains(t, data.Modes["gaming"], "word_cat_0")

	assert.Equal(t, "a", data.Spellings["a"])
	assert.Equal(t, "space", data.Spellings[" "])
	assert.Equal(t, "word_cat_0", data.Spellings["cat"])
	assert.Equal(t, "word_to_ot_0", data.Spellings["to"])
	assert.NotContains(t, data.Spellings, "A")
}

func TestYAMLRoundTrip(t *testing.T) {
	data := exportKeyboard(t)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, data))
	assert.Contains(t, buf.String(), "modes:\n")
	assert.Contains(t, buf.String(), "X.X.X...")

	back, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestReadRejectsUnknownFields(t *testing.T) {
	_, err := Read(bytes.NewBufferString("modes: {}\nlessons: []\n"))
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	data := exportKeyboard(t)
	dir := filepath.Join(t.TempDir(), "tutor")

	path, err := Save(dir, data)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	back, err := Read(f)
	require.NoError(t, err)
	assert.Equal(t, data.Spellings, back.Spellings)
}

func TestSession(t *testing.T) {
	s, err := NewSession(exportKeyboard(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"default", "gaming"}, s.Modes())
	assert.Equal(t, "default", s.Mode())

	e, ok := s.Chord("a")
	require.True(t, ok)
	assert.Equal(t, "X.......", e.Switches)
	e, ok = s.Chord("")
	assert.True(t, ok)
	assert.Equal(t, Entry{}, e)

	name, ok := s.NameFor("cat")
	require.True(t, ok)
	assert.Equal(t, "word_cat_0", name)

	assert.Equal(t, DefaultInitialLearnState, s.LearnState("a"))
	s.Record("a", true)
	assert.Equal(t, DefaultInitialLearnState-1, s.LearnState("a"))
	s.Record("a", false)
	s.Record("a", false)
	assert.Equal(t, DefaultInitialLearnState+1, s.LearnState("a"))

	learned, seen := s.IsLearned("c")
	assert.False(t, learned)
	assert.False(t, seen)

	s.SetInitialLearnState(1)
	assert.Equal(t, 1, s.LearnState("a"))
	s.Record("a", true)
	s.Record("a", true)
	learned, seen = s.IsLearned("a")
	assert.True(t, learned)
	assert.True(t, seen)

	require.NoError(t, s.SetMode("gaming"))
	assert.Equal(t, "gaming", s.Mode())
	assert.Equal(t, 1, s.LearnState("a"))
	e, _ = s.Chord("a")
	assert.Equal(t, "XX......", e.Switches)

	err = s.SetMode("typing")
	assert.True(t, errors.IsLookupError(err))
	assert.Equal(t, "gaming", s.Mode())
}

func TestNewSessionWithoutModes(t *testing.T) {
	_, err := NewSession(&Data{})
	assert.True(t, errors.IsConfigError(err))
}
