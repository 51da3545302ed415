package contentsync

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/conorfennell/pianopace/internal/curriculum"
	"github.com/conorfennell/pianopace/internal/logger"
)

func writeWeek(t *testing.T, dir, name string, w curriculum.Week) {
	t.Helper()
	b, err := yaml.Marshal(w)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), b, 0o644))
}

func TestLoadWithoutPackUsesBase(t *testing.T) {
	base := curriculum.Builtin()
	got, err := Load(context.Background(), logger.Nop(), base, Options{})
	require.NoError(t, err)
	assert.Same(t, base, got)
}

func TestLoadOverlaysPack(t *testing.T) {
	dir := t.TempDir()
	w, ok := curriculum.GetWeek(9)
	require.True(t, ok)
	w.Title = "Clair de Lune, Bars 1-8"
	writeWeek(t, dir, "week-09.yaml", w)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
	w10, _ := curriculum.GetWeek(10)
	w10.Focus = "nested files are read too"
	writeWeek(t, filepath.Join(dir, "nested"), "week-10.yml", w10)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# pack"), 0o644))

	catalog, err := Load(context.Background(), logger.Nop(), curriculum.Builtin(), Options{Dir: dir})
	require.NoError(t, err)

	got, _ := catalog.Week(9)
	assert.Equal(t, "Clair de Lune, Bars 1-8", got.Title)
	got, _ = catalog.Week(10)
	assert.Equal(t, "nested files are read too", got.Focus)
	assert.Equal(t, curriculum.TotalWeeks, catalog.Len())
	assert.NotEqual(t, curriculum.Builtin().Fingerprint(), catalog.Fingerprint())
}

func TestLoadRejectsInvalidWeek(t *testing.T) {
	dir := t.TempDir()
	w, _ := curriculum.GetWeek(3)
	w.Days[6].Checkpoint = nil
	writeWeek(t, dir, "week-03.yaml", w)

	_, err := Load(context.Background(), logger.Nop(), curriculum.Builtin(), Options{Dir: dir})
	require.Error(t, err)
	assert.ErrorIs(t, err, curriculum.ErrInvalidWeek)
	assert.Contains(t, err.Error(), "week-03.yaml")
}

func TestLoadRejectsDuplicateWeeks(t *testing.T) {
	dir := t.TempDir()
	w, _ := curriculum.GetWeek(4)
	writeWeek(t, dir, "a.yaml", w)
	writeWeek(t, dir, "b.yaml", w)

	_, err := Load(context.Background(), logger.Nop(), curriculum.Builtin(), Options{Dir: dir})
	assert.ErrorIs(t, err, curriculum.ErrInvalidWeek)
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(context.Background(), logger.Nop(), curriculum.Builtin(), Options{Dir: filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}

func TestCheckoutDir(t *testing.T) {
	testCases := []struct {
		url  string
		want string
	}{
		{"https://github.com/acme/piano-pack.git", filepath.Join("cache", "github.com", "acme", "piano-pack")},
		{"http://git.local/pack", filepath.Join("cache", "git.local", "pack")},
		{"git@github.com:acme/piano-pack.git", filepath.Join("cache", "github.com", "acme", "piano-pack")},
		{"ssh://git@git.local/team/pack.git", filepath.Join("cache", "git.local", "team", "pack")},
	}
	for _, tc := range testCases {
		got, err := checkoutDir("cache", tc.url)
		require.NoError(t, err, tc.url)
		assert.Equal(t, tc.want, got)
	}

	for _, bad := range []string{"not a url", "https://github.com", "git@github.com"} {
		_, err := checkoutDir("cache", bad)
		assert.Error(t, err, bad)
	}
}
