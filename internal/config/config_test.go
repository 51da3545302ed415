package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conorfennell/pianopace/internal/pace"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pianopace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, pace.DefaultParams(), cfg.PaceParams())
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, `
db: file.db
addr: "0.0.0.0:9000"
log: prod
curriculum:
  dir: packs/file
pace:
  ahead_threshold: 21
server:
  read_timeout: 3s
`)
	t.Setenv("PIANOPACE_LOG", "dev")
	t.Setenv("PIANOPACE_CURRICULUM__DIR", "packs/env")
	t.Setenv("PIANOPACE_PACE__BEHIND_FLOOR", "-28")

	cfg, err := Load(path, newFlags(t, "--curriculum.dir", "packs/flag"))
	require.NoError(t, err)

	assert.Equal(t, "file.db", cfg.DB, "file beats default")
	assert.Equal(t, "0.0.0.0:9000", cfg.Addr)
	assert.Equal(t, "dev", cfg.Log, "env beats file")
	assert.Equal(t, "packs/flag", cfg.Curriculum.Dir, "flag beats env")
	assert.Equal(t, 21, cfg.Pace.AheadThreshold)
	assert.Equal(t, -7, cfg.Pace.OnTrackFloor, "untouched keys keep their default")
	assert.Equal(t, -28, cfg.Pace.BehindFloor)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
}

func TestUnchangedFlagDoesNotMaskFile(t *testing.T) {
	path := writeConfig(t, "db: from-file.db\n")
	cfg, err := Load(path, newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "from-file.db", cfg.DB)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"unknown log mode", "log: verbose\n"},
		{"floors out of order", "pace:\n  on_track_floor: -30\n  behind_floor: -21\n"},
		{"zero timeout", "server:\n  write_timeout: 0s\n"},
		{"bad address", "addr: nowhere\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body), nil)
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	path := writeConfig(t, "db: env-named.db\n")
	t.Setenv("PIANOPACE_CONFIG", path)
	t.Setenv("PIANOPACE_ADDR", "127.0.0.1:7000")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "env-named.db", cfg.DB)
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
}
