package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dir = "/cfg/TaskTrees"

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(afero.NewMemMapFs(), dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoad_ReadsSettings(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, "settings.yaml"), []byte(`
log:
  level: debug
  development: true
  file: tasktrees.log
`), 0o644))

	s, err := Load(fsys, dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.Log.Level)
	assert.True(t, s.Log.Development)
	assert.Equal(t, filepath.Join(dir, "tasktrees.log"), s.Log.File)
}

func TestLoad_PartialSettingsKeepDefaults(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, "settings.yaml"), []byte("log:\n  file: /var/log/tt.log\n"), 0o644))

	s, err := Load(fsys, dir)
	require.NoError(t, err)
	assert.Equal(t, "info", s.Log.Level)
	assert.False(t, s.Log.Development)
	assert.Equal(t, "/var/log/tt.log", s.Log.File)
}

func TestLoad_BrokenFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, "settings.yaml"), []byte("log: [unclosed\n"), 0o644))

	s, err := Load(fsys, dir)
	require.Error(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoggingConfig(t *testing.T) {
	cfg := Default().LoggingConfig()
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
	assert.Equal(t, "info", cfg.Level)

	s := Settings{Log: LogSettings{Level: "warn", File: "/tmp/tt.log"}}
	cfg = s.LoggingConfig()
	assert.Equal(t, []string{"/tmp/tt.log"}, cfg.OutputPaths)
	assert.Equal(t, "warn", cfg.Level)
}
