package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty working directory with no user config
// dir and no QUIZBOX_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, name := range []string{"QUIZBOX_ENV", "QUIZBOX_LOG_LEVEL", "QUIZBOX_LOG_FILE", "QUIZBOX_UI_ALT_SCREEN"} {
		t.Setenv(name, "")
	}
	return dir
}

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("log-level", "", "")
	fs.String("log-file", "", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.True(t, cfg.UI.AltScreen)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "env: production\nlog:\n  level: debug\n  file: /tmp/q.log\nui:\n  alt_screen: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/q.log", cfg.Log.File)
	assert.False(t, cfg.UI.AltScreen)
}

func TestLoad_SearchPathFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quizbox.yaml"), []byte("log:\n  level: warn\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("QUIZBOX_ENV", "production")
	t.Setenv("QUIZBOX_LOG_LEVEL", "error")
	t.Setenv("QUIZBOX_UI_ALT_SCREEN", "false")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "error", cfg.Log.Level)
	assert.False(t, cfg.UI.AltScreen)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_InvalidLevel(t *testing.T) {
	isolate(t)
	t.Setenv("QUIZBOX_LOG_LEVEL", "loud")

	_, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLoad_UserConfigDir(t *testing.T) {
	isolate(t)
	cfgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	require.NoError(t, os.MkdirAll(filepath.Join(cfgHome, "quizbox"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgHome, "quizbox", "quizbox.yaml"), []byte("env: production\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_IgnoresBinaryNamedQuizbox(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quizbox"), []byte("\x7fELF\x02\x01\x01\x00\x00"), 0o755))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_ExplicitFileWithoutExtension(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "quizboxrc")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_FlagPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		env       string
		args      []string
		wantLevel string
	}{
		{"default", "", "", nil, "info"},
		{"file", "log:\n  level: warn\n", "", nil, "warn"},
		{"env over file", "log:\n  level: warn\n", "error", nil, "error"},
		{"flag over env", "log:\n  level: warn\n", "error", []string{"--log-level", "debug"}, "debug"},
		{"flag over invalid env", "", "bogus", []string{"--log-level", "debug"}, "debug"},
		{"unset flag keeps env", "", "warn", []string{"--log-file", "/tmp/x.log"}, "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			if tt.file != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "quizbox.yaml"), []byte(tt.file), 0o644))
			}
			t.Setenv("QUIZBOX_LOG_LEVEL", tt.env)

			cfg, err := Load("", testFlags(t, tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, cfg.Log.Level)
		})
	}
}

func TestLoad_FlagLogFile(t *testing.T) {
	isolate(t)
	t.Setenv("QUIZBOX_LOG_FILE", "/tmp/env.log")

	cfg, err := Load("", testFlags(t, "--log-file", "/tmp/flag.log"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/flag.log", cfg.Log.File)
}

func TestLoad_InvalidFlagLevel(t *testing.T) {
	isolate(t)

	_, err := Load("", testFlags(t, "--log-level", "shout"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLogPath(t *testing.T) {
	t.Run("explicit", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "nested", "app.log")
		cfg := &Config{Log: Log{File: p}}

		got, err := cfg.LogPath()
		require.NoError(t, err)
		assert.Equal(t, p, got)
		assert.DirExists(t, filepath.Dir(p))
	})

	t.Run("xdg state home", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_STATE_HOME", dir)
		cfg := &Config{}

		got, err := cfg.LogPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "quizbox", "quizbox.log"), got)
	})
}
