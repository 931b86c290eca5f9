package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at a temp dir and clears QTIME_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"QTIME_CONFIG", "QTIME_BANKS", "QTIME_JUDGE", "QTIME_DEFAULT_BANK", "QTIME_LOG_LEVEL", "QTIME_LOG_FILE"} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "questions.txt", cfg.Banks)
	assert.Equal(t, JudgeSentiment, cfg.Judge)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.DefaultBank)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_DefaultPathFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "qtime", "config.yaml"), `
banks: /data/cards.txt
judge: keystroke
default_bank: misc
log:
  level: debug
  file: /tmp/qtime.log
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/data/cards.txt", cfg.Banks)
	assert.Equal(t, JudgeKeystroke, cfg.Judge)
	assert.Equal(t, "misc", cfg.DefaultBank)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/qtime.log", cfg.Log.File)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "partial.yaml")
	writeFile(t, path, "judge: keystroke\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, JudgeKeystroke, cfg.Judge)
	assert.Equal(t, "questions.txt", cfg.Banks)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "empty.yaml")
	writeFile(t, path, "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_UnknownField(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "bankz: x\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "c.yaml")
	writeFile(t, path, "banks: from-file.txt\n")
	t.Setenv("QTIME_BANKS", "from-env.txt")
	t.Setenv("QTIME_LOG_LEVEL", "info")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.txt", cfg.Banks)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_QtimeConfigEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "elsewhere.yaml")
	writeFile(t, path, "judge: keystroke\n")
	t.Setenv("QTIME_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, JudgeKeystroke, cfg.Judge)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"keystroke judge", func(c *Config) { c.Judge = JudgeKeystroke }, false},
		{"unknown judge", func(c *Config) { c.Judge = "telepathy" }, true},
		{"empty banks", func(c *Config) { c.Banks = "  " }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Config{Judge: "x", Log: LogConfig{Level: "y"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "banks path is empty")
	assert.Contains(t, err.Error(), `unknown judge "x"`)
	assert.Contains(t, err.Error(), `unknown log level "y"`)
}

func TestDefaultPath(t *testing.T) {
	dir := isolate(t)
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "qtime", "config.yaml"), p)
}
