package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/realverse/internal/client/ingest"
	"github.com/dmitrijs2005/realverse/internal/client/medium"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, medium.KindSQLite, c.Medium)
	assert.Equal(t, "realverse.db", c.DataPath)
	assert.Equal(t, int64(DefaultQuotaBytes), c.QuotaBytes)
	assert.Equal(t, int64(ingest.DefaultMaxBytes), c.MaxImageBytes)
	assert.Equal(t, "info", c.LogLevel)
	assert.Empty(t, c.QuizFile)
	require.NoError(t, c.Validate())
}

func TestLoad_NoArgsUsesDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, &want, cfg)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"medium":      "file",
		"data_path":   "from-json.json",
		"quota_bytes": 1000,
		"log_level":   "debug",
	})

	t.Run("json overrides defaults", func(t *testing.T) {
		cfg, err := Load([]string{"-config", path})
		require.NoError(t, err)

		assert.Equal(t, medium.KindFile, cfg.Medium)
		assert.Equal(t, "from-json.json", cfg.DataPath)
		assert.Equal(t, int64(1000), cfg.QuotaBytes)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, int64(ingest.DefaultMaxBytes), cfg.MaxImageBytes, "absent key keeps default")
	})

	t.Run("flags override json", func(t *testing.T) {
		cfg, err := Load([]string{"-c", path, "-d", "flag.json", "-q", "0", "-s", "1024", "-z", "quiz.yaml"})
		require.NoError(t, err)

		assert.Equal(t, medium.KindFile, cfg.Medium)
		assert.Equal(t, "flag.json", cfg.DataPath)
		assert.Equal(t, int64(0), cfg.QuotaBytes)
		assert.Equal(t, int64(1024), cfg.MaxImageBytes)
		assert.Equal(t, "quiz.yaml", cfg.QuizFile)
	})
}

func TestLoad_EnvironmentSitsBetweenJsonAndFlags(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"medium":    "file",
		"data_path": "from-json.json",
		"log_level": "debug",
	})
	t.Setenv("REALVERSE_DATA_PATH", "from-env.json")
	t.Setenv("REALVERSE_QUOTA_BYTES", "2048")
	t.Setenv("REALVERSE_LOG_LEVEL", "warn")

	cfg, err := Load([]string{"-c", path, "-l", "error"})
	require.NoError(t, err)

	assert.Equal(t, medium.KindFile, cfg.Medium)
	assert.Equal(t, "from-env.json", cfg.DataPath)
	assert.Equal(t, int64(2048), cfg.QuotaBytes)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_BadEnvironmentValue(t *testing.T) {
	t.Setenv("REALVERSE_MAX_IMAGE_BYTES", "lots")

	cfg, err := Load(nil)
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{name: "missing config file", args: []string{"-c", filepath.Join(dir, "absent.json")}},
		{name: "invalid json", args: []string{"-config", bad}},
		{name: "bad quota", args: []string{"-q", "abc"}},
		{name: "unknown medium", args: []string{"-m", "cloud"}},
		{name: "file without path", args: []string{"-m", "file", "-d="}},
		{name: "negative quota", args: []string{"-q=-1"}},
		{name: "bad log level", args: []string{"-l", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_MemoryNeedsNoPath(t *testing.T) {
	cfg, err := Load([]string{"-m", "memory", "-d="})
	require.NoError(t, err)
	assert.Equal(t, medium.KindMemory, cfg.Medium)
}
