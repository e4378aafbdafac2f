package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"uploads_dir": "` + dir + `", "concurrency": 4, "verbose": true}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.UploadsDir)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ATS_UPLOADS_DIR", dir)
	t.Setenv("ATS_CONCURRENCY", "12")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.UploadsDir)
	assert.Equal(t, 12, cfg.Concurrency)
}

func TestFromEnv_InvalidConcurrency(t *testing.T) {
	t.Setenv("ATS_CONCURRENCY", "lots")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{UploadsDir: t.TempDir(), Concurrency: 8}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_NonexistentUploadsDir(t *testing.T) {
	cfg := &Config{UploadsDir: filepath.Join(t.TempDir(), "missing")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_NegativeConcurrency(t *testing.T) {
	cfg := &Config{Concurrency: -1}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Concurrency: 2}
	merged := cfg.MergeWithDefaults(Config{UploadsDir: "/srv/uploads", Concurrency: 8})

	assert.Equal(t, "/srv/uploads", merged.UploadsDir)
	assert.Equal(t, 2, merged.Concurrency, "explicit values win over defaults")
}
