package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig_FlagsOnly(t *testing.T) {
	dir := t.TempDir()

	cfg, err := resolveConfig(config.Config{UploadsDir: dir, Concurrency: 4}, "")
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.UploadsDir)
	assert.Equal(t, 4, cfg.Concurrency)
}

func TestResolveConfig_EnvFillsMissingFlags(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ATS_UPLOADS_DIR", dir)
	t.Setenv("ATS_CONCURRENCY", "16")

	cfg, err := resolveConfig(config.Config{}, "")
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.UploadsDir)
	assert.Equal(t, 16, cfg.Concurrency)
}

func TestResolveConfig_FlagsWinOverEnv(t *testing.T) {
	flagDir := t.TempDir()
	t.Setenv("ATS_UPLOADS_DIR", t.TempDir())

	cfg, err := resolveConfig(config.Config{UploadsDir: flagDir}, "")
	require.NoError(t, err)

	assert.Equal(t, flagDir, cfg.UploadsDir)
}

func TestResolveConfig_FileFillsLast(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "config.json")
	content := `{"uploads_dir": "` + dir + `", "concurrency": 2, "verbose": true}`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := resolveConfig(config.Config{}, configPath)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.UploadsDir)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.True(t, cfg.Verbose)
}

func TestResolveConfig_MissingUploadsDir(t *testing.T) {
	_, err := resolveConfig(config.Config{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uploads directory is required")
}

func TestResolveConfig_NonexistentUploadsDir(t *testing.T) {
	_, err := resolveConfig(config.Config{UploadsDir: filepath.Join(t.TempDir(), "missing")}, "")
	assert.Error(t, err)
}

func TestLoadJSONFile_Job(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	content := `{"title": "Backend Engineer", "skills": "go sql kubernetes"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	var job types.Job
	require.NoError(t, loadJSONFile(path, &job))

	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "go sql kubernetes", job.Skills)
}

func TestLoadJSONFile_RejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"titel": "typo"}`), 0644))

	var job types.Job
	assert.Error(t, loadJSONFile(path, &job))
}

func TestLoadJSONFile_Missing(t *testing.T) {
	var job types.Job
	assert.Error(t, loadJSONFile(filepath.Join(t.TempDir(), "nope.json"), &job))
}

func TestWriteOutput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeOutput(path, []byte(`{"score": 1}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"score": 1}`, string(data))
}

func TestValidateOutput_ScoreResult(t *testing.T) {
	valid := []byte(`{"score": 93, "matched_keywords": ["skills"], "missing_keywords": [], "suggestions": []}`)
	assert.NoError(t, validateOutput("schemas/score_result.schema.json", valid))

	invalid := []byte(`{"score": 150, "matched_keywords": [], "missing_keywords": [], "suggestions": []}`)
	assert.Error(t, validateOutput("schemas/score_result.schema.json", invalid))
}

func TestValidateOutput_UnknownSchemaIsNonFatal(t *testing.T) {
	assert.NoError(t, validateOutput("schemas/no_such.schema.json", []byte(`{}`)))
}
