package configloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/snifftrap/internal/configloader"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_DefaultsWhenNoConfig(t *testing.T) {
	cfg, err := configloader.Load(configloader.LoadOptions{WorkingDir: t.TempDir()})
	require.NoError(t, err)

	assert.Empty(t, cfg.SourceRoots)
	assert.Empty(t, cfg.Report)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ExplicitPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "custom.yml", `
source_roots:
  - /src/main/java
  - /src/test/java
report: build/reports/animalsniffer.txt
print_signature_names: true
cache_marker: "__delim__"
log_level: debug
`)

	cfg, err := configloader.Load(configloader.LoadOptions{ExplicitPath: path})
	require.NoError(t, err)

	assert.Equal(t, []string{"/src/main/java", "/src/test/java"}, cfg.SourceRoots)
	assert.Equal(t, "build/reports/animalsniffer.txt", cfg.Report)
	assert.True(t, cfg.PrintSignatureNames)
	assert.Equal(t, "__delim__", cfg.CacheMarker)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_ProjectConfigDiscovered(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".snifftrap.yml", "report: out.txt\n")

	cfg, err := configloader.Load(configloader.LoadOptions{WorkingDir: dir})
	require.NoError(t, err)
	assert.Equal(t, "out.txt", cfg.Report)
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bad.yml", "reprot: typo.txt\n")

	_, err := configloader.Load(configloader.LoadOptions{ExplicitPath: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_MissingExplicitPathFails(t *testing.T) {
	_, err := configloader.Load(configloader.LoadOptions{
		ExplicitPath: filepath.Join(t.TempDir(), "absent.yml"),
	})
	require.Error(t, err)
}

func TestLoad_InvalidEnumRejected(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bad.yml", "color: sometimes\n")

	_, err := configloader.Load(configloader.LoadOptions{ExplicitPath: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid color mode")
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "empty.yml", "")

	cfg, err := configloader.Load(configloader.LoadOptions{ExplicitPath: path})
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Color)
}
