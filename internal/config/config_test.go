package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LUXE_DATA_DIR", "")
	t.Setenv("LUXE_DATABASE_URL", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.NotEmpty(t, cfg.DataDir)
	require.Empty(t, cfg.DatabaseDSN, "mirror disabled by default")
	require.Equal(t, time.Duration(-1), cfg.GenerationDelay())
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "luxe.yaml")
	yaml := "data_dir: /tmp/from-yaml\ndatabase_dsn: postgres://yaml\nanalyzer: mock\ngeneration_delay_ms: 250\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("LUXE_DATA_DIR", "")
	t.Setenv("LUXE_DATABASE_URL", "")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/from-yaml", cfg.DataDir)
	require.Equal(t, "postgres://yaml", cfg.DatabaseDSN)
	require.Equal(t, 250*time.Millisecond, cfg.GenerationDelay())

	// env wins over the file
	t.Setenv("LUXE_DATABASE_URL", "postgres://env")
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, "postgres://env", cfg.DatabaseDSN)
}

func TestLoad_MissingFileIsFine(t *testing.T) {
	t.Setenv("LUXE_DATA_DIR", "/tmp/luxe-test")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "/tmp/luxe-test", cfg.DataDir)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: [unclosed"), 0o600))
	_, err := Load(path)
	require.Error(t, err)
}
