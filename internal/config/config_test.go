package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "csv", cfg.Classifications.Source)
	assert.Equal(t, "downloads", cfg.Paths.DownloadsDir)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ATLAS_LOGGING_LEVEL", "debug")
	t.Setenv("ATLAS_PATHS_DOWNLOADS_DIR", "out")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "out", cfg.Paths.DownloadsDir)
	// Untouched fields keep their defaults.
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default",
			mutate: func(c *Config) {},
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "validation failed",
		},
		{
			name:    "unknown classification source",
			mutate:  func(c *Config) { c.Classifications.Source = "redis" },
			wantErr: "validation failed",
		},
		{
			name:    "excel source without workbook",
			mutate:  func(c *Config) { c.Classifications.Source = "excel" },
			wantErr: "workbook",
		},
		{
			name:    "postgres source without dsn",
			mutate:  func(c *Config) { c.Classifications.Source = "postgres" },
			wantErr: "dsn",
		},
		{
			name: "postgres source with dsn",
			mutate: func(c *Config) {
				c.Classifications.Source = "postgres"
				c.Database.DSN = "postgres://localhost/atlas"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestResolvePaths(t *testing.T) {
	base := t.TempDir()

	cfg := Default()
	cfg.Paths.BaseDir = base
	cfg.Paths.ManifestFile = "data/manifest.yaml"

	paths, err := cfg.ResolvePaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(base, "downloads"), paths.DownloadsDir)
	assert.Equal(t, filepath.Join(base, "classifications"), paths.ClassificationsDir)
	assert.Equal(t, filepath.Join(base, "data", "manifest.yaml"), paths.ManifestFile)
	assert.Equal(t, filepath.Join(base, "downloads", "demographic.csv"),
		paths.GetDownloadPath("demographic.csv"))
	assert.Equal(t, filepath.Join(base, "data", "population", "location_year.csv"),
		paths.GetDataPath("population", "location_year.csv"))
}

func TestResolvePaths_AbsolutePathsKept(t *testing.T) {
	out := t.TempDir()

	cfg := Default()
	cfg.Paths.BaseDir = t.TempDir()
	cfg.Paths.DownloadsDir = out

	paths, err := cfg.ResolvePaths()
	require.NoError(t, err)
	assert.Equal(t, out, paths.DownloadsDir)
}

func TestEnsureDirectories(t *testing.T) {
	cfg := Default()
	cfg.Paths.BaseDir = t.TempDir()

	paths, err := cfg.ResolvePaths()
	require.NoError(t, err)
	require.NoError(t, paths.EnsureDirectories())

	assert.DirExists(t, paths.DownloadsDir)
	assert.DirExists(t, paths.LogsDir)
}
