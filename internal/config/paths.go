package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds the resolved filesystem layout for a run. Every path is
// absolute; this is the single source of truth for where files live.
//
//	<base>/
//	  ├── data/               (dataset panel CSVs, one dir per dataset)
//	  ├── classifications/    (classification CSVs or workbook)
//	  ├── downloads/          (generated export CSVs)
//	  └── logs/
type Paths struct {
	BaseDir            string
	DataDir            string
	DownloadsDir       string
	ClassificationsDir string
	LogsDir            string
	ManifestFile       string
}

// ResolvePaths turns the configured layout into absolute paths. An empty
// base directory means the current working directory.
func (c *Config) ResolvePaths() (*Paths, error) {
	base := c.Paths.BaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		base = wd
	}
	base, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolve base directory: %w", err)
	}

	resolve := func(path string) string {
		if path == "" || filepath.IsAbs(path) {
			return path
		}
		return filepath.Join(base, path)
	}

	return &Paths{
		BaseDir:            base,
		DataDir:            resolve(c.Paths.DataDir),
		DownloadsDir:       resolve(c.Paths.DownloadsDir),
		ClassificationsDir: resolve(c.Classifications.Dir),
		LogsDir:            resolve(c.Paths.LogsDir),
		ManifestFile:       resolve(c.Paths.ManifestFile),
	}, nil
}

// GetDownloadPath returns the full path for a generated export file.
func (p *Paths) GetDownloadPath(filename string) string {
	return filepath.Join(p.DownloadsDir, filename)
}

// GetDataPath returns the full path for a file under the data directory.
func (p *Paths) GetDataPath(elem ...string) string {
	return filepath.Join(append([]string{p.DataDir}, elem...)...)
}

// GetLogPath returns the full path for a log file.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// EnsureDirectories creates the directories a run writes to.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DownloadsDir, p.LogsDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
