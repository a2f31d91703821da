package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Manifest maps dataset tables to file locations, overriding the default
// <data-dir>/<dataset>/<shape>.csv convention. Paths may be absolute or
// relative to the data directory.
//
//	datasets:
//	  trade4digit_department:
//	    location_product_year: trade/dpy.csv
//	    product_year: trade/py.csv
type Manifest struct {
	Datasets map[string]map[string]string `yaml:"datasets"`
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Path returns the configured file for a dataset table, if one is set.
func (m *Manifest) Path(dataset, shape string) (string, bool) {
	if m == nil {
		return "", false
	}
	tables, ok := m.Datasets[dataset]
	if !ok {
		return "", false
	}
	path, ok := tables[shape]
	return path, ok && path != ""
}
