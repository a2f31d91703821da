package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/mxabierto/atlas-subnational-api/internal/panel"
)

// Source fetches the panels for a dataset descriptor.
type Source interface {
	Fetch(ctx context.Context, d Descriptor) (Result, error)
}

// FileSource reads dataset panels from CSV files under a data directory.
// By convention each table lives at <dir>/<dataset>/<shape>.csv; a manifest
// can point individual tables elsewhere.
type FileSource struct {
	dir      string
	manifest *Manifest
	logger   *slog.Logger
}

// FileSourceOption configures a FileSource.
type FileSourceOption func(*FileSource)

// WithManifest attaches a manifest overriding table file locations.
func WithManifest(m *Manifest) FileSourceOption {
	return func(s *FileSource) { s.manifest = m }
}

// WithLogger sets the logger used for fetch progress.
func WithLogger(logger *slog.Logger) FileSourceOption {
	return func(s *FileSource) { s.logger = logger }
}

// NewFileSource creates a source over the given data directory.
func NewFileSource(dir string, opts ...FileSourceOption) *FileSource {
	s := &FileSource{dir: dir, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch loads every table the descriptor declares. A missing or malformed
// table file is a fatal error for the fetch.
func (s *FileSource) Fetch(ctx context.Context, d Descriptor) (Result, error) {
	panels := make([]panel.Panel, 0, len(d.Shapes))
	for _, shape := range d.Shapes {
		p, err := s.loadTable(ctx, d.Name, shape)
		if err != nil {
			return Result{}, fmt.Errorf("fetch %s: %w", d.Name, err)
		}
		panels = append(panels, p)
	}
	return NewResult(d.Name, panels...)
}

func (s *FileSource) loadTable(ctx context.Context, dataset string, shape panel.KeyShape) (panel.Panel, error) {
	path := s.tablePath(dataset, shape)

	file, err := os.Open(path)
	if err != nil {
		return panel.Panel{}, fmt.Errorf("open table %s: %w", shape, err)
	}
	defer file.Close()

	df := dataframe.ReadCSV(file,
		dataframe.HasHeader(true),
		dataframe.WithTypes(keyColumnTypes(shape)),
	)

	p, err := panel.New(df, shape)
	if err != nil {
		return panel.Panel{}, fmt.Errorf("table %s: %w", filepath.Base(path), err)
	}

	s.logger.DebugContext(ctx, "loaded dataset table",
		slog.String("dataset", dataset),
		slog.String("shape", shape.String()),
		slog.String("path", path),
		slog.Int("rows", p.Nrow()))

	return p, nil
}

// tablePath resolves the file behind a dataset table, preferring the
// manifest over the directory convention.
func (s *FileSource) tablePath(dataset string, shape panel.KeyShape) string {
	if path, ok := s.manifest.Path(dataset, shape.String()); ok {
		if filepath.IsAbs(path) {
			return path
		}
		return filepath.Join(s.dir, path)
	}
	return filepath.Join(s.dir, dataset, shape.String()+".csv")
}

// keyColumnTypes forces dimension-key columns to integers so joins never
// mix detected types across tables; metric columns keep type detection.
func keyColumnTypes(shape panel.KeyShape) map[string]series.Type {
	types := make(map[string]series.Type)
	for _, key := range shape.Keys() {
		types[key] = series.Int
	}
	return types
}
