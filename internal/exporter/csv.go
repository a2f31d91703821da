package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"

	"github.com/mxabierto/atlas-subnational-api/internal/config"
)

// CSVWriter writes export tables as CSV files under the downloads directory.
type CSVWriter struct {
	paths     *config.Paths
	bomPrefix bool
	logger    *slog.Logger
}

// CSVWriterOption configures a CSVWriter.
type CSVWriterOption func(*CSVWriter)

// WithBOM makes the writer prefix files with a UTF-8 BOM so Excel opens
// them with the right encoding.
func WithBOM() CSVWriterOption {
	return func(w *CSVWriter) { w.bomPrefix = true }
}

// WithWriterLogger sets the logger used for write progress.
func WithWriterLogger(logger *slog.Logger) CSVWriterOption {
	return func(w *CSVWriter) { w.logger = logger }
}

// NewCSVWriter creates a writer resolving file names against the given paths.
func NewCSVWriter(paths *config.Paths, opts ...CSVWriterOption) *CSVWriter {
	w := &CSVWriter{paths: paths, logger: slog.Default()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteFrame serializes a dataframe to the named CSV file, header included.
// An existing file is overwritten.
func (w *CSVWriter) WriteFrame(filename string, df dataframe.DataFrame) error {
	if df.Err != nil {
		return fmt.Errorf("refusing to write errored frame: %w", df.Err)
	}

	fullPath := w.resolvePath(filename)

	w.logger.Info("writing export file",
		slog.String("file", filename),
		slog.String("path", fullPath),
		slog.Int("rows", df.Nrow()),
		slog.Int("columns", df.Ncol()))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	if w.bomPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	if err := df.WriteCSV(file); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return file.Close()
}

func (w *CSVWriter) resolvePath(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return w.paths.GetDownloadPath(filename)
}
