// Command downloads runs the full batch export: it assembles every
// product, industry, occupation and demographic dataset, enriches them with
// classification names and writes the eight CSV files to the downloads
// directory.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mxabierto/atlas-subnational-api/internal/assembler"
	"github.com/mxabierto/atlas-subnational-api/internal/classification"
	"github.com/mxabierto/atlas-subnational-api/internal/config"
	"github.com/mxabierto/atlas-subnational-api/internal/dataset"
	"github.com/mxabierto/atlas-subnational-api/internal/exporter"
	"github.com/mxabierto/atlas-subnational-api/internal/infrastructure"
)

func main() {
	dataDir := flag.String("data", "", "dataset directory (defaults to <base>/data)")
	outDir := flag.String("out", "", "output directory for export CSVs (defaults to <base>/downloads)")
	manifestFile := flag.String("manifest", "", "optional dataset manifest overriding table file locations")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Paths.DataDir = *dataDir
	}
	if *outDir != "" {
		cfg.Paths.DownloadsDir = *outDir
	}
	if *manifestFile != "" {
		cfg.Paths.ManifestFile = *manifestFile
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}

	paths, err := cfg.ResolvePaths()
	if err != nil {
		logger.Error("failed to resolve paths", "error", err)
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("failed to create directories", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	registry, err := loadClassifications(ctx, cfg, paths, logger)
	if err != nil {
		logger.Error("failed to load classifications", "error", err)
		os.Exit(1)
	}

	sourceOpts := []dataset.FileSourceOption{dataset.WithLogger(logger)}
	if paths.ManifestFile != "" {
		manifest, err := dataset.LoadManifest(paths.ManifestFile)
		if err != nil {
			logger.Error("failed to load dataset manifest",
				"path", paths.ManifestFile, "error", err)
			os.Exit(1)
		}
		sourceOpts = append(sourceOpts, dataset.WithManifest(manifest))
	}
	source := dataset.NewFileSource(paths.DataDir, sourceOpts...)

	a := assembler.New(source, registry, logger)
	writer := exporter.NewCSVWriter(paths, exporter.WithWriterLogger(logger))
	driver := exporter.NewDriver(a, writer, logger)

	if err := driver.Run(ctx); err != nil {
		logger.Error("export run failed", "error", err)
		os.Exit(1)
	}
}

// loadClassifications builds the registry from the configured store.
func loadClassifications(ctx context.Context, cfg *config.Config, paths *config.Paths, logger *slog.Logger) (*classification.Registry, error) {
	switch cfg.Classifications.Source {
	case "excel":
		workbook := cfg.Classifications.Workbook
		if !filepath.IsAbs(workbook) {
			workbook = filepath.Join(paths.BaseDir, workbook)
		}
		store := classification.NewExcelStore(workbook, logger)
		return store.Load(ctx)
	case "postgres":
		store, pool, err := classification.Connect(ctx, cfg.Database.DSN, logger)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return store.Load(ctx)
	default:
		store := classification.NewCSVStore(paths.ClassificationsDir, logger)
		return store.Load(ctx)
	}
}
