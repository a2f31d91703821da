package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/google/uuid"

	"github.com/mxabierto/atlas-subnational-api/internal/assembler"
)

// Export is one named output: an assembler invocation plus its file name.
type Export struct {
	Name     string
	File     string
	Assemble func(ctx context.Context) (dataframe.DataFrame, error)
}

// Driver runs the full set of exports in a fixed order.
type Driver struct {
	exports []Export
	writer  *CSVWriter
	logger  *slog.Logger
}

// NewDriver creates a driver over the standard eight exports.
func NewDriver(a *assembler.Assembler, writer *CSVWriter, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		exports: standardExports(a),
		writer:  writer,
		logger:  logger,
	}
}

// standardExports lists the eight outputs in their fixed run order.
func standardExports(a *assembler.Assembler) []Export {
	return []Export{
		{Name: "products_department", File: "products_department.csv", Assemble: a.ProductsDepartment},
		{Name: "products_msa", File: "products_msa.csv", Assemble: a.ProductsMSA},
		{Name: "products_municipality", File: "products_municipality.csv", Assemble: a.ProductsMunicipality},
		{Name: "industries_department", File: "industries_department.csv", Assemble: a.IndustriesDepartment},
		{Name: "industries_msa", File: "industries_msa.csv", Assemble: a.IndustriesMSA},
		{Name: "industries_municipality", File: "industries_municipality.csv", Assemble: a.IndustriesMunicipality},
		{Name: "occupations", File: "occupations.csv", Assemble: a.Occupations},
		{Name: "demographic", File: "demographic.csv", Assemble: a.Demographic},
	}
}

// Exports returns the exports the driver will run, in order.
func (d *Driver) Exports() []Export {
	out := make([]Export, len(d.exports))
	copy(out, d.exports)
	return out
}

// Run executes every export sequentially and stops at the first failure.
// Earlier files stay in place; the failed and later exports are not written.
func (d *Driver) Run(ctx context.Context) error {
	runID := uuid.NewString()
	logger := d.logger.With(slog.String("run_id", runID))

	logger.InfoContext(ctx, "starting export run",
		slog.Int("exports", len(d.exports)))
	start := time.Now()

	for _, export := range d.exports {
		if err := d.runOne(ctx, logger, export); err != nil {
			logger.ErrorContext(ctx, "export run aborted",
				slog.String("export", export.Name),
				slog.String("error", err.Error()))
			return fmt.Errorf("export %s: %w", export.Name, err)
		}
	}

	logger.InfoContext(ctx, "export run complete",
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

func (d *Driver) runOne(ctx context.Context, logger *slog.Logger, export Export) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	df, err := export.Assemble(ctx)
	if err != nil {
		return fmt.Errorf("assemble: %w", err)
	}

	if err := d.writer.WriteFrame(export.File, df); err != nil {
		return err
	}

	logger.InfoContext(ctx, "export written",
		slog.String("export", export.Name),
		slog.String("file", export.File),
		slog.Int("rows", df.Nrow()),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}
