// Package assembler builds the flat export tables. Each assembler fetches the
// pre-aggregated panels for one domain and geographic grain, joins the detail
// table with its derived-index summaries, and enriches the result with
// classification names. Assemblers are pure: every call fetches fresh panels
// and returns a new table.
package assembler

import (
	"log/slog"

	"github.com/go-gota/gota/dataframe"

	"github.com/mxabierto/atlas-subnational-api/internal/classification"
	"github.com/mxabierto/atlas-subnational-api/internal/dataset"
)

// Assembler turns dataset panels into classified export tables.
type Assembler struct {
	source   dataset.Source
	registry *classification.Registry
	logger   *slog.Logger
}

// New creates an assembler over a dataset source and classification registry.
func New(source dataset.Source, registry *classification.Registry, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{source: source, registry: registry, logger: logger}
}

// classify runs the classification merger over an assembled table.
func (a *Assembler) classify(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	return a.registry.Merge(df)
}
