package assembler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-gota/gota/dataframe"

	"github.com/mxabierto/atlas-subnational-api/internal/dataset"
	"github.com/mxabierto/atlas-subnational-api/internal/panel"
)

// ProductsDepartment assembles the department-grain product export: trade
// detail rows joined with product PCI and department ECI, classified.
func (a *Assembler) ProductsDepartment(ctx context.Context) (dataframe.DataFrame, error) {
	return a.productsWithComplexity(ctx, dataset.Trade4DigitDepartment)
}

// ProductsMSA assembles the metropolitan-area product export.
func (a *Assembler) ProductsMSA(ctx context.Context) (dataframe.DataFrame, error) {
	return a.productsWithComplexity(ctx, dataset.Trade4DigitMSA)
}

// ProductsMunicipality assembles the municipality product export. The
// municipality dataset carries no complexity summaries, so the detail table
// is classified as-is.
func (a *Assembler) ProductsMunicipality(ctx context.Context) (dataframe.DataFrame, error) {
	result, err := a.source.Fetch(ctx, dataset.Trade4DigitMunicipality)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	detail, err := result.MustTable(panel.LocationProductYear)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	return a.classify(detail.Frame())
}

// productsWithComplexity joins a trade detail table with the PCI table on
// (product, year) and the ECI table on (location, year). Both joins are
// inner: detail rows whose entity-year has no summary row are dropped, and
// the shrinkage is logged so it stays visible.
func (a *Assembler) productsWithComplexity(ctx context.Context, d dataset.Descriptor) (dataframe.DataFrame, error) {
	result, err := a.source.Fetch(ctx, d)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	detail, err := result.MustTable(panel.LocationProductYear)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	productYear, err := result.MustTable(panel.ProductYear)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	locationYear, err := result.MustTable(panel.LocationYear)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	merged := detail.Frame().InnerJoin(productYear.Select("pci"), "product_id", "year")
	if merged.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%s: join pci: %w", d.Name, merged.Err)
	}

	merged = merged.InnerJoin(locationYear.Select("eci"), "location_id", "year")
	if merged.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%s: join eci: %w", d.Name, merged.Err)
	}

	if merged.Nrow() < detail.Nrow() {
		a.logger.WarnContext(ctx, "detail rows dropped by summary join",
			slog.String("dataset", d.Name),
			slog.Int("detail_rows", detail.Nrow()),
			slog.Int("joined_rows", merged.Nrow()))
	}

	return a.classify(merged)
}
