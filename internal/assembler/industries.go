package assembler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-gota/gota/dataframe"

	"github.com/mxabierto/atlas-subnational-api/internal/dataset"
	"github.com/mxabierto/atlas-subnational-api/internal/panel"
)

// IndustriesDepartment assembles the department-grain industry export:
// employment detail joined with the industry complexity index, classified.
func (a *Assembler) IndustriesDepartment(ctx context.Context) (dataframe.DataFrame, error) {
	return a.industriesWithComplexity(ctx, dataset.Industry4DigitDepartment)
}

// IndustriesMSA assembles the metropolitan-area industry export.
func (a *Assembler) IndustriesMSA(ctx context.Context) (dataframe.DataFrame, error) {
	return a.industriesWithComplexity(ctx, dataset.Industry4DigitMSA)
}

// IndustriesMunicipality assembles the municipality industry export, which
// has no complexity summary table.
func (a *Assembler) IndustriesMunicipality(ctx context.Context) (dataframe.DataFrame, error) {
	result, err := a.source.Fetch(ctx, dataset.Industry4DigitMunicipality)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	detail, err := result.MustTable(panel.LocationIndustryYear)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	return a.classify(detail.Frame())
}

// industriesWithComplexity joins an industry detail table with the
// complexity index from the (industry, year) summary. The join is inner;
// shrinkage is logged.
func (a *Assembler) industriesWithComplexity(ctx context.Context, d dataset.Descriptor) (dataframe.DataFrame, error) {
	result, err := a.source.Fetch(ctx, d)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	detail, err := result.MustTable(panel.LocationIndustryYear)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	industryYear, err := result.MustTable(panel.IndustryYear)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	merged := detail.Frame().InnerJoin(industryYear.Select("complexity"), "industry_id", "year")
	if merged.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%s: join complexity: %w", d.Name, merged.Err)
	}

	if merged.Nrow() < detail.Nrow() {
		a.logger.WarnContext(ctx, "detail rows dropped by summary join",
			slog.String("dataset", d.Name),
			slog.Int("detail_rows", detail.Nrow()),
			slog.Int("joined_rows", merged.Nrow()))
	}

	return a.classify(merged)
}
