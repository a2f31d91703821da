package assembler

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"github.com/mxabierto/atlas-subnational-api/internal/dataset"
	"github.com/mxabierto/atlas-subnational-api/internal/panel"
)

// Demographic assembles the department demographic export: real GDP joined
// with nominal GDP on (location, year), then outer-joined with population.
// The outer join keeps locations covered by only one of the sources, with NA
// cells for the missing side. Output is sorted ascending by
// (location_id, year) for deterministic files.
func (a *Assembler) Demographic(ctx context.Context) (dataframe.DataFrame, error) {
	gdpReal, err := a.fetchLocationYear(ctx, dataset.GDPRealDepartment)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	gdpNominal, err := a.fetchLocationYear(ctx, dataset.GDPNominalDepartment)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	population, err := a.fetchLocationYear(ctx, dataset.Population)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	gdp := gdpReal.Frame().LeftJoin(gdpNominal.Frame(), "location_id", "year")
	if gdp.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("join nominal gdp: %w", gdp.Err)
	}

	// Coverage differs between the GDP and population sources, so neither
	// side may drop the other's rows.
	merged := gdp.OuterJoin(population.Frame(), "location_id", "year")
	if merged.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("join population: %w", merged.Err)
	}

	classified, err := a.classify(merged)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	sorted := classified.Arrange(dataframe.Sort("location_id"), dataframe.Sort("year"))
	if sorted.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("sort demographic export: %w", sorted.Err)
	}
	return sorted, nil
}

func (a *Assembler) fetchLocationYear(ctx context.Context, d dataset.Descriptor) (panel.Panel, error) {
	result, err := a.source.Fetch(ctx, d)
	if err != nil {
		return panel.Panel{}, err
	}
	return result.MustTable(panel.LocationYear)
}
