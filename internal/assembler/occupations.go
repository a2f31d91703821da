package assembler

import (
	"context"

	"github.com/go-gota/gota/dataframe"

	"github.com/mxabierto/atlas-subnational-api/internal/dataset"
	"github.com/mxabierto/atlas-subnational-api/internal/panel"
)

// Occupations assembles the occupation-by-industry export. The dataset has a
// single (occupation, industry) table and no year axis; it is classified with
// both the occupation and industry lookups.
func (a *Assembler) Occupations(ctx context.Context) (dataframe.DataFrame, error) {
	result, err := a.source.Fetch(ctx, dataset.Occupation2DigitIndustry2Digit)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	detail, err := result.MustTable(panel.OccupationIndustry)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	return a.classify(detail.Frame())
}
