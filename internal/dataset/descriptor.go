// Package dataset provides access to the pre-aggregated statistical panels
// the exports are assembled from. A Descriptor names a dataset and the key
// shapes it is indexed by; a Source fetches the panels for a descriptor. The
// shipped FileSource reads one CSV file per (dataset, shape) pair from the
// data directory, with an optional YAML manifest overriding file locations.
package dataset

import (
	"github.com/mxabierto/atlas-subnational-api/internal/panel"
)

// Descriptor names a dataset and declares the key shapes it provides.
// The set of descriptors is fixed; sources resolve them to panel data.
type Descriptor struct {
	Name   string
	Shapes []panel.KeyShape
}

var (
	// Trade datasets: bilateral product trade at three geographic grains.
	// Department and MSA carry PCI/ECI summary tables alongside the detail.
	Trade4DigitDepartment = Descriptor{
		Name:   "trade4digit_department",
		Shapes: []panel.KeyShape{panel.LocationProductYear, panel.ProductYear, panel.LocationYear},
	}
	Trade4DigitMSA = Descriptor{
		Name:   "trade4digit_msa",
		Shapes: []panel.KeyShape{panel.LocationProductYear, panel.ProductYear, panel.LocationYear},
	}
	Trade4DigitMunicipality = Descriptor{
		Name:   "trade4digit_municipality",
		Shapes: []panel.KeyShape{panel.LocationProductYear},
	}

	// Industry datasets: employment and wages by industry.
	Industry4DigitDepartment = Descriptor{
		Name:   "industry4digit_department",
		Shapes: []panel.KeyShape{panel.LocationIndustryYear, panel.IndustryYear},
	}
	Industry4DigitMSA = Descriptor{
		Name:   "industry4digit_msa",
		Shapes: []panel.KeyShape{panel.LocationIndustryYear, panel.IndustryYear},
	}
	Industry4DigitMunicipality = Descriptor{
		Name:   "industry4digit_municipality",
		Shapes: []panel.KeyShape{panel.LocationIndustryYear},
	}

	// Occupation dataset: vacancies by occupation and industry, no year axis.
	Occupation2DigitIndustry2Digit = Descriptor{
		Name:   "occupation2digit_industry2digit",
		Shapes: []panel.KeyShape{panel.OccupationIndustry},
	}

	// Demographic datasets, department grain.
	GDPRealDepartment = Descriptor{
		Name:   "gdp_real_department",
		Shapes: []panel.KeyShape{panel.LocationYear},
	}
	GDPNominalDepartment = Descriptor{
		Name:   "gdp_nominal_department",
		Shapes: []panel.KeyShape{panel.LocationYear},
	}
	Population = Descriptor{
		Name:   "population",
		Shapes: []panel.KeyShape{panel.LocationYear},
	}
)

// Descriptors returns every known dataset descriptor.
func Descriptors() []Descriptor {
	return []Descriptor{
		Trade4DigitDepartment,
		Trade4DigitMSA,
		Trade4DigitMunicipality,
		Industry4DigitDepartment,
		Industry4DigitMSA,
		Industry4DigitMunicipality,
		Occupation2DigitIndustry2Digit,
		GDPRealDepartment,
		GDPNominalDepartment,
		Population,
	}
}
