package panel

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyShape_Keys(t *testing.T) {
	tests := []struct {
		name  string
		shape KeyShape
		keys  []string
	}{
		{"location product year", LocationProductYear, []string{"location_id", "product_id", "year"}},
		{"product year", ProductYear, []string{"product_id", "year"}},
		{"location year", LocationYear, []string{"location_id", "year"}},
		{"location industry year", LocationIndustryYear, []string{"location_id", "industry_id", "year"}},
		{"industry year", IndustryYear, []string{"industry_id", "year"}},
		{"occupation industry", OccupationIndustry, []string{"occupation_id", "industry_id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.shape.Keys())
		})
	}
}

func TestParseKeyShape(t *testing.T) {
	for _, shape := range []KeyShape{
		LocationProductYear, ProductYear, LocationYear,
		LocationIndustryYear, IndustryYear, OccupationIndustry,
	} {
		parsed, err := ParseKeyShape(shape.String())
		require.NoError(t, err)
		assert.Equal(t, shape, parsed)
	}

	_, err := ParseKeyShape("product_location")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"location_id", "product_id", "year", "export_value"},
		{"5", "101", "2010", "100"},
		{"5", "101", "2011", "120"},
		{"8", "101", "2010", "30"},
	})

	p, err := New(df, LocationProductYear)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Nrow())
	assert.Equal(t, LocationProductYear, p.Shape())
	assert.True(t, p.HasColumn("export_value"))
	assert.False(t, p.HasColumn("import_value"))
}

func TestNew_MissingKeyColumn(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"location_id", "year", "export_value"},
		{"5", "2010", "100"},
	})

	_, err := New(df, LocationProductYear)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product_id")
}

func TestNew_DuplicateKeyTuple(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"product_id", "year", "pci"},
		{"101", "2010", "1.2"},
		{"101", "2010", "1.5"},
	})

	_, err := New(df, ProductYear)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key tuple")
}

func TestPanel_Select(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"product_id", "year", "pci", "pci_rank"},
		{"101", "2010", "1.23", "4"},
		{"102", "2010", "-0.5", "9"},
	})

	p, err := New(df, ProductYear)
	require.NoError(t, err)

	selected := p.Select("pci")
	require.NoError(t, selected.Err)
	assert.Equal(t, []string{"product_id", "year", "pci"}, selected.Names())
	assert.Equal(t, 2, selected.Nrow())
}
