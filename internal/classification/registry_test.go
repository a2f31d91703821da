package classification

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()

	product, err := NewTable("product", []Row{
		{ID: 101, Name: "Bananas", Code: "0803", Level: "4digit"},
		{ID: 102, Name: "Coffee", Code: "0901", Level: "4digit"},
	})
	require.NoError(t, err)

	location, err := NewTable("location", []Row{
		{ID: 5, Name: "Antioquia", Code: "05", Level: "department"},
		{ID: 8, Name: "Atlantico", Code: "08", Level: "department"},
	})
	require.NoError(t, err)

	registry, err := NewRegistry(product, location)
	require.NoError(t, err)
	return registry
}

func TestNewTable_DuplicateID(t *testing.T) {
	_, err := NewTable("product", []Row{
		{ID: 101, Name: "Bananas"},
		{ID: 101, Name: "Plantains"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id")
}

func TestTable_Get(t *testing.T) {
	table, err := NewTable("product", []Row{
		{ID: 102, Name: "Coffee"},
		{ID: 101, Name: "Bananas"},
	})
	require.NoError(t, err)

	row, ok := table.Get(101)
	require.True(t, ok)
	assert.Equal(t, "Bananas", row.Name)

	_, ok = table.Get(999)
	assert.False(t, ok)
}

func TestRegistry_Lookup(t *testing.T) {
	registry := testRegistry(t)

	table, ok := registry.Lookup("product_id")
	require.True(t, ok)
	assert.Equal(t, "product", table.Label())

	_, ok = registry.Lookup("export_value")
	assert.False(t, ok)

	// industry_id is a known column name but this registry carries no
	// industry classification.
	_, ok = registry.Lookup("industry_id")
	assert.False(t, ok)
}

func TestRegistry_Merge_AppendsNames(t *testing.T) {
	registry := testRegistry(t)

	df := dataframe.LoadRecords([][]string{
		{"location_id", "product_id", "year", "export_value"},
		{"5", "101", "2010", "100"},
		{"8", "102", "2011", "250"},
	})

	merged, err := registry.Merge(df)
	require.NoError(t, err)

	assert.Equal(t, df.Nrow(), merged.Nrow())
	assert.Contains(t, merged.Names(), "product_name")
	assert.Contains(t, merged.Names(), "product_code")
	assert.Contains(t, merged.Names(), "location_name")
	assert.Contains(t, merged.Names(), "location_level")

	names := merged.Col("product_name").Records()
	assert.ElementsMatch(t, []string{"Bananas", "Coffee"}, names)
}

func TestRegistry_Merge_NonLossy(t *testing.T) {
	registry := testRegistry(t)

	// Product 999 has no classification entry; its row must survive with NA
	// enrichment cells.
	df := dataframe.LoadRecords([][]string{
		{"product_id", "year", "export_value"},
		{"101", "2010", "100"},
		{"999", "2010", "50"},
	})

	merged, err := registry.Merge(df)
	require.NoError(t, err)
	require.Equal(t, 2, merged.Nrow())

	nameCol := merged.Col("product_name")
	naCount := 0
	for i := 0; i < nameCol.Len(); i++ {
		if nameCol.Elem(i).IsNA() {
			naCount++
		}
	}
	assert.Equal(t, 1, naCount)
}

func TestRegistry_Merge_NoRecognizedColumns(t *testing.T) {
	registry := testRegistry(t)

	df := dataframe.LoadRecords([][]string{
		{"year", "gdp_real"},
		{"2010", "1000"},
		{"2011", "1100"},
	})

	merged, err := registry.Merge(df)
	require.NoError(t, err)

	assert.Equal(t, df.Names(), merged.Names())
	assert.Equal(t, df.Records(), merged.Records())
}

func TestRegistry_DuplicateLabel(t *testing.T) {
	product, err := NewTable("product", []Row{{ID: 1, Name: "x"}})
	require.NoError(t, err)

	_, err = NewRegistry(product, product)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate classification")
}
