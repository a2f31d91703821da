package panel

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// KeyShape identifies one of the dimension-key combinations a dataset can be
// indexed by. The set is closed: every panel in the system is keyed by exactly
// one of these shapes.
type KeyShape int

const (
	LocationProductYear KeyShape = iota
	ProductYear
	LocationYear
	LocationIndustryYear
	IndustryYear
	OccupationIndustry
)

var shapeKeys = map[KeyShape][]string{
	LocationProductYear:  {"location_id", "product_id", "year"},
	ProductYear:          {"product_id", "year"},
	LocationYear:         {"location_id", "year"},
	LocationIndustryYear: {"location_id", "industry_id", "year"},
	IndustryYear:         {"industry_id", "year"},
	OccupationIndustry:   {"occupation_id", "industry_id"},
}

// Keys returns the key column names for this shape, in join order.
func (s KeyShape) Keys() []string {
	keys, ok := shapeKeys[s]
	if !ok {
		return nil
	}
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// String returns the canonical name of the shape, e.g. "location_product_year".
func (s KeyShape) String() string {
	keys, ok := shapeKeys[s]
	if !ok {
		return fmt.Sprintf("keyshape(%d)", int(s))
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strings.TrimSuffix(k, "_id")
	}
	return strings.Join(parts, "_")
}

// ParseKeyShape maps a canonical shape name back to its KeyShape.
func ParseKeyShape(name string) (KeyShape, error) {
	for s := range shapeKeys {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown key shape %q", name)
}

// Panel is a table indexed by the key columns of a single KeyShape.
// The key tuple is unique within the panel; value columns carry metrics
// such as export_value, pci or population.
type Panel struct {
	shape KeyShape
	df    dataframe.DataFrame
}

// New wraps a dataframe as a panel of the given shape. It verifies that every
// key column is present and that key tuples are unique.
func New(df dataframe.DataFrame, shape KeyShape) (Panel, error) {
	if df.Err != nil {
		return Panel{}, fmt.Errorf("load panel %s: %w", shape, df.Err)
	}

	names := df.Names()
	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}
	for _, key := range shape.Keys() {
		if !present[key] {
			return Panel{}, fmt.Errorf("panel %s: missing key column %q", shape, key)
		}
	}

	if err := checkUniqueKeys(df, shape.Keys()); err != nil {
		return Panel{}, fmt.Errorf("panel %s: %w", shape, err)
	}

	return Panel{shape: shape, df: df}, nil
}

// checkUniqueKeys verifies that no two rows share the same key tuple.
func checkUniqueKeys(df dataframe.DataFrame, keys []string) error {
	keyed := df.Select(keys)
	if keyed.Err != nil {
		return keyed.Err
	}

	seen := make(map[string]bool, keyed.Nrow())
	records := keyed.Records()
	for _, rec := range records[1:] { // skip header row
		tuple := strings.Join(rec, "\x1f")
		if seen[tuple] {
			return fmt.Errorf("duplicate key tuple (%s)", strings.Join(rec, ", "))
		}
		seen[tuple] = true
	}
	return nil
}

// Shape returns the panel's key shape.
func (p Panel) Shape() KeyShape { return p.shape }

// Keys returns the panel's key column names.
func (p Panel) Keys() []string { return p.shape.Keys() }

// Frame returns the underlying dataframe.
func (p Panel) Frame() dataframe.DataFrame { return p.df }

// Nrow returns the number of rows in the panel.
func (p Panel) Nrow() int { return p.df.Nrow() }

// Columns returns all column names, keys included.
func (p Panel) Columns() []string { return p.df.Names() }

// Select returns a dataframe carrying the key columns plus the named metric
// columns, ready to be joined onto a detail table.
func (p Panel) Select(metrics ...string) dataframe.DataFrame {
	cols := append(p.shape.Keys(), metrics...)
	return p.df.Select(cols)
}

// HasColumn reports whether the panel carries the named column.
func (p Panel) HasColumn(name string) bool {
	for _, n := range p.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
