package classification

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
)

// Registry is the fixed mapping from foreign-key column names to
// classification tables. It is built once at startup and never mutated.
type Registry struct {
	entries []Table
}

// NewRegistry builds a registry from the given classification tables.
// Tables are consulted in the order given; each enriches the column
// "<label>_id".
func NewRegistry(tables ...Table) (*Registry, error) {
	seen := make(map[string]bool, len(tables))
	entries := make([]Table, 0, len(tables))
	for _, t := range tables {
		if t.label == "" {
			return nil, fmt.Errorf("registry: classification table without a label")
		}
		if seen[t.label] {
			return nil, fmt.Errorf("registry: duplicate classification %q", t.label)
		}
		seen[t.label] = true
		entries = append(entries, t)
	}
	return &Registry{entries: entries}, nil
}

// Lookup returns the classification table attached to the given id column,
// e.g. "product_id". A miss means the column is not a classification key,
// which is never an error.
func (r *Registry) Lookup(column string) (Table, bool) {
	for _, t := range r.entries {
		if t.IDColumn() == column {
			return t, true
		}
	}
	return Table{}, false
}

// Columns returns the id columns the registry recognizes, in merge order.
func (r *Registry) Columns() []string {
	cols := make([]string, len(r.entries))
	for i, t := range r.entries {
		cols[i] = t.IDColumn()
	}
	return cols
}

// Merge left-joins every applicable classification onto df. The check is an
// enumerated pass over the registry's known id columns, not a scan of
// arbitrary column names: a recognized column that is present gets its
// classification's name/code/level columns appended, a column that is absent
// is skipped. The join is non-lossy on the left; ids with no classification
// entry keep their row and get NA enrichment cells.
func (r *Registry) Merge(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return df, df.Err
	}

	for _, t := range r.entries {
		if !hasColumn(df, t.IDColumn()) {
			continue
		}
		joined := df.LeftJoin(t.Frame(), t.IDColumn())
		if joined.Err != nil {
			return df, fmt.Errorf("merge %s classification: %w", t.label, joined.Err)
		}
		df = joined
	}
	return df, nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}
