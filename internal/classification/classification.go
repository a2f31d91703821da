package classification

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// entities lists the known classification labels in merge order.
var entities = []string{"occupation", "location", "product", "industry"}

// Entities returns the classification labels the system knows about, in the
// order classifications are merged.
func Entities() []string {
	out := make([]string, len(entities))
	copy(out, entities)
	return out
}

// Row is a single classification entry: an entity id plus its descriptive
// attributes.
type Row struct {
	ID    int
	Name  string
	Code  string
	Level string
}

// Table is an immutable classification lookup table for one entity type.
// Column names in the materialized frame are prefixed with the entity label
// (product_id, product_name, ...) so several classifications can be joined
// onto the same table without colliding.
type Table struct {
	label string
	rows  []Row
	df    dataframe.DataFrame
}

// NewTable builds a classification table for the given entity label.
// Rows are sorted by id and ids must be unique.
func NewTable(label string, rows []Row) (Table, error) {
	if label == "" {
		return Table{}, fmt.Errorf("classification table needs a label")
	}

	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].ID == sorted[i-1].ID {
			return Table{}, fmt.Errorf("%s classification: duplicate id %d", label, sorted[i].ID)
		}
	}

	ids := make([]int, len(sorted))
	names := make([]string, len(sorted))
	codes := make([]string, len(sorted))
	levels := make([]string, len(sorted))
	for i, r := range sorted {
		ids[i] = r.ID
		names[i] = r.Name
		codes[i] = r.Code
		levels[i] = r.Level
	}

	df := dataframe.New(
		series.New(ids, series.Int, label+"_id"),
		series.New(names, series.String, label+"_name"),
		series.New(codes, series.String, label+"_code"),
		series.New(levels, series.String, label+"_level"),
	)
	if df.Err != nil {
		return Table{}, fmt.Errorf("%s classification: %w", label, df.Err)
	}

	return Table{label: label, rows: sorted, df: df}, nil
}

// Label returns the entity label, e.g. "product".
func (t Table) Label() string { return t.label }

// IDColumn returns the foreign-key column this classification enriches.
func (t Table) IDColumn() string { return t.label + "_id" }

// Len returns the number of classification entries.
func (t Table) Len() int { return len(t.rows) }

// Frame returns the classification as a dataframe with prefixed column names.
func (t Table) Frame() dataframe.DataFrame { return t.df }

// Get returns the row for the given id.
func (t Table) Get(id int) (Row, bool) {
	i := sort.Search(len(t.rows), func(i int) bool { return t.rows[i].ID >= id })
	if i < len(t.rows) && t.rows[i].ID == id {
		return t.rows[i], true
	}
	return Row{}, false
}
