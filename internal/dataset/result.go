package dataset

import (
	"fmt"

	"github.com/mxabierto/atlas-subnational-api/internal/panel"
)

// Result holds the panels fetched for one dataset, addressable by key shape.
type Result struct {
	dataset string
	tables  map[panel.KeyShape]panel.Panel
}

// NewResult builds a result from fetched panels. Each shape may appear once.
func NewResult(dataset string, panels ...panel.Panel) (Result, error) {
	tables := make(map[panel.KeyShape]panel.Panel, len(panels))
	for _, p := range panels {
		if _, ok := tables[p.Shape()]; ok {
			return Result{}, fmt.Errorf("dataset %s: duplicate panel for shape %s", dataset, p.Shape())
		}
		tables[p.Shape()] = p
	}
	return Result{dataset: dataset, tables: tables}, nil
}

// Dataset returns the name of the dataset the result was fetched for.
func (r Result) Dataset() string { return r.dataset }

// Table returns the panel for the given key shape, if the dataset carries one.
func (r Result) Table(shape panel.KeyShape) (panel.Panel, bool) {
	p, ok := r.tables[shape]
	return p, ok
}

// MustTable returns the panel for the given key shape or an error naming the
// dataset and shape. Assemblers use it for shapes the descriptor declares.
func (r Result) MustTable(shape panel.KeyShape) (panel.Panel, error) {
	p, ok := r.tables[shape]
	if !ok {
		return panel.Panel{}, fmt.Errorf("dataset %s: no panel for shape %s", r.dataset, shape)
	}
	return p, nil
}
