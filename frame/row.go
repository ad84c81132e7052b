package frame

import (
	derrors "github.com/go-duster/duster/errors"
)

// Row is a view over a single row of a Frame. Cells are dynamically typed
// according to the Schema's ColumnTypes, with nil representing a missing value.
type Row struct {
	schema *Schema
	cells  []interface{}
}

// Schema returns the Schema this Row conforms to
func (r Row) Schema() *Schema {
	return r.schema
}

// IsNil returns true iff the cell for the given column is missing
func (r Row) IsNil(name string) bool {
	col, err := r.schema.Column(name)
	if err != nil {
		return true
	}
	return r.cells[col.idx] == nil
}

// Get returns the cell value for the given column, which is nil for missing values
func (r Row) Get(name string) (interface{}, error) {
	col, err := r.schema.Column(name)
	if err != nil {
		return nil, err
	}
	return r.cells[col.idx], nil
}

// Cells returns the raw cell values of this Row, ordered by the Schema
func (r Row) Cells() []interface{} {
	return r.cells
}

// IsEmpty returns true iff every cell in this Row is missing
func (r Row) IsEmpty() bool {
	for _, cell := range r.cells {
		if cell != nil {
			return false
		}
	}
	return true
}

// checkWidth validates that a cell slice matches a Schema's width
func checkWidth(schema *Schema, cells []interface{}) error {
	if len(cells) != schema.NumColumns() {
		return derrors.RowWidthError{Expected: schema.NumColumns(), Actual: len(cells)}
	}
	return nil
}
