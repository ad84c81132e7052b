// Package frame contains duster's in-memory representation of tabular data:
// an ordered Schema of typed Columns, and a Frame of dynamically-typed Rows.
// Schemas are not declared up front - they are inferred from the data itself
// when a file is read.
package frame

// Frame is an in-memory table: a Schema plus zero or more rows of cells.
// A nil cell represents a missing value.
type Frame struct {
	schema *Schema
	rows   [][]interface{}
}

// CreateFrame returns a fresh Frame with the given Schema and no rows
func CreateFrame(schema *Schema) *Frame {
	return &Frame{
		schema: schema,
		rows:   [][]interface{}{},
	}
}

// Schema returns the Schema of this Frame
func (f *Frame) Schema() *Schema {
	return f.schema
}

// NumRows returns the number of rows in this Frame
func (f *Frame) NumRows() int {
	return len(f.rows)
}

// AppendRow adds a row of cells to this Frame, validating its width against the Schema
func (f *Frame) AppendRow(cells []interface{}) error {
	if err := checkWidth(f.schema, cells); err != nil {
		return err
	}
	f.rows = append(f.rows, cells)
	return nil
}

// Row returns a view over the i-th row of this Frame
func (f *Frame) Row(i int) Row {
	return Row{schema: f.schema, cells: f.rows[i]}
}

// NullCounts returns the number of missing cells in each column, ordered by the Schema
func (f *Frame) NullCounts() []int {
	counts := make([]int, f.schema.NumColumns())
	for _, cells := range f.rows {
		for i, cell := range cells {
			if cell == nil {
				counts[i]++
			}
		}
	}
	return counts
}

// WithSchema returns a new Frame sharing this Frame's rows under a different
// Schema of identical width. Used by column-renaming transforms, which change
// names without touching data.
func (f *Frame) WithSchema(schema *Schema) *Frame {
	rows := make([][]interface{}, len(f.rows))
	copy(rows, f.rows)
	return &Frame{schema: schema, rows: rows}
}
