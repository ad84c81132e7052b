package frame

import (
	derrors "github.com/go-duster/duster/errors"
)

// Column describes the name, position and type of a single field in a Schema.
type Column struct {
	name    string
	idx     int
	colType ColumnType
}

// Name returns the name of this Column
func (c *Column) Name() string {
	return c.name
}

// Index returns the index of this Column within its Schema
func (c *Column) Index() int {
	return c.idx
}

// Type returns the ColumnType of this Column
func (c *Column) Type() ColumnType {
	return c.colType
}

// Schema is an ordered set of named, typed Columns.
type Schema struct {
	columns []*Column
	byName  map[string]int
}

// CreateSchema returns a fresh, empty Schema
func CreateSchema() *Schema {
	return &Schema{
		columns: []*Column{},
		byName:  make(map[string]int),
	}
}

// CreateColumn appends a new Column to this Schema, returning an error if the name is taken
func (s *Schema) CreateColumn(name string, colType ColumnType) (*Column, error) {
	if _, ok := s.byName[name]; ok {
		return nil, derrors.DuplicateColumnError{Name: name}
	}
	col := &Column{name: name, idx: len(s.columns), colType: colType}
	s.columns = append(s.columns, col)
	s.byName[name] = col.idx
	return col, nil
}

// NumColumns returns the number of Columns in this Schema
func (s *Schema) NumColumns() int {
	return len(s.columns)
}

// ColumnNames returns the names of the Columns in this Schema, in order
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.columns))
	for i, col := range s.columns {
		names[i] = col.name
	}
	return names
}

// ColumnTypes returns the ColumnTypes of the Columns in this Schema, in order
func (s *Schema) ColumnTypes() []ColumnType {
	types := make([]ColumnType, len(s.columns))
	for i, col := range s.columns {
		types[i] = col.colType
	}
	return types
}

// HasColumn returns true iff this Schema contains a Column with the given name
func (s *Schema) HasColumn(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Column looks up a Column by name
func (s *Schema) Column(name string) (*Column, error) {
	idx, ok := s.byName[name]
	if !ok {
		return nil, derrors.UnknownColumnError{Name: name}
	}
	return s.columns[idx], nil
}

// Clone returns a copy of this Schema
func (s *Schema) Clone() *Schema {
	clone := CreateSchema()
	for _, col := range s.columns {
		clone.CreateColumn(col.name, col.colType) //nolint:errcheck // names are unique by construction
	}
	return clone
}
