package errors

import (
	"fmt"
)

// UnsupportedFormatError occurs when a file extension does not map to a known tabular format
type UnsupportedFormatError struct{ Ext string }

// Error returns a textual representation of this UnsupportedFormatError
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("Unsupported data format %q (expected .csv or .json, optionally .lz4-compressed)", e.Ext)
}

// UnknownColumnError occurs when an operation references a column which is not in the Schema
type UnknownColumnError struct{ Name string }

// Error returns a textual representation of this UnknownColumnError
func (e UnknownColumnError) Error() string {
	return fmt.Sprintf("Column %s does not exist", e.Name)
}

// DuplicateColumnError occurs when a column is created with a name the Schema already contains
type DuplicateColumnError struct{ Name string }

// Error returns a textual representation of this DuplicateColumnError
func (e DuplicateColumnError) Error() string {
	return fmt.Sprintf("Column %s already exists", e.Name)
}

// RowWidthError occurs when a Row's width does not match its Frame's Schema
type RowWidthError struct {
	Expected int
	Actual   int
}

// Error returns a textual representation of this RowWidthError
func (e RowWidthError) Error() string {
	return fmt.Sprintf("Row width %d is not compatible with Schema width %d", e.Actual, e.Expected)
}

// QueryError occurs when a filter expression cannot be parsed or evaluated
type QueryError struct {
	Query  string
	Detail string
}

// Error returns a textual representation of this QueryError
func (e QueryError) Error() string {
	return fmt.Sprintf("Invalid query %q: %s", e.Query, e.Detail)
}

// NotABoolError occurs when a filter expression evaluates to a non-boolean value
type NotABoolError struct{ TypeName string }

// Error returns a textual representation of this NotABoolError
func (e NotABoolError) Error() string {
	return fmt.Sprintf("Query must evaluate to a boolean, not %s", e.TypeName)
}

// EmptyFrameError occurs when an input file contains no tabular data at all
type EmptyFrameError struct{}

// Error returns a textual representation of this EmptyFrameError
func (e EmptyFrameError) Error() string {
	return "No tabular data found in input"
}
