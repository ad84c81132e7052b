package frame

import (
	"fmt"
	"strconv"
)

// ColumnType describes the runtime type shared by every non-missing cell in a
// column, and knows how to move values between their string and typed forms.
type ColumnType interface {
	Parse(raw string) (interface{}, error) // Parse converts a raw cell into a typed value
	Format(v interface{}) string           // Format renders a typed value as a string cell
	String() string                        // String returns the dtype name used in summaries
}

// BoolColumnType is a ColumnType for boolean values
type BoolColumnType struct{}

// Parse converts a raw cell into a bool
func (b *BoolColumnType) Parse(raw string) (interface{}, error) {
	return strconv.ParseBool(raw)
}

// Format renders a bool as a string cell
func (b *BoolColumnType) Format(v interface{}) string {
	return strconv.FormatBool(v.(bool))
}

// String returns the dtype name for this ColumnType
func (b *BoolColumnType) String() string {
	return "bool"
}

// IntColumnType is a ColumnType for 64-bit integer values
type IntColumnType struct{}

// Parse converts a raw cell into an int64
func (i *IntColumnType) Parse(raw string) (interface{}, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// Format renders an int64 as a string cell
func (i *IntColumnType) Format(v interface{}) string {
	return strconv.FormatInt(v.(int64), 10)
}

// String returns the dtype name for this ColumnType
func (i *IntColumnType) String() string {
	return "int64"
}

// FloatColumnType is a ColumnType for 64-bit floating point values
type FloatColumnType struct{}

// Parse converts a raw cell into a float64
func (f *FloatColumnType) Parse(raw string) (interface{}, error) {
	return strconv.ParseFloat(raw, 64)
}

// Format renders a float64 as a string cell
func (f *FloatColumnType) Format(v interface{}) string {
	return strconv.FormatFloat(v.(float64), 'f', -1, 64)
}

// String returns the dtype name for this ColumnType
func (f *FloatColumnType) String() string {
	return "float64"
}

// StringColumnType is a ColumnType for string values
type StringColumnType struct{}

// Parse converts a raw cell into a string
func (s *StringColumnType) Parse(raw string) (interface{}, error) {
	return raw, nil
}

// Format renders a string value as a string cell
func (s *StringColumnType) Format(v interface{}) string {
	if sv, ok := v.(string); ok {
		return sv
	}
	return fmt.Sprintf("%v", v)
}

// String returns the dtype name for this ColumnType
func (s *StringColumnType) String() string {
	return "object"
}
