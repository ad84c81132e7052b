package pipeline

import (
	"bytes"
	"encoding/json"

	"github.com/go-duster/duster/frame"
)

// Summary is a compact description of a Frame: its size, and per-column
// missing-value counts and dtypes. It marshals to JSON with columns in
// Schema order.
type Summary struct {
	Rows    int
	Columns int
	Names   []string
	Nulls   []int
	Dtypes  []string
}

// Summarize computes a Summary for a Frame
func Summarize(f *frame.Frame) Summary {
	schema := f.Schema()
	dtypes := make([]string, schema.NumColumns())
	for i, colType := range schema.ColumnTypes() {
		dtypes[i] = colType.String()
	}
	return Summary{
		Rows:    f.NumRows(),
		Columns: schema.NumColumns(),
		Names:   schema.ColumnNames(),
		Nulls:   f.NullCounts(),
		Dtypes:  dtypes,
	}
}

// MarshalJSON renders the Summary with per-column objects keyed in Schema
// order rather than the alphabetical order encoding/json gives maps
func (s Summary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"rows":`)
	if err := writeValue(&buf, s.Rows); err != nil {
		return nil, err
	}
	buf.WriteString(`,"columns":`)
	if err := writeValue(&buf, s.Columns); err != nil {
		return nil, err
	}
	buf.WriteString(`,"nulls":`)
	if err := writeOrdered(&buf, s.Names, func(i int) interface{} { return s.Nulls[i] }); err != nil {
		return nil, err
	}
	buf.WriteString(`,"dtypes":`)
	if err := writeOrdered(&buf, s.Names, func(i int) interface{} { return s.Dtypes[i] }); err != nil {
		return nil, err
	}
	buf.WriteString("}")
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v interface{}) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(encoded)
	return nil
}

// writeOrdered writes a JSON object with the given keys in order
func writeOrdered(buf *bytes.Buffer, names []string, value func(i int) interface{}) error {
	buf.WriteString("{")
	for i, name := range names {
		if i > 0 {
			buf.WriteString(",")
		}
		if err := writeValue(buf, name); err != nil {
			return err
		}
		buf.WriteString(":")
		if err := writeValue(buf, value(i)); err != nil {
			return err
		}
	}
	buf.WriteString("}")
	return nil
}
