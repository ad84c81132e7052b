package datasource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	derrors "github.com/go-duster/duster/errors"
	"github.com/go-duster/duster/frame"
	"github.com/tidwall/gjson"
)

// jsonKind tracks the observed value kinds of a JSON column while its final
// ColumnType is still undecided.
type jsonKind int

const (
	kindUnknown jsonKind = iota
	kindInt
	kindFloat
	kindBool
	kindString
)

// widen resolves the combined kind of two observed cells: ints and floats mix
// into floats, anything else mixes into strings.
func (k jsonKind) widen(other jsonKind) jsonKind {
	if k == kindUnknown {
		return other
	}
	if k == other {
		return k
	}
	if (k == kindInt && other == kindFloat) || (k == kindFloat && other == kindInt) {
		return kindFloat
	}
	return kindString
}

func kindOf(v gjson.Result) jsonKind {
	switch v.Type {
	case gjson.Number:
		if strings.ContainsAny(v.Raw, ".eE") {
			return kindFloat
		}
		return kindInt
	case gjson.True, gjson.False:
		return kindBool
	default:
		return kindString
	}
}

func (k jsonKind) columnType() frame.ColumnType {
	switch k {
	case kindInt:
		return &frame.IntColumnType{}
	case kindFloat:
		return &frame.FloatColumnType{}
	case kindBool:
		return &frame.BoolColumnType{}
	default:
		return &frame.StringColumnType{}
	}
}

// cell converts a gjson value to the typed form demanded by the resolved kind
func (k jsonKind) cell(v gjson.Result) interface{} {
	switch k {
	case kindInt:
		return v.Int()
	case kindFloat:
		return v.Float()
	case kindBool:
		return v.Bool()
	default:
		if v.Type == gjson.String {
			return v.String()
		}
		// nested objects and arrays are kept as their raw JSON text
		return v.Raw
	}
}

// ReadJSON parses a top-level JSON array of records into a Frame. The Schema
// is the union of observed keys in first-seen order; absent keys are missing
// cells. Value types are taken from the JSON itself, with mixed int/float
// columns widening to float and any other mix widening to string.
func ReadJSON(r io.Reader) (*frame.Frame, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("malformed JSON input")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("JSON input must be a top-level array of records")
	}

	var names []string
	kinds := make(map[string]jsonKind)
	var records []map[string]gjson.Result
	var iterErr error
	doc.ForEach(func(_, record gjson.Result) bool {
		if !record.IsObject() {
			iterErr = fmt.Errorf("JSON record %d is not an object", len(records))
			return false
		}
		cells := make(map[string]gjson.Result)
		record.ForEach(func(key, value gjson.Result) bool {
			name := key.String()
			if _, ok := kinds[name]; !ok {
				names = append(names, name)
			}
			if value.Type != gjson.Null {
				kinds[name] = kinds[name].widen(kindOf(value))
			} else if _, ok := kinds[name]; !ok {
				kinds[name] = kindUnknown
			}
			cells[name] = value
			return true
		})
		records = append(records, cells)
		return true
	})
	if iterErr != nil {
		return nil, iterErr
	}
	if len(records) == 0 {
		return nil, derrors.EmptyFrameError{}
	}

	schema := frame.CreateSchema()
	for _, name := range names {
		if _, err := schema.CreateColumn(name, kinds[name].columnType()); err != nil {
			return nil, err
		}
	}
	f := frame.CreateFrame(schema)
	for _, record := range records {
		cells := make([]interface{}, len(names))
		for i, name := range names {
			v, ok := record[name]
			if !ok || v.Type == gjson.Null {
				continue
			}
			cells[i] = kinds[name].cell(v)
		}
		if err := f.AppendRow(cells); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// WriteJSON serializes a Frame as a pretty-printed JSON array of records,
// preserving column order. Missing cells serialize as null.
func WriteJSON(w io.Writer, f *frame.Frame) error {
	names := f.Schema().ColumnNames()
	encodedNames := make([][]byte, len(names))
	for i, name := range names {
		encoded, err := json.Marshal(name)
		if err != nil {
			return err
		}
		encodedNames[i] = encoded
	}

	var buf bytes.Buffer
	buf.WriteString("[")
	for i := 0; i < f.NumRows(); i++ {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  {")
		for j, cell := range f.Row(i).Cells() {
			if j > 0 {
				buf.WriteString(",")
			}
			buf.WriteString("\n    ")
			buf.Write(encodedNames[j])
			buf.WriteString(": ")
			encoded, err := json.Marshal(cell)
			if err != nil {
				return err
			}
			buf.Write(encoded)
		}
		buf.WriteString("\n  }")
	}
	if f.NumRows() > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")
	_, err := w.Write(buf.Bytes())
	return err
}
