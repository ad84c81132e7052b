// Package query implements duster's row filter language. A filter is a single
// HCL expression, e.g.
//
//	amount > 100 && country == "DE"
//
// evaluated once per row against an evaluation context in which every column
// of the Frame is a variable.
package query

import (
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	derrors "github.com/go-duster/duster/errors"
	"github.com/go-duster/duster/frame"
)

// Filter is a compiled row predicate
type Filter struct {
	src      string
	expr     hclsyntax.Expression
	referred []string
}

// Compile parses a filter expression and checks its column references against
// a Schema. Every root variable in the expression must name a column; unknown
// references are reported together as a multierror.
func Compile(src string, schema *frame.Schema) (*Filter, error) {
	if len(src) == 0 {
		return nil, derrors.QueryError{Query: src, Detail: "expression is empty"}
	}
	expr, diags := hclsyntax.ParseExpression([]byte(src), "query", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, derrors.QueryError{Query: src, Detail: diags.Error()}
	}
	var multierr *multierror.Error
	seen := make(map[string]struct{})
	referred := []string{}
	for _, traversal := range expr.Variables() {
		name := traversal.RootName()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		if !schema.HasColumn(name) {
			multierr = multierror.Append(multierr, derrors.UnknownColumnError{Name: name})
			continue
		}
		referred = append(referred, name)
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &Filter{src: src, expr: expr, referred: referred}, nil
}

// String returns the source text of this Filter
func (flt *Filter) String() string {
	return flt.src
}

// Match evaluates this Filter against a single Row. Rows whose referenced
// cells are missing do not match, mirroring how NaN comparisons behave in
// dataframe query engines.
func (flt *Filter) Match(row frame.Row) (bool, error) {
	vars := make(map[string]cty.Value, row.Schema().NumColumns())
	colTypes := row.Schema().ColumnTypes()
	for i, name := range row.Schema().ColumnNames() {
		vars[name] = ctyValue(colTypes[i], row.Cells()[i])
	}
	val, diags := flt.expr.Value(&hcl.EvalContext{Variables: vars})
	if diags.HasErrors() {
		// most operators reject null operands outright; treat that as a
		// non-match rather than an error
		for _, name := range flt.referred {
			if row.IsNil(name) {
				return false, nil
			}
		}
		return false, derrors.QueryError{Query: flt.src, Detail: diags.Error()}
	}
	result, err := convert.Convert(val, cty.Bool)
	if err != nil {
		return false, derrors.NotABoolError{TypeName: val.Type().FriendlyName()}
	}
	if result.IsNull() {
		return false, nil
	}
	return result.True(), nil
}

// Apply returns a Frame containing only the Rows which match this Filter.
// The input Frame is never modified.
func (flt *Filter) Apply(f *frame.Frame) (*frame.Frame, error) {
	out := frame.CreateFrame(f.Schema())
	for i := 0; i < f.NumRows(); i++ {
		row := f.Row(i)
		match, err := flt.Match(row)
		if err != nil {
			return nil, err
		}
		if match {
			out.AppendRow(row.Cells()) //nolint:errcheck // width is unchanged
		}
	}
	return out, nil
}

// ctyValue converts a typed cell into the cty value exposed to expressions
func ctyValue(colType frame.ColumnType, cell interface{}) cty.Value {
	switch colType.(type) {
	case *frame.IntColumnType:
		if cell == nil {
			return cty.NullVal(cty.Number)
		}
		return cty.NumberIntVal(cell.(int64))
	case *frame.FloatColumnType:
		if cell == nil {
			return cty.NullVal(cty.Number)
		}
		return cty.NumberFloatVal(cell.(float64))
	case *frame.BoolColumnType:
		if cell == nil {
			return cty.NullVal(cty.Bool)
		}
		return cty.BoolVal(cell.(bool))
	default:
		if cell == nil {
			return cty.NullVal(cty.String)
		}
		return cty.StringVal(colType.Format(cell))
	}
}
