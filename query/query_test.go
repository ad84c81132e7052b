package query

import (
	"strings"
	"testing"

	derrors "github.com/go-duster/duster/errors"
	"github.com/go-duster/duster/frame"
	"github.com/stretchr/testify/require"
)

func queryFixture(t *testing.T) *frame.Frame {
	t.Helper()
	schema := frame.CreateSchema()
	_, err := schema.CreateColumn("amount", &frame.FloatColumnType{})
	require.Nil(t, err)
	_, err = schema.CreateColumn("country", &frame.StringColumnType{})
	require.Nil(t, err)
	_, err = schema.CreateColumn("active", &frame.BoolColumnType{})
	require.Nil(t, err)
	f := frame.CreateFrame(schema)
	require.Nil(t, f.AppendRow([]interface{}{float64(150), "DE", true}))
	require.Nil(t, f.AppendRow([]interface{}{float64(50), "DE", false}))
	require.Nil(t, f.AppendRow([]interface{}{float64(200), "FR", true}))
	require.Nil(t, f.AppendRow([]interface{}{nil, "DE", true}))
	return f
}

func TestCompileErrors(t *testing.T) {
	f := queryFixture(t)
	_, err := Compile("", f.Schema())
	require.IsType(t, derrors.QueryError{}, err)

	_, err = Compile("amount >", f.Schema())
	require.IsType(t, derrors.QueryError{}, err)

	_, err = Compile("missing > 1 && other == 2", f.Schema())
	require.NotNil(t, err)
	require.True(t, strings.Contains(err.Error(), "missing"))
	require.True(t, strings.Contains(err.Error(), "other"))
	var unknown derrors.UnknownColumnError
	require.ErrorAs(t, err, &unknown)
}

func TestApply(t *testing.T) {
	f := queryFixture(t)
	flt, err := Compile(`amount > 100 && country == "DE"`, f.Schema())
	require.Nil(t, err)

	out, err := flt.Apply(f)
	require.Nil(t, err)
	require.Equal(t, 1, out.NumRows())
	v, err := out.Row(0).Get("amount")
	require.Nil(t, err)
	require.Equal(t, float64(150), v)
	// filtering is pure: the input frame is untouched
	require.Equal(t, 4, f.NumRows())
}

func TestMatchBoolColumn(t *testing.T) {
	f := queryFixture(t)
	flt, err := Compile("active", f.Schema())
	require.Nil(t, err)
	out, err := flt.Apply(f)
	require.Nil(t, err)
	require.Equal(t, 3, out.NumRows())
}

func TestMatchMissingCellsDoNotMatch(t *testing.T) {
	f := queryFixture(t)
	flt, err := Compile("amount < 1000", f.Schema())
	require.Nil(t, err)
	out, err := flt.Apply(f)
	require.Nil(t, err)
	// the row with a nil amount is excluded, not an error
	require.Equal(t, 3, out.NumRows())
}

func TestMatchNonBoolean(t *testing.T) {
	f := queryFixture(t)
	flt, err := Compile("amount + 1", f.Schema())
	require.Nil(t, err)
	_, err = flt.Apply(f)
	require.IsType(t, derrors.NotABoolError{}, err)
}

func TestFilterString(t *testing.T) {
	f := queryFixture(t)
	flt, err := Compile(`country != "DE"`, f.Schema())
	require.Nil(t, err)
	require.Equal(t, `country != "DE"`, flt.String())
}
