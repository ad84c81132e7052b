package frame

import (
	"testing"

	derrors "github.com/go-duster/duster/errors"
	"github.com/stretchr/testify/require"
)

func TestCreateColumn(t *testing.T) {
	schema := CreateSchema()
	col, err := schema.CreateColumn("amount", &FloatColumnType{})
	require.Nil(t, err)
	require.Equal(t, 0, col.Index())
	require.Equal(t, "amount", col.Name())

	_, err = schema.CreateColumn("country", &StringColumnType{})
	require.Nil(t, err)
	require.Equal(t, 2, schema.NumColumns())
	require.Equal(t, []string{"amount", "country"}, schema.ColumnNames())
}

func TestCreateDuplicateColumn(t *testing.T) {
	schema := CreateSchema()
	_, err := schema.CreateColumn("amount", &FloatColumnType{})
	require.Nil(t, err)
	_, err = schema.CreateColumn("amount", &IntColumnType{})
	require.IsType(t, derrors.DuplicateColumnError{}, err)
}

func TestColumnLookup(t *testing.T) {
	schema := CreateSchema()
	_, err := schema.CreateColumn("id", &IntColumnType{})
	require.Nil(t, err)

	col, err := schema.Column("id")
	require.Nil(t, err)
	require.Equal(t, "int64", col.Type().String())

	_, err = schema.Column("missing")
	require.IsType(t, derrors.UnknownColumnError{}, err)
	require.False(t, schema.HasColumn("missing"))
	require.True(t, schema.HasColumn("id"))
}

func TestSchemaClone(t *testing.T) {
	schema := CreateSchema()
	_, err := schema.CreateColumn("id", &IntColumnType{})
	require.Nil(t, err)

	clone := schema.Clone()
	_, err = clone.CreateColumn("extra", &BoolColumnType{})
	require.Nil(t, err)
	require.Equal(t, 1, schema.NumColumns())
	require.Equal(t, 2, clone.NumColumns())
}

func TestAppendRowWidth(t *testing.T) {
	schema := CreateSchema()
	_, err := schema.CreateColumn("id", &IntColumnType{})
	require.Nil(t, err)

	f := CreateFrame(schema)
	require.Nil(t, f.AppendRow([]interface{}{int64(1)}))
	err = f.AppendRow([]interface{}{int64(1), int64(2)})
	require.IsType(t, derrors.RowWidthError{}, err)
	require.Equal(t, 1, f.NumRows())
}

func TestNullCounts(t *testing.T) {
	schema := CreateSchema()
	_, err := schema.CreateColumn("id", &IntColumnType{})
	require.Nil(t, err)
	_, err = schema.CreateColumn("name", &StringColumnType{})
	require.Nil(t, err)

	f := CreateFrame(schema)
	require.Nil(t, f.AppendRow([]interface{}{int64(1), "a"}))
	require.Nil(t, f.AppendRow([]interface{}{nil, "b"}))
	require.Nil(t, f.AppendRow([]interface{}{nil, nil}))
	require.Equal(t, []int{2, 1}, f.NullCounts())
	require.True(t, f.Row(2).IsEmpty())
	require.False(t, f.Row(1).IsEmpty())
	require.True(t, f.Row(1).IsNil("id"))
	require.False(t, f.Row(1).IsNil("name"))
}
