package frame

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInferType(t *testing.T) {
	require.Equal(t, "int64", InferType([]string{"1", "-42", "0"}).String())
	require.Equal(t, "float64", InferType([]string{"1", "3.14"}).String())
	require.Equal(t, "float64", InferType([]string{"1e3", "2.5"}).String())
	require.Equal(t, "bool", InferType([]string{"true", "false", "TRUE"}).String())
	require.Equal(t, "object", InferType([]string{"1", "abc"}).String())
	require.Equal(t, "object", InferType([]string{}).String())
	// 1/0 are ambiguous between int and bool; int wins
	require.Equal(t, "int64", InferType([]string{"1", "0"}).String())
}

func TestUniqueNames(t *testing.T) {
	require.Equal(t, []string{"name", "name_2", "name_3"}, UniqueNames([]string{"name", "name", "name"}))
	require.Equal(t, []string{"a", "b"}, UniqueNames([]string{"a", "b"}))
	// a pre-existing suffixed name must not be reused
	require.Equal(t, []string{"name", "name_2", "name_3"}, UniqueNames([]string{"name", "name_2", "name"}))
}

func TestFromRaw(t *testing.T) {
	f, err := FromRaw(
		[]string{"id", "amount", "name"},
		[][]string{
			{"1", "9.5", "ada"},
			{"2", "", "grace"},
			{"3", "1.25", "NA"},
		},
		"NA",
	)
	require.Nil(t, err)
	require.Equal(t, 3, f.NumRows())
	require.Equal(t, []string{"id", "amount", "name"}, f.Schema().ColumnNames())
	require.Equal(t, "int64", f.Schema().ColumnTypes()[0].String())
	require.Equal(t, "float64", f.Schema().ColumnTypes()[1].String())
	require.Equal(t, "object", f.Schema().ColumnTypes()[2].String())

	v, err := f.Row(0).Get("id")
	require.Nil(t, err)
	require.Equal(t, int64(1), v)
	require.True(t, f.Row(1).IsNil("amount"))
	require.True(t, f.Row(2).IsNil("name"))
}

func TestFromRawDuplicateHeader(t *testing.T) {
	f, err := FromRaw([]string{"a", "a"}, [][]string{{"1", "2"}}, "")
	require.Nil(t, err)
	require.Equal(t, []string{"a", "a_2"}, f.Schema().ColumnNames())
}
