package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-duster/duster/datasource"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.Nil(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTransform(t *testing.T) {
	in := writeInput(t, "in.csv", "Order ID,Total-Amount,Country\n1,100,DE\n1,100,DE\n,,\n2,50,FR\n")
	f, err := LoadTransform(in, Options{})
	require.Nil(t, err)
	require.Equal(t, []string{"order_id", "total_amount", "country"}, f.Schema().ColumnNames())
	// one duplicate and one fully-empty row removed
	require.Equal(t, 2, f.NumRows())
}

func TestLoadTransformQueryAndSubset(t *testing.T) {
	in := writeInput(t, "in.csv", "id,amount,country\n1,150,DE\n1,150,DE\n2,150,DE\n2,99,FR\n3,10,DE\n")
	f, err := LoadTransform(in, Options{
		Query:  `amount > 100 && country == "DE"`,
		Subset: []string{"id"},
	})
	require.Nil(t, err)
	// subset dedupe keeps the first row per id, then the query drops id=3
	require.Equal(t, 2, f.NumRows())
}

func TestProcessRoundTrip(t *testing.T) {
	// CSV -> JSON -> CSV preserves row content modulo type coercion
	dir := t.TempDir()
	csvIn := filepath.Join(dir, "in.csv")
	jsonOut := filepath.Join(dir, "mid.json")
	csvOut := filepath.Join(dir, "out.csv")
	require.Nil(t, os.WriteFile(csvIn, []byte("id,amount,name\n1,9.5,ada\n2,,grace\n"), 0o644))

	_, err := Process(csvIn, jsonOut, Options{})
	require.Nil(t, err)
	_, err = Process(jsonOut, csvOut, Options{})
	require.Nil(t, err)

	raw, err := os.ReadFile(csvOut)
	require.Nil(t, err)
	require.Equal(t, "id,amount,name\n1,9.5,ada\n2,,grace\n", string(raw))
}

func TestProcessSummary(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.json")
	require.Nil(t, os.WriteFile(in, []byte("id,name\n1,ada\n2,\n"), 0o644))

	summary, err := Process(in, out, Options{})
	require.Nil(t, err)
	require.Equal(t, 2, summary.Rows)
	require.Equal(t, 2, summary.Columns)
	require.Equal(t, []int{0, 1}, summary.Nulls)
	require.Equal(t, []string{"int64", "object"}, summary.Dtypes)

	_, err = datasource.Read(out, datasource.Options{})
	require.Nil(t, err)
}

func TestProcessBadQuery(t *testing.T) {
	in := writeInput(t, "in.csv", "id\n1\n")
	_, err := Process(in, filepath.Join(t.TempDir(), "out.csv"), Options{Query: "nope > 1"})
	require.NotNil(t, err)
}

func TestSummaryMarshalOrder(t *testing.T) {
	in := writeInput(t, "in.csv", "zeta,alpha\n1,x\n")
	f, err := LoadTransform(in, Options{})
	require.Nil(t, err)

	encoded, err := json.Marshal(Summarize(f))
	require.Nil(t, err)
	expected := `{"rows":1,"columns":2,"nulls":{"zeta":0,"alpha":0},"dtypes":{"zeta":"int64","alpha":"object"}}`
	require.Equal(t, expected, string(encoded))
}
