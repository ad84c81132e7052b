// Package transform contains duster's eager Frame transformations: column
// name normalization, empty-row removal, and duplicate removal.
package transform

import (
	"strings"
	"unicode"

	"github.com/go-duster/duster/frame"
)

// SnakeCase normalizes a column name: trim surrounding whitespace, treat "-"
// and "/" as word breaks, strip every other non-alphanumeric rune, collapse
// runs of spaces, lowercase, and join words with underscores.
func SnakeCase(name string) string {
	name = strings.TrimSpace(name)
	name = strings.NewReplacer("-", " ", "/", " ").Replace(name)
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(strings.ToLower(b.String())), "_")
}

// CleanColumns returns a Frame with every column name normalized via
// SnakeCase. Names which collide after normalization are disambiguated with
// a numeric suffix so no column is dropped.
func CleanColumns(f *frame.Frame) (*frame.Frame, error) {
	names := f.Schema().ColumnNames()
	cleaned := make([]string, len(names))
	for i, name := range names {
		cleaned[i] = SnakeCase(name)
	}
	cleaned = frame.UniqueNames(cleaned)
	schema := frame.CreateSchema()
	for i, colType := range f.Schema().ColumnTypes() {
		if _, err := schema.CreateColumn(cleaned[i], colType); err != nil {
			return nil, err
		}
	}
	return f.WithSchema(schema), nil
}

// DropEmptyRows returns a Frame without the rows in which every cell is
// missing. Rows with at least one populated cell are kept untouched.
func DropEmptyRows(f *frame.Frame) *frame.Frame {
	out := frame.CreateFrame(f.Schema())
	for i := 0; i < f.NumRows(); i++ {
		row := f.Row(i)
		if row.IsEmpty() {
			continue
		}
		out.AppendRow(row.Cells()) //nolint:errcheck // width is unchanged
	}
	return out
}
