package datasource

import (
	"encoding/csv"
	"io"

	derrors "github.com/go-duster/duster/errors"
	"github.com/go-duster/duster/frame"
)

// ReadCSV parses CSV data into a Frame. The first record is the header;
// column types are inferred from the remaining records. Cells equal to the
// configured nil sentinel (or empty) are missing values.
func ReadCSV(r io.Reader, opts Options) (*frame.Frame, error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.delimiter()
	reader.Comment = opts.Comment
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, derrors.EmptyFrameError{}
	}
	return frame.FromRaw(records[0], records[1:], opts.NilValue)
}

// WriteCSV serializes a Frame as CSV: a header record followed by one record
// per row, with missing cells rendered as the nil sentinel.
func WriteCSV(w io.Writer, f *frame.Frame, opts Options) error {
	writer := csv.NewWriter(w)
	writer.Comma = opts.delimiter()
	if err := writer.Write(f.Schema().ColumnNames()); err != nil {
		return err
	}
	colTypes := f.Schema().ColumnTypes()
	record := make([]string, f.Schema().NumColumns())
	for i := 0; i < f.NumRows(); i++ {
		for j, cell := range f.Row(i).Cells() {
			if cell == nil {
				record[j] = opts.NilValue
			} else {
				record[j] = colTypes[j].Format(cell)
			}
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
