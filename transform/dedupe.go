package transform

import (
	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-duster/duster/frame"
	"github.com/hashicorp/go-multierror"
)

// cell separator and nil marker for row keys; cells are length-delimited by
// the separator so adjacent cells cannot run together
var (
	keySeparator = []byte{0x1e}
	keyNilMarker = []byte{0x00}
)

// Dedupe removes duplicate rows from a Frame, keeping the first occurrence.
// Row identity is an xxhash key over the cells of the given column subset,
// or over every column when subset is empty. Unknown subset columns are
// reported together as a multierror.
func Dedupe(f *frame.Frame, subset []string) (*frame.Frame, error) {
	var multierr *multierror.Error
	indices := make([]int, 0, f.Schema().NumColumns())
	if len(subset) == 0 {
		for i := 0; i < f.Schema().NumColumns(); i++ {
			indices = append(indices, i)
		}
	} else {
		for _, name := range subset {
			col, err := f.Schema().Column(name)
			if err != nil {
				multierr = multierror.Append(multierr, err)
				continue
			}
			indices = append(indices, col.Index())
		}
	}
	if err := multierr.ErrorOrNil(); err != nil {
		return nil, err
	}

	colTypes := f.Schema().ColumnTypes()
	seen := make(map[uint64]struct{}, f.NumRows())
	out := frame.CreateFrame(f.Schema())
	for i := 0; i < f.NumRows(); i++ {
		cells := f.Row(i).Cells()
		hasher := xxhash.New()
		for _, idx := range indices {
			if cells[idx] == nil {
				hasher.Write(keyNilMarker)
			} else {
				hasher.WriteString(colTypes[idx].Format(cells[idx]))
			}
			hasher.Write(keySeparator)
		}
		key := hasher.Sum64()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out.AppendRow(cells) //nolint:errcheck // width is unchanged
	}
	return out, nil
}
