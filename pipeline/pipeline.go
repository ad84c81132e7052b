// Package pipeline chains duster's load, clean, dedupe, filter and write
// steps into the two entry points the CLI calls.
package pipeline

import (
	"github.com/charmbracelet/log"
	"github.com/gofrs/uuid"

	"github.com/go-duster/duster/datasource"
	"github.com/go-duster/duster/frame"
	"github.com/go-duster/duster/query"
	"github.com/go-duster/duster/transform"
)

// Options configures a pipeline run
type Options struct {
	Query  string             // Optional row filter expression. Empty means no filtering.
	Subset []string           // Optional column subset for duplicate detection. Empty means all columns.
	CSV    datasource.Options // CSV delimiter, comment rune and nil sentinel.
	Logger *log.Logger        // Destination for stage-by-stage progress. Defaults to the global logger.
}

func (o Options) logger() *log.Logger {
	logger := o.Logger
	if logger == nil {
		logger = log.Default()
	}
	if id, err := uuid.NewV4(); err == nil {
		logger = logger.With("run", id.String()[:8])
	}
	return logger
}

// LoadTransform is the in-memory pipeline: read the input file, normalize
// column names, drop fully-empty rows, remove duplicates, and apply the
// optional filter expression. Returns the resulting Frame.
func LoadTransform(path string, opts Options) (*frame.Frame, error) {
	logger := opts.logger()
	f, err := datasource.Read(path, opts.CSV)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded input", "path", path, "rows", f.NumRows(), "cols", f.Schema().NumColumns())

	f, err = transform.CleanColumns(f)
	if err != nil {
		return nil, err
	}
	logger.Debug("normalized columns", "names", f.Schema().ColumnNames())

	before := f.NumRows()
	f = transform.DropEmptyRows(f)
	logger.Debug("dropped empty rows", "removed", before-f.NumRows())

	before = f.NumRows()
	f, err = transform.Dedupe(f, opts.Subset)
	if err != nil {
		return nil, err
	}
	logger.Debug("deduplicated", "removed", before-f.NumRows(), "subset", opts.Subset)

	if len(opts.Query) > 0 {
		flt, err := query.Compile(opts.Query, f.Schema())
		if err != nil {
			return nil, err
		}
		before = f.NumRows()
		f, err = flt.Apply(f)
		if err != nil {
			return nil, err
		}
		logger.Debug("filtered", "query", opts.Query, "removed", before-f.NumRows())
	}
	return f, nil
}

// Process runs LoadTransform and writes the result to the output file,
// returning a Summary of what was written.
func Process(input string, output string, opts Options) (Summary, error) {
	f, err := LoadTransform(input, opts)
	if err != nil {
		return Summary{}, err
	}
	if err := datasource.Write(output, f, opts.CSV); err != nil {
		return Summary{}, err
	}
	return Summarize(f), nil
}
