// Package datasource reads and writes Frames as CSV or JSON files. The format
// is chosen by file extension, and a trailing .lz4 extension wraps either
// format in transparent lz4 stream compression.
package datasource

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	derrors "github.com/go-duster/duster/errors"
	"github.com/go-duster/duster/frame"
	"github.com/pierrec/lz4/v4"
)

// Format enumerates the tabular file formats duster can read and write
type Format int

const (
	// FormatCSV indicates comma (or otherwise) separated values
	FormatCSV Format = iota
	// FormatJSON indicates a JSON array of records
	FormatJSON
)

// Options configures CSV reading and writing
type Options struct {
	Delimiter rune   // The delimiter separating columns. Defaults to ,
	Comment   rune   // Lines beginning with the comment character are ignored. Cannot be equal to the Delimiter. Defaults to no comment character.
	NilValue  string // A special string which represents nil values in the dataset. Defaults to "" (the empty string).
}

func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// DetectFormat maps a file path to a Format via its extension, reporting
// whether the file is additionally lz4-compressed
func DetectFormat(path string) (Format, bool, error) {
	compressed := false
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".lz4" {
		compressed = true
		path = strings.TrimSuffix(path, filepath.Ext(path))
		ext = strings.ToLower(filepath.Ext(path))
	}
	switch ext {
	case ".csv":
		return FormatCSV, compressed, nil
	case ".json":
		return FormatJSON, compressed, nil
	default:
		return 0, false, derrors.UnsupportedFormatError{Ext: ext}
	}
}

// Read loads the file at path into a Frame, decompressing and parsing
// according to its extension
func Read(path string, opts Options) (*frame.Frame, error) {
	format, compressed, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	var r io.Reader = in
	if compressed {
		r = lz4.NewReader(in)
	}
	switch format {
	case FormatJSON:
		return ReadJSON(r)
	default:
		return ReadCSV(r, opts)
	}
}

// Write stores a Frame at path, serializing and compressing according to its
// extension
func Write(path string, f *frame.Frame, opts Options) error {
	format, compressed, err := DetectFormat(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	var w io.Writer = out
	var compressor *lz4.Writer
	if compressed {
		compressor = lz4.NewWriter(out)
		w = compressor
	}
	switch format {
	case FormatJSON:
		err = WriteJSON(w, f)
	default:
		err = WriteCSV(w, f, opts)
	}
	if err != nil {
		return err
	}
	if compressor != nil {
		return compressor.Close()
	}
	return nil
}
