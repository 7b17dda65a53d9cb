// Package csv reads raw observation rows from a station export on disk.
package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// File-level failures. Per-row problems never surface here; they are the
// parser's to judge.
var (
	ErrSourceNotFound   = errors.New("data file not found")
	ErrSourceUnreadable = errors.New("data file unreadable")
)

// Source reads the rows of one observation CSV file.
// It implements pipeline.RowSource.
type Source struct {
	path string
}

// NewSource creates a Source for the given file path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the file the source reads from.
func (s *Source) Path() string { return s.path }

// Rows reads the whole file and returns its data rows in file order. The
// first line is always treated as a header and discarded, whatever it
// contains. Failures are whole-file: ErrSourceNotFound when the file does
// not exist, ErrSourceUnreadable for anything else, including CSV syntax
// errors.
func (s *Source) Rows() ([][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.path)
		}
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	defer f.Close()

	r := stdcsv.NewReader(f)
	// Short rows must reach the parser as skippable rows, not fail the file.
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, s.path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}
