// Package csvfile reads CSV files with a header row for single-pass aggregation.
//
// Parsing is lenient: quotes are accepted loosely, rows may have any number
// of fields, and a leading UTF-8 byte order mark is dropped.
package csvfile

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"flatkit/internal/ports"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Source implements ports.TableSource for CSV files on disk
type Source struct {
	comma rune
}

// Ensure Source implements TableSource
var _ ports.TableSource = (*Source)(nil)

// NewSource creates a CSV source using comma as the field delimiter
func NewSource() *Source {
	return &Source{comma: ','}
}

// OpenTable opens path and reads its header row
func (s *Source) OpenTable(path string) (ports.RowReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}

	r, err := newReader(f, s.comma)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	r.closer = f
	return r, nil
}

// Reader implements ports.RowReader over an io.Reader
type Reader struct {
	csv    *csv.Reader
	header []string
	closer io.Closer
}

// NewReader wraps an io.Reader and consumes its header row.
// An empty input yields an empty header and no rows.
func NewReader(r io.Reader) (*Reader, error) {
	return newReader(r, ',')
}

func newReader(r io.Reader, comma rune) (*Reader, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return &Reader{csv: cr, header: []string{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	return &Reader{csv: cr, header: header}, nil
}

// Header returns the column names
func (r *Reader) Header() []string {
	return r.header
}

// Read returns the next data row or io.EOF
func (r *Reader) Read() ([]string, error) {
	if len(r.header) == 0 {
		return nil, io.EOF
	}
	record, err := r.csv.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read row: %w", err)
	}
	return record, err
}

// Close releases the underlying file, if any
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
