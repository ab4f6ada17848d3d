// Package report renders tool results as the plain-text reports printed
// by the CLIs and returned by the MCP tools, or as indented JSON.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"flatkit/internal/domain"
)

// Format selects how a report is rendered
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format flag value
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (expected text or json)", s)
	}
}

// Profile writes a CSV profile:
//
//	Rows: 3
//	Columns: 1
//
//	[city]
//	missing=0
//	  Rome: 2
func Profile(w io.Writer, p *domain.Profile) error {
	ew := &errWriter{w: w}
	ew.printf("Rows: %d\n", p.Rows)
	ew.printf("Columns: %d\n", len(p.Columns))
	for _, col := range p.Columns {
		ew.printf("\n[%s]\n", col.Name)
		ew.printf("missing=%d\n", col.Missing)
		for _, vc := range col.TopValues {
			ew.printf("  %s: %d\n", vc.Value, vc.Count)
		}
	}
	return ew.err
}

// Stats writes one line per numeric column with four decimals.
// Non-finite figures print as inf, -inf or nan.
func Stats(w io.Writer, stats []domain.ColumnStats) error {
	ew := &errWriter{w: w}
	for _, s := range stats {
		ew.printf("%s -> count=%d mean=%s median=%s min=%s max=%s\n",
			s.Name, s.Count, fixed(s.Mean), fixed(s.Median), fixed(s.Min), fixed(s.Max))
	}
	return ew.err
}

func fixed(v float64) string {
	return domain.FormatFixed(v, 4)
}

// Customers writes customer names one per line
func Customers(w io.Writer, names []string) error {
	ew := &errWriter{w: w}
	for _, name := range names {
		ew.printf("%s\n", name)
	}
	return ew.err
}

// Inventory writes each customer followed by its indented SKU lines
func Inventory(w io.Writer, customers []domain.CustomerStock) error {
	ew := &errWriter{w: w}
	for _, cs := range customers {
		ew.printf("%s:\n", cs.Customer)
		for _, line := range cs.SKUs {
			ew.printf("  %s: %d\n", line.SKU, line.Stock)
		}
	}
	return ew.err
}

// Notes writes one "title (path)" line per note
func Notes(w io.Writer, notes []domain.NoteEntry) error {
	ew := &errWriter{w: w}
	for _, n := range notes {
		ew.printf("%s (%s)\n", n.Title, n.Path)
	}
	return ew.err
}

// JSON writes v as 2-space indented JSON followed by a newline.
// HTML characters and non-ASCII text are kept verbatim.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// String renders with fn into a string
func String(fn func(io.Writer) error) (string, error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// errWriter keeps the first write error so report bodies stay linear
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
