package report

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatkit/internal/domain"
)

func TestProfile(t *testing.T) {
	p := &domain.Profile{
		Rows: 3,
		Columns: []domain.ColumnProfile{
			{Name: "city", Missing: 1, TopValues: []domain.ValueCount{{Value: "Rome", Count: 2}}},
			{Name: "empty", Missing: 3, TopValues: []domain.ValueCount{}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Profile(&buf, p))

	want := "Rows: 3\nColumns: 2\n\n[city]\nmissing=1\n  Rome: 2\n\n[empty]\nmissing=3\n"
	assert.Equal(t, want, buf.String())
}

func TestStats(t *testing.T) {
	out, err := String(func(w io.Writer) error {
		return Stats(w, []domain.ColumnStats{
			{Name: "v", Count: 4, Mean: 2.5, Median: 2.5, Min: 1, Max: 4},
		})
	})
	require.NoError(t, err)
	assert.Equal(t, "v -> count=4 mean=2.5000 median=2.5000 min=1.0000 max=4.0000\n", out)
}

func TestStats_NonFinite(t *testing.T) {
	stats := []domain.ColumnStats{
		{Name: "x", Count: 2, Mean: math.Inf(1), Median: math.NaN(), Min: math.Inf(-1), Max: math.Inf(1)},
	}

	out, err := String(func(w io.Writer) error { return Stats(w, stats) })
	require.NoError(t, err)
	assert.Equal(t, "x -> count=2 mean=inf median=nan min=-inf max=inf\n", out)

	out, err = String(func(w io.Writer) error { return JSON(w, stats) })
	require.NoError(t, err)
	assert.Contains(t, out, `"mean": "inf"`)
	assert.Contains(t, out, `"median": "nan"`)
	assert.Contains(t, out, `"min": "-inf"`)
}

func TestInventory(t *testing.T) {
	out, err := String(func(w io.Writer) error {
		return Inventory(w, []domain.CustomerStock{
			{Customer: "acme", SKUs: []domain.StockLine{{Customer: "acme", SKU: "A1", Stock: 3}}},
			{Customer: "empty", SKUs: []domain.StockLine{}},
		})
	})
	require.NoError(t, err)
	assert.Equal(t, "acme:\n  A1: 3\nempty:\n", out)
}

func TestCustomers(t *testing.T) {
	out, err := String(func(w io.Writer) error { return Customers(w, []string{"a", "b"}) })
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)
}

func TestNotes(t *testing.T) {
	out, err := String(func(w io.Writer) error {
		return Notes(w, []domain.NoteEntry{{Title: "Plan", Path: "work/plan.md"}})
	})
	require.NoError(t, err)
	assert.Equal(t, "Plan (work/plan.md)\n", out)
}

func TestJSON_KeepsNonASCII(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, map[string]string{"name": "café <&>"}))
	assert.Equal(t, "{\n  \"name\": \"café <&>\"\n}\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestProfile_WriteError(t *testing.T) {
	err := Profile(failingWriter{}, &domain.Profile{})
	assert.EqualError(t, err, "disk full")
}
