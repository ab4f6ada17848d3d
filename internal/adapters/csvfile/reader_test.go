package csvfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r *Reader) [][]string {
	t.Helper()
	var rows [][]string
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows
		}
		require.NoError(t, err)
		rows = append(rows, row)
	}
}

func TestNewReader_HeaderAndRows(t *testing.T) {
	r, err := NewReader(strings.NewReader("name,qty\nwidget,3\ngadget,\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "qty"}, r.Header())
	assert.Equal(t, [][]string{{"widget", "3"}, {"gadget", ""}}, readAll(t, r))
}

func TestNewReader_SkipsBOM(t *testing.T) {
	r, err := NewReader(strings.NewReader("\xEF\xBB\xBFid,name\n1,a\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name"}, r.Header())
}

func TestNewReader_RaggedRows(t *testing.T) {
	r, err := NewReader(strings.NewReader("a,b,c\n1\n1,2,3,4\n"))
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"1"}, {"1", "2", "3", "4"}}, readAll(t, r))
}

func TestNewReader_LazyQuotes(t *testing.T) {
	r, err := NewReader(strings.NewReader("title\nsay \"hi\" now\n"))
	require.NoError(t, err)

	assert.Equal(t, [][]string{{`say "hi" now`}}, readAll(t, r))
}

func TestNewReader_Empty(t *testing.T) {
	r, err := NewReader(strings.NewReader(""))
	require.NoError(t, err)

	assert.Empty(t, r.Header())
	_, err = r.Read()
	assert.ErrorIs(t, err, io.EOF)
}

func TestSource_OpenTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("x\n1\n2\n"), 0o644))

	rr, err := NewSource().OpenTable(path)
	require.NoError(t, err)
	defer rr.Close()

	assert.Equal(t, []string{"x"}, rr.Header())
	assert.Equal(t, [][]string{{"1"}, {"2"}}, readAll(t, rr.(*Reader)))
}

func TestSource_OpenTableMissing(t *testing.T) {
	_, err := NewSource().OpenTable(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
