package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatkit/internal/adapters/csvfile"
	"flatkit/internal/application"
	"flatkit/internal/domain"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProfileCommand_Execute(t *testing.T) {
	path := writeCSV(t, "city,age\nRome,30\nOslo,\nRome,41\n,30\n")

	profile, err := NewProfileCommand(csvfile.NewSource(), path, 5).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, profile.Rows)
	require.Len(t, profile.Columns, 2)

	city := profile.Columns[0]
	assert.Equal(t, "city", city.Name)
	assert.Equal(t, 1, city.Missing)
	assert.Equal(t, []domain.ValueCount{{Value: "Rome", Count: 2}, {Value: "Oslo", Count: 1}}, city.TopValues)

	age := profile.Columns[1]
	assert.Equal(t, 1, age.Missing)
	assert.Equal(t, []domain.ValueCount{{Value: "30", Count: 2}, {Value: "41", Count: 1}}, age.TopValues)
}

func TestProfileCommand_MissingPlusTalliesEqualsRows(t *testing.T) {
	path := writeCSV(t, "a,b\nx,1\n,2\ny\nx,,extra\nz,1\n")

	profile, err := NewProfileCommand(csvfile.NewSource(), path, 10).Execute(context.Background())
	require.NoError(t, err)

	for _, col := range profile.Columns {
		total := col.Missing
		for _, vc := range col.TopValues {
			total += vc.Count
		}
		assert.Equal(t, profile.Rows, total, "column %s", col.Name)
	}
}

func TestProfileCommand_TiesKeepFirstSeenOrder(t *testing.T) {
	path := writeCSV(t, "k\nb\na\nc\na\nb\n")

	profile, err := NewProfileCommand(csvfile.NewSource(), path, 2).Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, profile.Columns, 1)
	assert.Equal(t, []domain.ValueCount{{Value: "b", Count: 2}, {Value: "a", Count: 2}}, profile.Columns[0].TopValues)
}

func TestProfileCommand_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "a,b\n")

	profile, err := NewProfileCommand(csvfile.NewSource(), path, 5).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, profile.Rows)
	require.Len(t, profile.Columns, 2)
	for _, col := range profile.Columns {
		assert.Zero(t, col.Missing)
		assert.Empty(t, col.TopValues)
	}
}

func TestProfileCommand_MissingFile(t *testing.T) {
	cmd := NewProfileCommand(csvfile.NewSource(), filepath.Join(t.TempDir(), "nope.csv"), 5)

	_, err := cmd.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, application.ErrInvalidPath))
}
