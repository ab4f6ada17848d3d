package commands

import (
	"context"
	"errors"
	"io"

	"flatkit/internal/application"
	"flatkit/internal/domain"
	"flatkit/internal/ports"
)

// StatsCommand computes numeric statistics for the columns of a CSV file
type StatsCommand struct {
	source ports.TableSource
	Path   string
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(source ports.TableSource, path string) *StatsCommand {
	return &StatsCommand{
		source: source,
		Path:   path,
	}
}

// Validate checks that the input file exists
func (c *StatsCommand) Validate() error {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	return application.ValidateFile("CSV file", c.Path)
}

// Execute runs the stats command. Columns without numeric values are omitted.
func (c *StatsCommand) Execute(ctx context.Context) ([]domain.ColumnStats, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	table, err := c.source.OpenTable(c.Path)
	if err != nil {
		return nil, err
	}
	defer table.Close()

	acc := domain.NewStatsAccumulator(table.Header())
	for {
		record, err := table.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		acc.Add(record)
	}

	return acc.Result(), nil
}
