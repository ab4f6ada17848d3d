package commands

import (
	"context"
	"errors"
	"io"

	"flatkit/internal/application"
	"flatkit/internal/domain"
	"flatkit/internal/ports"
)

// ProfileCommand profiles the columns of a CSV file
type ProfileCommand struct {
	source ports.TableSource
	Path   string
	Top    int
}

// NewProfileCommand creates a new ProfileCommand
func NewProfileCommand(source ports.TableSource, path string, top int) *ProfileCommand {
	return &ProfileCommand{
		source: source,
		Path:   path,
		Top:    top,
	}
}

// Validate checks that the input file exists. Top is not validated:
// values below one produce empty top lists.
func (c *ProfileCommand) Validate() error {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return err
	}
	return application.ValidateFile("CSV file", c.Path)
}

// Execute runs the profile command
func (c *ProfileCommand) Execute(ctx context.Context) (*domain.Profile, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	table, err := c.source.OpenTable(c.Path)
	if err != nil {
		return nil, err
	}
	defer table.Close()

	profiler := domain.NewProfiler(table.Header())
	for {
		record, err := table.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		profiler.Add(record)
	}

	return profiler.Result(c.Top), nil
}
