package ports

// RowReader yields the data rows of a table after its header
type RowReader interface {
	// Header returns the column names in file order
	Header() []string

	// Read returns the next data row, or io.EOF when exhausted.
	// Rows may be shorter or longer than the header.
	Read() ([]string, error)

	Close() error
}

// TableSource opens tabular files for a single sequential pass
type TableSource interface {
	OpenTable(path string) (RowReader, error)
}
