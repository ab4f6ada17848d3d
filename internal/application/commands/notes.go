package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"flatkit/internal/application"
	"flatkit/internal/domain"
	"flatkit/internal/ports"
)

// IndexNotesResult contains the result of indexing a notes directory
type IndexNotesResult struct {
	Entries []domain.NoteEntry
	Output  string
	Cache   *domain.SyncStats // nil when no cache was given
	Message string
}

// IndexNotesCommand builds the notes index of a directory and writes it as JSON
type IndexNotesCommand struct {
	source ports.NoteSource
	writer ports.IndexWriter
	cache  ports.NoteCache
	Root   string
	Output string
}

// NewIndexNotesCommand creates a new IndexNotesCommand. cache may be nil.
func NewIndexNotesCommand(source ports.NoteSource, writer ports.IndexWriter, cache ports.NoteCache, root, output string) *IndexNotesCommand {
	return &IndexNotesCommand{
		source: source,
		writer: writer,
		cache:  cache,
		Root:   root,
		Output: output,
	}
}

// Validate checks that the root is an existing directory
func (c *IndexNotesCommand) Validate() error {
	if err := application.ValidateRequired("root", c.Root); err != nil {
		return err
	}
	if err := application.ValidateRequired("path", c.Output); err != nil {
		return err
	}
	return application.ValidateDir("Root path", c.Root)
}

// Execute runs the index notes command
func (c *IndexNotesCommand) Execute(ctx context.Context) (*IndexNotesResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	notes, err := c.source.ListNotes(c.Root)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.NoteEntry, len(notes))
	for i, n := range notes {
		entries[i] = n.NoteEntry
	}

	if err := c.writer.WriteIndex(c.Output, entries); err != nil {
		return nil, err
	}

	result := &IndexNotesResult{
		Entries: entries,
		Output:  c.Output,
		Message: fmt.Sprintf("Indexed %d notes -> %s", len(entries), c.Output),
	}

	if c.cache != nil {
		root, err := filepath.Abs(c.Root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root: %w", err)
		}
		stats, err := c.cache.Rebuild(root, notes)
		if err != nil {
			return nil, fmt.Errorf("failed to update notes cache: %w", err)
		}
		result.Cache = stats
	}

	return result, nil
}

// SearchNotesCommand searches the notes cache with fuzzy ranking
type SearchNotesCommand struct {
	cache ports.NoteCache
	Query string
}

// NewSearchNotesCommand creates a new SearchNotesCommand
func NewSearchNotesCommand(cache ports.NoteCache, query string) *SearchNotesCommand {
	return &SearchNotesCommand{
		cache: cache,
		Query: query,
	}
}

// Validate checks the query
func (c *SearchNotesCommand) Validate() error {
	return application.ValidateRequired("query", c.Query)
}

// Execute runs the search and returns hits sorted by relevance
func (c *SearchNotesCommand) Execute(ctx context.Context) ([]SearchHit, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	entries, err := c.cache.Search(c.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}

	return FuzzySort(entries, c.Query), nil
}

// OpenNoteResult contains the result of opening a note
type OpenNoteResult struct {
	Note    domain.NoteEntry
	Path    string // Absolute path handed to the opener
	Message string
}

// OpenNoteCommand opens the best cached match for a query
type OpenNoteCommand struct {
	cache  ports.NoteCache
	opener ports.FileOpener
	Query  string
}

// NewOpenNoteCommand creates a new OpenNoteCommand
func NewOpenNoteCommand(cache ports.NoteCache, opener ports.FileOpener, query string) *OpenNoteCommand {
	return &OpenNoteCommand{
		cache:  cache,
		opener: opener,
		Query:  query,
	}
}

// Execute runs the open note command
func (c *OpenNoteCommand) Execute(ctx context.Context) (*OpenNoteResult, error) {
	hits, err := NewSearchNotesCommand(c.cache, c.Query).Execute(ctx)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, fmt.Errorf("no note matches %q: %w", c.Query, application.ErrNotFound)
	}

	root, err := c.cache.Root()
	if err != nil {
		return nil, fmt.Errorf("failed to read notes root: %w", err)
	}
	if root == "" {
		return nil, fmt.Errorf("notes cache has no root, run the indexer first: %w", application.ErrNotFound)
	}

	best := hits[0].NoteEntry
	path := filepath.Join(root, filepath.FromSlash(best.Path))
	if err := c.opener.OpenFile(path); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", best.Path, err)
	}

	return &OpenNoteResult{
		Note:    best,
		Path:    path,
		Message: fmt.Sprintf("Opened %s (%s)", best.Title, best.Path),
	}, nil
}
