package ports

import "flatkit/internal/domain"

// NoteCache stores the notes index for later lookup
type NoteCache interface {
	// Lifecycle
	Open(dbPath string) error
	Close() error

	// Rebuild replaces the cached notes of root with entries
	Rebuild(root string, entries []domain.IndexedNote) (*domain.SyncStats, error)

	// Queries
	Root() (string, error)
	Count() (int, error)
	Search(query string) ([]domain.NoteEntry, error)

	// Batch updates
	BeginTx() (CacheTx, error)
}

// CacheTx represents a transaction for atomic cache updates
type CacheTx interface {
	UpsertNote(note *domain.IndexedNote) error
	DeleteNote(path string) error
	DeleteAll() error
	SetMeta(key, value string) error

	Commit() error
	Rollback() error
}
