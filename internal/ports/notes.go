package ports

import "flatkit/internal/domain"

// NoteSource discovers markdown notes under a root directory
type NoteSource interface {
	// ListNotes returns every note under root, ordered by path
	ListNotes(root string) ([]domain.IndexedNote, error)
}

// IndexWriter persists a notes index document
type IndexWriter interface {
	WriteIndex(path string, entries []domain.NoteEntry) error
}
