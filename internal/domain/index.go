package domain

import "time"

// IndexedNote is a notes index entry as stored in the SQLite cache
type IndexedNote struct {
	NoteEntry
	Size  int64 // File size in bytes
	Mtime int64 // Unix timestamp of last modification
}

// SyncStats holds statistics from a cache rebuild
type SyncStats struct {
	NotesAdded   int
	NotesDeleted int
	Duration     time.Duration
}
