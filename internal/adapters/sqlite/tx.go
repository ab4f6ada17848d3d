package sqlite

import (
	"database/sql"

	"flatkit/internal/domain"
	"flatkit/internal/ports"
)

// cacheTx implements ports.CacheTx
type cacheTx struct {
	tx *sql.Tx
}

// Ensure cacheTx implements CacheTx
var _ ports.CacheTx = (*cacheTx)(nil)

// UpsertNote inserts or updates a note
func (t *cacheTx) UpsertNote(note *domain.IndexedNote) error {
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO notes (path, title, size, mtime)
		VALUES (?, ?, ?, ?)
	`, note.Path, note.Title, note.Size, note.Mtime)
	return err
}

// DeleteNote removes a note by path
func (t *cacheTx) DeleteNote(path string) error {
	_, err := t.tx.Exec(`DELETE FROM notes WHERE path = ?`, path)
	return err
}

// DeleteAll removes every cached note
func (t *cacheTx) DeleteAll() error {
	_, err := t.tx.Exec(`DELETE FROM notes`)
	return err
}

// SetMeta records a metadata value
func (t *cacheTx) SetMeta(key, value string) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

// Commit commits the transaction
func (t *cacheTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *cacheTx) Rollback() error {
	return t.tx.Rollback()
}
