package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"flatkit/internal/domain"
	"flatkit/internal/ports"

	_ "modernc.org/sqlite"
)

// Index implements ports.NoteCache using SQLite
type Index struct {
	db     *sql.DB
	dbPath string
}

// Ensure Index implements NoteCache
var _ ports.NoteCache = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the database at dbPath, creating it when needed
func (idx *Index) Open(dbPath string) error {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	idx.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite", idx.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	_, err = db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS notes (
			path TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			size INTEGER NOT NULL,
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_notes_title ON notes(title);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// DatabasePath returns the default cache location for a notes root
func DatabasePath(root string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "flatkit", hashRoot(root)+".db")
}

// hashRoot returns a short hash of the absolute notes root
func hashRoot(root string) string {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	h := sha256.Sum256([]byte(root))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// Rebuild replaces all cached notes with entries in one transaction
func (idx *Index) Rebuild(root string, entries []domain.IndexedNote) (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	previous, err := idx.Count()
	if err != nil {
		return nil, err
	}

	tx, err := idx.BeginTx()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := tx.DeleteAll(); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to clear notes: %w", err)
	}
	stats.NotesDeleted = previous

	for i := range entries {
		if err := tx.UpsertNote(&entries[i]); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to store %s: %w", entries[i].Path, err)
		}
		stats.NotesAdded++
	}

	if err := tx.SetMeta("root", root); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.SetMeta("last_sync_time", strconv.FormatInt(time.Now().Unix(), 10)); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// Root returns the notes root recorded by the last rebuild
func (idx *Index) Root() (string, error) {
	var root string
	err := idx.db.QueryRow(`SELECT value FROM meta WHERE key = 'root'`).Scan(&root)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return root, err
}

// Count returns the number of cached notes
func (idx *Index) Count() (int, error) {
	var n int
	if err := idx.db.QueryRow(`SELECT COUNT(*) FROM notes`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count notes: %w", err)
	}
	return n, nil
}

// Search returns notes whose title or path contains query, case-insensitively,
// ordered by path
func (idx *Index) Search(query string) ([]domain.NoteEntry, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	rows, err := idx.db.Query(`
		SELECT title, path FROM notes
		WHERE lower(title) LIKE ? ESCAPE '\' OR lower(path) LIKE ? ESCAPE '\'
	`, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.NoteEntry
	for rows.Next() {
		var e domain.NoteEntry
		if err := rows.Scan(&e.Title, &e.Path); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return domain.LessPath(entries[i].Path, entries[j].Path)
	})
	return entries, nil
}

// escapeLike escapes LIKE wildcards so the query matches literally
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// BeginTx starts a new transaction
func (idx *Index) BeginTx() (ports.CacheTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &cacheTx{tx: tx}, nil
}
