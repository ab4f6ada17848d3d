package filesystem

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"flatkit/internal/domain"
	"flatkit/internal/ports"
)

// Notes implements ports.NoteSource and ports.IndexWriter using the filesystem
type Notes struct{}

// Ensure Notes implements the notes ports
var (
	_ ports.NoteSource  = (*Notes)(nil)
	_ ports.IndexWriter = (*Notes)(nil)
)

// NewNotes creates a new filesystem notes adapter
func NewNotes() *Notes {
	return &Notes{}
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return path
}

// ListNotes walks root and returns every markdown file with its title,
// ordered by path component-wise. Symlinked notes are read through the
// link; symlinked directories are not descended. Subdirectories that cannot
// be read are skipped.
func (n *Notes) ListNotes(root string) ([]domain.IndexedNote, error) {
	root = ExpandHome(root)
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	var notes []domain.IndexedNote
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path != root && info != nil && info.IsDir() && errors.Is(err, fs.ErrPermission) {
				return filepath.SkipDir
			}
			return err
		}

		// Directories named *.md are not notes
		if info.IsDir() || !domain.IsNoteName(info.Name()) {
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("failed to resolve note %s: %w", path, err)
			}
			if target.IsDir() {
				return nil
			}
			info = target
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to relativize %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read note %s: %w", rel, err)
		}

		// Undecodable bytes are dropped rather than replaced
		text := strings.ToValidUTF8(string(content), "")

		notes = append(notes, domain.IndexedNote{
			NoteEntry: domain.NoteEntry{
				Title: domain.ExtractTitle(text, domain.Stem(rel)),
				Path:  rel,
			},
			Size:  info.Size(),
			Mtime: info.ModTime().Unix(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return domain.LessPath(notes[i].Path, notes[j].Path)
	})

	return notes, nil
}

// WriteIndex atomically writes entries as a 2-space indented JSON array
func (n *Notes) WriteIndex(path string, entries []domain.NoteEntry) error {
	if entries == nil {
		entries = []domain.NoteEntry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}

	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if err := WriteFileAtomic(ExpandHome(path), data, 0o644); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	return nil
}
