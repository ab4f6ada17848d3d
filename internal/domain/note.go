package domain

import (
	"bufio"
	"path"
	"strings"
)

// NoteExtension is the file suffix of indexed notes
const NoteExtension = ".md"

// headingMarker opens a single-level markdown heading
const headingMarker = "# "

// NoteEntry is one record of the notes index
type NoteEntry struct {
	Title string `json:"title"`
	Path  string `json:"path"` // Relative to the index root, forward slashes
}

// ExtractTitle returns the text of the first line starting with "# ",
// trimmed, or fallback when no such line exists.
func ExtractTitle(content, fallback string) string {
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), len(content)+1)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.HasPrefix(line, headingMarker) {
			return strings.TrimSpace(line[len(headingMarker):])
		}
	}
	return fallback
}

// Stem returns the base name of a slash-separated path without its last extension
func Stem(p string) string {
	base := path.Base(p)
	if stem := strings.TrimSuffix(base, path.Ext(base)); stem != "" {
		return stem
	}
	// dotfiles such as ".md" have no extension
	return base
}

// IsNoteName reports whether a file name carries the note extension
func IsNoteName(name string) bool {
	return strings.HasSuffix(name, NoteExtension)
}

// LessPath orders slash-separated paths component by component, so that
// "a/b.md" sorts before "a.md".
func LessPath(a, b string) bool {
	pa := strings.Split(a, "/")
	pb := strings.Split(b, "/")
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if pa[i] != pb[i] {
			return pa[i] < pb[i]
		}
	}
	return len(pa) < len(pb)
}
