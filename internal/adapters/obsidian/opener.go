package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Opener implements ports.ObsidianOpener for a notes root that is also
// an Obsidian vault
type Opener struct {
	vaultPath string
	vaultName string
	run       func(name string, args ...string) error
}

// NewOpener creates an Obsidian opener. The vault name is the base name
// of the notes root.
func NewOpener(vaultPath string) *Opener {
	return &Opener{
		vaultPath: filepath.Clean(vaultPath),
		vaultName: filepath.Base(vaultPath),
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// OpenFile opens a note in Obsidian using the obsidian:// URI scheme
func (o *Opener) OpenFile(filePath string) error {
	uri, err := o.BuildURI(filePath)
	if err != nil {
		return err
	}

	name, args, err := launcher(runtime.GOOS, uri)
	if err != nil {
		return err
	}
	return o.run(name, args...)
}

// BuildURI constructs the obsidian:// URI for a note inside the vault
func (o *Opener) BuildURI(filePath string) (string, error) {
	relPath, err := filepath.Rel(o.vaultPath, filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get relative path: %w", err)
	}

	if relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("note is outside the vault: %s", filePath)
	}

	return fmt.Sprintf("obsidian://open?vault=%s&file=%s",
		escape(o.vaultName),
		escape(filepath.ToSlash(relPath)),
	), nil
}

// escape query-escapes s with spaces as %20, which Obsidian requires
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// launcher returns the platform command that hands a URI to the desktop
func launcher(goos, uri string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{uri}, nil
	case "linux", "freebsd", "openbsd":
		return "xdg-open", []string{uri}, nil
	case "windows":
		return "cmd", []string{"/c", "start", "", uri}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}
