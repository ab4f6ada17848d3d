package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// fallbackEditors are tried in order when neither an explicit editor
// nor $EDITOR/$VISUAL is set
var fallbackEditors = []string{"nvim", "vim", "vi", "nano"}

// Opener implements ports.EditorOpener
type Opener struct {
	editor   string
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// NewOpener creates an editor opener. An empty editor falls back to
// $EDITOR, $VISUAL and then the first common editor found on PATH.
func NewOpener(editor string) *Opener {
	return &Opener{
		editor:   editor,
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
	}
}

// OpenFile opens a file in the editor and waits for it to exit
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor.
// The TUI hands it to tea.ExecProcess.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	args := strings.Fields(o.resolve())
	if len(args) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR or pass --editor")
	}

	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// resolve returns the editor command line, possibly with arguments
// such as "code --wait"
func (o *Opener) resolve() string {
	if o.editor != "" {
		return o.editor
	}
	for _, key := range []string{"EDITOR", "VISUAL"} {
		if v := strings.TrimSpace(o.getenv(key)); v != "" {
			return v
		}
	}
	for _, name := range fallbackEditors {
		if path, err := o.lookPath(name); err == nil {
			return path
		}
	}
	return ""
}
