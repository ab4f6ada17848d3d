package ports

import "os/exec"

// EditorOpener opens files (the inventory database, notes) in an external editor
type EditorOpener interface {
	// OpenFile runs the editor on path and waits for it to exit
	FileOpener

	// Command returns the editor process without starting it,
	// for handing over to bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
