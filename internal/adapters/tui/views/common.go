package views

import "fmt"

// ViewState is the terminal size and status line shared by the inventory views
type ViewState struct {
	Width  int
	Height int

	// Message is the status line under the table
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// Notify shows an informational status line
func (s *ViewState) Notify(format string, args ...any) {
	s.Message = fmt.Sprintf(format, args...)
	s.MessageErr = false
}

// Fail shows err as the status line
func (s *ViewState) Fail(err error) {
	s.Message = err.Error()
	s.MessageErr = true
}

// ClearMessage clears the status line
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// rowsFor returns how many body rows fit after reserving chrome lines,
// never fewer than minRows
func (s *ViewState) rowsFor(chrome, minRows int) int {
	return max(s.Height-chrome, minRows)
}
