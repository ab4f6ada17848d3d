package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"flatkit/internal/adapters/tui/views"
	"flatkit/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewHelp
)

// App is the inventory browser application model
type App struct {
	editor ports.EditorOpener

	state   ViewState
	browser *views.BrowserModel
	help    *views.HelpModel
}

// NewApp creates a new TUI application. editor may be nil, in which
// case the edit key is ignored.
func NewApp(store ports.InventoryStore, editor ports.EditorOpener) *App {
	return &App{
		editor:  editor,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(store),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.browser.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		// the file may have been edited, so show what is on disk now
		if msg.err != nil {
			a.browser.Fail(fmt.Errorf("editor: %w", msg.err))
		}
		return a, a.browser.Reload()
	}

	var cmd tea.Cmd
	switch a.state {
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	default:
		_, cmd = a.browser.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	if a.state == ViewHelp {
		return a.help.View()
	}
	return a.browser.View()
}

// Run starts the browser in the alternate screen and blocks until it quits
func Run(store ports.InventoryStore, editor ports.EditorOpener) error {
	_, err := tea.NewProgram(NewApp(store, editor), tea.WithAltScreen()).Run()
	return err
}
