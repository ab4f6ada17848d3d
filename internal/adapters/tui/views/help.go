package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"flatkit/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBrowserMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	v := NewViewBuilder().
		Title("Inventory Help").
		Subtitle("Read-only view of the customer SKU inventory")

	v.Section("Navigation")
	v.Raw(helpLine(BrowserKeys.Up))
	v.Raw(helpLine(BrowserKeys.Down))
	v.Raw(helpLine(BrowserKeys.Filter))
	v.Raw(helpLine(BrowserKeys.Clear))
	v.BlankLine()

	v.Section("Actions")
	v.Raw(helpLine(BrowserKeys.Copy))
	v.Raw(helpLine(BrowserKeys.Edit))
	v.Raw(helpLine(BrowserKeys.Reload))
	v.BlankLine()

	v.Section("Stock")
	v.Line("  " + styles.StockOut.Render("0") + RenderMuted("  out of stock"))
	v.Line("  " + styles.StockLow.Render("1-5") + RenderMuted("  low stock"))
	v.BlankLine()

	v.Raw(styles.HelpDesc.Render("Press ") +
		styles.HelpKey.Render("esc") +
		styles.HelpDesc.Render(" or ") +
		styles.HelpKey.Render("?") +
		styles.HelpDesc.Render(" to close"))

	return v.String()
}

func helpLine(b key.Binding) string {
	h := b.Help()
	return "  " + styles.HelpKey.Render(padRight(h.Key, 12)) + styles.HelpDesc.Render(h.Desc) + "\n"
}

func padRight(s string, length int) string {
	if n := len([]rune(s)); n < length {
		return s + strings.Repeat(" ", length-n)
	}
	return s
}
