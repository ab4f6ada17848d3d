package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"flatkit/internal/adapters/tui/styles"
	"flatkit/internal/application/commands"
	"flatkit/internal/domain"
	"flatkit/internal/ports"
)

// BrowserKeyMap defines key bindings for the inventory browser
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Filter key.Binding
	Clear  key.Binding
	Copy   key.Binding
	Edit   key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear filter"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy customer/sku"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit file"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Copy, k.Edit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Filter, k.Clear},
		{k.Copy, k.Edit, k.Reload},
		{k.Help, k.Quit},
	}
}

// filterKeys are active while the filter input has focus
var filterKeys = struct {
	Apply  key.Binding
	Cancel key.Binding
}{
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// tableChrome is the number of lines around the table: title, subtitle,
// filter line, status line and help line
const tableChrome = 10

// BrowserModel is a read-only table of customer, SKU and stock rows
type BrowserModel struct {
	ViewState

	store     ports.InventoryStore
	copy      func(string) error
	customers []domain.CustomerStock
	lines     []domain.StockLine
	loaded    bool

	table     table.Model
	filter    textinput.Model
	filtering bool
	help      help.Model
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(store ports.InventoryStore) *BrowserModel {
	t := table.New(
		table.WithColumns(columns(0)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = styles.TableHeader
	s.Cell = styles.TableCell
	s.Selected = styles.TableSelected
	t.SetStyles(s)

	input := textinput.New()
	input.Placeholder = "customer or SKU..."
	input.Prompt = "/ "

	return &BrowserModel{
		store:  store,
		copy:   clipboard.WriteAll,
		table:  t,
		filter: input,
		help:   help.New(),
	}
}

// Init loads the inventory
func (m *BrowserModel) Init() tea.Cmd {
	return m.load
}

func (m *BrowserModel) load() tea.Msg {
	customers, err := commands.NewListInventoryCommand(m.store, "").Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return inventoryLoadedMsg{customers}
}

type inventoryLoadedMsg struct {
	customers []domain.CustomerStock
}

type errMsg struct {
	err error
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case inventoryLoadedMsg:
		m.customers = msg.customers
		m.loaded = true
		m.refreshRows()
		return m, nil

	case errMsg:
		m.Fail(msg.err)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m, m.updateFilter(msg)
		}
		m.ClearMessage()

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Filter):
			m.filtering = true
			return m, m.filter.Focus()

		case key.Matches(msg, BrowserKeys.Clear):
			if m.filter.Value() != "" {
				m.filter.SetValue("")
				m.refreshRows()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Copy):
			m.copySelected()
			return m, nil

		case key.Matches(msg, BrowserKeys.Edit):
			path := m.store.Location()
			return m, func() tea.Msg {
				return OpenEditorMsg{Path: path}
			}

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.Reload()

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *BrowserModel) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, filterKeys.Cancel):
		m.filter.SetValue("")
		m.filter.Blur()
		m.filtering = false
		m.refreshRows()
		return nil

	case key.Matches(msg, filterKeys.Apply):
		m.filter.Blur()
		m.filtering = false
		return nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.refreshRows()
	return cmd
}

func (m *BrowserModel) copySelected() {
	line, ok := m.Selected()
	if !ok {
		return
	}

	text := line.Customer
	if line.SKU != "" {
		text += "/" + line.SKU
	}
	if err := m.copy(text); err != nil {
		m.Fail(fmt.Errorf("copy failed: %w", err))
		return
	}
	m.Notify("Copied %s", text)
}

// Selected returns the stock line under the cursor
func (m *BrowserModel) Selected() (domain.StockLine, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.lines) {
		return domain.StockLine{}, false
	}
	return m.lines[i], true
}

func (m *BrowserModel) refreshRows() {
	m.lines = FilterLines(m.customers, m.filter.Value())
	m.table.SetRows(BuildRows(m.lines))

	if c := m.table.Cursor(); c >= len(m.lines) {
		m.table.SetCursor(max(len(m.lines)-1, 0))
	}
}

// FilterLines flattens customers into table lines, keeping those whose
// customer or SKU contains query (case-insensitive). Customers without
// SKUs appear as a single line with an empty SKU.
func FilterLines(customers []domain.CustomerStock, query string) []domain.StockLine {
	q := strings.ToLower(strings.TrimSpace(query))
	match := func(s string) bool {
		return q == "" || strings.Contains(strings.ToLower(s), q)
	}

	var out []domain.StockLine
	for _, cs := range customers {
		if len(cs.SKUs) == 0 {
			if match(cs.Customer) {
				out = append(out, domain.StockLine{Customer: cs.Customer})
			}
			continue
		}
		for _, line := range cs.SKUs {
			if match(line.Customer) || match(line.SKU) {
				out = append(out, line)
			}
		}
	}
	return out
}

// BuildRows converts stock lines into table rows
func BuildRows(lines []domain.StockLine) []table.Row {
	rows := make([]table.Row, len(lines))
	for i, line := range lines {
		stock := strconv.Itoa(line.Stock)
		if line.SKU == "" {
			stock = "-"
		}
		rows[i] = table.Row{line.Customer, line.SKU, stock}
	}
	return rows
}

// columns sizes the table for a terminal width
func columns(width int) []table.Column {
	stockWidth := 8
	nameWidth := 24
	if width > 0 {
		nameWidth = max((width-stockWidth-12)/2, 12)
	}
	return []table.Column{
		{Title: "Customer", Width: nameWidth},
		{Title: "SKU", Width: nameWidth},
		{Title: "Stock", Width: stockWidth},
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	if !m.loaded && m.Message == "" {
		return "Loading..."
	}

	v := NewViewBuilder().
		Title("Inventory").
		Subtitle(m.store.Location())

	if m.filtering {
		v.Line(styles.InputFocused.Render(m.filter.View()))
	} else if f := m.filter.Value(); f != "" {
		v.Muted(fmt.Sprintf("filter: %s", f))
	}

	v.Raw(m.table.View()).BlankLine().BlankLine()
	v.Line(m.statusLine())
	v.Message(m.Message, m.MessageErr)
	v.Raw(m.help.View(BrowserKeys))

	return v.String()
}

func (m *BrowserModel) statusLine() string {
	line, ok := m.Selected()
	if !ok {
		return RenderMuted(fmt.Sprintf("%d customers, no rows", len(m.customers)))
	}
	if line.SKU == "" {
		return RenderMuted(fmt.Sprintf("%s has no SKUs", line.Customer))
	}
	stock := styles.StockStyle(line.Stock).Render(strconv.Itoa(line.Stock))
	return fmt.Sprintf("%s / %s  stock %s  %s",
		line.Customer, line.SKU, stock,
		RenderMuted(fmt.Sprintf("(%d of %d rows)", m.table.Cursor()+1, len(m.lines))))
}

// SetSize updates the view dimensions
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.table.SetColumns(columns(width))
	m.table.SetHeight(m.rowsFor(tableChrome, 3))
	m.help.Width = width
}

// Reload reloads the inventory from disk
func (m *BrowserModel) Reload() tea.Cmd {
	m.loaded = false
	return m.load
}

// OpenEditorMsg asks the app to open a file in the editor
type OpenEditorMsg struct {
	Path string
}

type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct{}
