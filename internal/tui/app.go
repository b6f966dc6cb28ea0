package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/winctl/internal/control"
)

// windowItem is a list entry for one window.
type windowItem struct {
	snap control.Snapshot
}

func (i windowItem) Title() string {
	marker := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("·")
	if i.snap.Focus {
		marker = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("●")
	}
	title := i.snap.Title
	if title == "" {
		title = "(untitled)"
	}
	return marker + " " + title
}

func (i windowItem) Description() string {
	ws := fmt.Sprintf("ws %d", i.snap.Workspace)
	if i.snap.Workspace < 0 {
		ws = "sticky"
	}
	return fmt.Sprintf("%s  0x%08x  %s  %dx%d+%d+%d",
		i.snap.Class, i.snap.ID, ws, i.snap.Width, i.snap.Height, i.snap.X, i.snap.Y)
}

func (i windowItem) FilterValue() string { return i.snap.Title }

// windowsMsg carries a fresh List result.
type windowsMsg struct {
	windows []control.Snapshot
	err     error
}

// actionMsg reports the outcome of one window operation.
type actionMsg struct {
	op  string
	id  uint32
	err error
}

// model is the root bubbletea model for the picker.
type model struct {
	client Client
	list   list.Model

	status   string
	errText  string
	fatalErr error

	width  int
	height int
}

func newModel(client Client) model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("15")).
		BorderForeground(lipgloss.Color("62"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("250")).
		BorderForeground(lipgloss.Color("62"))

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Windows"
	l.Styles.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("62")).
		Padding(0, 1)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)

	return model{client: client, list: l}
}

func (m model) refresh() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		windows, err := client.List()
		return windowsMsg{windows: windows, err: err}
	}
}

func (m model) run(op string, id uint32, fn func(uint32) error) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{op: op, id: id, err: fn(id)}
	}
}

func (m model) toggleMaximize(id uint32) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		details, err := client.Details(id)
		if err != nil {
			return actionMsg{op: "maximize", id: id, err: err}
		}
		if details.Maximized != 0 {
			return actionMsg{op: "unmaximize", id: id, err: client.Unmaximize(id)}
		}
		return actionMsg{op: "maximize", id: id, err: client.Maximize(id)}
	}
}

func (m model) selected() (control.Snapshot, bool) {
	item, ok := m.list.SelectedItem().(windowItem)
	if !ok {
		return control.Snapshot{}, false
	}
	return item.snap, true
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return m.refresh()
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-2, 1))
		return m, nil

	case windowsMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.errText = ""
		items := make([]list.Item, 0, len(msg.windows))
		for _, w := range msg.windows {
			items = append(items, windowItem{snap: w})
		}
		return m, m.list.SetItems(items)

	case actionMsg:
		if msg.err != nil {
			m.errText = fmt.Sprintf("%s 0x%08x: %v", msg.op, msg.id, msg.err)
			m.status = ""
		} else {
			m.errText = ""
			m.status = fmt.Sprintf("%s 0x%08x", msg.op, msg.id)
		}
		return m, m.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.refresh()
		}

		snap, ok := m.selected()
		if ok {
			switch msg.String() {
			case "enter":
				return m, m.run("activate", snap.ID, m.client.Activate)
			case "m":
				return m, m.run("minimize", snap.ID, m.client.Minimize)
			case "u":
				return m, m.run("unminimize", snap.ID, m.client.Unminimize)
			case "x":
				return m, m.toggleMaximize(snap.ID)
			case "c":
				return m, m.run("close", snap.ID, m.client.Close)
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var status string
	switch {
	case m.errText != "":
		status = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render("Error: " + m.errText)
	case m.status != "":
		status = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(m.status)
	}

	help := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render("enter activate · m minimize · u unminimize · x maximize · c close · r refresh · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), status, help)
}
