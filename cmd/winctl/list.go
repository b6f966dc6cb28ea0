package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	ps "github.com/mitchellh/go-ps"
	"golang.org/x/term"

	"github.com/1broseidon/winctl/internal/control"
)

// processName resolves a pid to its executable name.
var processName = func(pid int) string {
	if pid <= 0 {
		return ""
	}
	p, err := ps.FindProcess(pid)
	if err != nil || p == nil {
		return ""
	}
	return p.Executable()
}

func runList(args []string) int {
	c := newCommand("list", "list [--json] [--current]", 0)
	asJSON := c.fs.Bool("json", false, "Print the List payload as JSON")
	current := c.fs.Bool("current", false, "Only windows on the active workspace")
	if _, code, ok := c.parse(args); !ok {
		return code
	}

	client, err := newClient()
	if err != nil {
		return fail(err)
	}
	windows, err := client.List()
	if err != nil {
		return fail(err)
	}
	if *current {
		windows = onCurrentWorkspace(windows)
	}

	if *asJSON {
		if windows == nil {
			windows = []control.Snapshot{}
		}
		out, err := json.MarshalIndent(windows, "", "  ")
		if err != nil {
			return fail(err)
		}
		fmt.Println(string(out))
		return 0
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(renderTable(windows))
		return 0
	}
	writePlain(os.Stdout, windows)
	return 0
}

func onCurrentWorkspace(windows []control.Snapshot) []control.Snapshot {
	out := make([]control.Snapshot, 0, len(windows))
	for _, w := range windows {
		if w.InCurrentWorkspace {
			out = append(out, w)
		}
	}
	return out
}

func workspaceLabel(ws int) string {
	if ws < 0 {
		return "*"
	}
	return fmt.Sprintf("%d", ws)
}

func listRow(w control.Snapshot) []string {
	focus := ""
	if w.Focus {
		focus = "*"
	}
	return []string{
		fmt.Sprintf("0x%08x", w.ID),
		workspaceLabel(w.Workspace),
		fmt.Sprintf("%d", w.Monitor),
		fmt.Sprintf("%dx%d+%d+%d", w.Width, w.Height, w.X, w.Y),
		w.Class,
		processName(w.PID),
		focus,
		w.Title,
	}
}

var listHeaders = []string{"ID", "WS", "MON", "GEOMETRY", "CLASS", "PROCESS", "F", "TITLE"}

func renderTable(windows []control.Snapshot) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	focusStyle := cellStyle.Foreground(lipgloss.Color("42"))

	rows := make([][]string, 0, len(windows))
	for _, w := range windows {
		rows = append(rows, listRow(w))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("62"))).
		Headers(listHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(windows) && windows[row].Focus {
				return focusStyle
			}
			return cellStyle
		})
	return t.Render()
}

// writePlain prints one tab-separated line per window.
func writePlain(w io.Writer, windows []control.Snapshot) {
	for _, win := range windows {
		row := listRow(win)
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
}
