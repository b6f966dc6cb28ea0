// Package tui is an interactive window picker backed by the daemon.
package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/1broseidon/winctl/internal/control"
)

// Client is the daemon API the picker drives. *ipc.Client satisfies it.
type Client interface {
	List() ([]control.Snapshot, error)
	Details(id uint32) (*control.Details, error)
	Maximize(id uint32) error
	Unmaximize(id uint32) error
	Minimize(id uint32) error
	Unminimize(id uint32) error
	Activate(id uint32) error
	Close(id uint32) error
}

// Run starts the picker and blocks until the user quits.
func Run(client Client) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	p := tea.NewProgram(newModel(client), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.fatalErr != nil {
		return m.fatalErr
	}
	return nil
}
