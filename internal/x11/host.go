package x11

import (
	"fmt"

	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/1broseidon/winctl/internal/host"
)

// Host exposes the X11 window manager through host.Host.
type Host struct {
	conn *Connection
}

var _ host.Host = (*Host)(nil)

// NewHost wraps an existing connection.
func NewHost(conn *Connection) *Host {
	return &Host{conn: conn}
}

// NewHostFromDisplay opens a fresh connection to $DISPLAY.
func NewHostFromDisplay() (*Host, error) {
	conn, err := NewConnection()
	if err != nil {
		return nil, err
	}
	return &Host{conn: conn}, nil
}

// Disconnect closes the underlying X11 connection.
func (h *Host) Disconnect() {
	if h != nil && h.conn != nil {
		h.conn.Quit()
		h.conn.Close()
	}
}

// EventLoop blocks processing X events until Disconnect.
func (h *Host) EventLoop() {
	h.conn.EventLoop()
}

// Windows returns every managed client in _NET_CLIENT_LIST order.
func (h *Host) Windows() ([]host.Window, error) {
	clients, err := ewmh.ClientListGet(h.conn.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}
	out := make([]host.Window, 0, len(clients))
	for _, id := range clients {
		out = append(out, &Window{conn: h.conn, id: id})
	}
	return out, nil
}

func (h *Host) PointerLocation() (int, int, error) {
	return h.conn.Pointer()
}

func (h *Host) ScreenSize() (int, int, error) {
	return h.conn.RootSize()
}

// ActiveWorkspace reads _NET_CURRENT_DESKTOP. Window managers without
// virtual desktops report workspace 0.
func (h *Host) ActiveWorkspace() (int, error) {
	desktop, err := ewmh.CurrentDesktopGet(h.conn.XUtil)
	if err != nil {
		return 0, nil
	}
	return int(desktop), nil
}

// CurrentMonitor is the monitor under the pointer.
func (h *Host) CurrentMonitor() (int, error) {
	return h.conn.PointerMonitor()
}
