// Package control maps the published window-control operations onto a
// host window manager.
package control

import (
	"errors"
	"fmt"

	"github.com/1broseidon/winctl/internal/host"
)

// Version is returned by CheckVersion.
const Version = "0.1"

// ErrNotFound is returned when an identifier does not resolve to a live
// window. It is the only error the adapter raises itself.
var ErrNotFound = errors.New("Not found")

// Adapter translates each operation into host calls. It keeps no state of
// its own; every call reads and writes the host directly.
type Adapter struct {
	host host.Host
}

// New creates an adapter over h.
func New(h host.Host) *Adapter {
	return &Adapter{host: h}
}

// lookup scans the live window set for id. First match wins.
func (a *Adapter) lookup(id uint32) (host.Window, error) {
	windows, err := a.host.Windows()
	if err != nil {
		return nil, fmt.Errorf("failed to list windows: %w", err)
	}
	for _, w := range windows {
		if w.ID() == id {
			return w, nil
		}
	}
	return nil, fmt.Errorf("window %d: %w", id, ErrNotFound)
}

// List returns the snapshot payload for every tracked window.
func (a *Adapter) List() (string, error) {
	windows, err := a.host.Windows()
	if err != nil {
		return "", fmt.Errorf("failed to list windows: %w", err)
	}
	active, err := a.host.ActiveWorkspace()
	if err != nil {
		return "", fmt.Errorf("failed to get active workspace: %w", err)
	}

	snapshots := make([]Snapshot, 0, len(windows))
	for _, w := range windows {
		snapshots = append(snapshots, snapshotOf(w, active))
	}
	return encodePayload(snapshots)
}

// Details returns the extended payload for one window.
func (a *Adapter) Details(id uint32) (string, error) {
	w, err := a.lookup(id)
	if err != nil {
		return "", err
	}
	active, err := a.host.ActiveWorkspace()
	if err != nil {
		return "", fmt.Errorf("failed to get active workspace: %w", err)
	}
	monitor, err := a.host.CurrentMonitor()
	if err != nil {
		return "", fmt.Errorf("failed to get current monitor: %w", err)
	}
	return encodePayload(detailsOf(w, active, monitor))
}

// GetTitle returns the window title.
func (a *Adapter) GetTitle(id uint32) (string, error) {
	w, err := a.lookup(id)
	if err != nil {
		return "", err
	}
	return w.Title(), nil
}

// MoveToWorkspace sends the window to a workspace index.
func (a *Adapter) MoveToWorkspace(id uint32, workspace uint32) error {
	w, err := a.lookup(id)
	if err != nil {
		return err
	}
	return w.ChangeWorkspace(int(workspace))
}

// MoveResize sets the frame geometry, un-maximizing first.
func (a *Adapter) MoveResize(id uint32, x, y int32, width, height uint32) error {
	w, err := a.lookup(id)
	if err != nil {
		return err
	}
	if err := unmaximizeIfNeeded(w); err != nil {
		return err
	}
	return w.MoveResizeFrame(int(x), int(y), int(width), int(height))
}

// Resize changes the frame size keeping the current position.
func (a *Adapter) Resize(id uint32, width, height uint32) error {
	w, err := a.lookup(id)
	if err != nil {
		return err
	}
	if err := unmaximizeIfNeeded(w); err != nil {
		return err
	}
	// Position is read after the unmaximize request, not atomically with
	// it. A host that applies the unmaximize asynchronously can report an
	// intermediate position here.
	g := w.Geometry()
	return w.MoveResizeFrame(g.X, g.Y, int(width), int(height))
}

// Move places the frame at x, y, un-maximizing first.
func (a *Adapter) Move(id uint32, x, y int32) error {
	w, err := a.lookup(id)
	if err != nil {
		return err
	}
	if err := unmaximizeIfNeeded(w); err != nil {
		return err
	}
	return w.MoveFrame(int(x), int(y))
}

// Maximize maximizes the window on both axes.
func (a *Adapter) Maximize(id uint32) error {
	w, err := a.lookup(id)
	if err != nil {
		return err
	}
	return w.Maximize(host.MaximizeBoth)
}

// Unmaximize clears maximization on both axes.
func (a *Adapter) Unmaximize(id uint32) error {
	w, err := a.lookup(id)
	if err != nil {
		return err
	}
	return w.Unmaximize(host.MaximizeBoth)
}

// Minimize iconifies the window.
func (a *Adapter) Minimize(id uint32) error {
	w, err := a.lookup(id)
	if err != nil {
		return err
	}
	return w.Minimize()
}

// Unminimize restores an iconified window.
func (a *Adapter) Unminimize(id uint32) error {
	w, err := a.lookup(id)
	if err != nil {
		return err
	}
	return w.Unminimize()
}

// Activate focuses and raises the window.
func (a *Adapter) Activate(id uint32) error {
	w, err := a.lookup(id)
	if err != nil {
		return err
	}
	return w.Activate()
}

// Close forcibly terminates the window's owning client.
func (a *Adapter) Close(id uint32) error {
	w, err := a.lookup(id)
	if err != nil {
		return err
	}
	return w.Kill()
}

// GetMouseLocation returns the pointer position in screen space.
func (a *Adapter) GetMouseLocation() (int32, int32, error) {
	x, y, err := a.host.PointerLocation()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query pointer: %w", err)
	}
	return int32(x), int32(y), nil
}

// ScreenSize returns the full screen size in pixels.
func (a *Adapter) ScreenSize() (int32, int32, error) {
	w, h, err := a.host.ScreenSize()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get screen size: %w", err)
	}
	return int32(w), int32(h), nil
}

// CheckVersion reports the protocol version.
func (a *Adapter) CheckVersion() string {
	return Version
}

func unmaximizeIfNeeded(w host.Window) error {
	flags := w.Maximized()
	if !flags.Horizontal() && !flags.Vertical() {
		return nil
	}
	return w.Unmaximize(host.MaximizeBoth)
}
