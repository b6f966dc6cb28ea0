// Package hosttest provides an in-memory host for tests.
package hosttest

import (
	"fmt"
	"sync"

	"github.com/1broseidon/winctl/internal/host"
)

// Window is a scripted window. Exported fields are the initial state;
// mutators update them in place.
type Window struct {
	WID          uint32
	WMClass      string
	WMInstance   string
	WMTitle      string
	Desktop      int
	Mon          int
	Pid          int
	Frame        host.FrameType
	Type         host.WindowType
	Rect         host.Rect
	Focused      bool
	Movable      bool
	Resizable    bool
	Closable     bool
	Maximizable  bool
	Minimizable  bool
	Shadeable    bool
	MaxFlags     host.MaximizeFlags
	Minimized    bool
	StackLayer   host.Layer
	WMRole       string
	WorkArea     host.Rect
	WorkAreaAll  host.Rect
	MonitorAreas map[int]host.Rect

	// FailNext makes the next mutator return this error without
	// touching state.
	FailNext error

	// Hold, when set, is called by every mutator after the call is
	// recorded and before state changes. Tests use it to park a call
	// mid-dispatch.
	Hold func(method string)

	host     *Host
	restore  host.Rect
	hasSaved bool
}

var _ host.Window = (*Window)(nil)

// NewWindow returns a normal, fully capable window at the given geometry.
func NewWindow(id uint32, title string, rect host.Rect) *Window {
	return &Window{
		WID:         id,
		WMClass:     "App",
		WMInstance:  "app",
		WMTitle:     title,
		Type:        host.WindowTypeNormal,
		Frame:       host.FrameTypeNormal,
		Rect:        rect,
		Movable:     true,
		Resizable:   true,
		Closable:    true,
		Maximizable: true,
		Minimizable: true,
		Shadeable:   true,
		StackLayer:  host.LayerNormal,
	}
}

// Call is one recorded mutator invocation.
type Call struct {
	Window uint32
	Method string
	Args   []int
}

// Host is a fake host.Host.
type Host struct {
	mu        sync.Mutex
	windows   []*Window
	calls     []Call
	Pointer   [2]int
	Screen    [2]int
	Workspace int
	Monitor   int
	// ListErr is returned from Windows when set.
	ListErr error
}

var _ host.Host = (*Host)(nil)

// New creates a fake host owning the given windows.
func New(windows ...*Window) *Host {
	h := &Host{Screen: [2]int{1920, 1080}}
	for _, w := range windows {
		h.Add(w)
	}
	return h
}

// Add starts tracking w.
func (h *Host) Add(w *Window) {
	h.mu.Lock()
	defer h.mu.Unlock()
	w.host = h
	h.windows = append(h.windows, w)
}

// Remove stops tracking the window with the given id.
func (h *Host) Remove(id uint32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, w := range h.windows {
		if w.WID == id {
			h.windows = append(h.windows[:i], h.windows[i+1:]...)
			return
		}
	}
}

// Calls returns a copy of the mutator call log.
func (h *Host) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Call, len(h.calls))
	copy(out, h.calls)
	return out
}

// Methods returns the method names of the call log, in order.
func (h *Host) Methods() []string {
	calls := h.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Method
	}
	return out
}

func (h *Host) record(id uint32, method string, args ...int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, Call{Window: id, Method: method, Args: args})
}

func (h *Host) Windows() ([]host.Window, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ListErr != nil {
		return nil, h.ListErr
	}
	out := make([]host.Window, len(h.windows))
	for i, w := range h.windows {
		out[i] = w
	}
	return out, nil
}

func (h *Host) PointerLocation() (int, int, error) { return h.Pointer[0], h.Pointer[1], nil }
func (h *Host) ScreenSize() (int, int, error)      { return h.Screen[0], h.Screen[1], nil }
func (h *Host) ActiveWorkspace() (int, error)      { return h.Workspace, nil }
func (h *Host) CurrentMonitor() (int, error)       { return h.Monitor, nil }

func (w *Window) ID() uint32                  { return w.WID }
func (w *Window) Class() string               { return w.WMClass }
func (w *Window) Instance() string            { return w.WMInstance }
func (w *Window) Title() string               { return w.WMTitle }
func (w *Window) Workspace() int              { return w.Desktop }
func (w *Window) Monitor() int                { return w.Mon }
func (w *Window) PID() int                    { return w.Pid }
func (w *Window) FrameType() host.FrameType   { return w.Frame }
func (w *Window) WindowType() host.WindowType { return w.Type }
func (w *Window) Geometry() host.Rect         { return w.Rect }
func (w *Window) HasFocus() bool              { return w.Focused }
func (w *Window) AllowsMove() bool            { return w.Movable }
func (w *Window) AllowsResize() bool          { return w.Resizable }
func (w *Window) CanClose() bool              { return w.Closable }
func (w *Window) CanMaximize() bool           { return w.Maximizable }
func (w *Window) CanMinimize() bool           { return w.Minimizable }
func (w *Window) CanShade() bool              { return w.Shadeable }
func (w *Window) Layer() host.Layer           { return w.StackLayer }
func (w *Window) Role() string                { return w.WMRole }

func (w *Window) Maximized() host.MaximizeFlags     { return w.MaxFlags }
func (w *Window) WorkAreaCurrentMonitor() host.Rect { return w.WorkArea }
func (w *Window) WorkAreaAllMonitors() host.Rect    { return w.WorkAreaAll }

func (w *Window) WorkAreaForMonitor(monitor int) host.Rect {
	return w.MonitorAreas[monitor]
}

func (w *Window) LocatedOnWorkspace(index int) bool {
	return w.Desktop == -1 || w.Desktop == index
}

func (w *Window) mutate(method string, args ...int) error {
	if w.host != nil {
		w.host.record(w.WID, method, args...)
	}
	if w.Hold != nil {
		w.Hold(method)
	}
	if err := w.FailNext; err != nil {
		w.FailNext = nil
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

func (w *Window) MoveFrame(x, y int) error {
	if err := w.mutate("MoveFrame", x, y); err != nil {
		return err
	}
	w.Rect.X, w.Rect.Y = x, y
	return nil
}

func (w *Window) MoveResizeFrame(x, y, width, height int) error {
	if err := w.mutate("MoveResizeFrame", x, y, width, height); err != nil {
		return err
	}
	w.Rect = host.Rect{X: x, Y: y, Width: width, Height: height}
	return nil
}

func (w *Window) Maximize(flags host.MaximizeFlags) error {
	if err := w.mutate("Maximize", int(flags)); err != nil {
		return err
	}
	if w.MaxFlags == 0 {
		w.restore = w.Rect
		w.hasSaved = true
	}
	w.MaxFlags |= flags
	area := w.WorkArea
	if (area.Width == 0 || area.Height == 0) && w.host != nil {
		area = host.Rect{Width: w.host.Screen[0], Height: w.host.Screen[1]}
	}
	if flags.Horizontal() {
		w.Rect.X, w.Rect.Width = area.X, area.Width
	}
	if flags.Vertical() {
		w.Rect.Y, w.Rect.Height = area.Y, area.Height
	}
	return nil
}

func (w *Window) Unmaximize(flags host.MaximizeFlags) error {
	if err := w.mutate("Unmaximize", int(flags)); err != nil {
		return err
	}
	w.MaxFlags &^= flags
	if w.hasSaved {
		if flags.Horizontal() {
			w.Rect.X, w.Rect.Width = w.restore.X, w.restore.Width
		}
		if flags.Vertical() {
			w.Rect.Y, w.Rect.Height = w.restore.Y, w.restore.Height
		}
		if w.MaxFlags == 0 {
			w.hasSaved = false
		}
	}
	return nil
}

func (w *Window) Minimize() error {
	if err := w.mutate("Minimize"); err != nil {
		return err
	}
	w.Minimized = true
	return nil
}

func (w *Window) Unminimize() error {
	if err := w.mutate("Unminimize"); err != nil {
		return err
	}
	w.Minimized = false
	return nil
}

func (w *Window) Activate() error {
	if err := w.mutate("Activate"); err != nil {
		return err
	}
	if w.host != nil {
		w.host.mu.Lock()
		for _, other := range w.host.windows {
			other.Focused = false
		}
		w.host.mu.Unlock()
	}
	w.Focused = true
	w.Minimized = false
	return nil
}

func (w *Window) Kill() error {
	if err := w.mutate("Kill"); err != nil {
		return err
	}
	if w.host != nil {
		w.host.Remove(w.WID)
	}
	return nil
}

func (w *Window) ChangeWorkspace(index int) error {
	if err := w.mutate("ChangeWorkspace", index); err != nil {
		return err
	}
	w.Desktop = index
	return nil
}
