package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/1broseidon/winctl/internal/host"
)

const stickyDesktop = 0xFFFFFFFF

// Window is a live X11 client window. Every accessor issues fresh
// requests; property read failures yield zero values.
type Window struct {
	conn *Connection
	id   xproto.Window
}

var _ host.Window = (*Window)(nil)

func (w *Window) ID() uint32 { return uint32(w.id) }

func (w *Window) Class() string {
	wmClass, err := icccm.WmClassGet(w.conn.XUtil, w.id)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(wmClass.Class)
}

func (w *Window) Instance() string {
	wmClass, err := icccm.WmClassGet(w.conn.XUtil, w.id)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(wmClass.Instance)
}

func (w *Window) Title() string {
	title, err := ewmh.WmNameGet(w.conn.XUtil, w.id)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(w.conn.XUtil, w.id)
	if err == nil {
		return strings.TrimSpace(title)
	}
	return ""
}

func (w *Window) Workspace() int {
	desktop, err := ewmh.WmDesktopGet(w.conn.XUtil, w.id)
	if err != nil {
		return 0
	}
	if desktop == stickyDesktop {
		return -1
	}
	return int(desktop)
}

func (w *Window) LocatedOnWorkspace(index int) bool {
	ws := w.Workspace()
	return ws == -1 || ws == index
}

func (w *Window) Monitor() int {
	monitors, err := w.conn.GetMonitors()
	if err != nil {
		return 0
	}
	g := w.Geometry()
	return monitorAt(monitors, g.X+g.Width/2, g.Y+g.Height/2)
}

func (w *Window) PID() int {
	pid, err := ewmh.WmPidGet(w.conn.XUtil, w.id)
	if err != nil {
		return 0
	}
	return int(pid)
}

func (w *Window) types() []string {
	types, _ := ewmh.WmWindowTypeGet(w.conn.XUtil, w.id)
	return types
}

func (w *Window) states() []string {
	states, _ := ewmh.WmStateGet(w.conn.XUtil, w.id)
	return states
}

func (w *Window) WindowType() host.WindowType {
	return windowTypeFromAtoms(w.types(), w.states())
}

func (w *Window) FrameType() host.FrameType {
	return frameTypeFor(w.WindowType())
}

func (w *Window) Geometry() host.Rect {
	c := w.conn
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(w.id)).Reply()
	if err != nil {
		return host.Rect{}
	}

	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), w.id, c.Root, 0, 0).Reply()
	if err != nil {
		return host.Rect{}
	}

	client := host.Rect{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}
	return frameRect(client, w.frameExtents())
}

// frameExtents reads _NET_FRAME_EXTENTS. Undecorated windows and window
// managers that do not publish it report no decoration.
func (w *Window) frameExtents() frameExtents {
	ext, err := ewmh.FrameExtentsGet(w.conn.XUtil, w.id)
	if err != nil {
		return frameExtents{}
	}
	return frameExtents{left: ext.Left, right: ext.Right, top: ext.Top, bottom: ext.Bottom}
}

func (w *Window) HasFocus() bool {
	active, err := ewmh.ActiveWindowGet(w.conn.XUtil)
	return err == nil && active == w.id
}

func (w *Window) allowedActions() ([]string, bool) {
	actions, err := ewmh.WmAllowedActionsGet(w.conn.XUtil, w.id)
	if err != nil {
		return nil, false
	}
	return actions, true
}

func (w *Window) can(action ...string) bool {
	actions, known := w.allowedActions()
	return allowed(actions, known, action...)
}

func (w *Window) AllowsMove() bool   { return w.can("_NET_WM_ACTION_MOVE") }
func (w *Window) AllowsResize() bool { return w.can("_NET_WM_ACTION_RESIZE") }
func (w *Window) CanClose() bool     { return w.can("_NET_WM_ACTION_CLOSE") }
func (w *Window) CanMinimize() bool  { return w.can("_NET_WM_ACTION_MINIMIZE") }
func (w *Window) CanShade() bool     { return w.can("_NET_WM_ACTION_SHADE") }

func (w *Window) CanMaximize() bool {
	return w.can("_NET_WM_ACTION_MAXIMIZE_HORZ", "_NET_WM_ACTION_MAXIMIZE_VERT")
}

func (w *Window) Maximized() host.MaximizeFlags {
	return maximizeFromStates(w.states())
}

func (w *Window) Layer() host.Layer {
	states := w.states()
	return layerFor(windowTypeFromAtoms(w.types(), states), states)
}

func (w *Window) Role() string {
	role, err := xprop.PropValStr(xprop.GetProperty(w.conn.XUtil, w.id, "WM_WINDOW_ROLE"))
	if err != nil {
		return ""
	}
	return role
}

func (w *Window) WorkAreaCurrentMonitor() host.Rect {
	return w.conn.MonitorWorkarea(w.Monitor())
}

func (w *Window) WorkAreaAllMonitors() host.Rect {
	return w.conn.Workarea()
}

func (w *Window) WorkAreaForMonitor(monitor int) host.Rect {
	return w.conn.MonitorWorkarea(monitor)
}

func (w *Window) MoveFrame(x, y int) error {
	return w.conn.MoveWindow(w.id, x, y)
}

func (w *Window) MoveResizeFrame(x, y, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	cw, ch := clientSize(width, height, w.frameExtents())
	return w.conn.MoveResizeWindow(w.id, x, y, cw, ch)
}

func (w *Window) Maximize(flags host.MaximizeFlags) error {
	return w.conn.SetMaximized(w.id, flags.Horizontal(), flags.Vertical(), true)
}

func (w *Window) Unmaximize(flags host.MaximizeFlags) error {
	return w.conn.SetMaximized(w.id, flags.Horizontal(), flags.Vertical(), false)
}

func (w *Window) Minimize() error   { return w.conn.IconifyWindow(w.id) }
func (w *Window) Unminimize() error { return w.conn.DeiconifyWindow(w.id) }
func (w *Window) Activate() error   { return w.conn.FocusWindow(w.id) }
func (w *Window) Kill() error       { return w.conn.KillWindowClient(w.id) }

func (w *Window) ChangeWorkspace(index int) error {
	return w.conn.SetWindowDesktop(w.id, index)
}
