package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// sourceIndication marks requests as coming from a pager / direct action.
const sourceIndication = 2

const (
	stateMaxHorz = "_NET_WM_STATE_MAXIMIZED_HORZ"
	stateMaxVert = "_NET_WM_STATE_MAXIMIZED_VERT"
)

// SetWindowDesktop moves a window to the specified virtual desktop.
// We build the message manually because the xgbutil ewmh.WmDesktopReq
// helper panics on this library version (uint vs int type assertion).
func (c *Connection) SetWindowDesktop(windowID xproto.Window, desktop int) error {
	return c.sendRootMessage(windowID, "_NET_WM_DESKTOP", []uint32{uint32(desktop), sourceIndication})
}

// FocusWindow activates and raises a window using _NET_ACTIVE_WINDOW.
func (c *Connection) FocusWindow(windowID xproto.Window) error {
	return c.sendRootMessage(windowID, "_NET_ACTIVE_WINDOW", []uint32{sourceIndication})
}

// IconifyWindow asks the window manager to minimize via WM_CHANGE_STATE.
func (c *Connection) IconifyWindow(windowID xproto.Window) error {
	const iconicState = 3
	return c.sendRootMessage(windowID, "WM_CHANGE_STATE", []uint32{iconicState})
}

// DeiconifyWindow maps an iconic window back to the normal state.
func (c *Connection) DeiconifyWindow(windowID xproto.Window) error {
	return xproto.MapWindowChecked(c.XUtil.Conn(), windowID).Check()
}

// KillWindowClient forcibly disconnects the client owning windowID.
func (c *Connection) KillWindowClient(windowID xproto.Window) error {
	return xproto.KillClientChecked(c.XUtil.Conn(), uint32(windowID)).Check()
}

// SetMaximized adds or removes the maximized state on the requested axes.
func (c *Connection) SetMaximized(windowID xproto.Window, horizontal, vertical, on bool) error {
	action := ewmh.StateRemove
	if on {
		action = ewmh.StateAdd
	}
	switch {
	case horizontal && vertical:
		return ewmh.WmStateReqExtra(c.XUtil, windowID, action, stateMaxHorz, stateMaxVert, sourceIndication)
	case horizontal:
		return ewmh.WmStateReqExtra(c.XUtil, windowID, action, stateMaxHorz, "", sourceIndication)
	case vertical:
		return ewmh.WmStateReqExtra(c.XUtil, windowID, action, stateMaxVert, "", sourceIndication)
	}
	return nil
}

// MoveResizeWindow places the frame of windowID at x, y and sizes its
// client to width x height.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, x, y, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	// Use EWMH MoveResize for better WM compatibility
	err := ewmh.MoveresizeWindow(c.XUtil, windowID, x, y, width, height)
	return withFallback("move and resize window", err, func() error {
		mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
		return c.configureWindow(windowID, mask, []uint32{uint32(int32(x)), uint32(int32(y)), uint32(width), uint32(height)})
	})
}

// MoveWindow changes only the position of a window.
func (c *Connection) MoveWindow(windowID xproto.Window, x, y int) error {
	err := ewmh.MoveWindow(c.XUtil, windowID, x, y)
	return withFallback("move window", err, func() error {
		mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY)
		return c.configureWindow(windowID, mask, []uint32{uint32(int32(x)), uint32(int32(y))})
	})
}

func (c *Connection) configureWindow(windowID xproto.Window, mask uint16, values []uint32) error {
	return xproto.ConfigureWindowChecked(c.XUtil.Conn(), windowID, mask, values).Check()
}

// withFallback runs fallback only when the EWMH request failed. The
// result is an error only if neither path applied, and it wraps both.
func withFallback(op string, ewmhErr error, fallback func() error) error {
	if ewmhErr == nil {
		return nil
	}
	if err := fallback(); err != nil {
		return fmt.Errorf("failed to %s: %w", op, errors.Join(ewmhErr, err))
	}
	return nil
}
