package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/1broseidon/winctl/internal/host"
)

// Monitor represents a physical display
type Monitor struct {
	ID     int
	Name   string
	Bounds host.Rect
}

// GetMonitors retrieves all active monitors using XRandR
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor
	for _, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		id := len(monitors)
		outputName := fmt.Sprintf("Monitor%d", id)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			ID:   id,
			Name: outputName,
			Bounds: host.Rect{
				X:      int(crtcInfo.X),
				Y:      int(crtcInfo.Y),
				Width:  int(crtcInfo.Width),
				Height: int(crtcInfo.Height),
			},
		})
	}

	return monitors, nil
}

// monitorAt returns the index of the monitor containing the point, or 0.
func monitorAt(monitors []Monitor, x, y int) int {
	for _, m := range monitors {
		if m.Bounds.Contains(x, y) {
			return m.ID
		}
	}
	return 0
}

// PointerMonitor returns the monitor under the mouse cursor.
func (c *Connection) PointerMonitor() (int, error) {
	monitors, err := c.GetMonitors()
	if err != nil {
		return 0, err
	}
	x, y, err := c.Pointer()
	if err != nil {
		return 0, err
	}
	return monitorAt(monitors, x, y), nil
}

// Pointer returns the root-relative pointer position.
func (c *Connection) Pointer() (int, int, error) {
	pointer, err := xproto.QueryPointer(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query pointer: %w", err)
	}
	return int(pointer.RootX), int(pointer.RootY), nil
}

// RootSize queries the current root window size. It follows RandR
// changes made after the connection was opened.
func (c *Connection) RootSize() (int, int, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get root geometry: %w", err)
	}
	return int(geom.Width), int(geom.Height), nil
}

// Workarea returns _NET_WORKAREA for the current desktop, falling back to
// the full screen.
func (c *Connection) Workarea() host.Rect {
	var full host.Rect
	if width, height, err := c.RootSize(); err == nil {
		full = host.Rect{Width: width, Height: height}
	}

	areas, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(areas) == 0 {
		return full
	}
	index := 0
	if current, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil && int(current) < len(areas) {
		index = int(current)
	}
	wa := areas[index]
	return host.Rect{X: int(wa.X), Y: int(wa.Y), Width: int(wa.Width), Height: int(wa.Height)}
}

// MonitorWorkarea intersects the work area with one monitor.
func (c *Connection) MonitorWorkarea(monitor int) host.Rect {
	area := c.Workarea()
	monitors, err := c.GetMonitors()
	if err != nil {
		return area
	}
	for _, m := range monitors {
		if m.ID == monitor {
			return area.Intersect(m.Bounds)
		}
	}
	return host.Rect{}
}
