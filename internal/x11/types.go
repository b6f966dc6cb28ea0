package x11

import "github.com/1broseidon/winctl/internal/host"

var windowTypeAtoms = map[string]host.WindowType{
	"_NET_WM_WINDOW_TYPE_NORMAL":        host.WindowTypeNormal,
	"_NET_WM_WINDOW_TYPE_DESKTOP":       host.WindowTypeDesktop,
	"_NET_WM_WINDOW_TYPE_DOCK":          host.WindowTypeDock,
	"_NET_WM_WINDOW_TYPE_DIALOG":        host.WindowTypeDialog,
	"_NET_WM_WINDOW_TYPE_TOOLBAR":       host.WindowTypeToolbar,
	"_NET_WM_WINDOW_TYPE_MENU":          host.WindowTypeMenu,
	"_NET_WM_WINDOW_TYPE_UTILITY":       host.WindowTypeUtility,
	"_NET_WM_WINDOW_TYPE_SPLASH":        host.WindowTypeSplashscreen,
	"_NET_WM_WINDOW_TYPE_DROPDOWN_MENU": host.WindowTypeDropdownMenu,
	"_NET_WM_WINDOW_TYPE_POPUP_MENU":    host.WindowTypePopupMenu,
	"_NET_WM_WINDOW_TYPE_TOOLTIP":       host.WindowTypeTooltip,
	"_NET_WM_WINDOW_TYPE_NOTIFICATION":  host.WindowTypeNotification,
	"_NET_WM_WINDOW_TYPE_COMBO":         host.WindowTypeCombo,
	"_NET_WM_WINDOW_TYPE_DND":           host.WindowTypeDND,
}

// windowTypeFromAtoms picks the first recognised type. Windows without a
// type hint are normal, and modal dialogs are reported separately.
func windowTypeFromAtoms(types, states []string) host.WindowType {
	wt := host.WindowTypeNormal
	for _, t := range types {
		if mapped, ok := windowTypeAtoms[t]; ok {
			wt = mapped
			break
		}
	}
	if wt == host.WindowTypeDialog && hasAtom(states, "_NET_WM_STATE_MODAL") {
		return host.WindowTypeModalDialog
	}
	return wt
}

// frameTypeFor derives the decoration class from the window type.
func frameTypeFor(wt host.WindowType) host.FrameType {
	switch wt {
	case host.WindowTypeDialog:
		return host.FrameTypeDialog
	case host.WindowTypeModalDialog:
		return host.FrameTypeModalDialog
	case host.WindowTypeUtility, host.WindowTypeToolbar:
		return host.FrameTypeUtility
	case host.WindowTypeMenu, host.WindowTypeDropdownMenu, host.WindowTypePopupMenu:
		return host.FrameTypeMenu
	case host.WindowTypeDesktop, host.WindowTypeDock, host.WindowTypeSplashscreen,
		host.WindowTypeTooltip, host.WindowTypeNotification, host.WindowTypeCombo, host.WindowTypeDND:
		return host.FrameTypeBorder
	default:
		return host.FrameTypeNormal
	}
}

func maximizeFromStates(states []string) host.MaximizeFlags {
	var flags host.MaximizeFlags
	if hasAtom(states, stateMaxHorz) {
		flags |= host.MaximizeHorizontal
	}
	if hasAtom(states, stateMaxVert) {
		flags |= host.MaximizeVertical
	}
	return flags
}

func layerFor(wt host.WindowType, states []string) host.Layer {
	switch {
	case wt == host.WindowTypeDesktop:
		return host.LayerDesktop
	case wt == host.WindowTypeDock:
		return host.LayerDock
	case hasAtom(states, "_NET_WM_STATE_BELOW"):
		return host.LayerBottom
	case hasAtom(states, "_NET_WM_STATE_ABOVE"):
		return host.LayerTop
	default:
		return host.LayerNormal
	}
}

// allowed reports whether action is in the allowed-actions list. A
// window manager that does not publish the list allows everything.
func allowed(actions []string, known bool, action ...string) bool {
	if !known {
		return true
	}
	for _, a := range action {
		if hasAtom(actions, a) {
			return true
		}
	}
	return false
}

func hasAtom(list []string, atom string) bool {
	for _, v := range list {
		if v == atom {
			return true
		}
	}
	return false
}

// frameExtents is the decoration the window manager draws around a
// client, from _NET_FRAME_EXTENTS.
type frameExtents struct {
	left, right, top, bottom int
}

// frameRect grows a client rectangle in root coordinates to the outer
// frame. Positions and sizes reported by the host are frame geometry.
func frameRect(client host.Rect, ext frameExtents) host.Rect {
	return host.Rect{
		X:      client.X - ext.left,
		Y:      client.Y - ext.top,
		Width:  client.Width + ext.left + ext.right,
		Height: client.Height + ext.top + ext.bottom,
	}
}

// clientSize is the client size that fills a frame of width x height.
// _NET_MOVERESIZE_WINDOW positions the frame but sizes the client.
func clientSize(width, height int, ext frameExtents) (int, int) {
	return max(width-ext.left-ext.right, 1), max(height-ext.top-ext.bottom, 1)
}
