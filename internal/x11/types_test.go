package x11

import (
	"testing"

	"github.com/1broseidon/winctl/internal/host"
)

func TestWindowTypeFromAtoms(t *testing.T) {
	tests := []struct {
		name   string
		types  []string
		states []string
		want   host.WindowType
	}{
		{"no hint is normal", nil, nil, host.WindowTypeNormal},
		{"dock", []string{"_NET_WM_WINDOW_TYPE_DOCK"}, nil, host.WindowTypeDock},
		{"first known wins", []string{"_KDE_NET_WM_WINDOW_TYPE_OVERRIDE", "_NET_WM_WINDOW_TYPE_UTILITY", "_NET_WM_WINDOW_TYPE_NORMAL"}, nil, host.WindowTypeUtility},
		{"modal dialog", []string{"_NET_WM_WINDOW_TYPE_DIALOG"}, []string{"_NET_WM_STATE_MODAL"}, host.WindowTypeModalDialog},
		{"plain dialog", []string{"_NET_WM_WINDOW_TYPE_DIALOG"}, nil, host.WindowTypeDialog},
		{"modal state ignored on normal", []string{"_NET_WM_WINDOW_TYPE_NORMAL"}, []string{"_NET_WM_STATE_MODAL"}, host.WindowTypeNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := windowTypeFromAtoms(tt.types, tt.states); got != tt.want {
				t.Errorf("windowTypeFromAtoms(%v, %v) = %d, want %d", tt.types, tt.states, got, tt.want)
			}
		})
	}
}

func TestFrameTypeFor(t *testing.T) {
	tests := []struct {
		in   host.WindowType
		want host.FrameType
	}{
		{host.WindowTypeNormal, host.FrameTypeNormal},
		{host.WindowTypeDialog, host.FrameTypeDialog},
		{host.WindowTypeModalDialog, host.FrameTypeModalDialog},
		{host.WindowTypeToolbar, host.FrameTypeUtility},
		{host.WindowTypePopupMenu, host.FrameTypeMenu},
		{host.WindowTypeDock, host.FrameTypeBorder},
	}
	for _, tt := range tests {
		if got := frameTypeFor(tt.in); got != tt.want {
			t.Errorf("frameTypeFor(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMaximizeFromStates(t *testing.T) {
	if got := maximizeFromStates(nil); got != 0 {
		t.Fatalf("no states = %d", got)
	}
	if got := maximizeFromStates([]string{stateMaxVert}); got != host.MaximizeVertical {
		t.Fatalf("vert = %d", got)
	}
	if got := maximizeFromStates([]string{stateMaxHorz, "_NET_WM_STATE_FOCUSED", stateMaxVert}); got != host.MaximizeBoth {
		t.Fatalf("both = %d", got)
	}
}

func TestLayerFor(t *testing.T) {
	if got := layerFor(host.WindowTypeDesktop, nil); got != host.LayerDesktop {
		t.Fatalf("desktop layer = %d", got)
	}
	if got := layerFor(host.WindowTypeDock, nil); got != host.LayerDock {
		t.Fatalf("dock layer = %d", got)
	}
	if got := layerFor(host.WindowTypeNormal, []string{"_NET_WM_STATE_BELOW"}); got != host.LayerBottom {
		t.Fatalf("below layer = %d", got)
	}
	if got := layerFor(host.WindowTypeNormal, []string{"_NET_WM_STATE_ABOVE"}); got != host.LayerTop {
		t.Fatalf("above layer = %d", got)
	}
	if got := layerFor(host.WindowTypeNormal, nil); got != host.LayerNormal {
		t.Fatalf("normal layer = %d", got)
	}
}

func TestAllowed(t *testing.T) {
	if !allowed(nil, false, "_NET_WM_ACTION_MOVE") {
		t.Fatal("unknown action list must allow everything")
	}
	if allowed([]string{"_NET_WM_ACTION_CLOSE"}, true, "_NET_WM_ACTION_MOVE") {
		t.Fatal("move not in list but allowed")
	}
	if !allowed([]string{"_NET_WM_ACTION_MAXIMIZE_VERT"}, true, "_NET_WM_ACTION_MAXIMIZE_HORZ", "_NET_WM_ACTION_MAXIMIZE_VERT") {
		t.Fatal("either maximize axis should allow maximize")
	}
}

func TestMonitorAt(t *testing.T) {
	monitors := []Monitor{
		{ID: 0, Bounds: host.Rect{Width: 1920, Height: 1080}},
		{ID: 1, Bounds: host.Rect{X: 1920, Width: 2560, Height: 1440}},
	}
	if got := monitorAt(monitors, 100, 100); got != 0 {
		t.Fatalf("left point = %d", got)
	}
	if got := monitorAt(monitors, 2000, 1200); got != 1 {
		t.Fatalf("right point = %d", got)
	}
	if got := monitorAt(monitors, -50, -50); got != 0 {
		t.Fatalf("offscreen point = %d, want fallback 0", got)
	}
}

func TestFrameRect(t *testing.T) {
	deco := frameExtents{left: 2, right: 2, top: 30, bottom: 2}
	tests := []struct {
		name   string
		client host.Rect
		ext    frameExtents
		want   host.Rect
	}{
		{"undecorated", host.Rect{X: 10, Y: 20, Width: 300, Height: 200}, frameExtents{}, host.Rect{X: 10, Y: 20, Width: 300, Height: 200}},
		{"titlebar and border", host.Rect{X: 102, Y: 180, Width: 796, Height: 568}, deco, host.Rect{X: 100, Y: 150, Width: 800, Height: 600}},
		{"frame at origin", host.Rect{X: 2, Y: 30, Width: 100, Height: 100}, deco, host.Rect{Width: 104, Height: 132}},
		{"frame left of screen", host.Rect{X: -48, Y: 30, Width: 100, Height: 100}, deco, host.Rect{X: -50, Width: 104, Height: 132}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameRect(tt.client, tt.ext); got != tt.want {
				t.Fatalf("frameRect(%+v, %+v) = %+v, want %+v", tt.client, tt.ext, got, tt.want)
			}
		})
	}
}

func TestClientSize(t *testing.T) {
	deco := frameExtents{left: 2, right: 2, top: 30, bottom: 2}
	tests := []struct {
		name          string
		width, height int
		ext           frameExtents
		wantW, wantH  int
	}{
		{"undecorated", 640, 480, frameExtents{}, 640, 480},
		{"decorated", 800, 600, deco, 796, 568},
		{"smaller than decoration", 3, 20, deco, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := clientSize(tt.width, tt.height, tt.ext)
			if w != tt.wantW || h != tt.wantH {
				t.Fatalf("clientSize(%d, %d) = %dx%d, want %dx%d", tt.width, tt.height, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

// A frame placed at a position with a size must read back unchanged once
// the window manager has wrapped the client in its decoration.
func TestFrameGeometryRoundTrip(t *testing.T) {
	ext := frameExtents{left: 4, right: 4, top: 24, bottom: 4}
	frame := host.Rect{X: 100, Y: 150, Width: 800, Height: 600}

	for i := 0; i < 3; i++ {
		cw, ch := clientSize(frame.Width, frame.Height, ext)
		client := host.Rect{X: frame.X + ext.left, Y: frame.Y + ext.top, Width: cw, Height: ch}
		got := frameRect(client, ext)
		if got != frame {
			t.Fatalf("pass %d: frame read back as %+v, want %+v", i, got, frame)
		}
		frame = got
	}
}
