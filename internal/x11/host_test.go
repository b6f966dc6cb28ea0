package x11

import (
	"os"
	"testing"
)

// connectOrSkip needs a running X server.
func connectOrSkip(t *testing.T) *Host {
	t.Helper()
	if os.Getenv("DISPLAY") == "" {
		t.Skip("DISPLAY not set")
	}
	h, err := NewHostFromDisplay()
	if err != nil {
		t.Skipf("X server not available: %v", err)
	}
	t.Cleanup(func() { h.conn.Close() })
	return h
}

func TestScreenSizeMatchesRootGeometry(t *testing.T) {
	h := connectOrSkip(t)

	width, height, err := h.ScreenSize()
	if err != nil {
		t.Fatalf("ScreenSize: %v", err)
	}
	if width <= 0 || height <= 0 {
		t.Fatalf("ScreenSize = %dx%d", width, height)
	}
	rw, rh, err := h.conn.RootSize()
	if err != nil {
		t.Fatalf("RootSize: %v", err)
	}
	if width != rw || height != rh {
		t.Fatalf("ScreenSize = %dx%d, root is %dx%d", width, height, rw, rh)
	}
	if area := h.conn.Workarea(); area.Width <= 0 || area.Height <= 0 {
		t.Fatalf("Workarea = %+v", area)
	}
}
