// Package scripting provides window lookup and wait helpers built on the
// published window control operations.
package scripting

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/1broseidon/winctl/internal/control"
)

// ActiveTitle selects the focused window in FindByTitle and WaitForExist.
const ActiveTitle = ":ACTIVE:"

// DefaultPollInterval is how often the wait helpers re-list windows.
const DefaultPollInterval = 300 * time.Millisecond

// ErrTimeout is returned when a wait helper gives up.
var ErrTimeout = errors.New("timed out waiting for window")

// Controller is the subset of daemon operations the helpers need.
// *ipc.Client satisfies it.
type Controller interface {
	List() ([]control.Snapshot, error)
	ScreenSize() (width, height int32, err error)
	MoveResize(id uint32, x, y int32, width, height uint32) error
}

// Helpers runs lookups against a Controller.
type Helpers struct {
	ctl  Controller
	poll time.Duration
}

// New returns helpers that poll at interval (DefaultPollInterval when <= 0).
func New(ctl Controller, interval time.Duration) *Helpers {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Helpers{ctl: ctl, poll: interval}
}

// FindByTitle returns the first window whose title contains title,
// ignoring case. With matchClass the class is compared instead. The
// title ActiveTitle selects the focused window.
func (h *Helpers) FindByTitle(title string, matchClass bool) (*control.Snapshot, error) {
	windows, err := h.ctl.List()
	if err != nil {
		return nil, err
	}
	if w := findTitle(windows, title, matchClass); w != nil {
		return w, nil
	}
	return nil, fmt.Errorf("window %q: %w", title, control.ErrNotFound)
}

// ActiveWindow returns the focused window.
func (h *Helpers) ActiveWindow() (*control.Snapshot, error) {
	return h.FindByTitle(ActiveTitle, false)
}

// WaitForExist polls until a window matching title appears.
func (h *Helpers) WaitForExist(ctx context.Context, title string, timeout time.Duration) (*control.Snapshot, error) {
	return h.wait(ctx, timeout, func(windows []control.Snapshot) *control.Snapshot {
		return findTitle(windows, title, false)
	})
}

// WaitForFocus polls until the focused window's title matches pattern.
func (h *Helpers) WaitForFocus(ctx context.Context, pattern string, timeout time.Duration) (*control.Snapshot, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid title pattern: %w", err)
	}
	return h.wait(ctx, timeout, func(windows []control.Snapshot) *control.Snapshot {
		w := focused(windows)
		if w != nil && re.MatchString(w.Title) {
			return w
		}
		return nil
	})
}

// Center resizes window id to width x height and centres it on the screen.
func (h *Helpers) Center(id uint32, width, height uint32) error {
	sw, sh, err := h.ctl.ScreenSize()
	if err != nil {
		return err
	}
	x := (sw - int32(width)) / 2
	y := (sh - int32(height)) / 2
	return h.ctl.MoveResize(id, max(x, 0), max(y, 0), width, height)
}

func (h *Helpers) wait(ctx context.Context, timeout time.Duration, match func([]control.Snapshot) *control.Snapshot) (*control.Snapshot, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ticker := time.NewTicker(h.poll)
	defer ticker.Stop()

	for {
		windows, err := h.ctl.List()
		if err != nil {
			return nil, err
		}
		if w := match(windows); w != nil {
			return w, nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, ErrTimeout
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func findTitle(windows []control.Snapshot, title string, matchClass bool) *control.Snapshot {
	if title == ActiveTitle {
		return focused(windows)
	}
	needle := strings.ToLower(title)
	for i := range windows {
		hay := windows[i].Title
		if matchClass {
			hay = windows[i].Class
		}
		if strings.Contains(strings.ToLower(hay), needle) {
			return &windows[i]
		}
	}
	return nil
}

func focused(windows []control.Snapshot) *control.Snapshot {
	for i := range windows {
		if windows[i].Focus {
			return &windows[i]
		}
	}
	return nil
}
