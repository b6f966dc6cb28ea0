// Package host describes the window-manager surface the control adapter
// drives. Implementations own every window; callers only look windows up
// and forward accessor and mutator calls.
package host

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Intersect returns the overlap of r and o, or a zero Rect when they do
// not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.Width, o.X+o.Width)
	y2 := min(r.Y+r.Height, o.Y+o.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// MaximizeFlags is the set of axes a window is maximized on.
type MaximizeFlags int

const (
	MaximizeHorizontal MaximizeFlags = 1 << iota
	MaximizeVertical

	MaximizeBoth = MaximizeHorizontal | MaximizeVertical
)

// Horizontal reports whether the horizontal axis is maximized.
func (f MaximizeFlags) Horizontal() bool { return f&MaximizeHorizontal != 0 }

// Vertical reports whether the vertical axis is maximized.
func (f MaximizeFlags) Vertical() bool { return f&MaximizeVertical != 0 }

// WindowType classifies a window's behaviour category.
type WindowType int

const (
	WindowTypeNormal WindowType = iota
	WindowTypeDesktop
	WindowTypeDock
	WindowTypeDialog
	WindowTypeModalDialog
	WindowTypeToolbar
	WindowTypeMenu
	WindowTypeUtility
	WindowTypeSplashscreen
	WindowTypeDropdownMenu
	WindowTypePopupMenu
	WindowTypeTooltip
	WindowTypeNotification
	WindowTypeCombo
	WindowTypeDND
	WindowTypeOverrideOther
)

// FrameType classifies the decoration a window is given.
type FrameType int

const (
	FrameTypeNormal FrameType = iota
	FrameTypeDialog
	FrameTypeModalDialog
	FrameTypeUtility
	FrameTypeMenu
	FrameTypeBorder
	FrameTypeAttached
)

// Layer is the stacking layer a window sits in.
type Layer int

const (
	LayerDesktop          Layer = 0
	LayerBottom           Layer = 1
	LayerNormal           Layer = 2
	LayerTop              Layer = 4
	LayerDock             Layer = 4
	LayerOverrideRedirect Layer = 7
)

// Window is a live reference to one host-managed window. Accessors read
// current host state on every call.
type Window interface {
	ID() uint32
	Class() string
	Instance() string
	Title() string
	// Workspace returns the workspace index, or -1 for windows shown on
	// every workspace.
	Workspace() int
	Monitor() int
	PID() int
	FrameType() FrameType
	WindowType() WindowType
	Geometry() Rect
	HasFocus() bool
	LocatedOnWorkspace(index int) bool

	AllowsMove() bool
	AllowsResize() bool
	CanClose() bool
	CanMaximize() bool
	CanMinimize() bool
	CanShade() bool
	Maximized() MaximizeFlags
	Layer() Layer
	Role() string

	WorkAreaCurrentMonitor() Rect
	WorkAreaAllMonitors() Rect
	WorkAreaForMonitor(monitor int) Rect

	MoveFrame(x, y int) error
	MoveResizeFrame(x, y, width, height int) error
	Maximize(flags MaximizeFlags) error
	Unmaximize(flags MaximizeFlags) error
	Minimize() error
	Unminimize() error
	Activate() error
	// Kill forcibly terminates the window's owning client.
	Kill() error
	ChangeWorkspace(index int) error
}

// Host is the window manager. It is passed explicitly to the adapter.
type Host interface {
	Windows() ([]Window, error)
	PointerLocation() (x, y int, err error)
	ScreenSize() (width, height int, err error)
	ActiveWorkspace() (int, error)
	CurrentMonitor() (int, error)
}
