package mcp

import "github.com/1broseidon/winctl/internal/control"

// WindowInput identifies a single window.
type WindowInput struct {
	ID uint32 `json:"id" jsonschema:"Window identifier as reported by list_windows"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct {
	CurrentWorkspace bool `json:"current_workspace,omitempty" jsonschema:"Only return windows located on the active workspace"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	Windows []control.Snapshot `json:"windows"`
}

// WindowDetailsOutput is the output for the window_details tool.
type WindowDetailsOutput struct {
	Window control.Details `json:"window"`
}

// TitleOutput is the output for the get_title tool.
type TitleOutput struct {
	Title string `json:"title"`
}

// MoveToWorkspaceInput is the input for the move_to_workspace tool.
type MoveToWorkspaceInput struct {
	ID        uint32 `json:"id" jsonschema:"Window identifier"`
	Workspace uint32 `json:"workspace" jsonschema:"Zero-based workspace index"`
}

// MoveResizeInput is the input for the move_resize_window tool.
type MoveResizeInput struct {
	ID     uint32 `json:"id" jsonschema:"Window identifier"`
	X      int32  `json:"x" jsonschema:"Left edge of the frame in root coordinates"`
	Y      int32  `json:"y" jsonschema:"Top edge of the frame in root coordinates"`
	Width  uint32 `json:"width" jsonschema:"Frame width in pixels"`
	Height uint32 `json:"height" jsonschema:"Frame height in pixels"`
}

// ResizeInput is the input for the resize_window and center_window tools.
type ResizeInput struct {
	ID     uint32 `json:"id" jsonschema:"Window identifier"`
	Width  uint32 `json:"width" jsonschema:"Frame width in pixels"`
	Height uint32 `json:"height" jsonschema:"Frame height in pixels"`
}

// MoveInput is the input for the move_window tool.
type MoveInput struct {
	ID uint32 `json:"id" jsonschema:"Window identifier"`
	X  int32  `json:"x" jsonschema:"Left edge of the frame in root coordinates"`
	Y  int32  `json:"y" jsonschema:"Top edge of the frame in root coordinates"`
}

// EmptyInput is used by tools that take no arguments.
type EmptyInput struct{}

// PointOutput is the output for the mouse_location tool.
type PointOutput struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// SizeOutput is the output for the screen_size tool.
type SizeOutput struct {
	Width  int32 `json:"width"`
	Height int32 `json:"height"`
}

// VersionOutput is the output for the check_version tool.
type VersionOutput struct {
	Version string `json:"version"`
}

// FindWindowInput is the input for the find_window tool.
type FindWindowInput struct {
	Title      string `json:"title" jsonschema:"Case-insensitive substring of the title, or :ACTIVE: for the focused window"`
	MatchClass bool   `json:"match_class,omitempty" jsonschema:"Match against WM_CLASS instead of the title"`
}

// FindWindowOutput is the output for the find_window tool.
type FindWindowOutput struct {
	Window control.Snapshot `json:"window"`
}
