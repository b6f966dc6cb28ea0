package control

import (
	"encoding/json"
	"fmt"

	"github.com/1broseidon/winctl/internal/host"
)

// Snapshot is one entry of the List payload. Field names match what
// existing scripting clients already parse.
type Snapshot struct {
	Class              string          `json:"wm_class"`
	Instance           string          `json:"wm_class_instance"`
	Title              string          `json:"wm_title"`
	Workspace          int             `json:"workspace"`
	Monitor            int             `json:"desktop"`
	PID                int             `json:"pid"`
	ID                 uint32          `json:"id"`
	FrameType          host.FrameType  `json:"frame_type"`
	WindowType         host.WindowType `json:"window_type"`
	Width              int             `json:"width"`
	Height             int             `json:"height"`
	X                  int             `json:"x"`
	Y                  int             `json:"y"`
	Focus              bool            `json:"focus"`
	InCurrentWorkspace bool            `json:"in_current_workspace"`
}

// Details is the extended payload returned for a single window.
type Details struct {
	Class              string             `json:"wm_class"`
	Instance           string             `json:"wm_class_instance"`
	Title              string             `json:"wm_title"`
	Workspace          int                `json:"workspace"`
	PID                int                `json:"pid"`
	ID                 uint32             `json:"id"`
	Width              int                `json:"width"`
	Height             int                `json:"height"`
	X                  int                `json:"x"`
	Y                  int                `json:"y"`
	Focus              bool               `json:"focus"`
	InCurrentWorkspace bool               `json:"in_current_workspace"`
	Movable            bool               `json:"moveable"`
	Resizable          bool               `json:"resizeable"`
	CanClose           bool               `json:"canclose"`
	CanMaximize        bool               `json:"canmaximize"`
	Maximized          host.MaximizeFlags `json:"maximized"`
	CanMinimize        bool               `json:"canminimize"`
	CanShade           bool               `json:"canshade"`
	FrameType          host.FrameType     `json:"frame_type"`
	WindowType         host.WindowType    `json:"window_type"`
	Layer              host.Layer         `json:"layer"`
	Monitor            int                `json:"monitor"`
	Role               string             `json:"role"`
	Area               host.Rect          `json:"area"`
	AreaAll            host.Rect          `json:"area_all"`
	AreaCust           host.Rect          `json:"area_cust"`
}

func snapshotOf(w host.Window, activeWorkspace int) Snapshot {
	g := w.Geometry()
	return Snapshot{
		Class:              w.Class(),
		Instance:           w.Instance(),
		Title:              w.Title(),
		Workspace:          w.Workspace(),
		Monitor:            w.Monitor(),
		PID:                w.PID(),
		ID:                 w.ID(),
		FrameType:          w.FrameType(),
		WindowType:         w.WindowType(),
		Width:              g.Width,
		Height:             g.Height,
		X:                  g.X,
		Y:                  g.Y,
		Focus:              w.HasFocus(),
		InCurrentWorkspace: w.LocatedOnWorkspace(activeWorkspace),
	}
}

func detailsOf(w host.Window, activeWorkspace, currentMonitor int) Details {
	g := w.Geometry()
	return Details{
		Class:              w.Class(),
		Instance:           w.Instance(),
		Title:              w.Title(),
		Workspace:          w.Workspace(),
		PID:                w.PID(),
		ID:                 w.ID(),
		Width:              g.Width,
		Height:             g.Height,
		X:                  g.X,
		Y:                  g.Y,
		Focus:              w.HasFocus(),
		InCurrentWorkspace: w.LocatedOnWorkspace(activeWorkspace),
		Movable:            w.AllowsMove(),
		Resizable:          w.AllowsResize(),
		CanClose:           w.CanClose(),
		CanMaximize:        w.CanMaximize(),
		Maximized:          w.Maximized(),
		CanMinimize:        w.CanMinimize(),
		CanShade:           w.CanShade(),
		FrameType:          w.FrameType(),
		WindowType:         w.WindowType(),
		Layer:              w.Layer(),
		Monitor:            w.Monitor(),
		Role:               w.Role(),
		Area:               w.WorkAreaCurrentMonitor(),
		AreaAll:            w.WorkAreaAllMonitors(),
		AreaCust:           w.WorkAreaForMonitor(currentMonitor),
	}
}

// encodePayload is the single encoder for structured-text results.
func encodePayload(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	return string(data), nil
}

// DecodeSnapshots parses a List payload.
func DecodeSnapshots(payload string) ([]Snapshot, error) {
	var out []Snapshot
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return nil, fmt.Errorf("failed to parse window list: %w", err)
	}
	return out, nil
}

// DecodeDetails parses a Details payload.
func DecodeDetails(payload string) (*Details, error) {
	var out Details
	if err := json.Unmarshal([]byte(payload), &out); err != nil {
		return nil, fmt.Errorf("failed to parse window details: %w", err)
	}
	return &out, nil
}
