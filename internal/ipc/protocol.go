package ipc

import (
	"encoding/json"
	"fmt"
)

// InterfaceName is the fixed interface every request must address.
const InterfaceName = "io.winctl.WindowControl"

// Method names the published operations.
type Method string

const (
	MethodList             Method = "List"
	MethodDetails          Method = "Details"
	MethodGetTitle         Method = "GetTitle"
	MethodMoveToWorkspace  Method = "MoveToWorkspace"
	MethodMoveResize       Method = "MoveResize"
	MethodResize           Method = "Resize"
	MethodMove             Method = "Move"
	MethodMaximize         Method = "Maximize"
	MethodUnmaximize       Method = "Unmaximize"
	MethodMinimize         Method = "Minimize"
	MethodUnminimize       Method = "Unminimize"
	MethodActivate         Method = "Activate"
	MethodClose            Method = "Close"
	MethodGetMouseLocation Method = "GetMouseLocation"
	MethodScreenSize       Method = "ScreenSize"
	MethodCheckVersion     Method = "CheckVersion"
)

const (
	StatusOK    = "OK"
	StatusError = "ERROR"

	// CodeNotFound marks a failed identifier lookup.
	CodeNotFound = "NotFound"
)

// Request represents an IPC request from client to server
type Request struct {
	Interface string          `json:"interface"`
	Method    Method          `json:"method"`
	Args      json.RawMessage `json:"args,omitempty"`
}

// Response represents an IPC response from server to client
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
	Code   string          `json:"code,omitempty"`
}

// WindowArgs carries the arguments of every identifier-taking method.
// Fields a method does not use are ignored. Zero is a valid coordinate,
// size and workspace, so every field is always encoded.
type WindowArgs struct {
	WinID        uint32 `json:"winid"`
	WorkspaceNum uint32 `json:"workspaceNum"`
	X            int32  `json:"x"`
	Y            int32  `json:"y"`
	Width        uint32 `json:"width"`
	Height       uint32 `json:"height"`
}

// windowMethodArgs lists the argument fields each identifier-taking
// method requires.
var windowMethodArgs = map[Method][]string{
	MethodDetails:         {"winid"},
	MethodGetTitle:        {"winid"},
	MethodMoveToWorkspace: {"winid", "workspaceNum"},
	MethodMoveResize:      {"winid", "x", "y", "width", "height"},
	MethodResize:          {"winid", "width", "height"},
	MethodMove:            {"winid", "x", "y"},
	MethodMaximize:        {"winid"},
	MethodUnmaximize:      {"winid"},
	MethodMinimize:        {"winid"},
	MethodUnminimize:      {"winid"},
	MethodActivate:        {"winid"},
	MethodClose:           {"winid"},
}

// NewOKResponse creates a successful response with optional data
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: StatusOK,
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse creates an error response with a message
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: StatusError,
		Error:  errMsg,
	}
}

// NewNotFoundResponse creates the response for an unresolved identifier.
func NewNotFoundResponse(errMsg string) *Response {
	resp := NewErrorResponse(errMsg)
	resp.Code = CodeNotFound
	return resp
}

// ParseRequest parses a request from JSON bytes
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal converts a response to JSON bytes
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
