// Package mcp exposes the window control operations as Model Context
// Protocol tools. Every tool forwards to the daemon.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winctl/internal/control"
	"github.com/1broseidon/winctl/internal/scripting"
)

const ServerName = "winctl"

// WindowClient is the daemon API the tools call. *ipc.Client satisfies it.
type WindowClient interface {
	List() ([]control.Snapshot, error)
	Details(id uint32) (*control.Details, error)
	GetTitle(id uint32) (string, error)
	MoveToWorkspace(id, workspace uint32) error
	MoveResize(id uint32, x, y int32, width, height uint32) error
	Resize(id uint32, width, height uint32) error
	Move(id uint32, x, y int32) error
	Maximize(id uint32) error
	Unmaximize(id uint32) error
	Minimize(id uint32) error
	Unminimize(id uint32) error
	Activate(id uint32) error
	Close(id uint32) error
	GetMouseLocation() (x, y int32, err error)
	ScreenSize() (width, height int32, err error)
	CheckVersion() (string, error)
}

// Server is the MCP server for winctl.
type Server struct {
	mcpServer *mcpsdk.Server
	client    WindowClient
	helpers   *scripting.Helpers
}

// NewServer creates an MCP server forwarding to client.
func NewServer(client WindowClient) *Server {
	s := &Server{
		client:  client,
		helpers: scripting.New(client, 0),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: control.Version,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List every managed window with its class, title, workspace, monitor, pid, geometry and focus state.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "window_details",
		Description: "Return the extended record for one window, including capabilities, maximize state, layer and work areas.",
	}, s.handleWindowDetails)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_title",
		Description: "Return the title of one window.",
	}, s.handleGetTitle)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_to_workspace",
		Description: "Move a window to another workspace.",
	}, s.handleMoveToWorkspace)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_resize_window",
		Description: "Set the frame position and size of a window. Maximized windows are restored first.",
	}, s.handleMoveResize)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "resize_window",
		Description: "Change the frame size of a window keeping its current position. Maximized windows are restored first.",
	}, s.handleResize)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_window",
		Description: "Move a window frame keeping its current size. Maximized windows are restored first.",
	}, s.handleMove)

	s.addWindowAction("maximize_window", "Maximize a window on both axes.", s.client.Maximize)
	s.addWindowAction("unmaximize_window", "Restore a maximized window on both axes.", s.client.Unmaximize)
	s.addWindowAction("minimize_window", "Minimize a window.", s.client.Minimize)
	s.addWindowAction("unminimize_window", "Restore a minimized window.", s.client.Unminimize)
	s.addWindowAction("activate_window", "Focus and raise a window.", s.client.Activate)
	s.addWindowAction("close_window", "Forcibly close a window by killing its client.", s.client.Close)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "mouse_location",
		Description: "Return the pointer position in root coordinates.",
	}, s.handleMouseLocation)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "screen_size",
		Description: "Return the size of the whole screen in pixels.",
	}, s.handleScreenSize)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "check_version",
		Description: "Return the window control interface version.",
	}, s.handleCheckVersion)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "find_window",
		Description: "Find the first window whose title (or class) contains the given text. Use :ACTIVE: for the focused window.",
	}, s.handleFindWindow)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "center_window",
		Description: "Resize a window and centre it on the screen.",
	}, s.handleCenterWindow)
}

func (s *Server) addWindowAction(name, description string, action func(uint32) error) {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        name,
		Description: description,
	}, func(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowInput) (*mcpsdk.CallToolResult, any, error) {
		if err := action(args.ID); err != nil {
			return nil, nil, err
		}
		return done(name, args.ID), nil, nil
	})
}
