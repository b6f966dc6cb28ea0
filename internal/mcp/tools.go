package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winctl/internal/control"
)

func done(tool string, id uint32) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: fmt.Sprintf("%s: window %d ok", tool, id)},
		},
	}
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	windows, err := s.client.List()
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}
	if args.CurrentWorkspace {
		filtered := windows[:0]
		for _, w := range windows {
			if w.InCurrentWorkspace {
				filtered = append(filtered, w)
			}
		}
		windows = filtered
	}
	if windows == nil {
		windows = []control.Snapshot{}
	}
	return nil, ListWindowsOutput{Windows: windows}, nil
}

func (s *Server) handleWindowDetails(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowInput) (*mcpsdk.CallToolResult, WindowDetailsOutput, error) {
	details, err := s.client.Details(args.ID)
	if err != nil {
		return nil, WindowDetailsOutput{}, err
	}
	return nil, WindowDetailsOutput{Window: *details}, nil
}

func (s *Server) handleGetTitle(_ context.Context, _ *mcpsdk.CallToolRequest, args WindowInput) (*mcpsdk.CallToolResult, TitleOutput, error) {
	title, err := s.client.GetTitle(args.ID)
	if err != nil {
		return nil, TitleOutput{}, err
	}
	return nil, TitleOutput{Title: title}, nil
}

func (s *Server) handleMoveToWorkspace(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveToWorkspaceInput) (*mcpsdk.CallToolResult, any, error) {
	if err := s.client.MoveToWorkspace(args.ID, args.Workspace); err != nil {
		return nil, nil, err
	}
	return done("move_to_workspace", args.ID), nil, nil
}

func (s *Server) handleMoveResize(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveResizeInput) (*mcpsdk.CallToolResult, any, error) {
	if args.Width == 0 || args.Height == 0 {
		return nil, nil, fmt.Errorf("width and height must be positive")
	}
	if err := s.client.MoveResize(args.ID, args.X, args.Y, args.Width, args.Height); err != nil {
		return nil, nil, err
	}
	return done("move_resize_window", args.ID), nil, nil
}

func (s *Server) handleResize(_ context.Context, _ *mcpsdk.CallToolRequest, args ResizeInput) (*mcpsdk.CallToolResult, any, error) {
	if args.Width == 0 || args.Height == 0 {
		return nil, nil, fmt.Errorf("width and height must be positive")
	}
	if err := s.client.Resize(args.ID, args.Width, args.Height); err != nil {
		return nil, nil, err
	}
	return done("resize_window", args.ID), nil, nil
}

func (s *Server) handleMove(_ context.Context, _ *mcpsdk.CallToolRequest, args MoveInput) (*mcpsdk.CallToolResult, any, error) {
	if err := s.client.Move(args.ID, args.X, args.Y); err != nil {
		return nil, nil, err
	}
	return done("move_window", args.ID), nil, nil
}

func (s *Server) handleMouseLocation(_ context.Context, _ *mcpsdk.CallToolRequest, _ EmptyInput) (*mcpsdk.CallToolResult, PointOutput, error) {
	x, y, err := s.client.GetMouseLocation()
	if err != nil {
		return nil, PointOutput{}, err
	}
	return nil, PointOutput{X: x, Y: y}, nil
}

func (s *Server) handleScreenSize(_ context.Context, _ *mcpsdk.CallToolRequest, _ EmptyInput) (*mcpsdk.CallToolResult, SizeOutput, error) {
	w, h, err := s.client.ScreenSize()
	if err != nil {
		return nil, SizeOutput{}, err
	}
	return nil, SizeOutput{Width: w, Height: h}, nil
}

func (s *Server) handleCheckVersion(_ context.Context, _ *mcpsdk.CallToolRequest, _ EmptyInput) (*mcpsdk.CallToolResult, VersionOutput, error) {
	version, err := s.client.CheckVersion()
	if err != nil {
		return nil, VersionOutput{}, err
	}
	return nil, VersionOutput{Version: version}, nil
}

func (s *Server) handleFindWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args FindWindowInput) (*mcpsdk.CallToolResult, FindWindowOutput, error) {
	if args.Title == "" {
		return nil, FindWindowOutput{}, fmt.Errorf("title is required")
	}
	w, err := s.helpers.FindByTitle(args.Title, args.MatchClass)
	if err != nil {
		return nil, FindWindowOutput{}, err
	}
	return nil, FindWindowOutput{Window: *w}, nil
}

func (s *Server) handleCenterWindow(_ context.Context, _ *mcpsdk.CallToolRequest, args ResizeInput) (*mcpsdk.CallToolResult, any, error) {
	if args.Width == 0 || args.Height == 0 {
		return nil, nil, fmt.Errorf("width and height must be positive")
	}
	if err := s.helpers.Center(args.ID, args.Width, args.Height); err != nil {
		return nil, nil, err
	}
	return done("center_window", args.ID), nil, nil
}
