package mcp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winctl/internal/control"
)

type fakeClient struct {
	windows []control.Snapshot
	calls   []string
}

func (f *fakeClient) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeClient) find(id uint32) (*control.Snapshot, error) {
	for i := range f.windows {
		if f.windows[i].ID == id {
			return &f.windows[i], nil
		}
	}
	return nil, fmt.Errorf("window %d: %w", id, control.ErrNotFound)
}

func (f *fakeClient) action(name string, id uint32) error {
	if _, err := f.find(id); err != nil {
		return err
	}
	f.record("%s %d", name, id)
	return nil
}

func (f *fakeClient) List() ([]control.Snapshot, error) {
	return append([]control.Snapshot(nil), f.windows...), nil
}

func (f *fakeClient) Details(id uint32) (*control.Details, error) {
	w, err := f.find(id)
	if err != nil {
		return nil, err
	}
	return &control.Details{ID: w.ID, Title: w.Title, Class: w.Class}, nil
}

func (f *fakeClient) GetTitle(id uint32) (string, error) {
	w, err := f.find(id)
	if err != nil {
		return "", err
	}
	return w.Title, nil
}

func (f *fakeClient) MoveToWorkspace(id, ws uint32) error {
	return f.action(fmt.Sprintf("workspace(%d)", ws), id)
}

func (f *fakeClient) MoveResize(id uint32, x, y int32, w, h uint32) error {
	return f.action(fmt.Sprintf("moveresize(%d,%d,%d,%d)", x, y, w, h), id)
}

func (f *fakeClient) Resize(id uint32, w, h uint32) error {
	return f.action(fmt.Sprintf("resize(%d,%d)", w, h), id)
}

func (f *fakeClient) Move(id uint32, x, y int32) error {
	return f.action(fmt.Sprintf("move(%d,%d)", x, y), id)
}

func (f *fakeClient) Maximize(id uint32) error   { return f.action("maximize", id) }
func (f *fakeClient) Unmaximize(id uint32) error { return f.action("unmaximize", id) }
func (f *fakeClient) Minimize(id uint32) error   { return f.action("minimize", id) }
func (f *fakeClient) Unminimize(id uint32) error { return f.action("unminimize", id) }
func (f *fakeClient) Activate(id uint32) error   { return f.action("activate", id) }
func (f *fakeClient) Close(id uint32) error      { return f.action("close", id) }

func (f *fakeClient) GetMouseLocation() (int32, int32, error) { return 10, 20, nil }
func (f *fakeClient) ScreenSize() (int32, int32, error)       { return 1920, 1080, nil }
func (f *fakeClient) CheckVersion() (string, error)           { return control.Version, nil }

func newFake() *fakeClient {
	return &fakeClient{windows: []control.Snapshot{
		{ID: 1, Title: "Terminal", Class: "xterm", InCurrentWorkspace: true},
		{ID: 2, Title: "Browser", Class: "firefox", Focus: true},
	}}
}

func TestHandleListWindows(t *testing.T) {
	s := NewServer(newFake())

	_, out, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{})
	if err != nil {
		t.Fatalf("list_windows: %v", err)
	}
	if len(out.Windows) != 2 {
		t.Fatalf("got %d windows, want 2", len(out.Windows))
	}

	_, out, err = s.handleListWindows(context.Background(), nil, ListWindowsInput{CurrentWorkspace: true})
	if err != nil {
		t.Fatalf("list_windows current: %v", err)
	}
	if len(out.Windows) != 1 || out.Windows[0].ID != 1 {
		t.Fatalf("current workspace filter = %+v", out.Windows)
	}
}

func TestHandleListWindowsEmptyIsArray(t *testing.T) {
	s := NewServer(&fakeClient{})
	_, out, err := s.handleListWindows(context.Background(), nil, ListWindowsInput{})
	if err != nil {
		t.Fatalf("list_windows: %v", err)
	}
	if out.Windows == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestHandleWindowDetailsNotFound(t *testing.T) {
	s := NewServer(newFake())
	_, _, err := s.handleWindowDetails(context.Background(), nil, WindowInput{ID: 99})
	if !errors.Is(err, control.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestHandleGeometryTools(t *testing.T) {
	fake := newFake()
	s := NewServer(fake)
	ctx := context.Background()

	if _, _, err := s.handleMove(ctx, nil, MoveInput{ID: 1, X: 5, Y: 6}); err != nil {
		t.Fatalf("move_window: %v", err)
	}
	if _, _, err := s.handleResize(ctx, nil, ResizeInput{ID: 1, Width: 300, Height: 200}); err != nil {
		t.Fatalf("resize_window: %v", err)
	}
	if _, _, err := s.handleMoveResize(ctx, nil, MoveResizeInput{ID: 2, X: -1, Y: 0, Width: 10, Height: 20}); err != nil {
		t.Fatalf("move_resize_window: %v", err)
	}
	if _, _, err := s.handleCenterWindow(ctx, nil, ResizeInput{ID: 2, Width: 920, Height: 80}); err != nil {
		t.Fatalf("center_window: %v", err)
	}

	want := []string{
		"move(5,6) 1",
		"resize(300,200) 1",
		"moveresize(-1,0,10,20) 2",
		"moveresize(500,500,920,80) 2",
	}
	if fmt.Sprint(fake.calls) != fmt.Sprint(want) {
		t.Fatalf("calls = %v, want %v", fake.calls, want)
	}
}

func TestHandleResizeRejectsZeroSize(t *testing.T) {
	fake := newFake()
	s := NewServer(fake)
	if _, _, err := s.handleResize(context.Background(), nil, ResizeInput{ID: 1, Width: 0, Height: 10}); err == nil {
		t.Fatal("expected error for zero width")
	}
	if len(fake.calls) != 0 {
		t.Fatalf("unexpected calls %v", fake.calls)
	}
}

func TestHandleFindWindow(t *testing.T) {
	s := NewServer(newFake())

	_, out, err := s.handleFindWindow(context.Background(), nil, FindWindowInput{Title: ":ACTIVE:"})
	if err != nil {
		t.Fatalf("find_window: %v", err)
	}
	if out.Window.ID != 2 {
		t.Fatalf("active window = %d, want 2", out.Window.ID)
	}

	if _, _, err := s.handleFindWindow(context.Background(), nil, FindWindowInput{}); err == nil {
		t.Fatal("expected error for empty title")
	}
}

func TestToolsOverSession(t *testing.T) {
	ctx := context.Background()
	fake := newFake()
	s := NewServer(fake)

	serverTransport, clientTransport := mcpsdk.NewInMemoryTransports()
	serverSession, err := s.mcpServer.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	defer serverSession.Close()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test", Version: "v0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	names := make(map[string]bool)
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{
		"list_windows", "window_details", "get_title", "move_to_workspace",
		"move_resize_window", "resize_window", "move_window", "maximize_window",
		"unmaximize_window", "minimize_window", "unminimize_window", "activate_window",
		"close_window", "mouse_location", "screen_size", "check_version",
		"find_window", "center_window",
	} {
		if !names[want] {
			t.Errorf("tool %q not registered", want)
		}
	}

	res, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      "activate_window",
		Arguments: map[string]any{"id": 1},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if res.IsError {
		t.Fatalf("activate_window reported error: %+v", res.Content)
	}
	if len(fake.calls) != 1 || fake.calls[0] != "activate 1" {
		t.Fatalf("calls = %v", fake.calls)
	}

	res, err = session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      "close_window",
		Arguments: map[string]any{"id": 404},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if !res.IsError {
		t.Fatal("close_window on unknown id should report a tool error")
	}
}
