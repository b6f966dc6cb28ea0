package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/1broseidon/winctl/internal/control"
)

const DefaultTimeout = 5 * time.Second

// Client handles IPC communication with the daemon
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a client for the object published at socketPath.
func NewClient(socketPath string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		socketPath: socketPath,
		timeout:    timeout,
	}
}

// call sends one request and waits for its response. Error responses
// are returned as errors; NotFound maps to control.ErrNotFound.
func (c *Client) call(method Method, args any) (*Response, error) {
	req := &Request{
		Interface: InterfaceName,
		Method:    method,
	}
	if args != nil {
		raw, err := json.Marshal(args)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal arguments: %w", err)
		}
		req.Args = raw
	}

	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w (is the daemon running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Status == StatusError {
		if resp.Code == CodeNotFound {
			return nil, fmt.Errorf("%s: %w", method, control.ErrNotFound)
		}
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}

	return &resp, nil
}

func (c *Client) callInto(method Method, args any, out any) error {
	resp, err := c.call(method, args)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("failed to parse %s result: %w", method, err)
	}
	return nil
}

func (c *Client) callPair(method Method) (int32, int32, error) {
	var pair [2]int32
	if err := c.callInto(method, nil, &pair); err != nil {
		return 0, 0, err
	}
	return pair[0], pair[1], nil
}

func (c *Client) callWindow(method Method, args WindowArgs) error {
	_, err := c.call(method, args)
	return err
}

// ListRaw returns the List payload text as published.
func (c *Client) ListRaw() (string, error) {
	var payload string
	if err := c.callInto(MethodList, nil, &payload); err != nil {
		return "", err
	}
	return payload, nil
}

// List returns every tracked window.
func (c *Client) List() ([]control.Snapshot, error) {
	payload, err := c.ListRaw()
	if err != nil {
		return nil, err
	}
	return control.DecodeSnapshots(payload)
}

// DetailsRaw returns the Details payload text as published.
func (c *Client) DetailsRaw(id uint32) (string, error) {
	var payload string
	if err := c.callInto(MethodDetails, WindowArgs{WinID: id}, &payload); err != nil {
		return "", err
	}
	return payload, nil
}

func (c *Client) Details(id uint32) (*control.Details, error) {
	payload, err := c.DetailsRaw(id)
	if err != nil {
		return nil, err
	}
	return control.DecodeDetails(payload)
}

func (c *Client) GetTitle(id uint32) (string, error) {
	var title string
	if err := c.callInto(MethodGetTitle, WindowArgs{WinID: id}, &title); err != nil {
		return "", err
	}
	return title, nil
}

func (c *Client) MoveToWorkspace(id, workspace uint32) error {
	return c.callWindow(MethodMoveToWorkspace, WindowArgs{WinID: id, WorkspaceNum: workspace})
}

func (c *Client) MoveResize(id uint32, x, y int32, width, height uint32) error {
	return c.callWindow(MethodMoveResize, WindowArgs{WinID: id, X: x, Y: y, Width: width, Height: height})
}

func (c *Client) Resize(id uint32, width, height uint32) error {
	return c.callWindow(MethodResize, WindowArgs{WinID: id, Width: width, Height: height})
}

func (c *Client) Move(id uint32, x, y int32) error {
	return c.callWindow(MethodMove, WindowArgs{WinID: id, X: x, Y: y})
}

func (c *Client) Maximize(id uint32) error {
	return c.callWindow(MethodMaximize, WindowArgs{WinID: id})
}

func (c *Client) Unmaximize(id uint32) error {
	return c.callWindow(MethodUnmaximize, WindowArgs{WinID: id})
}

func (c *Client) Minimize(id uint32) error {
	return c.callWindow(MethodMinimize, WindowArgs{WinID: id})
}

func (c *Client) Unminimize(id uint32) error {
	return c.callWindow(MethodUnminimize, WindowArgs{WinID: id})
}

func (c *Client) Activate(id uint32) error {
	return c.callWindow(MethodActivate, WindowArgs{WinID: id})
}

func (c *Client) Close(id uint32) error {
	return c.callWindow(MethodClose, WindowArgs{WinID: id})
}

func (c *Client) GetMouseLocation() (x, y int32, err error) {
	return c.callPair(MethodGetMouseLocation)
}

func (c *Client) ScreenSize() (width, height int32, err error) {
	return c.callPair(MethodScreenSize)
}

func (c *Client) CheckVersion() (string, error) {
	var version string
	if err := c.callInto(MethodCheckVersion, nil, &version); err != nil {
		return "", err
	}
	return version, nil
}

// Ping checks if the daemon is responding
func (c *Client) Ping() error {
	_, err := c.CheckVersion()
	return err
}
