package ipc

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/1broseidon/winctl/internal/control"
)

const (
	readTimeout      = 5 * time.Second
	liveCheckTimeout = 500 * time.Millisecond
)

// Server publishes the adapter's operation table on a unix socket.
type Server struct {
	socketPath string
	listener   net.Listener
	adapter    *control.Adapter
	logger     *slog.Logger

	// dispatchMu serializes every call into the adapter.
	dispatchMu sync.Mutex
	inflight   sync.WaitGroup

	stateMu   sync.Mutex
	published bool
	stopped   bool
}

// NewServer creates an unpublished server for socketPath.
func NewServer(socketPath string, adapter *control.Adapter, logger *slog.Logger) (*Server, error) {
	if socketPath == "" {
		return nil, fmt.Errorf("IPC socket path is empty")
	}
	if adapter == nil {
		return nil, fmt.Errorf("IPC server requires an adapter")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// A socket that still answers belongs to a live daemon; anything
	// else left at the path is stale.
	if conn, err := net.DialTimeout("unix", socketPath, liveCheckTimeout); err == nil {
		conn.Close()
		return nil, fmt.Errorf("another daemon is already serving %s", socketPath)
	}
	os.Remove(socketPath)

	return &Server{
		socketPath: socketPath,
		adapter:    adapter,
		logger:     logger,
	}, nil
}

// SocketPath returns the object path the server publishes on.
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Start publishes the operation table.
func (s *Server) Start() error {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	if s.published {
		return fmt.Errorf("IPC server already published on %s", s.socketPath)
	}
	if s.stopped {
		return fmt.Errorf("IPC server was stopped")
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create IPC socket: %w", err)
	}

	// Set socket permissions
	if err := os.Chmod(s.socketPath, 0600); err != nil {
		listener.Close()
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	s.listener = listener
	s.published = true
	log.Printf("IPC server listening on %s (%s)", s.socketPath, InterfaceName)

	go s.acceptLoop(listener)
	return nil
}

// Stop withdraws the operation table. Calls already accepted run to
// completion and receive their responses before the socket is removed;
// nothing is dispatched afterwards.
func (s *Server) Stop() {
	s.stateMu.Lock()
	if !s.published {
		s.stopped = true
		s.stateMu.Unlock()
		return
	}
	s.published = false
	s.stopped = true
	listener := s.listener
	s.stateMu.Unlock()

	listener.Close()
	s.inflight.Wait()
	os.Remove(s.socketPath)
	log.Printf("IPC server withdrawn from %s", s.socketPath)
}

func (s *Server) acceptLoop(listener net.Listener) {
	for {
		conn, err := listener.Accept()
		if err != nil {
			s.stateMu.Lock()
			stopped := s.stopped
			s.stateMu.Unlock()
			if stopped || errors.Is(err, net.ErrClosed) {
				return
			}
			log.Printf("IPC accept error: %v", err)
			continue
		}

		s.stateMu.Lock()
		if !s.published {
			s.stateMu.Unlock()
			conn.Close()
			continue
		}
		s.inflight.Add(1)
		s.stateMu.Unlock()

		go func() {
			defer s.inflight.Done()
			s.handleConnection(conn)
		}()
	}
}

// handleConnection serves one request per connection.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	reader := bufio.NewReader(conn)

	// Read the request (expect JSON on a single line)
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		log.Printf("IPC read error: %v", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	resp := s.Dispatch(req)

	respData, err := resp.Marshal()
	if err != nil {
		log.Printf("Failed to marshal response: %v", err)
		return
	}

	respData = append(respData, '\n')
	if _, err := conn.Write(respData); err != nil {
		log.Printf("Failed to send response: %v", err)
	}
}

// Dispatch runs one request against the adapter.
func (s *Server) Dispatch(req *Request) *Response {
	if req.Interface != InterfaceName {
		return NewErrorResponse(fmt.Sprintf("Unknown interface: %s", req.Interface))
	}

	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	start := time.Now()
	resp := s.handleMethod(req)
	s.logger.Debug("ipc call",
		"method", string(req.Method),
		"status", resp.Status,
		"code", resp.Code,
		"duration", time.Since(start),
	)
	if resp.Status == StatusError && resp.Code == "" {
		s.logger.Warn("ipc call failed", "method", string(req.Method), "error", resp.Error)
	}
	return resp
}

func (s *Server) handleMethod(req *Request) *Response {
	a := s.adapter

	switch req.Method {
	case MethodList:
		payload, err := a.List()
		return dataOrError(payload, err)
	case MethodGetMouseLocation:
		x, y, err := a.GetMouseLocation()
		return dataOrError([]int32{x, y}, err)
	case MethodScreenSize:
		w, h, err := a.ScreenSize()
		return dataOrError([]int32{w, h}, err)
	case MethodCheckVersion:
		return dataOrError(a.CheckVersion(), nil)
	}

	required, ok := windowMethodArgs[req.Method]
	if !ok {
		return NewErrorResponse(fmt.Sprintf("Unknown method: %s", req.Method))
	}
	args, err := decodeWindowArgs(req.Args, required)
	if err != nil {
		return NewErrorResponse(err.Error())
	}

	switch req.Method {
	case MethodDetails:
		payload, err := a.Details(args.WinID)
		return dataOrError(payload, err)
	case MethodGetTitle:
		title, err := a.GetTitle(args.WinID)
		return dataOrError(title, err)
	case MethodMoveToWorkspace:
		return voidOrError(a.MoveToWorkspace(args.WinID, args.WorkspaceNum))
	case MethodMoveResize:
		return voidOrError(a.MoveResize(args.WinID, args.X, args.Y, args.Width, args.Height))
	case MethodResize:
		return voidOrError(a.Resize(args.WinID, args.Width, args.Height))
	case MethodMove:
		return voidOrError(a.Move(args.WinID, args.X, args.Y))
	case MethodMaximize:
		return voidOrError(a.Maximize(args.WinID))
	case MethodUnmaximize:
		return voidOrError(a.Unmaximize(args.WinID))
	case MethodMinimize:
		return voidOrError(a.Minimize(args.WinID))
	case MethodUnminimize:
		return voidOrError(a.Unminimize(args.WinID))
	case MethodActivate:
		return voidOrError(a.Activate(args.WinID))
	case MethodClose:
		return voidOrError(a.Close(args.WinID))
	default:
		return NewErrorResponse(fmt.Sprintf("Unknown method: %s", req.Method))
	}
}

// decodeWindowArgs decodes raw and fails on the first required field
// that is absent or null.
func decodeWindowArgs(raw json.RawMessage, required []string) (WindowArgs, error) {
	var args WindowArgs
	present := map[string]json.RawMessage{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &present); err != nil {
			return args, fmt.Errorf("Invalid arguments: %v", err)
		}
	}
	for _, field := range required {
		if v, ok := present[field]; !ok || string(v) == "null" {
			return args, fmt.Errorf("Invalid arguments: %s is required", field)
		}
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return args, fmt.Errorf("Invalid arguments: %v", err)
	}
	return args, nil
}

func dataOrError(data any, err error) *Response {
	if err != nil {
		return errorResponse(err)
	}
	resp, err := NewOKResponse(data)
	if err != nil {
		return NewErrorResponse(err.Error())
	}
	return resp
}

func voidOrError(err error) *Response {
	return dataOrError(nil, err)
}

func errorResponse(err error) *Response {
	if errors.Is(err, control.ErrNotFound) {
		return NewNotFoundResponse(err.Error())
	}
	return NewErrorResponse(err.Error())
}

// sendError sends an error response
func (s *Server) sendError(conn net.Conn, errMsg string) {
	resp := NewErrorResponse(errMsg)
	data, _ := resp.Marshal()
	data = append(data, '\n')
	conn.Write(data)
}
