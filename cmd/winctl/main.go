package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/1broseidon/winctl/internal/config"
	"github.com/1broseidon/winctl/internal/control"
	"github.com/1broseidon/winctl/internal/ipc"
	"github.com/1broseidon/winctl/internal/runtimepath"
	"github.com/1broseidon/winctl/internal/tui"
	"github.com/1broseidon/winctl/internal/x11"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		os.Exit(runDaemon(os.Args[2:]))
	case "list":
		os.Exit(runList(os.Args[2:]))
	case "details":
		os.Exit(runDetails(os.Args[2:]))
	case "title":
		os.Exit(runTitle(os.Args[2:]))
	case "workspace":
		os.Exit(runMoveToWorkspace(os.Args[2:]))
	case "move":
		os.Exit(runMove(os.Args[2:]))
	case "resize":
		os.Exit(runResize(os.Args[2:]))
	case "move-resize":
		os.Exit(runMoveResize(os.Args[2:]))
	case "maximize", "unmaximize", "minimize", "unminimize", "activate", "close":
		os.Exit(runWindowAction(os.Args[1], os.Args[2:]))
	case "mouse":
		os.Exit(runMouse(os.Args[2:]))
	case "screen":
		os.Exit(runScreen(os.Args[2:]))
	case "version":
		os.Exit(runVersion(os.Args[2:]))
	case "find":
		os.Exit(runFind(os.Args[2:]))
	case "wait":
		os.Exit(runWait(os.Args[2:]))
	case "center":
		os.Exit(runCenter(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "tui":
		os.Exit(runTUI(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: winctl <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon              Publish the window control interface (foreground)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  list                List windows")
	fmt.Fprintln(w, "  details <id>        Show the extended record for a window")
	fmt.Fprintln(w, "  title <id>          Print a window title")
	fmt.Fprintln(w, "  workspace <id> <n>  Move a window to workspace n")
	fmt.Fprintln(w, "  move <id> <x> <y>   Move a window")
	fmt.Fprintln(w, "  resize <id> <w> <h> Resize a window in place")
	fmt.Fprintln(w, "  move-resize <id> <x> <y> <w> <h>")
	fmt.Fprintln(w, "                      Set window position and size")
	fmt.Fprintln(w, "  maximize <id>       Maximize a window")
	fmt.Fprintln(w, "  unmaximize <id>     Restore a maximized window")
	fmt.Fprintln(w, "  minimize <id>       Minimize a window")
	fmt.Fprintln(w, "  unminimize <id>     Restore a minimized window")
	fmt.Fprintln(w, "  activate <id>       Focus and raise a window")
	fmt.Fprintln(w, "  close <id>          Forcibly close a window")
	fmt.Fprintln(w, "  mouse               Print the pointer position")
	fmt.Fprintln(w, "  screen              Print the screen size")
	fmt.Fprintln(w, "  version             Print the interface version")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  find <title>        Find a window by title (:ACTIVE: for the focused one)")
	fmt.Fprintln(w, "  wait <title>        Wait for a window to exist or gain focus")
	fmt.Fprintln(w, "  center <id> <w> <h> Resize a window and centre it on screen")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print configuration")
	fmt.Fprintln(w, "  tui                 Open interactive window picker")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Window ids accept decimal or 0x-prefixed hex.")
	fmt.Fprintln(w, "Run 'winctl <command> --help' for command-specific options.")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	res, err := config.LoadFromPath(path)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// newClient builds a daemon client from the user configuration.
func newClient() (*ipc.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	socketPath, err := runtimepath.SocketPath(cfg.SocketPath)
	if err != nil {
		return nil, err
	}
	return ipc.NewClient(socketPath, cfg.ClientTimeout()), nil
}

func parseWindowID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q", s)
	}
	return uint32(id), nil
}

func runDaemon(args []string) int {
	fs := flag.NewFlagSet("daemon", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("path", "", "Config file path (default: ~/.config/winctl/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winctl daemon [--path PATH]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Publish the window control interface until interrupted.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "daemon takes no arguments")
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(*path)
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}
	if err := cfg.ApplyDisplayEnv(); err != nil {
		log.Printf("Failed to apply display environment: %v", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	x, err := x11.NewHostFromDisplay()
	if err != nil {
		log.Printf("Failed to connect to display: %v", err)
		return 1
	}
	defer x.Disconnect()

	socketPath, err := runtimepath.SocketPath(cfg.SocketPath)
	if err != nil {
		log.Printf("Failed to resolve socket path: %v", err)
		return 1
	}

	server, err := ipc.NewServer(socketPath, control.New(x), logger)
	if err != nil {
		log.Printf("Failed to create IPC server: %v", err)
		return 1
	}
	if err := server.Start(); err != nil {
		log.Printf("Failed to start IPC server: %v", err)
		return 1
	}
	log.Printf("winctl daemon started (interface %s, version %s)", ipc.InterfaceName, control.Version)

	go x.EventLoop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down winctl daemon...")
	server.Stop()
	return 0
}

func runTUI(args []string) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winctl tui")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Interactive window picker. Requires a running daemon.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Keybindings:")
		fmt.Fprintln(os.Stderr, "  j/k, ↑/↓  Navigate windows")
		fmt.Fprintln(os.Stderr, "  Enter     Activate selected window")
		fmt.Fprintln(os.Stderr, "  m / u     Minimize / unminimize")
		fmt.Fprintln(os.Stderr, "  x         Toggle maximize")
		fmt.Fprintln(os.Stderr, "  c         Close")
		fmt.Fprintln(os.Stderr, "  r         Refresh")
		fmt.Fprintln(os.Stderr, "  q, Esc    Quit")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	client, err := newClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := client.Ping(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := tui.Run(client); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
