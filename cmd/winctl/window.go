package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/1broseidon/winctl/internal/control"
	"github.com/1broseidon/winctl/internal/ipc"
)

// command wraps a FlagSet with a usage line and positional arity.
type command struct {
	fs    *flag.FlagSet
	usage string
	nargs int
}

func newCommand(name, usage string, nargs int) *command {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	c := &command{fs: fs, usage: usage, nargs: nargs}
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: winctl "+c.usage)
		fs.PrintDefaults()
	}
	return c
}

// parse returns the positional arguments, or an exit code when the
// command should stop here.
func (c *command) parse(args []string) ([]string, int, bool) {
	if err := c.fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, 0, false
		}
		return nil, 2, false
	}
	if c.nargs >= 0 && c.fs.NArg() != c.nargs {
		fmt.Fprintf(os.Stderr, "%s expects %d argument(s), got %d\n", c.fs.Name(), c.nargs, c.fs.NArg())
		c.fs.Usage()
		return nil, 2, false
	}
	return c.fs.Args(), 0, true
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q", s)
	}
	return int32(v), nil
}

func parseSize(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	return uint32(v), nil
}

// fail prints err and returns the exit code. A missing window exits 3
// so scripts can tell it apart from a daemon failure.
func fail(err error) int {
	fmt.Fprintln(os.Stderr, err)
	if errors.Is(err, control.ErrNotFound) {
		return 3
	}
	return 1
}

// withWindow parses a window id plus extra positionals and runs fn.
func withWindow(c *command, args []string, fn func(client *ipc.Client, id uint32, rest []string) error) int {
	pos, code, ok := c.parse(args)
	if !ok {
		return code
	}
	id, err := parseWindowID(pos[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	client, err := newClient()
	if err != nil {
		return fail(err)
	}
	if err := fn(client, id, pos[1:]); err != nil {
		return fail(err)
	}
	return 0
}

func runDetails(args []string) int {
	c := newCommand("details", "details <id>", 1)
	return withWindow(c, args, func(client *ipc.Client, id uint32, _ []string) error {
		payload, err := client.DetailsRaw(id)
		if err != nil {
			return err
		}
		return printIndentedJSON(payload)
	})
}

func printIndentedJSON(payload string) error {
	var v any
	if err := json.Unmarshal([]byte(payload), &v); err != nil {
		return fmt.Errorf("failed to parse payload: %w", err)
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runTitle(args []string) int {
	c := newCommand("title", "title <id>", 1)
	return withWindow(c, args, func(client *ipc.Client, id uint32, _ []string) error {
		title, err := client.GetTitle(id)
		if err != nil {
			return err
		}
		fmt.Println(title)
		return nil
	})
}

func runMoveToWorkspace(args []string) int {
	c := newCommand("workspace", "workspace <id> <workspace>", 2)
	return withWindow(c, args, func(client *ipc.Client, id uint32, rest []string) error {
		ws, err := strconv.ParseUint(rest[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid workspace %q", rest[0])
		}
		return client.MoveToWorkspace(id, uint32(ws))
	})
}

func runMove(args []string) int {
	c := newCommand("move", "move <id> <x> <y>", 3)
	return withWindow(c, args, func(client *ipc.Client, id uint32, rest []string) error {
		x, err := parseInt32(rest[0])
		if err != nil {
			return err
		}
		y, err := parseInt32(rest[1])
		if err != nil {
			return err
		}
		return client.Move(id, x, y)
	})
}

func runResize(args []string) int {
	c := newCommand("resize", "resize <id> <width> <height>", 3)
	return withWindow(c, args, func(client *ipc.Client, id uint32, rest []string) error {
		w, err := parseSize(rest[0])
		if err != nil {
			return err
		}
		h, err := parseSize(rest[1])
		if err != nil {
			return err
		}
		return client.Resize(id, w, h)
	})
}

func runMoveResize(args []string) int {
	c := newCommand("move-resize", "move-resize <id> <x> <y> <width> <height>", 5)
	return withWindow(c, args, func(client *ipc.Client, id uint32, rest []string) error {
		x, err := parseInt32(rest[0])
		if err != nil {
			return err
		}
		y, err := parseInt32(rest[1])
		if err != nil {
			return err
		}
		w, err := parseSize(rest[2])
		if err != nil {
			return err
		}
		h, err := parseSize(rest[3])
		if err != nil {
			return err
		}
		return client.MoveResize(id, x, y, w, h)
	})
}

func windowAction(client *ipc.Client, name string) func(uint32) error {
	switch name {
	case "maximize":
		return client.Maximize
	case "unmaximize":
		return client.Unmaximize
	case "minimize":
		return client.Minimize
	case "unminimize":
		return client.Unminimize
	case "activate":
		return client.Activate
	case "close":
		return client.Close
	}
	return nil
}

func runWindowAction(name string, args []string) int {
	c := newCommand(name, name+" <id>", 1)
	return withWindow(c, args, func(client *ipc.Client, id uint32, _ []string) error {
		return windowAction(client, name)(id)
	})
}

func runScalar(name string, args []string, fn func(client *ipc.Client) (string, error)) int {
	c := newCommand(name, name, 0)
	if _, code, ok := c.parse(args); !ok {
		return code
	}
	client, err := newClient()
	if err != nil {
		return fail(err)
	}
	out, err := fn(client)
	if err != nil {
		return fail(err)
	}
	fmt.Println(out)
	return 0
}

func runMouse(args []string) int {
	return runScalar("mouse", args, func(client *ipc.Client) (string, error) {
		x, y, err := client.GetMouseLocation()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d %d", x, y), nil
	})
}

func runScreen(args []string) int {
	return runScalar("screen", args, func(client *ipc.Client) (string, error) {
		w, h, err := client.ScreenSize()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%dx%d", w, h), nil
	})
}

func runVersion(args []string) int {
	return runScalar("version", args, func(client *ipc.Client) (string, error) {
		return client.CheckVersion()
	})
}
