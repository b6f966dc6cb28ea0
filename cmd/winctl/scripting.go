package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/1broseidon/winctl/internal/config"
	"github.com/1broseidon/winctl/internal/ipc"
	"github.com/1broseidon/winctl/internal/scripting"
)

func newHelpers(client *ipc.Client) *scripting.Helpers {
	interval := scripting.DefaultPollInterval
	if cfg, err := config.Load(); err == nil {
		interval = cfg.PollInterval()
	}
	return scripting.New(client, interval)
}

func runFind(args []string) int {
	c := newCommand("find", "find [--class] <title>", 1)
	matchClass := c.fs.Bool("class", false, "Match against WM_CLASS instead of the title")
	pos, code, ok := c.parse(args)
	if !ok {
		return code
	}

	client, err := newClient()
	if err != nil {
		return fail(err)
	}
	w, err := newHelpers(client).FindByTitle(pos[0], *matchClass)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("0x%08x\t%s\n", w.ID, w.Title)
	return 0
}

func runWait(args []string) int {
	c := newCommand("wait", "wait [--focus] [--timeout SECONDS] <title>", 1)
	focus := c.fs.Bool("focus", false, "Wait until the focused window title matches the regular expression")
	timeout := c.fs.Int("timeout", 5, "Seconds to wait (0 waits until interrupted)")
	pos, code, ok := c.parse(args)
	if !ok {
		return code
	}

	client, err := newClient()
	if err != nil {
		return fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	helpers := newHelpers(client)
	limit := time.Duration(*timeout) * time.Second
	wait := helpers.WaitForExist
	if *focus {
		wait = helpers.WaitForFocus
	}
	w, err := wait(ctx, pos[0], limit)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("0x%08x\t%s\n", w.ID, w.Title)
	return 0
}

func runCenter(args []string) int {
	c := newCommand("center", "center <id> <width> <height>", 3)
	return withWindow(c, args, func(client *ipc.Client, id uint32, rest []string) error {
		w, err := parseSize(rest[0])
		if err != nil {
			return err
		}
		h, err := parseSize(rest[1])
		if err != nil {
			return err
		}
		return newHelpers(client).Center(id, w, h)
	})
}
