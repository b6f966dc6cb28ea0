package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/1broseidon/winctl/internal/control"
)

func TestParseWindowID(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"42", 42, false},
		{"0x2a", 42, false},
		{"0x04a00007", 0x04a00007, false},
		{"-1", 0, true},
		{"0x100000000", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := parseWindowID(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseWindowID(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("parseWindowID(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
	}
}

func TestParseSizeRejectsZero(t *testing.T) {
	if _, err := parseSize("0"); err == nil {
		t.Fatal("expected error for zero size")
	}
	if v, err := parseSize("640"); err != nil || v != 640 {
		t.Fatalf("parseSize(640) = %d, %v", v, err)
	}
}

func TestCommandArity(t *testing.T) {
	c := newCommand("move", "move <id> <x> <y>", 3)
	if _, code, ok := c.parse([]string{"1", "2"}); ok || code != 2 {
		t.Fatalf("short args: ok=%v code=%d, want usage error", ok, code)
	}

	c = newCommand("move", "move <id> <x> <y>", 3)
	pos, _, ok := c.parse([]string{"1", "2", "3"})
	if !ok || len(pos) != 3 {
		t.Fatalf("parse = %v, %v", pos, ok)
	}

	c = newCommand("list", "list", 0)
	if _, code, ok := c.parse([]string{"-h"}); ok || code != 0 {
		t.Fatalf("help: ok=%v code=%d, want 0", ok, code)
	}
}

func TestWritePlain(t *testing.T) {
	orig := processName
	processName = func(pid int) string {
		if pid == 100 {
			return "xterm"
		}
		return ""
	}
	defer func() { processName = orig }()

	windows := []control.Snapshot{
		{ID: 0x2a, Workspace: 1, Monitor: 0, Width: 800, Height: 600, X: 10, Y: 20, Class: "XTerm", PID: 100, Focus: true, Title: "shell"},
		{ID: 7, Workspace: -1, Monitor: 1, Width: 100, Height: 50, Class: "Conky", Title: "conky"},
	}

	var buf bytes.Buffer
	writePlain(&buf, windows)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	want0 := "0x0000002a\t1\t0\t800x600+10+20\tXTerm\txterm\t*\tshell"
	if lines[0] != want0 {
		t.Errorf("line 0 = %q, want %q", lines[0], want0)
	}
	want1 := "0x00000007\t*\t1\t100x50+0+0\tConky\t\t\tconky"
	if lines[1] != want1 {
		t.Errorf("line 1 = %q, want %q", lines[1], want1)
	}
}

func TestOnCurrentWorkspace(t *testing.T) {
	windows := []control.Snapshot{
		{ID: 1, InCurrentWorkspace: true},
		{ID: 2},
		{ID: 3, InCurrentWorkspace: true},
	}
	got := onCurrentWorkspace(windows)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Fatalf("onCurrentWorkspace = %+v", got)
	}
}
