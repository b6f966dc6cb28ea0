package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1broseidon/winctl/internal/control"
)

type fakeClient struct {
	windows   []control.Snapshot
	maximized bool
	calls     []string
	fail      error
}

func (f *fakeClient) List() ([]control.Snapshot, error) { return f.windows, nil }

func (f *fakeClient) Details(id uint32) (*control.Details, error) {
	d := &control.Details{ID: id}
	if f.maximized {
		d.Maximized = 3
	}
	return d, nil
}

func (f *fakeClient) do(name string) error {
	f.calls = append(f.calls, name)
	return f.fail
}

func (f *fakeClient) Maximize(uint32) error   { return f.do("maximize") }
func (f *fakeClient) Unmaximize(uint32) error { return f.do("unmaximize") }
func (f *fakeClient) Minimize(uint32) error   { return f.do("minimize") }
func (f *fakeClient) Unminimize(uint32) error { return f.do("unminimize") }
func (f *fakeClient) Activate(uint32) error   { return f.do("activate") }
func (f *fakeClient) Close(uint32) error      { return f.do("close") }

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T, client *fakeClient) model {
	t.Helper()
	m := newModel(client)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	next, _ = next.Update(m.refresh()())
	return next.(model)
}

func TestKeysDispatchOperations(t *testing.T) {
	tests := []struct {
		key       string
		maximized bool
		want      string
	}{
		{"enter", false, "activate"},
		{"m", false, "minimize"},
		{"u", false, "unminimize"},
		{"c", false, "close"},
		{"x", false, "maximize"},
		{"x", true, "unmaximize"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.want, func(t *testing.T) {
			client := &fakeClient{
				windows:   []control.Snapshot{{ID: 7, Title: "editor"}},
				maximized: tt.maximized,
			}
			m := loaded(t, client)

			_, cmd := m.Update(key(tt.key))
			if cmd == nil {
				t.Fatal("expected a command")
			}
			msg, ok := cmd().(actionMsg)
			if !ok {
				t.Fatalf("command produced %T, want actionMsg", msg)
			}
			if msg.id != 7 || msg.op != tt.want {
				t.Errorf("action = %+v, want %s on 7", msg, tt.want)
			}
			if len(client.calls) != 1 || client.calls[0] != tt.want {
				t.Errorf("calls = %v, want [%s]", client.calls, tt.want)
			}
		})
	}
}

func TestKeysWithoutSelectionDoNothing(t *testing.T) {
	client := &fakeClient{}
	m := loaded(t, client)
	m.Update(key("c"))
	if len(client.calls) != 0 {
		t.Fatalf("calls = %v, want none", client.calls)
	}
}

func TestActionErrorShown(t *testing.T) {
	m := loaded(t, &fakeClient{windows: []control.Snapshot{{ID: 1}}})
	next, cmd := m.Update(actionMsg{op: "close", id: 1, err: errors.New("boom")})
	if cmd == nil {
		t.Fatal("expected refresh after action")
	}
	if got := next.(model).errText; got == "" {
		t.Fatal("expected error text")
	}
}

func TestQuit(t *testing.T) {
	m := loaded(t, &fakeClient{})
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}
