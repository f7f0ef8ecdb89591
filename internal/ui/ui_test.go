package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vloop/internal/nav"
	"github.com/desertthunder/vloop/internal/playback"
	"github.com/desertthunder/vloop/internal/playlist"
	tu "github.com/desertthunder/vloop/internal/testing"
)

func newShell(t *testing.T) (*Model, *tu.MockEngine) {
	t.Helper()
	list, err := playlist.New([]playlist.Entry{
		{Name: "Intro", Path: "a.mp4"},
		{Name: "Main", Path: "b.mp4"},
	})
	if err != nil {
		t.Fatalf("failed to build playlist: %v", err)
	}
	engine := &tu.MockEngine{}
	ctrl := playback.NewController(engine, nil)
	machine := nav.NewMachine(list, ctrl, nil)
	if err := machine.SelectInitial(); err != nil {
		t.Fatalf("failed to enter initial state: %v", err)
	}
	return NewModel(machine, ctrl, Options{SeekStep: 10}), engine
}

func TestView(t *testing.T) {
	m, _ := newShell(t)
	view := m.View()

	for _, want := range []string{"a.mp4 (1/2)", "Intro", "prev", "next"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q:\n%s", want, view)
		}
	}
}

func TestUpdate(t *testing.T) {
	t.Run("quit key stops the program regardless of state", func(t *testing.T) {
		m, _ := newShell(t)

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		if cmd == nil {
			t.Fatal("expected a command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("expected tea.QuitMsg, got %T", cmd())
		}
	})

	t.Run("navigation keys drive the machine", func(t *testing.T) {
		m, engine := newShell(t)

		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
		if got := m.machine.UI().Label; got != "Main" {
			t.Errorf("expected label Main after n, got %q", got)
		}
		if engine.LoadCount() != 2 {
			t.Errorf("expected two loads, got %d", engine.LoadCount())
		}

		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'P'}})
		if got := m.machine.UI().Label; got != "Intro" {
			t.Errorf("expected label Intro after P, got %q", got)
		}
	})

	t.Run("arrow keys seek by the configured step", func(t *testing.T) {
		m, engine := newShell(t)
		engine.PositionValue = 30

		m.Update(tea.KeyMsg{Type: tea.KeyRight})
		if engine.LastCall() != "seek 40.0" {
			t.Errorf("expected seek 40.0, got %q", engine.LastCall())
		}

		m.Update(tea.KeyMsg{Type: tea.KeyLeft})
		if engine.LastCall() != "seek 20.0" {
			t.Errorf("expected seek 20.0, got %q", engine.LastCall())
		}
	})

	t.Run("space toggles playback", func(t *testing.T) {
		m, _ := newShell(t)

		m.Update(tea.KeyMsg{Type: tea.KeySpace})
		if m.ctrl.Rate() != 0 {
			t.Errorf("expected rate 0 after pause, got %v", m.ctrl.Rate())
		}
		m.Update(tea.KeyMsg{Type: tea.KeySpace})
		if m.ctrl.Rate() != 1 {
			t.Errorf("expected rate 1 after resume, got %v", m.ctrl.Rate())
		}
	})

	t.Run("unmapped keys change nothing", func(t *testing.T) {
		m, engine := newShell(t)
		calls := len(engine.Calls)

		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
		if len(engine.Calls) != calls {
			t.Errorf("expected no engine calls, got %v", engine.Calls[calls:])
		}
	})

	t.Run("navigation failure lands in the status line", func(t *testing.T) {
		m, engine := newShell(t)
		engine.LoadErr = tu.ErrMock

		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
		if m.status == "" {
			t.Error("expected a status message after a failed load")
		}
		if got := m.machine.UI().Label; got != "Intro" {
			t.Errorf("expected last-good label Intro, got %q", got)
		}
		if !strings.Contains(m.View(), m.status) {
			t.Error("expected the status message rendered in the view")
		}
	})
}

func TestFormatPosition(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{9, "0:09"},
		{42.7, "0:42"},
		{61, "1:01"},
		{600, "10:00"},
		{-3, "0:00"},
	}
	for _, tc := range cases {
		if got := formatPosition(tc.seconds); got != tc.want {
			t.Errorf("formatPosition(%v) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
