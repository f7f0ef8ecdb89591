// Package nav implements the playlist navigation state machine: which entry
// is current, how previous/next/select move it, and the derived UI snapshot
// the shell renders after every transition.
package nav

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vloop/internal/playback"
	"github.com/desertthunder/vloop/internal/playlist"
	"github.com/desertthunder/vloop/internal/shared"
)

// UIState is the read-only rendering snapshot derived from the playlist
// cursor. It is recomputed strictly after a successful reload, so the shell
// never shows an identity that does not match what the engine has loaded.
type UIState struct {
	Title           string
	Label           string
	PreviousEnabled bool
	NextEnabled     bool
}

// Machine combines the playlist with the playback controller. Transitions
// that would leave the playlist bounds are silent no-ops; the enablement
// flags in [UIState] are how the shell learns a transition is unavailable.
type Machine struct {
	list   *playlist.Playlist
	ctrl   *playback.Controller
	logger *log.Logger
	ui     UIState
}

// NewMachine wires a playlist and controller into a Machine. The machine owns
// the playlist cursor from here on.
func NewMachine(list *playlist.Playlist, ctrl *playback.Controller, logger *log.Logger) *Machine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Machine{list: list, ctrl: ctrl, logger: logger}
}

// UI returns the current snapshot.
func (m *Machine) UI() UIState {
	return m.ui
}

// Playlist exposes the playlist for read-only shell queries.
func (m *Machine) Playlist() *playlist.Playlist {
	return m.list
}

// SelectInitial enters the initial state: arm the loop on the first entry and
// compute the first snapshot. Called exactly once at startup.
func (m *Machine) SelectInitial() error {
	if err := m.ctrl.LoadAndLoop(m.list.Current().Path); err != nil {
		return err
	}
	m.recompute()
	return nil
}

// Next moves to the following entry. A press at the last entry has no
// observable effect.
func (m *Machine) Next() error {
	return m.step(1)
}

// Previous moves to the prior entry. A press at the first entry has no
// observable effect.
func (m *Machine) Previous() error {
	return m.step(-1)
}

func (m *Machine) step(delta int) error {
	if delta > 0 && !m.list.HasNext() {
		return nil
	}
	if delta < 0 && !m.list.HasPrevious() {
		return nil
	}
	m.list.Advance(delta)
	return m.reload(-delta)
}

// Select jumps to the entry at index. Out-of-range indices are absorbed like
// boundary presses; selecting the current index re-arms the loop, matching
// the reload-per-transition behavior of Next and Previous.
func (m *Machine) Select(index int) error {
	if index < 0 || index >= m.list.Len() {
		return nil
	}
	delta := index - m.list.Index()
	if delta != 0 && !m.list.Advance(delta) {
		return nil
	}
	return m.reload(-delta)
}

// reload re-arms the loop on the current entry. On failure the cursor move is
// rolled back by revert so the machine stays on the last-good entry, the
// previous snapshot is kept, and the error surfaces to the shell.
func (m *Machine) reload(revert int) error {
	cur := m.list.Current()
	if err := m.ctrl.LoadAndLoop(cur.Path); err != nil {
		if revert != 0 {
			m.list.Advance(revert)
		}
		m.logger.Error("failed to load entry", "name", cur.Name, "path", cur.Path, "err", err)
		return err
	}
	m.logger.Debug("entered entry", "index", m.list.Index(), "name", cur.Name)
	m.recompute()
	return nil
}

func (m *Machine) recompute() {
	cur := m.list.Current()
	m.ui = UIState{
		Title:           fmt.Sprintf("%s (%d/%d)", filepath.Base(cur.Path), m.list.Index()+1, m.list.Len()),
		Label:           cur.Name,
		PreviousEnabled: m.list.HasPrevious(),
		NextEnabled:     m.list.HasNext(),
	}
}
