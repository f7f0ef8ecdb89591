package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is the single operation a key press maps to.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePlay
	ActionSeekBack
	ActionSeekForward
	ActionNext
	ActionPrevious
	ActionQuit
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionTogglePlay:
		return "toggle-play"
	case ActionSeekBack:
		return "seek-back"
	case ActionSeekForward:
		return "seek-forward"
	case ActionNext:
		return "next"
	case ActionPrevious:
		return "previous"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Router maps raw key events to actions, one per press, evaluated
// synchronously on receipt. Keys outside the table map to [ActionNone].
type Router struct {
	keys        keyMap
	passthrough bool
}

// NewRouter builds a Router. passthrough controls whether handled keys keep
// propagating to nested components (see [Router.Passthrough]).
func NewRouter(passthrough bool) *Router {
	return &Router{keys: newKeyMap(), passthrough: passthrough}
}

// Route resolves one key press to its action.
func (r *Router) Route(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, r.keys.playToggle):
		return ActionTogglePlay
	case key.Matches(msg, r.keys.seekBack):
		return ActionSeekBack
	case key.Matches(msg, r.keys.seekForward):
		return ActionSeekForward
	case key.Matches(msg, r.keys.next):
		return ActionNext
	case key.Matches(msg, r.keys.previous):
		return ActionPrevious
	case key.Matches(msg, r.keys.quit):
		return ActionQuit
	default:
		return ActionNone
	}
}

// Passthrough reports whether a handled key should continue to nested
// components instead of being consumed.
func (r *Router) Passthrough() bool {
	return r.passthrough
}
