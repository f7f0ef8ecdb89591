package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vloop/internal/nav"
	"github.com/desertthunder/vloop/internal/playback"
)

// positionInterval is how often the shell polls the engine position for the
// status line.
const positionInterval = 500 * time.Millisecond

// tickMsg drives the position poll.
type tickMsg time.Time

// Options configures the shell.
type Options struct {
	SeekStep    float64
	Passthrough bool
}

// Model is the application shell: it renders the navigation snapshot and
// routes key presses to the state machine and controller. All transitions run
// on bubbletea's single event loop, so no locking is needed anywhere below.
type Model struct {
	machine  *nav.Machine
	ctrl     *playback.Controller
	router   *Router
	keys     keyMap
	help     help.Model
	seekStep float64
	width    int
	height   int
	position float64
	status   string
}

// NewModel creates the shell around an already-initialized state machine.
func NewModel(machine *nav.Machine, ctrl *playback.Controller, opts Options) *Model {
	step := opts.SeekStep
	if step == 0 {
		step = 10
	}
	return &Model{
		machine:  machine,
		ctrl:     ctrl,
		router:   NewRouter(opts.Passthrough),
		keys:     newKeyMap(),
		help:     help.New(),
		seekStep: step,
	}
}

// Init schedules the first position poll.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(positionInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		action := m.router.Route(msg)
		if action == ActionNone {
			return m, nil
		}
		// the pass-through policy matters once components nest below the
		// shell; today a routed action is the whole pipeline
		return m.apply(action)

	case tickMsg:
		// poll failures are expected mid-load and do not disturb the UI
		if pos, err := m.ctrl.Position(); err == nil {
			m.position = pos
		}
		return m, tick()
	}

	return m, nil
}

// apply executes one routed action. Navigation and playback failures land in
// the status line; the last-good snapshot stays on screen.
func (m *Model) apply(action Action) (tea.Model, tea.Cmd) {
	switch action {
	case ActionQuit:
		return m, tea.Quit
	case ActionTogglePlay:
		m.report(m.ctrl.TogglePlayPause())
	case ActionSeekBack:
		m.report(m.ctrl.SeekRelative(-m.seekStep))
	case ActionSeekForward:
		m.report(m.ctrl.SeekRelative(m.seekStep))
	case ActionNext:
		m.report(m.machine.Next())
	case ActionPrevious:
		m.report(m.machine.Previous())
	}
	return m, nil
}

func (m *Model) report(err error) {
	if err != nil {
		m.status = err.Error()
	} else {
		m.status = ""
	}
}

// View renders the snapshot: title, label, transport buttons with enablement
// styling, the playback line, and help.
func (m *Model) View() string {
	ui := m.machine.UI()

	title := styles.title.Render(ui.Title)
	label := styles.label.Render(ui.Label)

	prev := styles.buttonOff.Render("◀ prev")
	if ui.PreviousEnabled {
		prev = styles.buttonOn.Render("◀ prev")
	}
	next := styles.buttonOff.Render("next ▶")
	if ui.NextEnabled {
		next = styles.buttonOn.Render("next ▶")
	}

	state := "⏸"
	if m.ctrl.Rate() != 0 {
		state = "▶"
	}
	playLine := fmt.Sprintf("%s %s", state, formatPosition(m.position))

	var status string
	if m.status != "" {
		status = "\n" + styles.err.Render(m.status)
	}

	helpView := styles.help.Render(m.help.ShortHelpView(m.keys.ShortHelp()))

	return fmt.Sprintf("%s\n%s\n\n%s  %s\n%s%s\n\n%s", title, label, prev, next, playLine, status, helpView)
}

func formatPosition(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	d := time.Duration(seconds) * time.Second
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
