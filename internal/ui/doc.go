// Package ui implements the terminal shell using bubbletea's Elm architecture.
//
// The shell renders one screen: the title line (current file and position in
// the playlist), the entry's display label, transport buttons styled by their
// enablement flags, a playback line fed by a periodic position poll, and
// contextual help via charmbracelet/bubbles/help.
//
// Key presses are resolved by [Router] into exactly one [Action] each and
// applied synchronously in Update: space toggles play/pause, the arrow keys
// seek by the configured step, n/N and p/P drive the playlist, and q/Q quits.
// Whether a handled key keeps propagating is a [Router] policy, not a
// hardcoded choice.
package ui
