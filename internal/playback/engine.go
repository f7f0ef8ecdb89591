// Package playback owns the single playback session against an external media
// engine. The engine renders video and audio in its own window; this package
// only issues commands (load, loop, pause, seek) and tracks the session state
// those commands imply.
package playback

import "context"

// Engine abstracts the external playback collaborator. Implementations own
// one long-lived engine handle that is reused for every load so the video
// surface never flickers between playlist entries.
type Engine interface {
	// Start launches the engine process and establishes the command channel.
	Start(ctx context.Context) error
	// LoadLooping replaces the active media item with path and arms an
	// indefinite single-item loop around it.
	LoadLooping(path string) error
	// SetLoop enables or disables the loop around the active item.
	SetLoop(enabled bool) error
	// SetPaused pauses or resumes playback.
	SetPaused(paused bool) error
	// Paused reports whether playback is currently paused.
	Paused() (bool, error)
	// Seek requests an absolute seek in seconds. Clamping at the media
	// boundaries is the engine's responsibility.
	Seek(seconds float64) error
	// Position returns the current playback position in seconds.
	Position() (float64, error)
	// Stop shuts the engine down and releases its resources.
	Stop() error
}

// Session is the shadow state of the engine as last commanded: which source
// is armed in the loop, whether the loop is active, and the playback rate
// (0 paused, 1 playing).
type Session struct {
	SourcePath string
	Looping    bool
	Rate       float64
}
