package playback

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vloop/internal/shared"
)

// Controller owns the looping playback session. It is the only writer to the
// engine handle; all calls happen on the UI event loop, so no locking is
// needed.
type Controller struct {
	engine  Engine
	logger  *log.Logger
	session Session
}

// NewController wraps an engine in a Controller with an empty session.
func NewController(engine Engine, logger *log.Logger) *Controller {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Controller{engine: engine, logger: logger}
}

// Session returns the shadow session state.
func (c *Controller) Session() Session {
	return c.session
}

// Rate returns the commanded playback rate: 0 paused, 1 playing.
func (c *Controller) Rate() float64 {
	return c.session.Rate
}

// Position reads the engine's current playback position in seconds.
func (c *Controller) Position() (float64, error) {
	return c.engine.Position()
}

// LoadAndLoop tears down any existing loop, arms a new single-item loop bound
// to path, and starts playback. After a successful call exactly one loop is
// active. Engine rejections surface as [shared.ErrMediaLoad]; the caller
// decides how to recover.
func (c *Controller) LoadAndLoop(path string) error {
	c.TeardownLoop()

	if err := c.engine.LoadLooping(path); err != nil {
		return fmt.Errorf("%w: %s: %v", shared.ErrMediaLoad, path, err)
	}
	if err := c.engine.SetPaused(false); err != nil {
		return fmt.Errorf("%w: %s: %v", shared.ErrMediaLoad, path, err)
	}

	c.session = Session{SourcePath: path, Looping: true, Rate: 1}
	c.logger.Debug("armed loop", "path", path)
	return nil
}

// TogglePlayPause flips the playback rate between 0 and 1.
func (c *Controller) TogglePlayPause() error {
	paused := c.session.Rate != 0
	if err := c.engine.SetPaused(paused); err != nil {
		return fmt.Errorf("failed to toggle playback: %w", err)
	}
	if paused {
		c.session.Rate = 0
	} else {
		c.session.Rate = 1
	}
	return nil
}

// SeekRelative reads the current position and requests an absolute seek
// offset by delta seconds. No clamping happens here; the engine bounds the
// result at the media edges.
func (c *Controller) SeekRelative(delta float64) error {
	pos, err := c.engine.Position()
	if err != nil {
		return fmt.Errorf("failed to read position: %w", err)
	}
	if err := c.engine.Seek(pos + delta); err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}
	return nil
}

// TeardownLoop disables the active loop and clears the session. Called at the
// start of every [Controller.LoadAndLoop] and at process termination; calling
// it with no active loop is a no-op.
func (c *Controller) TeardownLoop() {
	if !c.session.Looping {
		return
	}
	if err := c.engine.SetLoop(false); err != nil {
		c.logger.Warn("failed to disable loop", "err", err)
	}
	c.session = Session{}
}
