package playback

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vloop/internal/shared"
	"golang.org/x/time/rate"
)

// socketWait bounds how long Start waits for the engine to create its IPC
// socket after the process launches.
const socketWait = 10 * time.Second

// MPV drives an mpv process over its JSON IPC socket. The process and its
// video window are created once in [MPV.Start] and reused for every load;
// only the looped item changes per playlist entry.
type MPV struct {
	binary    string
	extraArgs []string
	socket    string
	logger    *log.Logger
	cmd       *exec.Cmd
	conn      *ipcConn
}

var _ Engine = (*MPV)(nil)

// NewMPV builds an engine from config. The IPC socket path is uniqued per
// session so concurrent players never collide.
func NewMPV(cfg shared.EngineConfig, logger *log.Logger) *MPV {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	dir := cfg.SocketDir
	if dir == "" {
		dir = os.TempDir()
	}
	binary := cfg.Binary
	if binary == "" {
		binary = "mpv"
	}
	return &MPV{
		binary:    binary,
		extraArgs: cfg.Args,
		socket:    filepath.Join(dir, "vloop-"+shared.GenerateID()+".sock"),
		logger:    logger,
	}
}

// launchArgs returns the full engine command line. The window is forced open
// even while idle so navigation never destroys the video surface.
func (m *MPV) launchArgs() []string {
	args := []string{
		"--input-ipc-server=" + m.socket,
		"--idle=yes",
		"--force-window=yes",
		"--keep-open=yes",
		"--no-terminal",
	}
	return append(args, m.extraArgs...)
}

// Start launches the engine process and connects to its IPC socket.
func (m *MPV) Start(ctx context.Context) error {
	if _, err := exec.LookPath(m.binary); err != nil {
		return fmt.Errorf("%w: %s not found in PATH", shared.ErrEngineUnavailable, m.binary)
	}

	m.cmd = exec.CommandContext(ctx, m.binary, m.launchArgs()...)
	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrEngineUnavailable, err)
	}
	m.logger.Info("engine started", "binary", m.binary, "pid", m.cmd.Process.Pid)

	conn, err := m.dialSocket(ctx)
	if err != nil {
		_ = m.cmd.Process.Kill()
		return err
	}
	m.conn = conn
	return nil
}

// dialSocket retries the IPC connection while the engine creates its socket.
// Attempts are paced with a [rate.Limiter] so a slow engine start does not
// spin the CPU.
func (m *MPV) dialSocket(ctx context.Context) (*ipcConn, error) {
	limiter := rate.NewLimiter(rate.Every(100*time.Millisecond), 1)
	deadline := time.Now().Add(socketWait)

	for time.Now().Before(deadline) {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrEngineUnavailable, err)
		}
		if conn, err := dialIPC(m.socket); err == nil {
			return conn, nil
		}
	}
	return nil, fmt.Errorf("%w: socket never appeared at %s", shared.ErrEngineUnavailable, m.socket)
}

// LoadLooping replaces the active item and arms an indefinite loop on it.
func (m *MPV) LoadLooping(path string) error {
	if m.conn == nil {
		return shared.ErrEngineClosed
	}
	if _, err := m.conn.roundTrip("loadfile", path, "replace"); err != nil {
		return err
	}
	return m.SetLoop(true)
}

// SetLoop arms or disarms the single-item loop.
func (m *MPV) SetLoop(enabled bool) error {
	if m.conn == nil {
		return shared.ErrEngineClosed
	}
	value := "no"
	if enabled {
		value = "inf"
	}
	_, err := m.conn.roundTrip("set_property", "loop-file", value)
	return err
}

// SetPaused pauses or resumes playback.
func (m *MPV) SetPaused(paused bool) error {
	if m.conn == nil {
		return shared.ErrEngineClosed
	}
	_, err := m.conn.roundTrip("set_property", "pause", paused)
	return err
}

// Paused reports the engine's pause property.
func (m *MPV) Paused() (bool, error) {
	if m.conn == nil {
		return false, shared.ErrEngineClosed
	}
	data, err := m.conn.roundTrip("get_property", "pause")
	if err != nil {
		return false, err
	}
	var paused bool
	if err := json.Unmarshal(data, &paused); err != nil {
		return false, fmt.Errorf("unexpected pause payload: %w", err)
	}
	return paused, nil
}

// Seek requests an absolute seek in seconds. The engine clamps at the media
// boundaries.
func (m *MPV) Seek(seconds float64) error {
	if m.conn == nil {
		return shared.ErrEngineClosed
	}
	_, err := m.conn.roundTrip("seek", seconds, "absolute")
	return err
}

// Position returns the playback position in seconds.
func (m *MPV) Position() (float64, error) {
	if m.conn == nil {
		return 0, shared.ErrEngineClosed
	}
	data, err := m.conn.roundTrip("get_property", "time-pos")
	if err != nil {
		return 0, err
	}
	var pos float64
	if err := json.Unmarshal(data, &pos); err != nil {
		return 0, fmt.Errorf("unexpected time-pos payload: %w", err)
	}
	return pos, nil
}

// Stop asks the engine to quit, closes the command channel, and reaps the
// process. Safe to call more than once.
func (m *MPV) Stop() error {
	if m.conn != nil {
		m.conn.send("quit")
		m.conn.close()
		m.conn = nil
	}
	if m.cmd != nil && m.cmd.Process != nil {
		if err := m.cmd.Wait(); err != nil {
			m.logger.Debug("engine exited", "err", err)
		}
		m.cmd = nil
	}
	_ = os.Remove(m.socket)
	return nil
}
