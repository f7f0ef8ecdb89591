package main

import (
	"context"
	"fmt"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vloop/internal/nav"
	"github.com/desertthunder/vloop/internal/playback"
	"github.com/desertthunder/vloop/internal/playlist"
	"github.com/desertthunder/vloop/internal/shared"
	"github.com/desertthunder/vloop/internal/ui"
	"github.com/urfave/cli/v3"
)

// Play is the root action: build the playlist from the raw argument pairs,
// start the engine, enter the initial state, and run the shell. Argument
// validation happens before any engine or window exists.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	list, err := playlist.FromArgs(cmd.Args().Slice())
	if err != nil {
		return err
	}

	cfg, err := r.playConfig(cmd)
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	logger := r.logger
	if cfg.Log.Path != "" {
		fileLogger, err := shared.NewFileLogger(cfg.Log.Path)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		logger = fileLogger
	}

	engine := r.newEngine(cfg.Engine, logger)
	if err := engine.Start(ctx); err != nil {
		return err
	}

	ctrl := playback.NewController(engine, logger)
	defer func() {
		ctrl.TeardownLoop()
		if err := engine.Stop(); err != nil {
			logger.Warn("engine shutdown", "err", err)
		}
	}()

	machine := nav.NewMachine(list, ctrl, logger)
	if err := machine.SelectInitial(); err != nil {
		return err
	}

	model := ui.NewModel(machine, ctrl, ui.Options{
		SeekStep:    cfg.Playback.SeekStep,
		Passthrough: cfg.Input.Passthrough,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running player: %w", err)
	}

	return nil
}

// playConfig resolves the effective configuration from the runner's config
// plus command-line overrides.
func (r *Runner) playConfig(cmd *cli.Command) (*shared.Config, error) {
	cfg := *r.config

	if path := cmd.String("config"); path != "" {
		loaded, err := shared.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}
	if step := cmd.Float("seek-step"); step > 0 {
		cfg.Playback.SeekStep = step
	}
	if binary := cmd.String("engine"); binary != "" {
		cfg.Engine.Binary = binary
	}

	return &cfg, nil
}

// Doctor verifies the configured engine binary is reachable in PATH.
func (r *Runner) Doctor(ctx context.Context, cmd *cli.Command) error {
	binary := r.config.Engine.Binary
	if flagged := cmd.String("engine"); flagged != "" {
		binary = flagged
	}
	if binary == "" {
		binary = "mpv"
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("%w: %s not found in PATH", shared.ErrEngineUnavailable, binary)
	}
	return r.writePlainln("engine ok: %s", path)
}

// ConfigInit writes the embedded default configuration to disk.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	return r.writePlainln("wrote %s", path)
}
