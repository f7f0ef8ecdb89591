package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/vloop/internal/playback"
	"github.com/desertthunder/vloop/internal/shared"
	tu "github.com/desertthunder/vloop/internal/testing"
)

// stubFactory counts engine constructions and hands out a single mock.
type stubFactory struct {
	engine *tu.MockEngine
	calls  int
}

func (f *stubFactory) build(cfg shared.EngineConfig, logger *log.Logger) playback.Engine {
	f.calls++
	return f.engine
}

func newTestRunner(t *testing.T, engine *tu.MockEngine) (*Runner, *stubFactory, *bytes.Buffer) {
	t.Helper()
	factory := &stubFactory{engine: engine}
	output := &bytes.Buffer{}
	config := shared.DefaultConfig()
	config.Log.Path = filepath.Join(t.TempDir(), "vloop.log")

	runner := NewRunner(RunnerOpts{
		Config:    config,
		Logger:    shared.NewLogger(output),
		Output:    output,
		NewEngine: factory.build,
	})
	return runner, factory, output
}

func TestNewRunner(t *testing.T) {
	t.Run("with all dependencies provided", func(t *testing.T) {
		config := shared.DefaultConfig()
		logger := shared.NewLogger(nil)
		output := &bytes.Buffer{}

		runner := NewRunner(RunnerOpts{
			Config: config,
			Logger: logger,
			Output: output,
		})

		if runner.config != config {
			t.Error("expected config to be set")
		}
		if runner.logger != logger {
			t.Error("expected logger to be set")
		}
		if runner.output != output {
			t.Error("expected output to be set")
		}
		if runner.newEngine == nil {
			t.Error("expected default engine factory to be set")
		}
	})

	t.Run("with nil config uses defaults", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})

		if runner.config == nil {
			t.Error("expected default config to be set")
		}
		if runner.logger == nil {
			t.Error("expected default logger to be set")
		}
	})
}

func TestPlayArgumentValidation(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: []string{"vloop"}},
		{name: "single odd argument", args: []string{"vloop", "OnlyOne"}},
		{name: "odd argument count", args: []string{"vloop", "A", "a.mp4", "B"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runner, factory, _ := newTestRunner(t, &tu.MockEngine{})
			app := newApp(runner)

			err := app.Run(context.Background(), tc.args)
			if !errors.Is(err, shared.ErrInvalidArguments) {
				t.Fatalf("expected ErrInvalidArguments, got %v", err)
			}
			if factory.calls != 0 {
				t.Errorf("expected no engine construction, got %d", factory.calls)
			}
		})
	}
}

func TestPlayEngineStartFailure(t *testing.T) {
	engine := &tu.MockEngine{StartErr: tu.ErrMock}
	runner, factory, _ := newTestRunner(t, engine)
	app := newApp(runner)

	err := app.Run(context.Background(), []string{"vloop", "Intro", "a.mp4"})
	if !errors.Is(err, tu.ErrMock) {
		t.Fatalf("expected the start error to surface, got %v", err)
	}
	if factory.calls != 1 {
		t.Errorf("expected one engine construction, got %d", factory.calls)
	}
	if engine.LoadCount() != 0 {
		t.Errorf("expected no load after a failed start, got %d", engine.LoadCount())
	}
}

func TestDoctor(t *testing.T) {
	t.Run("reports a resolvable binary", func(t *testing.T) {
		runner, _, output := newTestRunner(t, &tu.MockEngine{})
		app := newApp(runner)

		// sh is present on any unix test host
		if err := app.Run(context.Background(), []string{"vloop", "doctor", "--engine", "sh"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output.String(), "engine ok") {
			t.Errorf("expected confirmation, got %q", output.String())
		}
	})

	t.Run("fails for a missing binary", func(t *testing.T) {
		runner, _, _ := newTestRunner(t, &tu.MockEngine{})
		app := newApp(runner)

		err := app.Run(context.Background(), []string{"vloop", "doctor", "--engine", "definitely-not-a-player"})
		if !errors.Is(err, shared.ErrEngineUnavailable) {
			t.Fatalf("expected ErrEngineUnavailable, got %v", err)
		}
	})
}

func TestConfigInit(t *testing.T) {
	runner, _, _ := newTestRunner(t, &tu.MockEngine{})
	app := newApp(runner)
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := app.Run(context.Background(), []string{"vloop", "config", "init", "--path", path}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tu.AssertFileExists(t, path)

	if err := app.Run(context.Background(), []string{"vloop", "config", "init", "--path", path}); err == nil {
		t.Error("expected an error when the file already exists")
	}

	content := tu.MustReadFile(t, path)
	if !strings.Contains(content, "[engine]") {
		t.Errorf("expected engine section in written config, got:\n%s", content)
	}
}
