package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Engine.Binary != "mpv" {
		t.Errorf("expected default engine mpv, got %q", config.Engine.Binary)
	}
	if config.Playback.SeekStep != 10.0 {
		t.Errorf("expected default seek step 10, got %v", config.Playback.SeekStep)
	}
	if config.Input.Passthrough {
		t.Error("expected pass-through disabled by default")
	}
	if config.Log.Path == "" {
		t.Error("expected a default log path")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("parses a full file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[engine]
binary = "mpv-custom"
args = ["--fullscreen"]
socket_dir = "/tmp/vloop"

[playback]
seek_step = 5.0

[input]
passthrough = true

[log]
path = "/tmp/vloop.log"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if config.Engine.Binary != "mpv-custom" {
			t.Errorf("unexpected binary: %q", config.Engine.Binary)
		}
		if len(config.Engine.Args) != 1 || config.Engine.Args[0] != "--fullscreen" {
			t.Errorf("unexpected args: %v", config.Engine.Args)
		}
		if config.Playback.SeekStep != 5.0 {
			t.Errorf("unexpected seek step: %v", config.Playback.SeekStep)
		}
		if !config.Input.Passthrough {
			t.Error("expected pass-through enabled")
		}
	})

	t.Run("missing file fails", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("malformed toml fails with ErrInvalidConfig", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.toml")
		if err := os.WriteFile(path, []byte("[engine\nbinary"), 0644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	t.Run("writes the embedded example", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("written config does not parse: %v", err)
		}
		if config.Engine.Binary != "mpv" {
			t.Errorf("unexpected binary in written config: %q", config.Engine.Binary)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := CreateConfigFile(path); err == nil {
			t.Error("expected an error for an existing file")
		}
	})
}
