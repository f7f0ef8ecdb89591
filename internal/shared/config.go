package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Engine   EngineConfig   `toml:"engine"`
	Playback PlaybackConfig `toml:"playback"`
	Input    InputConfig    `toml:"input"`
	Log      LogConfig      `toml:"log"`
}

// EngineConfig describes how the external playback engine process is launched.
type EngineConfig struct {
	Binary    string   `toml:"binary"`
	Args      []string `toml:"args"`
	SocketDir string   `toml:"socket_dir"`
}

// PlaybackConfig contains playback behavior settings.
type PlaybackConfig struct {
	SeekStep float64 `toml:"seek_step"`
}

// InputConfig contains keyboard handling settings.
type InputConfig struct {
	// Passthrough forwards handled key events to nested components instead of
	// consuming them.
	Passthrough bool `toml:"passthrough"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Path string `toml:"path"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
