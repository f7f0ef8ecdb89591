package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/vloop/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := newApp(runner)

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrInvalidArguments) {
			logger.Fatalf("%v\nusage: vloop \"Name1\" path1 [\"Name2\" path2 ...]", err)
		}
		logger.Fatalf("application error: %v", err)
	}
}

// newApp assembles the CLI surface. The root action is the player itself;
// subcommands cover environment checks and configuration scaffolding.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "vloop",
		Usage:     "Play a fixed playlist of videos, each looped until you move on",
		ArgsUsage: `"Name1" path1 ["Name2" path2 ...]`,
		Version:   "0.2.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.FloatFlag{
				Name:  "seek-step",
				Usage: "Seconds moved per arrow-key seek",
			},
			&cli.StringFlag{
				Name:  "engine",
				Usage: "Playback engine binary",
			},
		},
		Action:   r.Play,
		Commands: r.register(),
	}
}
