// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// doctorCommand checks that the playback engine can actually be launched.
func doctorCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Verify the playback engine is installed",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "engine",
				Usage: "Playback engine binary",
			},
		},
		Action: r.Doctor,
	}
}

// configCommand handles configuration scaffolding.
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write a default config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Where to write the configuration file",
						Value: "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}
