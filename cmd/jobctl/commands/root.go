package commands

import (
	"jobhost/version"

	"github.com/urfave/cli/v3"
)

// NewApp creates the root CLI application
func NewApp() *cli.Command {
	return &cli.Command{
		Name:    "jobctl",
		Usage:   "jobhost CLI - inspect the host and request shutdown",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "server",
				Usage: "jobhost server URL",
			},
		},
		Commands: []*cli.Command{
			StatusCommand(),
			RunsCommand(),
			ShutdownCommand(),
		},
	}
}
