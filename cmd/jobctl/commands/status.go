package commands

import (
	"context"
	"fmt"

	"jobhost/cmd/jobctl/client"
	"jobhost/cmd/jobctl/config"

	"github.com/urfave/cli/v3"
)

// StatusCommand returns the status command
func StatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Show host health and shutdown state",
		Action: statusAction,
	}
}

func statusAction(ctx context.Context, c *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	serverURL := cfg.GetServerURL()
	if c.IsSet("server") {
		serverURL = c.String("server")
	}

	health, err := client.NewHTTPClient(serverURL).Health()
	if err != nil {
		return fmt.Errorf("failed to fetch status: %w", err)
	}

	fmt.Printf("ok: %t\n", health.Ok)
	fmt.Printf("version: %s\n", health.Version)
	fmt.Printf("shutting down: %t\n", health.ShuttingDown)
	return nil
}
