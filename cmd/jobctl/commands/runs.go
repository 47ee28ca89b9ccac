package commands

import (
	"context"
	"fmt"

	"jobhost/cmd/jobctl/client"
	"jobhost/cmd/jobctl/config"

	"github.com/urfave/cli/v3"
)

// RunsCommand returns the runs command
func RunsCommand() *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "List job run history",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "job",
				Usage: "Filter by job name",
			},
			&cli.StringFlag{
				Name:  "status",
				Usage: "Filter by run status",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum rows to return",
				Value: 20,
			},
		},
		Action: runsAction,
	}
}

func runsAction(ctx context.Context, c *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	serverURL := cfg.GetServerURL()
	if c.IsSet("server") {
		serverURL = c.String("server")
	}

	runs, err := client.NewHTTPClient(serverURL).ListRuns(&client.ListRunsRequest{
		Job:    c.String("job"),
		Status: c.String("status"),
		Limit:  c.Int("limit"),
	})
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %-12s %-10s exit=%d  %s\n",
			run.ID, run.JobName, run.Status, run.ExitCode,
			run.StartedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
