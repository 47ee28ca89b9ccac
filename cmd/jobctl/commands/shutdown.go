package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jobhost/cmd/jobctl/config"

	"github.com/urfave/cli/v3"
)

// ShutdownCommand returns the shutdown command
func ShutdownCommand() *cli.Command {
	return &cli.Command{
		Name:  "shutdown",
		Usage: "Request host shutdown by touching the shutdown marker file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "Shutdown marker file path (overrides config)",
			},
		},
		Action: shutdownAction,
	}
}

func shutdownAction(ctx context.Context, c *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	markerPath := cfg.GetShutdownFile()
	if c.IsSet("file") {
		markerPath = c.String("file")
	}
	if markerPath == "" {
		return errors.New("no shutdown file configured: set --file, JOBHOST_SHUTDOWN_FILE, or shutdown_file in ~/.jobhost/config.yml")
	}

	if err := touchMarker(markerPath); err != nil {
		return fmt.Errorf("failed to signal shutdown: %w", err)
	}

	fmt.Printf("shutdown requested via %s\n", markerPath)
	return nil
}

// touchMarker creates the marker file, or refreshes its mtime when the
// file already exists, so a watching host picks up either event.
func touchMarker(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		now := time.Now()
		return os.Chtimes(path, now, now)
	}

	return os.WriteFile(path, []byte(time.Now().UTC().Format(time.RFC3339)+"\n"), 0644)
}
