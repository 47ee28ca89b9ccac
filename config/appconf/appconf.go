// Package appconf contains app related configurations
package appconf

import (
	"os"
	"strings"
	"time"

	"jobhost/config"
	devconf "jobhost/config/environments/development"
	prodconf "jobhost/config/environments/production"
)

var appconf config.AppConfiger

func Port() string {
	return appconf.GetPort()
}

func DBURL() string {
	return appconf.GetDBURL()
}

func DataDir() string {
	return appconf.GetDataDir()
}

// ShutdownFilePath is the marker file the hosting platform touches to
// request shutdown. Empty means the platform has no shutdown-notification
// support and the feature is disabled.
func ShutdownFilePath() string {
	return strings.TrimSpace(os.Getenv("JOBHOST_SHUTDOWN_FILE"))
}

// CommandJobCommand is the shell command the command job runs. Empty
// disables the job.
func CommandJobCommand() string {
	return strings.TrimSpace(os.Getenv("JOBHOST_COMMAND"))
}

func CommandJobInterval() time.Duration {
	return durationFromEnv("JOBHOST_COMMAND_INTERVAL", 1*time.Minute, 1*time.Second, 24*time.Hour)
}

func MetricsInterval() time.Duration {
	return durationFromEnv("JOBHOST_METRICS_INTERVAL", 30*time.Second, 5*time.Second, 1*time.Hour)
}

func CleanupInterval() time.Duration {
	return durationFromEnv("JOBHOST_CLEANUP_INTERVAL", 1*time.Hour, 1*time.Minute, 24*time.Hour)
}

func RunRetention() time.Duration {
	return durationFromEnv("JOBHOST_RUN_RETENTION", 7*24*time.Hour, 1*time.Hour, 90*24*time.Hour)
}

func durationFromEnv(key string, def, min, max time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	if d < min {
		return min
	}
	if d > max {
		return max
	}
	return d
}

func init() {
	env := os.Getenv("APP_ENV")

	switch env {
	case "production":
		appconf = prodconf.New()
	case "development":
		appconf = devconf.New()
	default:
		appconf = devconf.New()
	}
}
