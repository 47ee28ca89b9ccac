package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobhost/app"
	"jobhost/app/jobs/cleanupjob"
	"jobhost/app/jobs/commandjob"
	"jobhost/app/jobs/metricsjob"
	"jobhost/app/services/hoststate"
	"jobhost/app/services/shutdownwatcher"
	"jobhost/config"
	"jobhost/config/appconf"
	"jobhost/internal/dbconn"
	"jobhost/internal/storagecheck"
	"jobhost/internal/validator"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

const minFreeBytes = 64 << 20

type job interface {
	Register(ctx context.Context) context.CancelFunc
	Shutdown()
}

func main() {
	db, err := dbconn.GetConn(
		dbconn.WithURL(appconf.DBURL()),
	)
	if err != nil {
		log.WithError(err).Fatal("db connection failed")
	}
	defer dbconn.Close()

	if err := storagecheck.Check(appconf.DataDir(), minFreeBytes); err != nil {
		log.WithError(err).Warn("data directory is low on disk space")
	}

	state := hoststate.New(appconf.DataDir())
	if err := state.Load(); err != nil {
		log.WithError(err).Fatal("failed to load host state")
	}
	hostID, err := state.EnsureHostID()
	if err != nil {
		log.WithError(err).Fatal("failed to persist host identity")
	}
	if err := state.MarkStarted(time.Now()); err != nil {
		log.WithError(err).Warn("failed to record start time")
	}
	log.WithField("host_id", hostID).Info("jobhost starting")

	watcher := shutdownwatcher.New(appconf.ShutdownFilePath())
	defer watcher.Close()

	container := app.NewContainer(db, watcher.Signal())
	if err := container.Migrate(); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	deregister := watcher.Signal().Register(func() {
		log.Info("shutdown file detected, stopping")
		cancel()
	})
	defer deregister()

	jobs := startJobs(ctx, container)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	config.AddRoutes(e, container)

	go func() {
		if err := e.Start(fmt.Sprintf(":%s", appconf.Port())); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()

	for _, j := range jobs {
		j.Shutdown()
	}
	if err := state.MarkShutdown(time.Now()); err != nil {
		log.WithError(err).Warn("failed to record shutdown time")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("server shutdown failed")
	}
	log.Info("jobhost stopped")
}

func startJobs(ctx context.Context, container *app.Container) []job {
	var jobs []job

	if command := appconf.CommandJobCommand(); command != "" {
		cj, err := commandjob.New(commandjob.Config{
			Command:  command,
			Interval: appconf.CommandJobInterval(),
		}, container.RunRepository)
		if err != nil {
			log.WithError(err).Warn("command job disabled")
		} else {
			jobs = append(jobs, cj)
		}
	}

	jobs = append(jobs, metricsjob.NewWithConfig(metricsjob.MetricsJobConfig{
		Trigger: func(ctx context.Context, fn func() error) {
			metricsjob.TriggerWithConfig(ctx, fn, metricsjob.TriggerConfig{Interval: appconf.MetricsInterval()})
		},
		Runs: container.RunRepository,
	}))

	jobs = append(jobs, cleanupjob.NewWithConfig(cleanupjob.CleanupJobConfig{
		Trigger: func(ctx context.Context, fn func() error) {
			cleanupjob.TriggerWithConfig(ctx, fn, cleanupjob.TriggerConfig{Interval: appconf.CleanupInterval()})
		},
		Retention: appconf.RunRetention(),
		Runs:      container.RunRepository,
	}))

	for _, j := range jobs {
		j.Register(ctx)
	}

	return jobs
}
