// Package cleanupjob prunes job-run history past the configured retention.
package cleanupjob

import (
	"context"
	"fmt"
	"sync"
	"time"

	"jobhost/domain/jobrun"

	"github.com/labstack/gommon/log"
)

const Name = "cleanupjob"

type TriggerFunc func(context.Context, func() error)

type CleanupJobConfig struct {
	Trigger   TriggerFunc
	Retention time.Duration
	Runs      jobrun.Repository
}

type CleanupJob struct {
	trigger   TriggerFunc
	retention time.Duration
	runs      jobrun.Repository
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

func New(retention time.Duration, runs jobrun.Repository) *CleanupJob {
	return NewWithConfig(CleanupJobConfig{
		Retention: retention,
		Runs:      runs,
	})
}

func NewWithConfig(cfg CleanupJobConfig) *CleanupJob {
	if cfg.Trigger == nil {
		cfg.Trigger = Trigger
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 7 * 24 * time.Hour
	}

	return &CleanupJob{
		trigger:   cfg.Trigger,
		retention: cfg.Retention,
		runs:      cfg.Runs,
	}
}

func (cj *CleanupJob) Register(ctx context.Context) context.CancelFunc {
	ctx, cancel := context.WithCancel(ctx)
	cj.cancel = cancel

	cj.wg.Add(1)
	go func() {
		defer cj.wg.Done()
		cj.trigger(ctx, func() error {
			return cj.runOnce(ctx)
		})
	}()

	return cancel
}

func (cj *CleanupJob) Shutdown() {
	if cj.cancel != nil {
		cj.cancel()
	}
	cj.wg.Wait()
}

func (cj *CleanupJob) runOnce(ctx context.Context) error {
	cutoff := time.Now().Add(-cj.retention)
	deleted, err := cj.runs.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune run history: %w", err)
	}
	if deleted > 0 {
		log.Infof("pruned %d job runs older than %s", deleted, cj.retention)
	}
	return nil
}
