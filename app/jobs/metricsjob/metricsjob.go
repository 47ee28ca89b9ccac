// Package metricsjob samples host utilization on an interval and records
// each sample in the run store.
package metricsjob

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"jobhost/domain/jobrun"
	"jobhost/internal/sysmetrics"
)

const Name = "metricsjob"

type TriggerFunc func(context.Context, func() error)

type MetricsJobConfig struct {
	Trigger   TriggerFunc
	Collector sysmetrics.Collector
	Runs      jobrun.Repository
}

type MetricsJob struct {
	trigger   TriggerFunc
	collector sysmetrics.Collector
	runs      jobrun.Repository
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

func New(runs jobrun.Repository) *MetricsJob {
	return NewWithConfig(MetricsJobConfig{Runs: runs})
}

func NewWithConfig(cfg MetricsJobConfig) *MetricsJob {
	if cfg.Trigger == nil {
		cfg.Trigger = Trigger
	}
	if cfg.Collector == nil {
		cfg.Collector = sysmetrics.New()
	}

	return &MetricsJob{
		trigger:   cfg.Trigger,
		collector: cfg.Collector,
		runs:      cfg.Runs,
	}
}

func (mj *MetricsJob) Register(ctx context.Context) context.CancelFunc {
	ctx, cancel := context.WithCancel(ctx)
	mj.cancel = cancel

	mj.wg.Add(1)
	go func() {
		defer mj.wg.Done()
		mj.trigger(ctx, func() error {
			return mj.runOnce(ctx)
		})
	}()

	return cancel
}

func (mj *MetricsJob) Shutdown() {
	if mj.cancel != nil {
		mj.cancel()
	}
	mj.wg.Wait()
}

func (mj *MetricsJob) runOnce(ctx context.Context) error {
	started := time.Now()
	snap, collectErr := mj.collector.Collect(ctx)

	run := &jobrun.Run{
		JobName:    Name,
		Status:     jobrun.StatusSucceeded,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	if collectErr != nil {
		run.Status = jobrun.StatusFailed
		run.Error = collectErr.Error()
	} else {
		payload, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("failed to encode metrics snapshot: %w", err)
		}
		run.Output = string(payload)
	}

	if err := mj.runs.Create(ctx, run); err != nil {
		return fmt.Errorf("failed to record metrics run: %w", err)
	}
	return collectErr
}
