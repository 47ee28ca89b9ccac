// Package commandjob runs a configured shell command on an interval and
// records each execution in the run store.
package commandjob

import (
	"context"
	"fmt"
	"sync"
	"time"

	"jobhost/domain/jobrun"
	"jobhost/internal/cmdexec"

	"github.com/go-playground/validator/v10"
	"github.com/mattn/go-shellwords"
)

const Name = "commandjob"

type Executor interface {
	Execute(ctx context.Context, command string) (string, error)
}

type TriggerFunc func(context.Context, func() error)

type Config struct {
	Command  string        `validate:"required"`
	Interval time.Duration `validate:"gte=1s"`
}

type CommandJobConfig struct {
	Config   Config
	Trigger  TriggerFunc
	Executor Executor
	Runs     jobrun.Repository
}

type CommandJob struct {
	config   Config
	trigger  TriggerFunc
	executor Executor
	runs     jobrun.Repository
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func New(cfg Config, runs jobrun.Repository) (*CommandJob, error) {
	return NewWithConfig(CommandJobConfig{
		Config: cfg,
		Runs:   runs,
	})
}

func NewWithConfig(cfg CommandJobConfig) (*CommandJob, error) {
	if err := validateConfig(cfg.Config); err != nil {
		return nil, err
	}
	if cfg.Trigger == nil {
		cfg.Trigger = func(ctx context.Context, fn func() error) {
			TriggerWithConfig(ctx, fn, TriggerConfig{Interval: cfg.Config.Interval})
		}
	}
	if cfg.Executor == nil {
		cfg.Executor = cmdexec.New()
	}

	return &CommandJob{
		config:   cfg.Config,
		trigger:  cfg.Trigger,
		executor: cfg.Executor,
		runs:     cfg.Runs,
	}, nil
}

func validateConfig(cfg Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid command job config: %w", err)
	}
	if _, err := shellwords.Parse(cfg.Command); err != nil {
		return fmt.Errorf("invalid command %q: %w", cfg.Command, err)
	}
	return nil
}

func (cj *CommandJob) Register(ctx context.Context) context.CancelFunc {
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

func (cj *CommandJob) Shutdown() {
	if cj.cancel != nil {
		cj.cancel()
	}
	cj.wg.Wait()
}

func (cj *CommandJob) runOnce(ctx context.Context) error {
	started := time.Now()
	output, execErr := cj.executor.Execute(ctx, cj.config.Command)

	run := &jobrun.Run{
		JobName:    Name,
		Status:     jobrun.StatusSucceeded,
		Output:     output,
		ExitCode:   cmdexec.ExitCode(execErr),
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	if execErr != nil {
		run.Status = jobrun.StatusFailed
		run.Error = execErr.Error()
	}

	if err := cj.runs.Create(ctx, run); err != nil {
		return fmt.Errorf("failed to record command run: %w", err)
	}
	return execErr
}
