package metricsjob

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"jobhost/domain/jobrun"
	"jobhost/internal/sysmetrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCollector struct {
	mock.Mock
}

func (m *MockCollector) Collect(ctx context.Context) (sysmetrics.Snapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(sysmetrics.Snapshot), args.Error(1)
}

type MockRunRepository struct {
	mock.Mock
}

func (m *MockRunRepository) Create(ctx context.Context, run *jobrun.Run) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRunRepository) FindAll(ctx context.Context, filters jobrun.RunFilters) ([]jobrun.Run, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]jobrun.Run), args.Error(1)
}

func (m *MockRunRepository) FindByID(ctx context.Context, id string) (*jobrun.Run, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*jobrun.Run), args.Error(1)
}

func (m *MockRunRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func runOnceTrigger(ctx context.Context, fn func() error) {
	_ = fn()
}

// TestRegister_RecordsSnapshot - a sample is stored as JSON output
func TestRegister_RecordsSnapshot(t *testing.T) {
	collector := new(MockCollector)
	runs := new(MockRunRepository)
	collector.On("Collect", mock.Anything).Return(sysmetrics.Snapshot{CPUPercent: 12.5, Load1: 0.4}, nil)

	var recorded *jobrun.Run
	runs.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		recorded = args.Get(1).(*jobrun.Run)
	}).Return(nil)

	job := NewWithConfig(MetricsJobConfig{
		Trigger:   runOnceTrigger,
		Collector: collector,
		Runs:      runs,
	})

	job.Register(context.Background())
	job.Shutdown()

	require.NotNil(t, recorded)
	assert.Equal(t, Name, recorded.JobName)
	assert.Equal(t, jobrun.StatusSucceeded, recorded.Status)

	var snap sysmetrics.Snapshot
	require.NoError(t, json.Unmarshal([]byte(recorded.Output), &snap))
	assert.Equal(t, 12.5, snap.CPUPercent)
}

// TestRegister_RecordsCollectFailure - collector errors store a failed row
func TestRegister_RecordsCollectFailure(t *testing.T) {
	collector := new(MockCollector)
	runs := new(MockRunRepository)
	collector.On("Collect", mock.Anything).Return(sysmetrics.Snapshot{}, errors.New("no such mount"))

	var recorded *jobrun.Run
	runs.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		recorded = args.Get(1).(*jobrun.Run)
	}).Return(nil)

	job := NewWithConfig(MetricsJobConfig{
		Trigger:   runOnceTrigger,
		Collector: collector,
		Runs:      runs,
	})

	job.Register(context.Background())
	job.Shutdown()

	require.NotNil(t, recorded)
	assert.Equal(t, jobrun.StatusFailed, recorded.Status)
	assert.Equal(t, "no such mount", recorded.Error)
	assert.Empty(t, recorded.Output)
}
