package gorm

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"jobhost/domain/jobrun"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupRunTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbName := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dbName), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&jobrun.Run{}))

	return db
}

func createRun(t *testing.T, repo jobrun.Repository, jobName, status string) *jobrun.Run {
	t.Helper()

	run := &jobrun.Run{
		JobName:    jobName,
		Status:     status,
		StartedAt:  time.Now().Add(-time.Second),
		FinishedAt: time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), run))
	return run
}

// TestRunRepository_CreateGeneratesID - rows get a prefixed ULID
func TestRunRepository_CreateGeneratesID(t *testing.T) {
	repo := NewRunRepository(setupRunTestDB(t))

	run := createRun(t, repo, "commandjob", jobrun.StatusSucceeded)

	assert.True(t, strings.HasPrefix(run.ID, "run_"))

	found, err := repo.FindByID(context.Background(), run.ID)
	require.NoError(t, err)
	assert.Equal(t, "commandjob", found.JobName)
}

// TestRunRepository_FindAllFiltersByJobName - job filter excludes other jobs
func TestRunRepository_FindAllFiltersByJobName(t *testing.T) {
	repo := NewRunRepository(setupRunTestDB(t))
	createRun(t, repo, "commandjob", jobrun.StatusSucceeded)
	createRun(t, repo, "metricsjob", jobrun.StatusSucceeded)

	jobName := "commandjob"
	runs, err := repo.FindAll(context.Background(), jobrun.RunFilters{JobName: &jobName})

	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "commandjob", runs[0].JobName)
}

// TestRunRepository_FindAllFiltersByStatus - status filter applies
func TestRunRepository_FindAllFiltersByStatus(t *testing.T) {
	repo := NewRunRepository(setupRunTestDB(t))
	createRun(t, repo, "commandjob", jobrun.StatusSucceeded)
	createRun(t, repo, "commandjob", jobrun.StatusFailed)

	status := jobrun.StatusFailed
	runs, err := repo.FindAll(context.Background(), jobrun.RunFilters{Status: &status})

	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, jobrun.StatusFailed, runs[0].Status)
}

// TestRunRepository_FindAllHonorsLimit - limit caps the result set
func TestRunRepository_FindAllHonorsLimit(t *testing.T) {
	repo := NewRunRepository(setupRunTestDB(t))
	for i := 0; i < 5; i++ {
		createRun(t, repo, "commandjob", jobrun.StatusSucceeded)
	}

	runs, err := repo.FindAll(context.Background(), jobrun.RunFilters{Limit: 3})

	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

// TestRunRepository_DeleteOlderThan - rows past the cutoff are removed
func TestRunRepository_DeleteOlderThan(t *testing.T) {
	db := setupRunTestDB(t)
	repo := NewRunRepository(db)

	old := createRun(t, repo, "commandjob", jobrun.StatusSucceeded)
	require.NoError(t, db.Model(&jobrun.Run{}).Where("id = ?", old.ID).
		Update("created_at", time.Now().Add(-48*time.Hour)).Error)
	kept := createRun(t, repo, "commandjob", jobrun.StatusSucceeded)

	deleted, err := repo.DeleteOlderThan(context.Background(), time.Now().Add(-24*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	runs, err := repo.FindAll(context.Background(), jobrun.RunFilters{})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, kept.ID, runs[0].ID)
}
