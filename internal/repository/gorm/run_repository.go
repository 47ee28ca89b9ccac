package gorm

import (
	"context"
	"time"

	"jobhost/domain/jobrun"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type RunRepository struct {
	db *gorm.DB
}

func NewRunRepository(db *gorm.DB) jobrun.Repository {
	return &RunRepository{db: db}
}

func (r *RunRepository) Create(ctx context.Context, run *jobrun.Run) error {
	run.ID = "run_" + ulid.Make().String()
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *RunRepository) FindAll(ctx context.Context, filters jobrun.RunFilters) ([]jobrun.Run, error) {
	var runs []jobrun.Run

	query := r.db.WithContext(ctx).Order("created_at desc")
	if filters.JobName != nil {
		query = query.Where("job_name = ?", *filters.JobName)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	err := query.Find(&runs).Error
	return runs, err
}

func (r *RunRepository) FindByID(ctx context.Context, id string) (*jobrun.Run, error) {
	var run jobrun.Run
	if err := r.db.WithContext(ctx).First(&run, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *RunRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&jobrun.Run{})
	return result.RowsAffected, result.Error
}
