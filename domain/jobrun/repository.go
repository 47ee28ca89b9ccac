package jobrun

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, run *Run) error
	FindAll(ctx context.Context, filters RunFilters) ([]Run, error)
	FindByID(ctx context.Context, id string) (*Run, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
