package app

import (
	"jobhost/app/services/shutdownwatcher"
	"jobhost/domain/jobrun"
	gormRepo "jobhost/internal/repository/gorm"

	"gorm.io/gorm"
)

type Container struct {
	DB            *gorm.DB
	RunRepository jobrun.Repository
	ShutdownToken *shutdownwatcher.Token
}

func NewContainer(db *gorm.DB, token *shutdownwatcher.Token) *Container {
	if token == nil {
		token = shutdownwatcher.Never()
	}

	return &Container{
		DB:            db,
		RunRepository: gormRepo.NewRunRepository(db),
		ShutdownToken: token,
	}
}

func (c *Container) Migrate() error {
	return c.DB.AutoMigrate(
		&jobrun.Run{},
	)
}
