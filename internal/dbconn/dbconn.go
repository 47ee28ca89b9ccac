// Package dbconn holds the single GORM connection to the SQLite run store.
package dbconn

import (
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

type DBConf struct {
	URL         string
	MaxIdle     int
	MaxOpen     int
	MaxLifetime time.Duration
}

type DBOpts func(*DBConf)

func NewConf() *DBConf {
	return &DBConf{
		URL:         "file:jobhost.db",
		MaxIdle:     10,
		MaxOpen:     10,
		MaxLifetime: 300 * time.Second,
	}
}

func WithURL(url string) DBOpts {
	return func(d *DBConf) {
		d.URL = url
	}
}

func WithMaxIdle(idle int) DBOpts {
	return func(d *DBConf) {
		d.MaxIdle = idle
	}
}

func WithMaxOpen(open int) DBOpts {
	return func(d *DBConf) {
		d.MaxOpen = open
	}
}

func WithMaxLifetime(lifetime time.Duration) DBOpts {
	return func(d *DBConf) {
		d.MaxLifetime = lifetime
	}
}

// GetConn returns the shared connection, opening it on first use.
func GetConn(options ...DBOpts) (*gorm.DB, error) {
	if db != nil {
		return db, nil
	}

	conf := NewConf()
	for _, o := range options {
		o(conf)
	}

	var err error
	db, err = gorm.Open(sqlite.Open(conf.URL), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sdb, err := db.DB()
	if err != nil {
		return nil, err
	}

	sdb.SetMaxIdleConns(conf.MaxIdle)
	sdb.SetMaxOpenConns(conf.MaxOpen)
	sdb.SetConnMaxLifetime(conf.MaxLifetime)

	if err := sdb.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate[T any](t T) error {
	if db == nil {
		return errors.New("db is not defined")
	}
	return db.AutoMigrate(t)
}

func Close() error {
	if db == nil {
		return nil
	}
	sdb, err := db.DB()
	db = nil
	if err != nil {
		return err
	}
	return sdb.Close()
}
