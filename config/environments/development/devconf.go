// Package development contains development configuration of the app
package development

import (
	"os"
	"strings"

	"jobhost/config"
)

type devconf struct{}

func New() config.AppConfiger {
	return devconf{}
}

func (dc devconf) GetPort() string {
	appPort := os.Getenv("JOBHOST_PORT")
	if strings.TrimSpace(appPort) == "" {
		appPort = "8080"
	}
	return appPort
}

func (dc devconf) GetDBURL() string {
	dbURL := os.Getenv("JOBHOST_DB_URL")
	if strings.TrimSpace(dbURL) == "" {
		dbURL = "file:jobhost.db"
	}
	return dbURL
}

func (dc devconf) GetDataDir() string {
	dataDir := os.Getenv("JOBHOST_DATA_DIR")
	if strings.TrimSpace(dataDir) == "" {
		dataDir = ".jobhost"
	}
	return dataDir
}
