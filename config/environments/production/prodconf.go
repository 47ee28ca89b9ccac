// Package production contains production configuration of the app
package production

import (
	"os"
	"strings"

	"jobhost/config"
)

type prodconf struct{}

func New() config.AppConfiger {
	return prodconf{}
}

func (pc prodconf) GetPort() string {
	appPort := os.Getenv("JOBHOST_PORT")
	if strings.TrimSpace(appPort) == "" {
		appPort = "8080"
	}
	return appPort
}

func (pc prodconf) GetDBURL() string {
	dbURL := os.Getenv("JOBHOST_DB_URL")
	if strings.TrimSpace(dbURL) == "" {
		dbURL = "file:/var/lib/jobhost/jobhost.db"
	}
	return dbURL
}

func (pc prodconf) GetDataDir() string {
	dataDir := os.Getenv("JOBHOST_DATA_DIR")
	if strings.TrimSpace(dataDir) == "" {
		dataDir = "/var/lib/jobhost"
	}
	return dataDir
}
