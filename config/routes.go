package config

import (
	"jobhost/app"
	"jobhost/app/controller/health"
	"jobhost/app/controller/runs"

	"github.com/labstack/echo/v4"
)

func AddRoutes(e *echo.Echo, container *app.Container) {
	root := e.Group("")

	health.Register(root, container.ShutdownToken)

	runsHandler := runs.NewHandler(container.RunRepository)
	runsHandler.RegisterRoutes(e.Group("/api/v1/runs"))
}
