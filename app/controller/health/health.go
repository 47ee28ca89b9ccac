// Package health is for the health route
package health

import (
	"net/http"

	"jobhost/app/services/shutdownwatcher"
	"jobhost/version"

	"github.com/labstack/echo/v4"
)

type (
	Handler struct {
		token *shutdownwatcher.Token
	}
	OkResponse struct {
		Ok           bool   `json:"ok"`
		Version      string `json:"version"`
		ShuttingDown bool   `json:"shutting_down"`
	}
)

func NewHandler(token *shutdownwatcher.Token) *Handler {
	if token == nil {
		token = shutdownwatcher.Never()
	}
	return &Handler{token: token}
}

func (h Handler) GET(c echo.Context) error {
	ok := OkResponse{
		Ok:           true,
		Version:      version.Version,
		ShuttingDown: h.token.Fired(),
	}
	return c.JSON(http.StatusOK, ok)
}

func Register(g *echo.Group, token *shutdownwatcher.Token) {
	h := NewHandler(token)

	g.GET("/health", h.GET)
}
