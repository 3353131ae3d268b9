package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/astrion_panel/internal/models"
	"github.com/Skotchmaster/astrion_panel/internal/transport"
)

func GetOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, transport.Options{
		Categories: models.Categories,
		Roles:      models.Roles,
		Statuses:   models.Statuses,
	})
}
