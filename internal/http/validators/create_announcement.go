package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "chronos.team/chronos/internal/data_models"
)

func ValidateCreateAnnouncementRequest(r *dto.CreateAnnouncementRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.Body == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "body is required")
	}
	return nil
}
