package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "chronos.team/chronos/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.TimeValue < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "time_value must not be negative")
	}
	return nil
}
