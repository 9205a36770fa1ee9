package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "chronos.team/chronos/internal/data_models"
)

func ValidateCreateAllocationRequest(r *dto.CreateAllocationRequest) error {
	if r.TaskID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task_id is required")
	}
	if r.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}
	if r.Date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}
	if r.StartTime == "" || r.EndTime == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "start_time and end_time are required")
	}
	return nil
}
