package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func ValidateCreateProjectRequest(name, ownerID string) error {
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if ownerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "owner_id is required")
	}
	return nil
}
