package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "chronos.team/chronos/internal/data_models"
	"chronos.team/chronos/internal/http/validators"
)

func (h *Handler) CreateAllocation(c echo.Context) error {
	var req dto.CreateAllocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateAllocationRequest(&req); err != nil {
		return err
	}

	allocation, err := h.allocations.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, allocation)
}

// ListAllocations returns one user's timeline, optionally bounded by
// from/to dates.
func (h *Handler) ListAllocations(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	allocations, err := h.allocations.ListForUser(
		c.Request().Context(),
		userID,
		c.QueryParam("from"),
		c.QueryParam("to"),
	)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":       len(allocations),
		"allocations": allocations,
	})
}

func (h *Handler) UpdateAllocation(c echo.Context) error {
	var req dto.UpdateAllocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	allocation, err := h.allocations.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, allocation)
}

func (h *Handler) DeleteAllocation(c echo.Context) error {
	if err := h.allocations.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
