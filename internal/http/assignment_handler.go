package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "chronos.team/chronos/internal/data_models"
)

func (h *Handler) AssignUsers(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.AssignUsersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if len(req.AssigneeIDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "assignee_ids must not be empty")
	}

	created, err := h.assignments.AssignUsers(c.Request().Context(), c.Param("id"), req.AssigneeIDs, actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"created":     len(created),
		"assignments": created,
	})
}

func (h *Handler) ListAssignees(c echo.Context) error {
	assignees, err := h.assignments.ListAssignees(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":     len(assignees),
		"assignees": assignees,
	})
}

func (h *Handler) UpdateAssignment(c echo.Context) error {
	var req dto.UpdateAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	assignment, err := h.assignments.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, assignment)
}
