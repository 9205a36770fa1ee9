package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "chronos.team/chronos/internal/data_models"
	"chronos.team/chronos/internal/http/validators"
)

func (h *Handler) CreateProject(c echo.Context) error {
	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateProjectRequest(req.Name, req.OwnerID); err != nil {
		return err
	}

	project, err := h.projects.Create(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, project)
}

func (h *Handler) CreateProjectWithTasks(c echo.Context) error {
	var req dto.CreateProjectWithTasksRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateProjectRequest(req.Name, req.OwnerID); err != nil {
		return err
	}

	project, tasks, err := h.projects.CreateWithTasks(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"project": project,
		"tasks":   tasks,
	})
}

func (h *Handler) GetProject(c echo.Context) error {
	project, err := h.projects.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *Handler) ListProjects(c echo.Context) error {
	projects, err := h.projects.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":    len(projects),
		"projects": projects,
	})
}

func (h *Handler) UpdateProject(c echo.Context) error {
	var req dto.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	project, err := h.projects.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(c echo.Context) error {
	if err := h.projects.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ProjectHours reports the project's total workload in hours, with all
// time types converted to hours before summing.
func (h *Handler) ProjectHours(c echo.Context) error {
	id := c.Param("id")

	hours, err := h.allocations.AggregateByProject(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"project_id": id,
		"hours":      hours,
	})
}
