package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "chronos.team/chronos/internal/data_models"
	"chronos.team/chronos/internal/http/validators"
)

func (h *Handler) CreateAnnouncement(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.CreateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateAnnouncementRequest(&req); err != nil {
		return err
	}

	announcement, err := h.announcements.Create(c.Request().Context(), actor, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, announcement)
}

func (h *Handler) ListAnnouncements(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	views, err := h.announcements.ListActive(c.Request().Context(), actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":         len(views),
		"announcements": views,
	})
}

func (h *Handler) AcknowledgeAnnouncement(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	if err := h.announcements.Acknowledge(c.Request().Context(), c.Param("id"), actor); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
