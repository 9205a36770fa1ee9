package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "chronos.team/chronos/internal/data_models"
)

func (h *Handler) CreateFeatureRequest(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.CreateFeatureRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Problem == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "problem is required")
	}

	request, err := h.requests.Create(c.Request().Context(), actor, req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, request)
}

func (h *Handler) ListFeatureRequests(c echo.Context) error {
	requests, err := h.requests.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":    len(requests),
		"requests": requests,
	})
}

func (h *Handler) UpdateFeatureRequestStatus(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}

	var req dto.UpdateFeatureRequestStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	request, err := h.requests.UpdateStatus(c.Request().Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, request)
}
