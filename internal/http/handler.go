package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "chronos.team/chronos/internal/errors"
	"chronos.team/chronos/internal/services"
)

type Handler struct {
	tasks         *services.TaskService
	projects      *services.ProjectService
	assignments   *services.AssignmentService
	allocations   *services.AllocationService
	announcements *services.AnnouncementService
	requests      *services.FeatureRequestService
	users         *services.UserService
	categories    *services.CategoryService
}

func NewHandler(
	tasks *services.TaskService,
	projects *services.ProjectService,
	assignments *services.AssignmentService,
	allocations *services.AllocationService,
	announcements *services.AnnouncementService,
	requests *services.FeatureRequestService,
	users *services.UserService,
	categories *services.CategoryService,
) *Handler {
	return &Handler{
		tasks:         tasks,
		projects:      projects,
		assignments:   assignments,
		allocations:   allocations,
		announcements: announcements,
		requests:      requests,
		users:         users,
		categories:    categories,
	}
}

// httpError translates service errors into HTTP responses. Exceptions carry
// their own status; anything else is opaque.
func httpError(err error) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.StatusCode, appErr.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}

// requireActor resolves the acting user's ID from the X-Actor-ID header, set
// by the actor middleware. Role checks live in the services; this only
// guarantees an explicit identity was supplied.
func requireActor(c echo.Context) (string, error) {
	id, _ := c.Get("actor_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "X-Actor-ID header is required")
	}
	return id, nil
}
