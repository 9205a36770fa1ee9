package http

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	middleware "chronos.team/chronos/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))
	e.Use(middleware.Actor())
	e.Use(middleware.Metrics())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/tasks", h.CreateTask)
	e.POST("/tasks/batch", h.BatchCreateTasks)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/:id", h.GetTask)
	e.PATCH("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)

	e.POST("/tasks/:id/assignees", h.AssignUsers)
	e.GET("/tasks/:id/assignees", h.ListAssignees)
	e.PATCH("/assignments/:id", h.UpdateAssignment)

	e.POST("/projects", h.CreateProject)
	e.POST("/projects/with-tasks", h.CreateProjectWithTasks)
	e.GET("/projects", h.ListProjects)
	e.GET("/projects/:id", h.GetProject)
	e.GET("/projects/:id/hours", h.ProjectHours)
	e.PATCH("/projects/:id", h.UpdateProject)
	e.DELETE("/projects/:id", h.DeleteProject)

	e.POST("/allocations", h.CreateAllocation)
	e.GET("/allocations", h.ListAllocations)
	e.PATCH("/allocations/:id", h.UpdateAllocation)
	e.DELETE("/allocations/:id", h.DeleteAllocation)

	e.POST("/announcements", h.CreateAnnouncement)
	e.GET("/announcements", h.ListAnnouncements)
	e.POST("/announcements/:id/ack", h.AcknowledgeAnnouncement)

	e.POST("/feature-requests", h.CreateFeatureRequest)
	e.GET("/feature-requests", h.ListFeatureRequests)
	e.PATCH("/feature-requests/:id/status", h.UpdateFeatureRequestStatus)

	e.POST("/users", h.CreateUser)
	e.GET("/users", h.ListUsers)
	e.GET("/users/:id", h.GetUser)
	e.PATCH("/users/:id", h.UpdateUser)
	e.DELETE("/users/:id", h.DeactivateUser)

	e.POST("/categories", h.CreateCategory)
	e.GET("/categories", h.ListCategories)
}
