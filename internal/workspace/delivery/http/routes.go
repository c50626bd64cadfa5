package http

import (
	"github.com/gin-gonic/gin"

	"rima-workspace/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Mutating routes go through the rate limiter; reads are unthrottled.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	workspaces := rg.Group("/workspaces")
	{
		workspaces.POST("", mw.RateLimit(), h.CreateWorkspace)
		workspaces.GET("", h.ListWorkspaces)
		workspaces.GET("/:id", h.DetailWorkspace)

		workspaces.POST("/:id/rooms", mw.RateLimit(), h.CreateRoom)
		workspaces.GET("/:id/rooms", h.ListRooms)

		workspaces.POST("/:id/messages", mw.RateLimit(), h.PostMessage)
		workspaces.GET("/:id/messages", h.ListMessages)

		workspaces.POST("/:id/tasks/extract", mw.RateLimit(), h.ExtractTasks)
		workspaces.POST("/:id/tasks", mw.RateLimit(), h.CreateTask)
		workspaces.GET("/:id/tasks", h.ListTasks)

		workspaces.POST("/:id/spending", mw.RateLimit(), h.AddSpending)

		workspaces.GET("/:id/dashboard", h.Dashboard)
		workspaces.GET("/:id/insights", h.Insights)
	}

	tasks := rg.Group("/tasks")
	{
		tasks.PUT("/:id/completion", mw.RateLimit(), h.SetTaskCompletion)
	}
}
