package http

import (
	"github.com/gin-gonic/gin"

	"rima-workspace/internal/workspace"
	"rima-workspace/pkg/log"
)

// Handler is the public interface for the workspace HTTP delivery layer.
type Handler interface {
	CreateWorkspace(c *gin.Context)
	ListWorkspaces(c *gin.Context)
	DetailWorkspace(c *gin.Context)
	CreateRoom(c *gin.Context)
	ListRooms(c *gin.Context)
	PostMessage(c *gin.Context)
	ListMessages(c *gin.Context)
	ExtractTasks(c *gin.Context)
	CreateTask(c *gin.Context)
	ListTasks(c *gin.Context)
	SetTaskCompletion(c *gin.Context)
	AddSpending(c *gin.Context)
	Dashboard(c *gin.Context)
	Insights(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc workspace.UseCase
}

// New creates a new HTTP handler for the workspace domain.
func New(l log.Logger, uc workspace.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
