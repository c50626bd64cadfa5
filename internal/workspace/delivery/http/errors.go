package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rima-workspace/internal/workspace"
	"rima-workspace/pkg/response"
)

// respondError translates domain errors into the HTTP envelope.
// Unknown errors never leak their cause to the client.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, workspace.ErrWorkspaceNotFound),
		errors.Is(err, workspace.ErrRoomNotFound),
		errors.Is(err, workspace.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, workspace.ErrEmptyTitle),
		errors.Is(err, workspace.ErrEmptyContent),
		errors.Is(err, workspace.ErrEmptyAmount):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
