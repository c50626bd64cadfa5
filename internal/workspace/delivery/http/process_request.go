package http

import (
	"github.com/gin-gonic/gin"

	"rima-workspace/internal/model"
)

// Demo identity used when the caller sends no identity headers. There
// is no authentication layer; the headers just name the speaker.
const (
	headerUserID   = "X-User-Id"
	headerUserName = "X-User-Name"

	defaultUserID   = "demo-user"
	defaultUserName = "Demo"
)

// scopeFromRequest builds the caller scope from identity headers.
func scopeFromRequest(c *gin.Context) model.Scope {
	sc := model.Scope{
		UserID:   c.GetHeader(headerUserID),
		Username: c.GetHeader(headerUserName),
	}
	if sc.UserID == "" {
		sc.UserID = defaultUserID
	}
	if sc.Username == "" {
		sc.Username = defaultUserName
	}
	return sc
}

// processCreateWorkspaceReq binds and validates the workspace creation body.
func (h *handler) processCreateWorkspaceReq(c *gin.Context) (createWorkspaceReq, error) {
	var req createWorkspaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCreateRoomReq(c *gin.Context) (createRoomReq, error) {
	var req createRoomReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.WorkspaceID = c.Param("id")
	return req, nil
}

func (h *handler) processPostMessageReq(c *gin.Context) (postMessageReq, error) {
	var req postMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.WorkspaceID = c.Param("id")
	return req, nil
}

func (h *handler) processListMessagesReq(c *gin.Context) (listMessagesReq, error) {
	var req listMessagesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.WorkspaceID = c.Param("id")
	return req, nil
}

func (h *handler) processExtractTasksReq(c *gin.Context) (extractTasksReq, error) {
	var req extractTasksReq
	// The body is optional; extraction over the whole workspace needs
	// no parameters.
	_ = c.ShouldBindJSON(&req)
	req.WorkspaceID = c.Param("id")
	return req, nil
}

func (h *handler) processCreateTaskReq(c *gin.Context) (createTaskReq, error) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.WorkspaceID = c.Param("id")
	return req, nil
}

func (h *handler) processSetTaskCompletionReq(c *gin.Context) (setTaskCompletionReq, error) {
	var req setTaskCompletionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TaskID = c.Param("id")
	return req, nil
}

func (h *handler) processAddSpendingReq(c *gin.Context) (addSpendingReq, error) {
	var req addSpendingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.WorkspaceID = c.Param("id")
	return req, nil
}

func (h *handler) processInsightsReq(c *gin.Context) (insightsReq, error) {
	var req insightsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.WorkspaceID = c.Param("id")
	return req, nil
}
